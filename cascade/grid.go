package cascade

import "strings"

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice of cells.
// It deep-copies the input so later changes to rows do not alias the grid.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs; both match ErrMalformedGrid.
// Complexity: O(W×H) time and memory.
func NewGrid(rows [][]Cell) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([]Cell, 0, h*w)
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		cells = append(cells, row...)
	}

	return &Grid{width: w, height: h, cells: cells}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (row,col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Get returns the cell at (row,col). The boolean is false when the
// coordinate lies outside the grid; absence is not an error.
// Complexity: O(1).
func (g *Grid) Get(row, col int) (Cell, bool) {
	if !g.InBounds(row, col) {
		return Empty, false
	}
	return g.cells[g.index(row, col)], true
}

// Set stores c at (row,col) or returns ErrOutOfBounds. It never clamps.
// Complexity: O(1).
func (g *Grid) Set(row, col int, c Cell) error {
	if !g.InBounds(row, col) {
		return gridErrorf("Set", row, col, ErrOutOfBounds)
	}
	g.cells[g.index(row, col)] = c

	return nil
}

// Filled returns the number of filled cells.
// Complexity: O(W×H).
func (g *Grid) Filled() int {
	n := 0
	for _, c := range g.cells {
		if c == Filled {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid without any staged marks.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}

// String renders the grid with the default alphabet, one line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for row := 0; row < g.height; row++ {
		for _, c := range g.cells[row*g.width : (row+1)*g.width] {
			if c == Filled {
				sb.WriteRune(DefaultFilledSymbol)
			} else {
				sb.WriteRune(DefaultEmptySymbol)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// index maps (row,col) to a row-major index: row*Width + col.
// Complexity: O(1).
func (g *Grid) index(row, col int) int {
	return row*g.width + col
}

// Coordinate converts a row-major index back to (row,col).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (row, col int) {
	return idx / g.width, idx % g.width
}
