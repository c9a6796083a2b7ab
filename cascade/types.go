package cascade

// Cell is the state of a single grid position.
type Cell uint8

const (
	// Empty marks a vacant position.
	Empty Cell = iota
	// Filled marks an occupied position.
	Filled
)

// String returns the default symbol for c: '@' for Filled, '.' for Empty.
func (c Cell) String() string {
	if c == Filled {
		return string(DefaultFilledSymbol)
	}
	return string(DefaultEmptySymbol)
}

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Neighbor offsets as {dRow, dCol}, clockwise from north.
var (
	offsets4 = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	offsets8 = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
)

// offsets returns the neighbor offsets for c.
// Complexity: O(1).
func (c Connectivity) offsets() [][2]int {
	if c == Conn4 {
		return offsets4
	}
	return offsets8
}

// Phase is a step of the fixpoint state machine:
// Scanning → Marking → Applying → (Scanning if removals > 0) → Done.
type Phase int

const (
	// Scanning starts a generation.
	Scanning Phase = iota
	// Marking evaluates eligibility against the committed state.
	Marking
	// Applying clears every marked cell.
	Applying
	// Done is terminal: the last generation removed nothing.
	Done
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case Scanning:
		return "scanning"
	case Marking:
		return "marking"
	case Applying:
		return "applying"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// Result captures the outcome of Simulate.
type Result struct {
	// Removed is the total number of cells cleared across all generations.
	Removed int
	// Generations holds the removal count of each non-terminal generation, in order.
	Generations []int
}

// Grid is a fixed-size rectangular grid of cells stored row-major.
// Width and Height never change after construction. The staged slice holds
// the row-major indices marked during the current pass; it is empty outside
// a pass and its backing array is reused between passes.
type Grid struct {
	width, height int
	cells         []Cell
	staged        []int
}
