package cascade

// CountFilledNeighbors returns how many of the 8 positions around (row,col)
// hold a filled cell. Positions outside the grid count as absent. It reads
// only the committed cell values; staged marks never affect the result.
// Complexity: O(1).
func CountFilledNeighbors(g *Grid, row, col int) int {
	return countFilled(g, row, col, offsets8)
}

// countFilled counts filled cells at (row,col)+offset for each offset.
func countFilled(g *Grid, row, col int, offsets [][2]int) int {
	n := 0
	for _, d := range offsets {
		r, c := row+d[0], col+d[1]
		if !g.InBounds(r, c) {
			continue
		}
		if g.cells[g.index(r, c)] == Filled {
			n++
		}
	}
	return n
}
