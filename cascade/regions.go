package cascade

// Regions finds all contiguous regions of filled cells under conn.
// Returns a slice of regions; each region is a slice of row-major cell
// indices in BFS discovery order. Regions are ordered by their first cell
// in row-major order.
//
// To convert an index back to (row,col), use Coordinate.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func Regions(g *Grid, conn Connectivity) [][]int {
	seen := make([]bool, len(g.cells))
	var regions [][]int
	offsets := conn.offsets()

	for i0, c := range g.cells {
		if c != Filled || seen[i0] {
			continue
		}
		// BFS to collect the region
		queue := []int{i0}
		seen[i0] = true

		for qi := 0; qi < len(queue); qi++ {
			urow, ucol := g.Coordinate(queue[qi])
			for _, d := range offsets {
				vrow, vcol := urow+d[0], ucol+d[1]
				if !g.InBounds(vrow, vcol) {
					continue
				}
				vi := g.index(vrow, vcol)
				if g.cells[vi] == Filled && !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		regions = append(regions, queue)
	}
	return regions
}
