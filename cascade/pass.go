package cascade

// CountEligible runs only the mark phase and returns the number of filled
// cells currently eligible for removal. The grid is left unchanged.
// Complexity: O(W×H×d).
func CountEligible(g *Grid, opts ...Option) int {
	o := gatherOptions(opts)
	o.enter(Marking)
	n := g.mark(&o)
	g.staged = g.staged[:0]

	return n
}

// RunOneGeneration marks every eligible cell against the pre-pass state,
// then clears all marked cells at once. It returns the number of cells
// changed from Filled to Empty; zero means the grid is at its fixpoint.
// Complexity: O(W×H×d).
func RunOneGeneration(g *Grid, opts ...Option) int {
	o := gatherOptions(opts)
	return g.generation(&o)
}

func (g *Grid) generation(o *Options) int {
	o.enter(Marking)
	g.mark(o)
	o.enter(Applying)

	return g.apply()
}

// mark stages every filled cell whose filled-neighbor count is below the
// threshold. No cell value changes here, so each evaluation sees the same
// committed state regardless of the visiting order.
func (g *Grid) mark(o *Options) int {
	g.staged = g.staged[:0]
	offsets := o.Conn.offsets()
	for _, idx := range o.scanOrder(g) {
		if g.cells[idx] != Filled {
			continue
		}
		row, col := g.Coordinate(idx)
		if countFilled(g, row, col, offsets) < o.Threshold {
			g.staged = append(g.staged, idx)
		}
	}
	return len(g.staged)
}

// apply clears every staged cell and empties the staged set.
func (g *Grid) apply() int {
	removed := 0
	for _, idx := range g.staged {
		g.cells[idx] = Empty
		removed++
	}
	g.staged = g.staged[:0]

	return removed
}
