package cascade

// RunToFixpoint repeats generations until one removes nothing and returns
// the cumulative number of removed cells. Each non-terminal generation
// removes at least one filled cell, so the loop ends after at most
// Filled()+1 generations.
func RunToFixpoint(g *Grid, opts ...Option) int {
	return Simulate(g, opts...).Removed
}

// Simulate runs the fixpoint loop and reports per-generation removals.
// The terminal zero-removal generation is not included in Generations.
func Simulate(g *Grid, opts ...Option) Result {
	o := gatherOptions(opts)
	var res Result
	for gen := 1; ; gen++ {
		o.enter(Scanning)
		removed := g.generation(&o)
		if o.OnGeneration != nil {
			o.OnGeneration(gen, removed)
		}
		if removed == 0 {
			break
		}
		res.Removed += removed
		res.Generations = append(res.Generations, removed)
	}
	o.enter(Done)

	return res
}
