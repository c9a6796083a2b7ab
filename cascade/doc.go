// Package cascade simulates staged removal on a 2D grid of filled and empty
// cells until the grid reaches a fixpoint.
//
// What:
//
//   - Grid wraps a rectangular, fixed-size set of cells with bounds-checked
//     Get/Set access (reads outside the grid report absence, writes fail).
//   - CountFilledNeighbors counts filled cells among the 8 (or 4) positions
//     around a cell; positions outside the grid contribute nothing.
//   - A pass (generation) first marks every filled cell whose filled-neighbor
//     count is below the threshold, then clears all marked cells at once.
//   - RunToFixpoint repeats passes until one removes nothing and returns the
//     cumulative number of removed cells.
//
// Why:
//
//   - Marking against the committed pre-pass state makes every generation
//     independent of scan order: the same grid always yields the same counts.
//   - Warehouse layouts, erosion of sparse clusters, cellular pruning.
//
// Complexity:
//
//   - CountEligible, RunOneGeneration: O(W×H×d), Memory: O(W×H) for marks
//     and scan order (d = number of neighbors, 4 or 8).
//   - RunToFixpoint: O(G×W×H×d) for G generations; G ≤ number of filled cells.
//   - Regions: O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - WithThreshold: removal threshold (default 4).
//   - WithConnectivity: Conn8 (default) or Conn4.
//   - WithScanOrder: visiting order of the mark phase; never changes results.
//   - WithOnGeneration, WithOnPhase: observation hooks.
//
// Errors:
//
//   - ErrMalformedGrid: empty, ragged or unparsable input (ErrEmptyGrid,
//     ErrNonRectangular and ErrUnknownSymbol all match it via errors.Is).
//   - ErrOutOfBounds: Set outside [0,Height)×[0,Width).
package cascade
