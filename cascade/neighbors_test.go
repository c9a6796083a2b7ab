package cascade_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc25/cascade"
)

// TestCountFilledNeighbors_Boundaries checks a fully filled 4×5 grid:
// corners see 3 neighbors, non-corner edges 5, interior cells 8.
func TestCountFilledNeighbors_Boundaries(t *testing.T) {
	g, err := cascade.Parse("@@@@@\n@@@@@\n@@@@@\n@@@@@")
	require.NoError(t, err)

	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			edgeR := row == 0 || row == g.Height()-1
			edgeC := col == 0 || col == g.Width()-1
			want := 8
			switch {
			case edgeR && edgeC:
				want = 3
			case edgeR || edgeC:
				want = 5
			}
			require.Equal(t, want, cascade.CountFilledNeighbors(g, row, col), "cell (%d,%d)", row, col)
		}
	}
}

// TestCountFilledNeighbors_SingleCell has no in-bounds neighbors at all.
func TestCountFilledNeighbors_SingleCell(t *testing.T) {
	g, err := cascade.Parse("@")
	require.NoError(t, err)
	require.Equal(t, 0, cascade.CountFilledNeighbors(g, 0, 0))
}

// TestCountFilledNeighbors_ExcludesOrigin counts a lone empty center among filled cells
// and a lone filled center among empty cells.
func TestCountFilledNeighbors_ExcludesOrigin(t *testing.T) {
	ring, err := cascade.Parse("@@@\n@.@\n@@@")
	require.NoError(t, err)
	require.Equal(t, 8, cascade.CountFilledNeighbors(ring, 1, 1))

	dot, err := cascade.Parse("...\n.@.\n...")
	require.NoError(t, err)
	require.Equal(t, 0, cascade.CountFilledNeighbors(dot, 1, 1))
	require.Equal(t, 1, cascade.CountFilledNeighbors(dot, 0, 0))
}

// TestCountFilledNeighbors_OutsideOrigin counts only the in-bounds ring of a
// coordinate just beyond the corner.
func TestCountFilledNeighbors_OutsideOrigin(t *testing.T) {
	g, err := cascade.Parse("@@\n@@")
	require.NoError(t, err)
	require.Equal(t, 1, cascade.CountFilledNeighbors(g, -1, -1))
	require.Equal(t, 2, cascade.CountFilledNeighbors(g, -1, 0))
}
