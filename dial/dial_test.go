package dial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `L68
L30
R48
L5
R60
L55
L1
L99
R14
L82`

func TestPart1(t *testing.T) {
	got, err := Part1(sample)
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(sample)
	require.NoError(t, err)
	assert.Equal(t, 6, got)
}

// TestTurn_MatchesClickByClick compares the closed form against stepping one click at a time.
func TestTurn_MatchesClickByClick(t *testing.T) {
	for start := 0; start < Positions; start += 7 {
		for steps := 0; steps <= 3*Positions; steps += 13 {
			for _, dir := range []Direction{Left, Right} {
				d := &Dial{pos: start}
				got := d.Turn(Instruction{Dir: dir, Steps: steps})

				pos, want := start, 0
				for i := 0; i < steps; i++ {
					if dir == Left {
						pos = (pos + Positions - 1) % Positions
					} else {
						pos = (pos + 1) % Positions
					}
					if pos == 0 {
						want++
					}
				}
				require.Equal(t, want, got, "start=%d steps=%d dir=%c", start, steps, dir)
				require.Equal(t, pos, d.Position())
			}
		}
	}
}

func TestParseInstructions_Errors(t *testing.T) {
	for _, in := range []string{"X10", "L", "Rabc", "L-3"} {
		_, err := ParseInstructions(in)
		assert.ErrorIs(t, err, ErrBadInstruction, in)
	}

	ins, err := ParseInstructions("L1\r\n\nR2\n")
	require.NoError(t, err)
	assert.Equal(t, []Instruction{{Left, 1}, {Right, 2}}, ins)
}
