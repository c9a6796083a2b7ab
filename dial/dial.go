// Package dial simulates a circular combination dial driven by L/R rotations
// and counts how often it points at zero.
package dial

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// Positions is the number of marks on the dial, 0 through Positions-1.
	Positions = 100
	// Start is the mark the dial points at before the first rotation.
	Start = 50
)

// ErrBadInstruction indicates a line that is not L<n> or R<n>.
var ErrBadInstruction = errors.New("dial: bad instruction")

// Direction of a rotation.
type Direction byte

const (
	Left  Direction = 'L' // toward lower numbers
	Right Direction = 'R' // toward higher numbers
)

// Instruction is a single rotation.
type Instruction struct {
	Dir   Direction
	Steps int
}

// Dial is a circular dial of Positions marks.
type Dial struct {
	pos int
}

// New returns a dial pointing at Start.
func New() *Dial {
	return &Dial{pos: Start}
}

// Position returns the current mark.
func (d *Dial) Position() int { return d.pos }

// Turn rotates the dial and returns how many clicks landed on zero,
// including the final one.
// Complexity: O(1).
func (d *Dial) Turn(in Instruction) int {
	if in.Dir == Left {
		return d.left(in.Steps)
	}
	return d.right(in.Steps)
}

func (d *Dial) right(steps int) int {
	zeros := (d.pos + steps) / Positions
	d.pos = (d.pos + steps) % Positions
	return zeros
}

func (d *Dial) left(steps int) int {
	var zeros int
	switch {
	case d.pos == 0:
		zeros = steps / Positions
	case steps >= d.pos:
		zeros = 1 + (steps-d.pos)/Positions
	}
	d.pos = ((d.pos-steps)%Positions + Positions) % Positions
	return zeros
}

// ParseInstructions reads one instruction per non-blank line.
func ParseInstructions(input string) ([]Instruction, error) {
	var out []Instruction
	for i, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		dir := Direction(line[0])
		if dir != Left && dir != Right {
			return nil, fmt.Errorf("line %d: direction %q: %w", i+1, line[0], ErrBadInstruction)
		}
		steps, err := strconv.Atoi(line[1:])
		if err != nil || steps < 0 {
			return nil, fmt.Errorf("line %d: steps %q: %w", i+1, line[1:], ErrBadInstruction)
		}
		out = append(out, Instruction{Dir: dir, Steps: steps})
	}
	return out, nil
}

// Part1 counts the rotations after which the dial rests at zero.
func Part1(input string) (int, error) {
	ins, err := ParseInstructions(input)
	if err != nil {
		return 0, err
	}
	d := New()
	n := 0
	for _, in := range ins {
		d.Turn(in)
		if d.Position() == 0 {
			n++
		}
	}
	return n, nil
}

// Part2 counts every click that lands on zero, during or at the end of a rotation.
func Part2(input string) (int, error) {
	ins, err := ParseInstructions(input)
	if err != nil {
		return 0, err
	}
	d := New()
	n := 0
	for _, in := range ins {
		n += d.Turn(in)
	}
	return n, nil
}
