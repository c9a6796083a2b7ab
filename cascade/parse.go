package cascade

import (
	"fmt"
	"strings"
)

// Default grid alphabet.
const (
	DefaultFilledSymbol = '@'
	DefaultEmptySymbol  = '.'
)

// ParseOption configures Parse.
type ParseOption func(*parseConfig)

type parseConfig struct {
	filled, empty rune
}

// WithAlphabet overrides the symbols for filled and empty cells.
// Panics if both symbols are equal.
func WithAlphabet(filled, empty rune) ParseOption {
	if filled == empty {
		panic("cascade: WithAlphabet: filled and empty symbols must differ")
	}
	return func(c *parseConfig) {
		c.filled, c.empty = filled, empty
	}
}

// Parse builds a Grid from text, one row per line. Carriage returns and
// trailing blank lines are ignored; any other blank line makes the input
// ragged. Every character must be the filled or the empty symbol.
// Errors match ErrMalformedGrid.
func Parse(text string, opts ...ParseOption) (*Grid, error) {
	cfg := parseConfig{filled: DefaultFilledSymbol, empty: DefaultEmptySymbol}
	for _, opt := range opts {
		opt(&cfg)
	}

	lines := strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	rows := make([][]Cell, 0, len(lines))
	for y, line := range lines {
		row := make([]Cell, 0, len(line))
		for x, r := range []rune(line) {
			switch r {
			case cfg.filled:
				row = append(row, Filled)
			case cfg.empty:
				row = append(row, Empty)
			default:
				return nil, fmt.Errorf("line %d, column %d: %q: %w", y+1, x+1, r, ErrUnknownSymbol)
			}
		}
		rows = append(rows, row)
	}

	return NewGrid(rows)
}
