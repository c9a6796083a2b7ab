package cascade

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedGrid indicates input that cannot form a rectangular grid.
	ErrMalformedGrid = errors.New("cascade: malformed grid")
	// ErrEmptyGrid indicates input with no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: input must have at least one row and one column", ErrMalformedGrid)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedGrid)
	// ErrUnknownSymbol indicates a character outside the grid alphabet.
	ErrUnknownSymbol = fmt.Errorf("%w: unknown cell symbol", ErrMalformedGrid)
	// ErrOutOfBounds indicates a write outside the grid boundaries.
	ErrOutOfBounds = errors.New("cascade: coordinate out of bounds")
)

// gridErrorf wraps err with Grid method context.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, err)
}
