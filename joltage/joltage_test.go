package joltage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `987654321111111
811111111111119
234234234234278
818181911112111`

func TestPart1(t *testing.T) {
	got, err := Part1(sample)
	require.NoError(t, err)
	assert.Equal(t, 357, got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(sample)
	require.NoError(t, err)
	assert.Equal(t, 3121910778619, got)
}

func TestMaxJoltage(t *testing.T) {
	tests := []struct {
		bank string
		n    int
		want int
	}{
		{"987654321111111", 12, 987654321111},
		{"811111111111119", 12, 811111111119},
		{"234234234234278", 12, 434234234278},
		{"818181911112111", 12, 888911112111},
		{"987654321111111", 2, 98},
		{"811111111111119", 2, 89},
		{"12", 2, 12},
		{"5", 1, 5},
		{"0000", 2, 0},
	}
	for _, tt := range tests {
		got, err := MaxJoltage(tt.bank, tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "MaxJoltage(%q, %d)", tt.bank, tt.n)
	}
}

func TestMaxJoltage_Errors(t *testing.T) {
	_, err := MaxJoltage("12a", 2)
	assert.ErrorIs(t, err, ErrBadBank)
	_, err = MaxJoltage("12", 3)
	assert.ErrorIs(t, err, ErrBankTooShort)
	_, err = MaxJoltage("12", 0)
	assert.ErrorIs(t, err, ErrBankTooShort)
}
