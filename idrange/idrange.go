// Package idrange finds product IDs made of a repeated digit sequence
// within comma-separated ID ranges.
package idrange

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// ErrBadRange indicates a token that is not first-last with first ≤ last.
var ErrBadRange = errors.New("idrange: bad range")

// Range is an inclusive span of IDs.
type Range struct {
	First, Last int
}

// ParseRanges reads comma-separated first-last ranges. Whitespace around
// tokens and empty tokens are ignored.
func ParseRanges(input string) ([]Range, error) {
	var out []Range
	for _, tok := range strings.Split(input, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		lo, hi, ok := strings.Cut(tok, "-")
		if !ok {
			return nil, fmt.Errorf("%q: %w", tok, ErrBadRange)
		}
		first, err1 := strconv.Atoi(lo)
		last, err2 := strconv.Atoi(hi)
		if err1 != nil || err2 != nil || first < 0 || first > last {
			return nil, fmt.Errorf("%q: %w", tok, ErrBadRange)
		}
		out = append(out, Range{First: first, Last: last})
	}
	return out, nil
}

// Factors returns every positive divisor of n in ascending order.
// n ≤ 0 has no divisors.
// Complexity: O(√n).
func Factors[T constraints.Integer](n T) []T {
	if n <= 0 {
		return nil
	}
	var low, high []T
	for i := T(1); i <= n/i; i++ {
		if n%i != 0 {
			continue
		}
		low = append(low, i)
		if i != n/i {
			high = append(high, n/i)
		}
	}
	for i := len(high) - 1; i >= 0; i-- {
		low = append(low, high[i])
	}
	return low
}

// repeats reports whether s is its first size bytes repeated.
func repeats(s string, size int) bool {
	return strings.Repeat(s[:size], len(s)/size) == s
}

// IsDoubled reports whether id is some digit sequence written exactly twice.
func IsDoubled(id int) bool {
	s := strconv.Itoa(id)
	return len(s)%2 == 0 && repeats(s, len(s)/2)
}

// IsRepeated reports whether id is some digit sequence written two or more
// times. Single-digit IDs are not repeated.
func IsRepeated(id int) bool {
	s := strconv.Itoa(id)
	for _, size := range Factors(len(s)) {
		if size == len(s) {
			break
		}
		if repeats(s, size) {
			return true
		}
	}
	return false
}

func sumMatching(input string, match func(int) bool) (int, error) {
	ranges, err := ParseRanges(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, r := range ranges {
		for id := r.First; id <= r.Last; id++ {
			if match(id) {
				sum += id
			}
		}
	}
	return sum, nil
}

// Part1 sums the IDs written as a sequence repeated exactly twice.
func Part1(input string) (int, error) { return sumMatching(input, IsDoubled) }

// Part2 sums the IDs written as a sequence repeated at least twice.
func Part2(input string) (int, error) { return sumMatching(input, IsRepeated) }
