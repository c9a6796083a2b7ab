// Package joltage picks battery digits from each bank to form the largest
// possible joltage.
package joltage

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrBadBank indicates a bank containing a non-digit.
	ErrBadBank = errors.New("joltage: bank must contain only digits")
	// ErrBankTooShort indicates a bank with fewer digits than requested.
	ErrBankTooShort = errors.New("joltage: bank shorter than requested digits")
)

// MaxJoltage returns the largest n-digit number formed by digits of bank
// kept in their original order. Each digit is the first largest one that
// still leaves enough digits after it.
// Complexity: O(n·len(bank)).
func MaxJoltage(bank string, n int) (int, error) {
	for i := 0; i < len(bank); i++ {
		if bank[i] < '0' || bank[i] > '9' {
			return 0, fmt.Errorf("%q: %w", bank, ErrBadBank)
		}
	}
	if n <= 0 || n > len(bank) {
		return 0, fmt.Errorf("%d digits from %q: %w", n, bank, ErrBankTooShort)
	}

	value, cursor := 0, 0
	for left := n; left > 0; left-- {
		best, at := byte(0), cursor
		for i := cursor; i <= len(bank)-left; i++ {
			if bank[i] > best {
				best, at = bank[i], i
				if best == '9' {
					break
				}
			}
		}
		value = value*10 + int(best-'0')
		cursor = at + 1
	}
	return value, nil
}

// Sum adds MaxJoltage(bank, n) over every non-blank line of input.
func Sum(input string, n int) (int, error) {
	total := 0
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		v, err := MaxJoltage(line, n)
		if err != nil {
			return 0, err
		}
		total += v
	}
	return total, nil
}

// Part1 sums the best two-digit joltage of each bank.
func Part1(input string) (int, error) { return Sum(input, 2) }

// Part2 sums the best twelve-digit joltage of each bank.
func Part2(input string) (int, error) { return Sum(input, 12) }
