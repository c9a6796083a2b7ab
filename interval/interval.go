// Package interval keeps a set of integers as sorted, disjoint inclusive
// ranges and answers membership and coverage queries against it.
package interval

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

var (
	// ErrBadRange indicates a range whose start exceeds its end or does not parse.
	ErrBadRange = errors.New("interval: bad range")
	// ErrBadID indicates an ID line that does not parse.
	ErrBadID = errors.New("interval: bad id")
)

// Range is an inclusive span [Start, End].
type Range[T constraints.Integer] struct {
	Start, End T
}

// Set is a union of inclusive ranges. Stored ranges are sorted by Start,
// never overlap and never touch.
type Set[T constraints.Integer] struct {
	ranges []Range[T]
}

// NewSet returns the union of ranges or ErrBadRange if any has Start > End.
func NewSet[T constraints.Integer](ranges ...Range[T]) (*Set[T], error) {
	s := &Set[T]{}
	for _, r := range ranges {
		if err := s.Insert(r); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Insert adds r to the set, merging overlapping and adjacent ranges.
// Complexity: O(k log k) for k stored ranges.
func (s *Set[T]) Insert(r Range[T]) error {
	if r.Start > r.End {
		return fmt.Errorf("%v-%v: %w", r.Start, r.End, ErrBadRange)
	}
	all := append(s.ranges, r)
	slices.SortFunc(all, func(a, b Range[T]) int { return cmp.Compare(a.Start, b.Start) })

	merged := all[:1]
	for _, next := range all[1:] {
		cur := &merged[len(merged)-1]
		// next.Start ≥ cur.Start, so next.Start-cur.End cannot overflow once next.Start > cur.End.
		if next.Start <= cur.End || next.Start-cur.End == 1 {
			cur.End = max(cur.End, next.End)
			continue
		}
		merged = append(merged, next)
	}
	s.ranges = merged

	return nil
}

// Contains reports whether v lies in any range.
// Complexity: O(log k).
func (s *Set[T]) Contains(v T) bool {
	i := sort.Search(len(s.ranges), func(i int) bool { return s.ranges[i].End >= v })
	return i < len(s.ranges) && s.ranges[i].Start <= v
}

// Len returns the number of integers covered by the set.
func (s *Set[T]) Len() T {
	var n T
	for _, r := range s.ranges {
		n += r.End - r.Start + 1
	}
	return n
}

// Ranges returns a copy of the normalized ranges.
func (s *Set[T]) Ranges() []Range[T] {
	return slices.Clone(s.ranges)
}

// Parse reads start-end lines, a blank line, then one ID per line.
// A missing ID section yields no IDs.
func Parse(input string) (*Set[uint64], []uint64, error) {
	set := &Set[uint64]{}
	var ids []uint64
	inRanges := true
	for i, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if inRanges {
			if line == "" {
				inRanges = false
				continue
			}
			lo, hi, ok := strings.Cut(line, "-")
			start, err1 := strconv.ParseUint(lo, 10, 64)
			end, err2 := strconv.ParseUint(hi, 10, 64)
			if !ok || err1 != nil || err2 != nil {
				return nil, nil, fmt.Errorf("line %d: %q: %w", i+1, line, ErrBadRange)
			}
			if err := set.Insert(Range[uint64]{Start: start, End: end}); err != nil {
				return nil, nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			continue
		}
		if line == "" {
			continue
		}
		id, err := strconv.ParseUint(line, 10, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %q: %w", i+1, line, ErrBadID)
		}
		ids = append(ids, id)
	}
	return set, ids, nil
}

// Part1 counts the IDs covered by at least one range.
func Part1(input string) (int, error) {
	set, ids, err := Parse(input)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, id := range ids {
		if set.Contains(id) {
			n++
		}
	}
	return n, nil
}

// Part2 counts every ID the ranges cover.
func Part2(input string) (int, error) {
	set, _, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return int(set.Len()), nil
}
