package strvec

import (
	"slices"
	"sort"
)

// Reverse reverses the order of the lines in place.
func (v *Vector) Reverse() {
	slices.Reverse(v.lines)
}

// Sort orders the lines by the supplied less-than comparator, which must
// describe a total order. The sort is not guaranteed to be stable; callers
// that need a deterministic order for equal lines must break ties in the
// comparator.
func (v *Vector) Sort(less func(a, b string) bool) {
	sort.Slice(v.lines, func(i, j int) bool {
		return less(v.lines[i], v.lines[j])
	})
}

// SortAlphabetically orders the lines in byte-wise lexicographic order.
func (v *Vector) SortAlphabetically() {
	sort.Strings(v.lines)
}

// SortByLength orders the lines by ascending byte length.
func (v *Vector) SortByLength() {
	v.Sort(func(a, b string) bool {
		return len(a) < len(b)
	})
}
