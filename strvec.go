// Package strvec implements Vector, an ordered, mutable collection of text
// lines with operations for file ingestion, filtering, transformation,
// sorting, searching and comparison.
package strvec

import (
	"errors"
	"slices"
)

// ErrOutOfRange is returned when an index passed to At or SetAt does not
// refer to an existing line.
var ErrOutOfRange = errors.New("error: Specified index is out of range")

// ErrEmptyDelimiter is returned by Split when the delimiter is empty.
var ErrEmptyDelimiter = errors.New("error: Split delimiter must not be empty")

// Vector is an ordered sequence of text lines. Duplicates and empty strings
// are valid elements, and insertion order is preserved by every operation
// except Reverse and the sorts.
//
// All filtering, transforming and ordering operations mutate the vector in
// place. Indices returned by the search operations, and slices returned by
// Lines, remain valid only until the next mutating call.
//
// A Vector is not safe for concurrent use; callers that share one across
// goroutines must provide their own locking.
type Vector struct {
	lines []string
}

// New creates an empty Vector.
func New() *Vector {
	return &Vector{}
}

// NewFromLines creates a Vector holding a copy of lines. The vector owns
// its own storage; later changes to the argument slice are not reflected.
func NewFromLines(lines []string) *Vector {
	return &Vector{lines: append([]string(nil), lines...)}
}

// Clone returns an independent copy of the vector.
func (v *Vector) Clone() *Vector {
	return NewFromLines(v.lines)
}

// Len returns the number of lines.
func (v *Vector) Len() int {
	return len(v.lines)
}

// At returns the line at index i.
func (v *Vector) At(i int) (string, error) {
	if i < 0 || i >= len(v.lines) {
		return "", ErrOutOfRange
	}
	return v.lines[i], nil
}

// SetAt replaces the line at index i.
func (v *Vector) SetAt(i int, s string) error {
	if i < 0 || i >= len(v.lines) {
		return ErrOutOfRange
	}
	v.lines[i] = s
	return nil
}

// Lines returns the underlying slice for bulk access. Mutating the slice
// mutates the vector; like search indices, the slice is only valid until
// the next mutating call on the vector.
func (v *Vector) Lines() []string {
	return v.lines
}

// Append adds lines at the end of the vector, preserving their order.
func (v *Vector) Append(lines ...string) {
	v.lines = append(v.lines, lines...)
}

// Equal reports whether v and other hold the same lines in the same order.
func (v *Vector) Equal(other *Vector) bool {
	return slices.Equal(v.lines, other.lines)
}

// Compare orders v against other lexicographically: lines are compared
// pairwise, and a shared prefix is broken by length. Returns -1, 0 or +1.
func (v *Vector) Compare(other *Vector) int {
	return slices.Compare(v.lines, other.lines)
}
