package strvec

import (
	"strings"

	"github.com/samber/lo"

	"github.com/strvec/strvec/internal/util"
)

// Transform replaces every line l with fn(l), preserving order and length.
func (v *Vector) Transform(fn func(string) string) {
	v.lines = lo.Map(v.lines, func(l string, _ int) string {
		return fn(l)
	})
}

// Trim strips leading and trailing whitespace (space, tab, vertical tab,
// carriage return, newline) from every line. A line consisting only of
// whitespace becomes the empty string; Trim never changes the number of
// lines, so combine it with FilterEmpty to drop blanks. Idempotent.
func (v *Vector) Trim() {
	v.Transform(util.TrimWhitespace)
}

// Split replaces every line with the pieces obtained by splitting it on
// every non-overlapping occurrence of the literal delimiter delim, with the
// delimiter itself discarded. Pieces keep their original order; a line
// without the delimiter survives unchanged, and a line equal to delim
// becomes two empty lines. An empty delimiter is rejected with
// ErrEmptyDelimiter and the vector is left untouched.
func (v *Vector) Split(delim string) error {
	if delim == "" {
		return ErrEmptyDelimiter
	}
	v.lines = lo.FlatMap(v.lines, func(l string, _ int) []string {
		return strings.Split(l, delim)
	})
	return nil
}

// SplitWords splits every line on single spaces.
func (v *Vector) SplitWords() {
	_ = v.Split(" ")
}
