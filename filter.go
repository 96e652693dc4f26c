package strvec

import (
	"github.com/strvec/strvec/internal/util"
	"github.com/strvec/strvec/matcher"
)

// removeIf drops every line for which drop returns true, preserving the
// relative order of the survivors. One pass, in place.
func (v *Vector) removeIf(drop func(string) bool) {
	kept := v.lines[:0]
	for _, l := range v.lines {
		if !drop(l) {
			kept = append(kept, l)
		}
	}
	v.lines = kept
}

// FilterRemove drops every line matched by m.
func (v *Vector) FilterRemove(m matcher.Matcher) {
	v.removeIf(m.Match)
}

// FilterKeep drops every line NOT matched by m.
func (v *Vector) FilterKeep(m matcher.Matcher) {
	v.FilterRemove(matcher.Not(m))
}

// FilterRemoveFunc drops every line for which fn returns true.
func (v *Vector) FilterRemoveFunc(fn func(string) bool) {
	v.FilterRemove(matcher.Func(fn))
}

// FilterKeepFunc drops every line for which fn returns false.
func (v *Vector) FilterKeepFunc(fn func(string) bool) {
	v.FilterKeep(matcher.Func(fn))
}

// FilterRemovePattern compiles pattern once and drops every line the
// pattern matches in its entirety (whole-line match, not substring
// search). The vector is left untouched when the pattern does not compile.
func (v *Vector) FilterRemovePattern(pattern string) error {
	m, err := matcher.Compile(pattern)
	if err != nil {
		return err
	}
	v.FilterRemove(m)
	return nil
}

// FilterKeepPattern compiles pattern once and keeps only the lines the
// pattern matches in its entirety. The vector is left untouched when the
// pattern does not compile.
func (v *Vector) FilterKeepPattern(pattern string) error {
	m, err := matcher.Compile(pattern)
	if err != nil {
		return err
	}
	v.FilterKeep(m)
	return nil
}

// FilterEmpty drops empty lines. Unless keepBlank is true, lines made up
// entirely of whitespace are dropped as well.
func (v *Vector) FilterEmpty(keepBlank bool) {
	if keepBlank {
		v.removeIf(func(s string) bool { return s == "" })
		return
	}
	v.removeIf(util.IsBlank)
}

// RemoveFirst drops the first line. Removing from an empty vector is a
// no-op.
func (v *Vector) RemoveFirst() {
	v.RemoveAt(0)
}

// RemoveLast drops the last line. Removing from an empty vector is a no-op.
func (v *Vector) RemoveLast() {
	v.RemoveAt(len(v.lines) - 1)
}

// RemoveAt drops the line at index i. An out-of-range index is silently
// ignored; position-based removal is tolerant where indexed access via At
// is not.
func (v *Vector) RemoveAt(i int) {
	if i < 0 || i >= len(v.lines) {
		return
	}
	v.lines = append(v.lines[:i], v.lines[i+1:]...)
}
