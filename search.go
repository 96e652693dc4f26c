package strvec

import "github.com/strvec/strvec/matcher"

// NotFound is the sentinel index returned by the search operations when no
// line matches.
const NotFound = -1

// Find returns the index of the first line matched by m, or NotFound.
// The index stays valid only until the next mutating call on the vector.
func (v *Vector) Find(m matcher.Matcher) int {
	for i, l := range v.lines {
		if m.Match(l) {
			return i
		}
	}
	return NotFound
}

// FindLast returns the index of the last line matched by m, or NotFound.
// The scan runs back to front; the returned index counts from the front, so
// it can be used anywhere a Find result can.
func (v *Vector) FindLast(m matcher.Matcher) int {
	for i := len(v.lines) - 1; i >= 0; i-- {
		if m.Match(v.lines[i]) {
			return i
		}
	}
	return NotFound
}

// FindFunc returns the index of the first line for which fn returns true.
func (v *Vector) FindFunc(fn func(string) bool) int {
	return v.Find(matcher.Func(fn))
}

// FindLastFunc returns the index of the last line for which fn returns true.
func (v *Vector) FindLastFunc(fn func(string) bool) int {
	return v.FindLast(matcher.Func(fn))
}

// FindString returns the index of the first line exactly equal to lit.
func (v *Vector) FindString(lit string) int {
	return v.Find(matcher.Literal(lit))
}

// FindLastString returns the index of the last line exactly equal to lit.
func (v *Vector) FindLastString(lit string) int {
	return v.FindLast(matcher.Literal(lit))
}

// FindPattern returns the index of the first line the pattern matches in
// its entirety (the same whole-line semantics as the pattern filters).
func (v *Vector) FindPattern(pattern string) (int, error) {
	m, err := matcher.Compile(pattern)
	if err != nil {
		return NotFound, err
	}
	return v.Find(m), nil
}

// FindLastPattern returns the index of the last line the pattern matches in
// its entirety.
func (v *Vector) FindLastPattern(pattern string) (int, error) {
	m, err := matcher.Compile(pattern)
	if err != nil {
		return NotFound, err
	}
	return v.FindLast(m), nil
}
