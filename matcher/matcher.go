// Package matcher provides the match abstraction shared by the filtering
// and searching operations of strvec. A Matcher decides whether a single
// line matches; filters and searches are written once against this
// interface and work for predicates, literals and patterns alike.
package matcher

import (
	"regexp"

	"github.com/pkg/errors"
)

// Matcher is the interface that all match implementations must satisfy.
type Matcher interface {
	Match(string) bool
}

// Func adapts a plain predicate function to a Matcher.
type Func func(string) bool

// Match calls the underlying function.
func (f Func) Match(s string) bool {
	return f(s)
}

// Literal matches lines that are exactly equal to its own value.
type Literal string

func (l Literal) Match(s string) bool {
	return string(l) == s
}

// Regexp matches a line only when the pattern consumes the line in its
// entirety. This is deliberately different from the substring semantics of
// regexp.MatchString: `apple` matches the line "apple" but not "pineapple".
type Regexp struct {
	rx *regexp.Regexp
}

// Compile compiles pattern into a whole-line Regexp matcher.
func Compile(pattern string) (*Regexp, error) {
	rx, err := regexp.Compile(`\A(?:` + pattern + `)\z`)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to compile pattern %q", pattern)
	}
	return &Regexp{rx: rx}, nil
}

// MustCompile is like Compile but panics on malformed patterns. Intended
// for patterns known at compile time.
func MustCompile(pattern string) *Regexp {
	m, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Regexp) Match(s string) bool {
	return m.rx.MatchString(s)
}

// String returns the anchored form of the compiled pattern.
func (m *Regexp) String() string {
	return m.rx.String()
}

// Not inverts the given matcher.
func Not(m Matcher) Matcher {
	return Func(func(s string) bool {
		return !m.Match(s)
	})
}
