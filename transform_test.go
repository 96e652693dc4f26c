package strvec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransform(t *testing.T) {
	v := NewFromLines([]string{"aaa", "bbb"})
	v.Transform(strings.ToUpper)
	assert.Equal(t, []string{"AAA", "BBB"}, v.Lines())
}

func TestTrim(t *testing.T) {
	v := NewFromLines([]string{"  aaa\t", "bbb", "\v\r\n", ""})
	v.Trim()
	assert.Equal(t, []string{"aaa", "bbb", "", ""}, v.Lines(),
		"whitespace-only lines become empty but are not removed")
}

func TestTrimIdempotent(t *testing.T) {
	v := NewFromLines([]string{"  aaa ", "\tbbb", " ", "c c"})
	v.Trim()
	once := v.Clone()
	v.Trim()
	assert.True(t, v.Equal(once), "trimming twice should equal trimming once")
}

func TestSplit(t *testing.T) {
	testValues := []struct {
		name  string
		input []string
		delim string
		want  []string
	}{
		{"basic", []string{"a,b,,c"}, ",", []string{"a", "b", "", "c"}},
		{"no occurrence", []string{"abc"}, ",", []string{"abc"}},
		{"delimiter only", []string{","}, ",", []string{"", ""}},
		{"multi element", []string{"a b", "c"}, " ", []string{"a", "b", "c"}},
		{"multi byte delimiter", []string{"a::b::c"}, "::", []string{"a", "b", "c"}},
	}
	for _, tv := range testValues {
		t.Run(tv.name, func(t *testing.T) {
			v := NewFromLines(tv.input)
			if !assert.NoError(t, v.Split(tv.delim), "Split should succeed") {
				return
			}
			assert.Equal(t, tv.want, v.Lines())
		})
	}
}

func TestSplitEmptyDelimiter(t *testing.T) {
	v := NewFromLines([]string{"abc"})
	assert.ErrorIs(t, v.Split(""), ErrEmptyDelimiter, "empty delimiter should be rejected")
	assert.Equal(t, []string{"abc"}, v.Lines(), "vector should be unmodified")
}

func TestSplitJoinRoundTrip(t *testing.T) {
	const orig = "a,b,,c"

	v := NewFromLines([]string{orig})
	if !assert.NoError(t, v.Split(","), "Split should succeed") {
		return
	}

	var buf strings.Builder
	if !assert.NoError(t, v.Fprint(&buf, ",", false), "Fprint should succeed") {
		return
	}
	assert.Equal(t, orig, buf.String(), "joining the split pieces should reproduce the input")
}

func TestSplitWords(t *testing.T) {
	v := NewFromLines([]string{"Raspberry Apple", "Blueberry"})
	v.SplitWords()
	assert.Equal(t, []string{"Raspberry", "Apple", "Blueberry"}, v.Lines())
}
