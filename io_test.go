package strvec

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadFile(t *testing.T) {
	path := writeTempFile(t, "aaa\nbbb\nccc\n")

	v := New()
	if !assert.NoError(t, v.ReadFile(path), "ReadFile should succeed") {
		return
	}
	assert.Equal(t, []string{"aaa", "bbb", "ccc"}, v.Lines())
}

func TestReadFileAppends(t *testing.T) {
	path := writeTempFile(t, "ccc\n")

	v := NewFromLines([]string{"aaa", "bbb"})
	if !assert.NoError(t, v.ReadFile(path), "ReadFile should succeed") {
		return
	}
	assert.Equal(t, []string{"aaa", "bbb", "ccc"}, v.Lines(),
		"loading should append after the existing lines")
}

func TestReadFileMissing(t *testing.T) {
	v := New()
	err := v.ReadFile(filepath.Join(t.TempDir(), "no-such-file"))
	assert.Error(t, err, "reading a missing file should fail")
	assert.Equal(t, 0, v.Len())
}

func TestReadKeepsUnterminatedLastLine(t *testing.T) {
	v := New()
	if !assert.NoError(t, v.Read(strings.NewReader("aaa\nbbb")), "Read should succeed") {
		return
	}
	assert.Equal(t, []string{"aaa", "bbb"}, v.Lines(),
		"a trailing line without a newline is still captured")
}

func TestReadKeepsCarriageReturns(t *testing.T) {
	v := New()
	if !assert.NoError(t, v.Read(strings.NewReader("aaa\r\nbbb\r\n")), "Read should succeed") {
		return
	}
	assert.Equal(t, []string{"aaa\r", "bbb\r"}, v.Lines(),
		"carriage returns are not stripped")
}

func TestReadEmptyLines(t *testing.T) {
	v := New()
	if !assert.NoError(t, v.Read(strings.NewReader("\n\naaa\n")), "Read should succeed") {
		return
	}
	assert.Equal(t, []string{"", "", "aaa"}, v.Lines())
}

func TestWriteFileNoTrailingSeparator(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	v := NewFromLines([]string{"aaa", "bbb"})
	if !assert.NoError(t, v.WriteFile(path, "\n"), "WriteFile should succeed") {
		return
	}

	buf, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "aaa\nbbb", string(buf), "no separator after the final line")
}

func TestWriteFileCustomSeparator(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	v := NewFromLines([]string{"a", "b", "c"})
	if !assert.NoError(t, v.WriteFile(path, ", "), "WriteFile should succeed") {
		return
	}

	buf, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a, b, c", string(buf))
}

func TestWriteFileUnwritablePath(t *testing.T) {
	v := NewFromLines([]string{"aaa"})
	err := v.WriteFile(filepath.Join(t.TempDir(), "missing", "out.txt"), "\n")
	assert.Error(t, err, "writing into a missing directory should fail")
}

func TestFprint(t *testing.T) {
	testValues := []struct {
		name     string
		lines    []string
		sep      string
		trailing bool
		want     string
	}{
		{"trailing newline", []string{"aaa", "bbb"}, "\n", true, "aaa\nbbb\n"},
		{"no trailing newline", []string{"aaa", "bbb"}, "\n", false, "aaa\nbbb"},
		{"comma separator", []string{"a", "b"}, ",", false, "a,b"},
		{"single line", []string{"aaa"}, "\n", true, "aaa\n"},
		{"empty vector", nil, "\n", true, ""},
	}
	for _, tv := range testValues {
		t.Run(tv.name, func(t *testing.T) {
			var buf strings.Builder
			v := NewFromLines(tv.lines)
			if !assert.NoError(t, v.Fprint(&buf, tv.sep, tv.trailing), "Fprint should succeed") {
				return
			}
			assert.Equal(t, tv.want, buf.String())
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roundtrip.txt")

	orig := NewFromLines([]string{"aaa", "", "  bbb ", "ccc"})
	if !assert.NoError(t, orig.WriteFile(path, "\n"), "WriteFile should succeed") {
		return
	}

	loaded := New()
	if !assert.NoError(t, loaded.ReadFile(path), "ReadFile should succeed") {
		return
	}
	assert.True(t, orig.Equal(loaded), "save then load should reproduce the lines exactly")
}
