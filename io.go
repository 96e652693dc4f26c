package strvec

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/lestrrat-go/pdebug"
	"github.com/pkg/errors"
)

// maxScanBufferSize is the largest single line Read will accept, in bytes.
const maxScanBufferSize = 256 * 1024

// scanLinesKeepCR is bufio.ScanLines without the carriage return stripping:
// loaded lines must round-trip byte-for-byte, CRLF endings included.
func scanLinesKeepCR(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// Read appends every newline-delimited line from in to the vector, in
// input order. A trailing line without a final newline is still appended.
// Lines already present are kept; reading is a pure append.
func (v *Vector) Read(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 4096), maxScanBufferSize)
	scanner.Split(scanLinesKeepCR)

	var scanned int
	for scanner.Scan() {
		v.lines = append(v.lines, scanner.Text())
		scanned++
	}
	if pdebug.Enabled {
		pdebug.Printf("Read: scanned %d lines", scanned)
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "failed to read lines")
	}
	return nil
}

// ReadFile reads path line by line, appending each line to the vector in
// file order. The error is non-nil when the file cannot be opened or read.
func (v *Vector) ReadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s for reading", path)
	}
	defer f.Close()

	if err := v.Read(f); err != nil {
		return errors.Wrapf(err, "failed to read %s", path)
	}
	return nil
}

// WriteFile writes the lines to path joined by sep, creating or truncating
// the file. No separator follows the final line.
func (v *Vector) WriteFile(path, sep string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s for writing", path)
	}

	if err := v.Fprint(f, sep, false); err != nil {
		f.Close()
		return errors.Wrapf(err, "failed to write %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "failed to close %s", path)
	}
	return nil
}

// Fprint writes the lines to w joined by sep. When keepTrailingSep is true
// a separator is also written after the final line, matching the legacy
// always-end-with-newline print behavior. The output is flushed before
// Fprint returns.
func (v *Vector) Fprint(w io.Writer, sep string, keepTrailingSep bool) error {
	bw := bufio.NewWriter(w)
	for i, l := range v.lines {
		if i > 0 {
			if _, err := bw.WriteString(sep); err != nil {
				return errors.Wrap(err, "failed to write separator")
			}
		}
		if _, err := bw.WriteString(l); err != nil {
			return errors.Wrap(err, "failed to write line")
		}
	}
	if keepTrailingSep && len(v.lines) > 0 {
		if _, err := bw.WriteString(sep); err != nil {
			return errors.Wrap(err, "failed to write separator")
		}
	}
	return errors.Wrap(bw.Flush(), "failed to flush output")
}

// Print writes the lines to stdout, one per line, ending with a newline.
func (v *Vector) Print() error {
	return v.Fprint(os.Stdout, "\n", true)
}
