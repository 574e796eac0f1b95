// Package testdata gives tests access to files of the Unicode Character
// Database. The files are not part of the repository; run
//
//   go run download.go
//
// from within this directory to fetch them into sub-directory ucd. Tests depending on UCD files
// should skip if UCDReader returns an error.
package testdata

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// UCDReader returns reader for the given ucd file for testing.
func UCDReader(file string) (io.Reader, error) {
	data, err := os.ReadFile(UCDPath(file))
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(data), nil
}

// UCDPath returns path for the given ucd file.
func UCDPath(file string) string {
	_, pkgdir, _, ok := runtime.Caller(0)
	if !ok {
		panic("no debug info")
	}

	return filepath.Join(filepath.Dir(pkgdir), "ucd", file)
}

// Lines iterates over the data lines of a UCD file, skipping empty lines,
// comment lines and section headers (lines starting with '@').
type Lines struct {
	scanner *bufio.Scanner
	fields  []string
	comment string
}

// NewLines creates an iterator over the data lines of r.
func NewLines(r io.Reader) *Lines {
	return &Lines{scanner: bufio.NewScanner(r)}
}

// Scan advances to the next data line.
func (l *Lines) Scan() bool {
	for l.scanner.Scan() {
		text := strings.TrimSpace(l.scanner.Text())
		if text == "" || text[0] == '#' || text[0] == '@' {
			continue
		}
		l.comment = ""
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text, l.comment = text[:i], strings.TrimSpace(text[i+1:])
		}
		l.fields = strings.Split(text, ";")
		for i := range l.fields {
			l.fields[i] = strings.TrimSpace(l.fields[i])
		}
		return true
	}
	return false
}

// Field gets field #i (0…n-1) of the current line.
func (l *Lines) Field(i int) string {
	if i < len(l.fields) {
		return l.fields[i]
	}
	return ""
}

// Comment returns the trailing comment of the current line.
func (l *Lines) Comment() string {
	return l.comment
}

// Err returns the first non-EOF error of the underlying scanner.
func (l *Lines) Err() error {
	return l.scanner.Err()
}

// Runes converts a field of space separated hex code-points into a string.
func Runes(field string) string {
	var b strings.Builder
	for _, hex := range strings.Fields(field) {
		var r rune
		for _, c := range hex {
			r <<= 4
			switch {
			case c >= '0' && c <= '9':
				r |= c - '0'
			case c >= 'A' && c <= 'F':
				r |= c - 'A' + 10
			case c >= 'a' && c <= 'f':
				r |= c - 'a' + 10
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}
