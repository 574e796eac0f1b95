/*
Package codepoint decodes single Unicode code-points from UTF-8 input.

Decoding is strict about the structure of a UTF-8 sequence: the leading
byte determines the length of the sequence, and exactly that many
continuation bytes have to follow.

	0xxxxxxx                             1 byte
	110xxxxx 10xxxxxx                    2 bytes
	1110xxxx 10xxxxxx 10xxxxxx           3 bytes
	11110xxx 10xxxxxx 10xxxxxx 10xxxxxx  4 bytes

Other than package unicode/utf8, malformed input is never replaced by
U+FFFD. Clients get one of two errors instead, ErrInvalidLeadingByte or
ErrInvalidLength.

All functions of this package are pure and may be called concurrently.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package codepoint

import (
	"errors"
	"fmt"
)

// ErrInvalidLeadingByte is returned if a byte which cannot start a UTF-8
// sequence is found where a new code-point is expected.
// ErrInvalidLength is returned if a sequence is shorter than its leading byte
// declares, or if a continuation byte is malformed.
var (
	ErrInvalidLeadingByte = errors.New("invalid leading byte in code point")
	ErrInvalidLength      = errors.New("invalid code point length")
)

// CodePoint is a decoded Unicode code-point together with the number of
// bytes it occupied in the input.
type CodePoint struct {
	Rune rune // the code-point
	Len  int  // 1…4
}

func (cp CodePoint) String() string {
	return fmt.Sprintf("%#U[%d]", cp.Rune, cp.Len)
}

// DecodeError reports the position of a malformed sequence within a
// fragment. It wraps either ErrInvalidLeadingByte or ErrInvalidLength, thus
// clients should test for the kind of error with errors.Is.
type DecodeError struct {
	Offset int   // byte offset of the malformed sequence
	Lead   byte  // leading byte of the malformed sequence
	Err    error // ErrInvalidLeadingByte or ErrInvalidLength
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s (byte %#02x at offset %d)", e.Err.Error(), e.Lead, e.Offset)
}

// Unwrap returns the underlying error kind.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Length returns the length of a UTF-8 sequence as declared by its leading
// byte b, or 0 if b cannot start a sequence.
func Length(b byte) int {
	switch {
	case b&0x80 == 0x00:
		return 1
	case b&0xe0 == 0xc0:
		return 2
	case b&0xf0 == 0xe0:
		return 3
	case b&0xf8 == 0xf0:
		return 4
	}
	return 0 // 10xxxxxx or 11111xxx
}

// Decode decodes the first code-point of b.
//
// Decode returns ErrInvalidLeadingByte if b is empty or starts with a byte
// of pattern 10xxxxxx or 11111xxx. It returns ErrInvalidLength if b
// holds fewer bytes than declared, or if one of the continuation
// bytes does not match 10xxxxxx.
func Decode(b []byte) (CodePoint, error) {
	if len(b) == 0 {
		return CodePoint{}, ErrInvalidLeadingByte
	}
	n := Length(b[0])
	switch n {
	case 0:
		return CodePoint{}, ErrInvalidLeadingByte
	case 1:
		return CodePoint{Rune: rune(b[0]), Len: 1}, nil
	}
	if len(b) < n {
		return CodePoint{}, ErrInvalidLength
	}
	// payload bits of the leading byte: 5, 4 or 3
	r := rune(b[0] & (0x7f >> n))
	for _, c := range b[1:n] {
		if c&0xc0 != 0x80 {
			return CodePoint{}, ErrInvalidLength
		}
		r = r<<6 | rune(c&0x3f)
	}
	return CodePoint{Rune: r, Len: n}, nil
}

// DecodeAll decodes b into a sequence of code-points until b is exhausted.
// The first malformed sequence aborts decoding; the error returned is of
// type *DecodeError. An empty b results in an empty sequence.
func DecodeAll(b []byte) ([]CodePoint, error) {
	cps := make([]CodePoint, 0, len(b))
	for pos := 0; pos < len(b); {
		cp, err := Decode(b[pos:])
		if err != nil {
			return nil, &DecodeError{Offset: pos, Lead: b[pos], Err: err}
		}
		cps = append(cps, cp)
		pos += cp.Len
	}
	return cps, nil
}

// Runes decodes b and returns the code-points as a slice of runes.
// Errors are the same as for DecodeAll.
func Runes(b []byte) ([]rune, error) {
	cps, err := DecodeAll(b)
	if err != nil {
		return nil, err
	}
	runes := make([]rune, len(cps))
	for i, cp := range cps {
		runes[i] = cp.Rune
	}
	return runes, nil
}
