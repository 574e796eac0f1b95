package uchar

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/uchar/codepoint"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Character represents a single user-perceived character, i.e. a base
// code-point followed by zero or more combining marks.
// Characters are immutable; all comparison forms are computed on
// construction. It is safe to share Characters between goroutines.
type Character struct {
	text       string // source text, as handed to New
	normal     string // NFD of text
	folded     string // normal with non-marks case folded
	base       string // non-marks of normal, case folded
	swapped    string // normal with upper and lower case exchanged
	diacritics string // marks of normal, in canonical order
	isUpper    bool
	isLetter   bool
	isPunct    bool
}

// New creates a Character from a UTF-8 fragment. The fragment is expected
// to hold exactly one user-perceived character; New does not check for
// character boundaries.
//
// If text contains malformed UTF-8, New returns a *codepoint.DecodeError,
// wrapping either codepoint.ErrInvalidLeadingByte or codepoint.ErrInvalidLength.
func New(text string) (*Character, error) {
	return NewFromBytes([]byte(text))
}

// NewFromBytes creates a Character from a UTF-8 fragment given as a byte
// slice. See New.
func NewFromBytes(b []byte) (*Character, error) {
	rs, err := codepoint.Runes(b)
	if err != nil {
		CT().Debugf("cannot create character from %q: %v", b, err)
		return nil, err
	}
	ch := &Character{text: string(b)}
	ch.normal = norm.NFD.String(string(rs))
	ch.diacritics = transformed(runes.Remove(runes.NotIn(unicode.M)), ch.normal)
	bare := transformed(runes.Remove(runes.In(unicode.M)), ch.normal)
	//
	f := borrowFolder()
	defer f.releaseIntoPool()
	var folded, base, swapped strings.Builder
	for _, r := range ch.normal {
		if unicode.Is(unicode.M, r) {
			folded.WriteRune(r)
			swapped.WriteRune(r)
			continue
		}
		fr := f.fold(r)
		folded.WriteRune(fr)
		base.WriteRune(fr)
		swapped.WriteRune(swapCase(r))
	}
	ch.folded, ch.base, ch.swapped = folded.String(), base.String(), swapped.String()
	//
	if bare != "" {
		ch.isUpper = bare == transformed(runes.Map(unicode.ToUpper), bare) &&
			bare != transformed(runes.Map(unicode.ToLower), bare)
	}
	if ch.normal != "" { // classify by the base code-point only
		r, _ := utf8.DecodeRuneInString(ch.normal)
		ch.isLetter = unicode.IsLetter(r)
		ch.isPunct = unicode.IsPunct(r)
	}
	return ch, nil
}

func transformed(t transform.Transformer, s string) string {
	result, _, err := transform.String(t, s)
	if err != nil { // rune-level transformers do not fail on valid input
		CT().Errorf("transformation of %q failed: %v", s, err)
		return s
	}
	return result
}

func swapCase(r rune) rune {
	if unicode.IsUpper(r) {
		return unicode.ToLower(r)
	} else if unicode.IsLower(r) {
		return unicode.ToUpper(r)
	}
	return r
}

// Text returns the source text the character has been created from.
func (ch *Character) Text() string {
	return ch.text
}

// Normal returns the canonical decomposition of the character.
// Two canonically equivalent characters have identical normal forms.
func (ch *Character) Normal() string {
	return ch.normal
}

// FoldedCase returns the normal form with case folded. Combining marks are
// left untouched.
func (ch *Character) FoldedCase() string {
	return ch.folded
}

// Base returns the fundamental letter of the character, i.e. the case folded
// normal form without any combining marks.
func (ch *Character) Base() string {
	return ch.base
}

// SwappedCase returns the normal form with upper and lower case exchanged.
func (ch *Character) SwappedCase() string {
	return ch.swapped
}

// Diacritics returns the combining marks of the character, in canonical order.
func (ch *Character) Diacritics() string {
	return ch.diacritics
}

// IsUpperCase is true if the character is an upper case character.
// Characters without case distinction are neither upper nor lower case.
func (ch *Character) IsUpperCase() bool {
	return ch.isUpper
}

// HasDiacritic is true if the character carries at least one combining mark.
func (ch *Character) HasDiacritic() bool {
	return ch.diacritics != ""
}

// IsBase is true if the character does not carry any combining marks.
func (ch *Character) IsBase() bool {
	return ch.diacritics == ""
}

// IsLetter is true if the base code-point is of general category L.
func (ch *Character) IsLetter() bool {
	return ch.isLetter
}

// IsPunctuation is true if the base code-point is of general category P.
func (ch *Character) IsPunctuation() bool {
	return ch.isPunct
}

func (ch *Character) String() string {
	return fmt.Sprintf("%q(%+q)", ch.text, ch.normal)
}

// --- Equivalence -----------------------------------------------------------

// Equals is true if a and b are canonically equivalent. Case and diacritics
// are significant.
func Equals(a, b *Character) bool {
	return a.normal == b.normal
}

// EqualsIgnoreCase is true if a and b are canonically equivalent when case
// is ignored. Diacritics are significant.
func EqualsIgnoreCase(a, b *Character) bool {
	return a.folded == b.folded
}

// EqualsBase is true if a and b share the same fundamental letter, ignoring
// both case and diacritics.
func EqualsBase(a, b *Character) bool {
	return a.base == b.base
}

// Equals is the method version of Equals(ch, other).
func (ch *Character) Equals(other *Character) bool {
	return Equals(ch, other)
}

// EqualsIgnoreCase is the method version of EqualsIgnoreCase(ch, other).
func (ch *Character) EqualsIgnoreCase(other *Character) bool {
	return EqualsIgnoreCase(ch, other)
}

// EqualsBase is the method version of EqualsBase(ch, other).
func (ch *Character) EqualsBase(other *Character) bool {
	return EqualsBase(ch, other)
}
