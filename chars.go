package ucd

import (
	"fmt"
	"unicode/utf8"
)

// Surrogate code unit ranges, as defined in the Unicode Standard,
// section 3.8.
const (
	highSurrogateStart = 0xD800
	highSurrogateEnd   = 0xDBFF
	lowSurrogateStart  = 0xDC00
	lowSurrogateEnd    = 0xDFFF
)

// Chars splits a string into a slice of per-codepoint substrings.
//
// Variable-width text representations (UTF-16) store characters above
// 0xFFFF as surrogate pairs, and a splitter for such representations has
// to merge a high/low surrogate pair into a single element. Go strings
// are sequences of Unicode scalar values, so the merge step degrades to
// an identity pass here; Chars nevertheless keeps the codepoint-splitting
// contract explicit: the element count of the result is the number of
// user-perceived characters, not the number of UTF-16 code units, and
// concatenating the elements reproduces the input.
func Chars(s string) []string {
	chars := make([]string, 0, len(s))
	for i := 0; i < len(s); {
		_, w := utf8.DecodeRuneInString(s[i:])
		chars = append(chars, s[i:i+w])
		i += w
	}
	return chars
}

// ScalarValue converts a sequence of one or two UTF-16 code units into a
// Unicode scalar value, per definition D28 of the Unicode Standard,
// version 3.0, section 3.7:
//
// If S is a single, non-surrogate value U: N = U.
// If S is a surrogate pair H, L: N = (H − 0xD800) × 0x400 + (L − 0xDC00) + 0x10000.
//
// Any other sequence is rejected.
func ScalarValue(units []uint16) (rune, error) {
	switch len(units) {
	case 1:
		u := rune(units[0])
		if u >= highSurrogateStart && u <= lowSurrogateEnd {
			return 0, fmt.Errorf("%w: unpaired surrogate %#04x", ErrInvalidSequence, units[0])
		}
		return u, nil
	case 2:
		h, l := rune(units[0]), rune(units[1])
		if h < highSurrogateStart || h > highSurrogateEnd || l < lowSurrogateStart || l > lowSurrogateEnd {
			return 0, fmt.Errorf("%w: not a surrogate pair %#04x %#04x", ErrInvalidSequence, units[0], units[1])
		}
		return (h-highSurrogateStart)*0x400 + (l - lowSurrogateStart) + 0x10000, nil
	}
	return 0, fmt.Errorf("%w: need 1 or 2 code units, have %d", ErrInvalidSequence, len(units))
}

// charToRune converts a single-character string (one codepoint) to its
// scalar value. Operations keyed by character rather than by codepoint
// funnel through here.
func charToRune(c string) (rune, error) {
	r, w := utf8.DecodeRuneInString(c)
	if w == 0 || w < len(c) {
		return 0, fmt.Errorf("%w: expected a single character, have %q", ErrInvalidSequence, c)
	}
	return r, nil
}
