package ucd

import (
	"fmt"
	"strings"
	"unicode"
)

// NormalizeName transforms a character name according to loose matching
// rule UAX44-LM2 (https://www.unicode.org/reports/tr44/#UAX44-LM2):
//
// "Ignore case, whitespace, underscore ('_'), and all medial hyphens
// except the hyphen in U+1180 HANGUL JUNGSEONG O-E."
//
// A medial hyphen is a hyphen occurring immediately between two word
// characters in the published name. The hyphen pass has to run before
// whitespace and underscores are stripped and the result is lowercased:
// stripping whitespace first could create new letter-hyphen-letter
// triples that the hyphen pass would then wrongly treat as medial
// (e.g. "TIBETAN MARK TSA -PHRU").
//
// The transform is idempotent.
func NormalizeName(name string) string {
	result := name
	// The exemption is safe to hard-code: character names are covered by
	// the Unicode name stability policy and never change.
	if result != "HANGUL JUNGSEONG O-E" {
		result = stripMedialHyphens(result)
	}
	var b strings.Builder
	b.Grow(len(result))
	for _, r := range result {
		if r == '_' || unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

func stripMedialHyphens(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '-' && i > 0 && i < len(s)-1 && isWordByte(s[i-1]) && isWordByte(s[i+1]) {
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// isWordByte reports whether b is a word character in the \w sense.
// Character names are ASCII, so a byte-level test suffices.
func isWordByte(b byte) bool {
	return b == '_' || (b >= '0' && b <= '9') || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// --- Derived names ---------------------------------------------------------

// The name derivation rules NR1 and NR2 assign names to the codepoints of
// the algorithmically named ranges of the standard. See the Unicode
// Standard, section 4.8, table 4-8. Bounds are those of Unicode 10.0.0.
//
// Ranges are pairwise disjoint; derivedRanges is ordered by start
// codepoint so lookups could binary-search, but with 13 entries a linear
// scan is just as good.
type derivedRange struct {
	lo, hi rune
	prefix string
}

var derivedRanges = []derivedRange{
	{0x3400, 0x4DB5, "CJK UNIFIED IDEOGRAPH-"},
	{0x4E00, 0x9FEA, "CJK UNIFIED IDEOGRAPH-"},
	{0xAC00, 0xD7A3, "HANGUL SYLLABLE "},
	{0xF900, 0xFA6D, "CJK COMPATIBILITY IDEOGRAPH-"},
	{0xFA70, 0xFAD9, "CJK COMPATIBILITY IDEOGRAPH-"},
	{0x17000, 0x187EC, "TANGUT IDEOGRAPH-"},
	{0x1B170, 0x1B2FB, "NUSHU CHARACTER-"},
	{0x20000, 0x2A6D6, "CJK UNIFIED IDEOGRAPH-"},
	{0x2A700, 0x2B734, "CJK UNIFIED IDEOGRAPH-"},
	{0x2B740, 0x2B81D, "CJK UNIFIED IDEOGRAPH-"},
	{0x2B820, 0x2CEA1, "CJK UNIFIED IDEOGRAPH-"},
	{0x2CEB0, 0x2EBE0, "CJK UNIFIED IDEOGRAPH-"},
	{0x2F800, 0x2FA1D, "CJK COMPATIBILITY IDEOGRAPH-"},
}

// derivedPrefix returns the name prefix for a codepoint inside an
// algorithmically named range, and whether there is one.
func derivedPrefix(r rune) (string, bool) {
	for _, dr := range derivedRanges {
		if r >= dr.lo && r <= dr.hi {
			return dr.prefix, true
		}
	}
	return "", false
}

// paddedHex formats a codepoint as it appears in derived names and code
// labels: uppercase hex, zero-padded to at least four digits.
func paddedHex(r rune) string {
	return fmt.Sprintf("%04X", r)
}
