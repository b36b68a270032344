package casefold

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/ucd"
	"github.com/npillmayer/ucd/internal/ucdparse"
)

// CaseFoldMap holds the case folding tables of CaseFolding.txt. The set
// of sub-tables is closed: one per folding status defined by the UCD.
// A map is built once by New and immutable afterwards; concurrent
// readers need no synchronization.
type CaseFoldMap struct {
	common map[rune]string // status C, common case folding
	full   map[rune]string // status F, full case folding (may grow the string)
	simple map[rune]string // status S, simple case folding
	turkic map[rune]string // status T, special case for Turkic languages
}

// New builds a CaseFoldMap from CaseFolding.txt-format input: lines of
// `<code>; <status>; <mapping>; # <name>` with status one of C, F, S, T.
// Lines with an unknown status are rejected.
func New(r io.Reader) (*CaseFoldMap, error) {
	m := &CaseFoldMap{
		common: map[rune]string{},
		full:   map[rune]string{},
		simple: map[rune]string{},
		turkic: map[rune]string{},
	}
	err := ucdparse.Parse(r, func(token *ucdparse.Token) error {
		status := token.Field(1)
		table := m.table(status)
		if table == nil {
			return fmt.Errorf("unknown case folding status %q", status)
		}
		target, err := parseMapping(token.Field(2))
		if err != nil {
			return fmt.Errorf("malformed case folding mapping for %#U: %w", token.From, err)
		}
		table[token.From] = target
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build casefold map: %w", err)
	}
	TC().Debugf("built casefold map with %d/%d/%d/%d mappings (C/F/S/T)",
		len(m.common), len(m.full), len(m.simple), len(m.turkic))
	return m, nil
}

func (m *CaseFoldMap) table(status string) map[rune]string {
	switch status {
	case "C":
		return m.common
	case "F":
		return m.full
	case "S":
		return m.simple
	case "T":
		return m.turkic
	}
	return nil
}

func parseMapping(field string) (string, error) {
	var b strings.Builder
	for _, hex := range strings.Fields(field) {
		n, err := strconv.ParseInt(hex, 16, 32)
		if err != nil {
			return "", err
		}
		b.WriteRune(rune(n))
	}
	return b.String(), nil
}

// Lookup folds a single character, probing the sub-tables in the order
// given by the status letters of order, left to right: order "TCF" probes
// the Turkic table first, then common, then full. The first table with a
// mapping for c wins. Characters mapped by no probed table fold to
// themselves; folding is a no-op for unmapped characters, not an error.
//
// Per the usage notes in CaseFolding.txt, order "CS" performs a simple
// case fold and "CF" a full case fold. The default used by Fold is "CF".
//
// Status letters without a sub-table are skipped silently.
func (m *CaseFoldMap) Lookup(c rune, order string) string {
	for i := 0; i < len(order); i++ {
		table := m.table(order[i : i+1])
		if table == nil {
			continue
		}
		if target, ok := table[c]; ok {
			return target
		}
	}
	return string(c)
}

// Fold returns a copy of s transformed for caseless comparison.
//
// With full=true the full case folding is used, and the result may be
// longer than the input ("ß" folds to "ss"); with full=false only simple,
// single-character mappings apply. With turkic=true the special mappings
// for the Turkic dotted/dotless 'i' take precedence.
func (m *CaseFoldMap) Fold(s string, full, turkic bool) string {
	order := "CF"
	if !full {
		order = "CS"
	}
	if turkic {
		order = "T" + order
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, c := range ucd.Chars(s) {
		r, _ := utf8.DecodeRuneInString(c)
		b.WriteString(m.Lookup(r, order))
	}
	return b.String()
}

// Casefold performs the default full case fold, order "CF".
func (m *CaseFoldMap) Casefold(s string) string {
	return m.Fold(s, true, false)
}

// FoldForLocale performs a full case fold, selecting the Turkic mappings
// when the given IETF locale identifies a Turkic language.
func (m *CaseFoldMap) FoldForLocale(s, locale string) string {
	return m.Fold(s, true, TurkicLocale(locale))
}
