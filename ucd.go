package ucd

/*
BSD License

Copyright (c) 2017–21, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/ucd/hangul"
	"github.com/npillmayer/ucd/internal/ucdparse"
)

// Errors returned by the lookup operations of this package. All of them
// are deterministic: this is a pure in-memory computation library with no
// transient failure modes.
var (
	// ErrNoRecord flags a codepoint without a UCD record, unassigned
	// codepoints and noncharacters included.
	ErrNoRecord = errors.New("no UCD record for codepoint")
	// ErrUnknownName flags a name lookup without a match.
	ErrUnknownName = errors.New("unknown character name")
	// ErrInvalidSequence flags malformed character input, such as an
	// unpaired surrogate or a multi-character string where a single
	// character is expected.
	ErrInvalidSequence = errors.New("invalid character sequence")
)

// UnicodeCharacter is the record of one codepoint in UnicodeData.txt,
// fields as documented in https://www.unicode.org/reports/tr44/#UnicodeData.txt.
// Records are constructed during the build of a UnicodeData store and are
// immutable afterwards.
type UnicodeCharacter struct {
	Code          string        // canonical "U+XXXX" form of the codepoint
	Name          string        // character name (synthesized for derived ranges)
	Category      string        // general category, e.g. "Lu"
	Combining     int           // canonical combining class
	Bidi          string        // bidirectional category, e.g. "L"
	Decomposition Decomposition // character decomposition mapping
	Decimal       Numeric       // decimal digit value
	Digit         Numeric       // digit value
	Numeric       Numeric       // numeric value, possibly an exact rational
	Mirrored      bool          // mirrored in bidirectional text
	Unicode1Name  string        // Unicode 1.0 name, if significantly different
	ISOComment    string        // ISO 10646 comment field
	Uppercase     rune          // simple uppercase mapping, 0 if none
	Lowercase     rune          // simple lowercase mapping, 0 if none
	Titlecase     rune          // simple titlecase mapping, 0 if none
}

func (uc *UnicodeCharacter) String() string {
	return uc.Code + " " + uc.Name
}

// Decomposition is the ordered character decomposition mapping of a
// record, together with its compatibility formatting tag, if any. The
// zero value means "no decomposition".
type Decomposition struct {
	Tag     string // formatting tag, e.g. "<compat>"; empty for canonical mappings
	Mapping []rune // the decomposed codepoints, in order
}

// IsEmpty reports whether the record carried no decomposition mapping.
func (d Decomposition) IsEmpty() bool {
	return d.Tag == "" && len(d.Mapping) == 0
}

func (d Decomposition) String() string {
	parts := make([]string, 0, len(d.Mapping)+1)
	if d.Tag != "" {
		parts = append(parts, d.Tag)
	}
	for _, r := range d.Mapping {
		parts = append(parts, paddedHex(r))
	}
	return strings.Join(parts, " ")
}

// --- UnicodeData store -----------------------------------------------------

// UnicodeData encapsulates the per-codepoint records of UnicodeData.txt,
// indexed by codepoint and by UAX44-LM2-normalized name. The store is
// built once by New and safe for concurrent readers afterwards.
type UnicodeData struct {
	chars map[rune]*UnicodeCharacter
	names *linkedhashmap.Map // normalized name -> *UnicodeCharacter, in insertion order
}

// New builds a UnicodeData store from UnicodeData.txt-format input.
//
// Records marking the boundary of an algorithmically named range
// ("<…, First>", "<…, Last>") get their proper derived name immediately.
// After all explicit records are read, every known derived range is
// materialized: each of its codepoints receives a clone of the record of
// the range's first codepoint (the exemplar), with only code and name
// replaced. Cloning the exemplar reproduces category, combining class and
// the other fields across the range, which is exactly the compression
// convention UnicodeData.txt uses.
//
// Malformed input aborts the build; a partially consistent store is of
// no use for lookups.
func New(r io.Reader) (*UnicodeData, error) {
	ucd := &UnicodeData{
		chars: make(map[rune]*UnicodeCharacter, 50000),
		names: linkedhashmap.New(),
	}
	err := ucdparse.Parse(r, func(token *ucdparse.Token) error {
		uc, err := characterFromToken(token)
		if err != nil {
			return err
		}
		ucd.insert(token.From, uc)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build Unicode character database: %w", err)
	}
	if err := ucd.expandDerivedRanges(); err != nil {
		return nil, fmt.Errorf("failed to expand derived ranges: %w", err)
	}
	CT().Infof("built Unicode character database with %d records", len(ucd.chars))
	return ucd, nil
}

// insert puts a record into both indices. Name collisions after
// normalization are not expected in published UCD data and are not
// detected: the last write wins.
func (ucd *UnicodeData) insert(r rune, uc *UnicodeCharacter) {
	ucd.chars[r] = uc
	ucd.names.Put(NormalizeName(uc.Name), uc)
}

// characterFromToken parses the fourteen fields following the codepoint
// field of a UnicodeData.txt line.
func characterFromToken(token *ucdparse.Token) (*UnicodeCharacter, error) {
	uc := &UnicodeCharacter{
		Code:         "U+" + token.Hex,
		Name:         token.Field(1),
		Category:     token.Field(2),
		Bidi:         token.Field(4),
		Mirrored:     token.Field(9) == "Y",
		Unicode1Name: token.Field(10),
		ISOComment:   token.Field(11),
	}
	if name, ok, err := derivedNameForMarker(token.From, uc.Name); err != nil {
		return nil, err
	} else if ok {
		uc.Name = name
	}
	var err error
	if cc := token.Field(3); cc != "" {
		if uc.Combining, err = strconv.Atoi(cc); err != nil {
			return nil, fmt.Errorf("malformed combining class for %s: %w", uc.Code, err)
		}
	}
	if uc.Decomposition, err = parseDecomposition(token.Field(5)); err != nil {
		return nil, fmt.Errorf("malformed decomposition for %s: %w", uc.Code, err)
	}
	if uc.Decimal, err = parseNumeric(token.Field(6)); err != nil {
		return nil, fmt.Errorf("record %s: %w", uc.Code, err)
	}
	if uc.Digit, err = parseNumeric(token.Field(7)); err != nil {
		return nil, fmt.Errorf("record %s: %w", uc.Code, err)
	}
	if uc.Numeric, err = parseNumeric(token.Field(8)); err != nil {
		return nil, fmt.Errorf("record %s: %w", uc.Code, err)
	}
	if uc.Uppercase, err = parseCaseMapping(token.Field(12)); err != nil {
		return nil, fmt.Errorf("record %s: %w", uc.Code, err)
	}
	if uc.Lowercase, err = parseCaseMapping(token.Field(13)); err != nil {
		return nil, fmt.Errorf("record %s: %w", uc.Code, err)
	}
	if uc.Titlecase, err = parseCaseMapping(token.Field(14)); err != nil {
		return nil, fmt.Errorf("record %s: %w", uc.Code, err)
	}
	return uc, nil
}

// derivedNameForMarker synthesizes the proper name for a First/Last range
// marker inside a known derived range. Hangul syllables are named per
// rule NR1, all other derived ranges per rule NR2.
func derivedNameForMarker(r rune, name string) (string, bool, error) {
	if !strings.HasSuffix(name, "First>") && !strings.HasSuffix(name, "Last>") {
		return "", false, nil
	}
	prefix, ok := derivedPrefix(r)
	if !ok {
		return "", false, nil
	}
	derived, err := derivedName(r, prefix)
	if err != nil {
		return "", false, err
	}
	return derived, true, nil
}

func derivedName(r rune, prefix string) (string, error) {
	if strings.HasPrefix(prefix, "HANGUL SYLLABLE") {
		part, err := hangul.SyllableName(r)
		if err != nil {
			return "", err
		}
		return prefix + part, nil
	}
	return prefix + paddedHex(r), nil
}

func parseDecomposition(field string) (Decomposition, error) {
	var d Decomposition
	if field == "" {
		return d, nil
	}
	for _, part := range strings.Fields(field) {
		if strings.HasPrefix(part, "<") {
			d.Tag = part
			continue
		}
		n, err := strconv.ParseInt(part, 16, 32)
		if err != nil {
			return d, err
		}
		d.Mapping = append(d.Mapping, rune(n))
	}
	return d, nil
}

func parseCaseMapping(field string) (rune, error) {
	if field == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(field, 16, 32)
	if err != nil {
		return 0, err
	}
	return rune(n), nil
}

// expandDerivedRanges materializes the compressed ranges of
// UnicodeData.txt: one record per codepoint, cloned from the range's
// exemplar with only code and name replaced. Ranges whose exemplar is not
// present in the input (trimmed snapshots) are skipped.
func (ucd *UnicodeData) expandDerivedRanges() error {
	for _, dr := range derivedRanges {
		exemplar, ok := ucd.chars[dr.lo]
		if !ok {
			CT().Debugf("no exemplar for derived range %#U..%#U, skipping", dr.lo, dr.hi)
			continue
		}
		for r := dr.lo; r <= dr.hi; r++ {
			name, err := derivedName(r, dr.prefix)
			if err != nil {
				return err
			}
			clone := *exemplar
			clone.Code = "U+" + paddedHex(r)
			clone.Name = name
			ucd.insert(r, &clone)
		}
	}
	return nil
}

// --- Query surface ---------------------------------------------------------

// Len returns the number of codepoints with a record in the store.
func (ucd *UnicodeData) Len() int {
	return len(ucd.chars)
}

// Get retrieves the record associated with a Unicode scalar value. It
// fails with ErrNoRecord for codepoints without UCD data, unassigned
// codepoints and noncharacters included.
func (ucd *UnicodeData) Get(r rune) (*UnicodeCharacter, error) {
	uc, ok := ucd.chars[r]
	if !ok {
		return nil, fmt.Errorf("%w: %#U", ErrNoRecord, r)
	}
	return uc, nil
}

// LookupChar retrieves the record associated with a single character,
// given as a one-codepoint string.
func (ucd *UnicodeData) LookupChar(c string) (*UnicodeCharacter, error) {
	r, err := charToRune(c)
	if err != nil {
		return nil, err
	}
	return ucd.Get(r)
}

// LookupName retrieves the record associated with a character name. The
// lookup applies loose matching rule UAX44-LM2, so any mix of case,
// spacing, underscores and medial hyphens resolves:
//
//	ucd.LookupName("LATIN SMALL LETTER SHARP S")
//	ucd.LookupName("latin_small_letter_sharp_s")
//
// both yield the record of U+00DF. The failure message echoes the name as
// the caller wrote it, not its normalized form.
func (ucd *UnicodeData) LookupName(name string) (*UnicodeCharacter, error) {
	if v, ok := ucd.names.Get(NormalizeName(name)); ok {
		return v.(*UnicodeCharacter), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownName, name)
}

// LookupPartialName matches even looser than LookupName: it yields the
// record of every character whose normalized name contains the normalized
// partial name as a substring. Iteration order is the insertion order of
// the name index, not sorted:
//
//	matches := ucd.LookupPartialName("SHARP S")
//	for matches.Next() {
//		fmt.Println(matches.Character())
//	}
func (ucd *UnicodeData) LookupPartialName(partial string) *NameMatches {
	return &NameMatches{
		needle: NormalizeName(partial),
		it:     ucd.names.Iterator(),
	}
}

// NameMatches is a lazy iterator over the records matching a partial
// name. A fresh iterator is positioned before the first match.
type NameMatches struct {
	needle string
	it     linkedhashmap.Iterator
	cur    *UnicodeCharacter
}

// Next advances the iterator to the next matching record, returning false
// when no matches remain.
func (nm *NameMatches) Next() bool {
	for nm.it.Next() {
		if strings.Contains(nm.it.Key().(string), nm.needle) {
			nm.cur = nm.it.Value().(*UnicodeCharacter)
			return true
		}
	}
	nm.cur = nil
	return false
}

// Character returns the record the iterator is positioned on, or nil if
// Next has not been called or returned false.
func (nm *NameMatches) Character() *UnicodeCharacter {
	return nm.cur
}

// Restart repositions the iterator before the first match.
func (nm *NameMatches) Restart() {
	nm.it.Begin()
	nm.cur = nil
}
