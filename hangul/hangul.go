package hangul

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
	"strings"
)

// Base offsets and counts for Hangul syllable composition. These are
// mathematical constants from the Unicode Standard, section 3.12, and are
// never recomputed from data.
const (
	SBase  rune = 0xAC00          // start of the Hangul syllable range
	LBase  rune = 0x1100          // start of the leading consonant range (Choseong)
	VBase  rune = 0x1161          // start of the vowel range (Jungseong)
	TBase  rune = 0x11A7          // start of the trailing consonant range (Jongseong), minus one
	LCount      = 19              // count of leading consonants
	VCount      = 21              // count of vowels
	TCount      = 28              // count of trailing consonants, plus one
	NCount      = VCount * TCount // 588
	SCount      = LCount * NCount // 11172
)

// Errors returned by the operations of this package.
var (
	ErrNotASyllable = errors.New("not a Hangul syllable")
	ErrInvalidJamo  = errors.New("invalid Jamo sequence")
)

// SyllableType is the value of the Hangul_Syllable_Type property: a
// conjoining leading consonant, vowel or trailing consonant, or a
// precomposed LV or LVT syllable.
type SyllableType int8

// Values of the Hangul_Syllable_Type property.
const (
	LType SyllableType = iota
	VType
	TType
	LVType
	LVTType
)

func (t SyllableType) String() string {
	switch t {
	case LType:
		return "L"
	case VType:
		return "V"
	case TType:
		return "T"
	case LVType:
		return "LV"
	case LVTType:
		return "LVT"
	}
	return fmt.Sprintf("SyllableType(%d)", int8(t))
}

// IsSyllable reports whether r is within the range of precomposed Hangul
// syllables, as defined in UnicodeData.txt.
func IsSyllable(r rune) bool {
	return r >= SBase && r < SBase+SCount
}

// TypeOf determines the Hangul_Syllable_Type property of a Hangul
// syllable. It returns ErrNotASyllable for codepoints outside the
// syllable range, conjoining Jamo included.
func TypeOf(r rune) (SyllableType, error) {
	if !IsSyllable(r) {
		return 0, fmt.Errorf("%w: %#U", ErrNotASyllable, r)
	}
	if err := setupTables(); err != nil {
		return 0, err
	}
	typ, ok := typeFromTables(r)
	if !ok {
		// Unreachable with a complete property table.
		return 0, fmt.Errorf("%w: %#U has no syllable type", ErrNotASyllable, r)
	}
	return typ, nil
}

// Decompose decomposes a Hangul syllable into its constituent Jamo,
// returning their scalar values in order.
//
// With fully=false the decomposition is the canonical one: an LV syllable
// decomposes into its L and V part, an LVT syllable into the
// corresponding LV syllable and its T part.
//
//	Decompose(0xD4DB, false) = [0xD4CC, 0x11B6]
//
// With fully=true the decomposition is the full canonical one, always
// down to two or three conjoining Jamo; a trailing consonant appears only
// when present.
//
//	Decompose(0xD4DB, true) = [0x1111, 0x1171, 0x11B6]
func Decompose(r rune, fully bool) ([]rune, error) {
	if !IsSyllable(r) {
		return nil, fmt.Errorf("%w: %#U", ErrNotASyllable, r)
	}
	sIndex := r - SBase
	if fully {
		l := LBase + sIndex/NCount
		v := VBase + (sIndex%NCount)/TCount
		tIndex := sIndex % TCount
		if tIndex > 0 {
			return []rune{l, v, TBase + tIndex}, nil
		}
		return []rune{l, v}, nil
	}
	typ, err := TypeOf(r)
	if err != nil {
		return nil, err
	}
	if typ == LVType {
		l := LBase + sIndex/NCount
		v := VBase + (sIndex%NCount)/TCount
		return []rune{l, v}, nil
	}
	lv := SBase + (sIndex/TCount)*TCount
	t := TBase + sIndex%TCount
	return []rune{lv, t}, nil
}

// Compose composes a sequence of two or three Jamo scalar values into a
// precomposed Hangul syllable. A three-element sequence must be a valid
// (L, V, T) triple. A two-element sequence is either (L, V), yielding an
// LV syllable, or (LV syllable, T), yielding the corresponding LVT
// syllable. Everything else is rejected with ErrInvalidJamo.
func Compose(jamo []rune) (rune, error) {
	switch len(jamo) {
	case 2:
		l, v := jamo[0], jamo[1]
		if isL(l) && isV(v) {
			return SBase + (l-LBase)*NCount + (v-VBase)*TCount, nil
		}
		if typ, err := TypeOf(l); err == nil && typ == LVType && isT(v) {
			return l + (v - TBase), nil
		}
		return 0, fmt.Errorf("%w: %#U + %#U", ErrInvalidJamo, l, v)
	case 3:
		l, v, t := jamo[0], jamo[1], jamo[2]
		if !isL(l) || !isV(v) || !isT(t) {
			return 0, fmt.Errorf("%w: %#U + %#U + %#U", ErrInvalidJamo, l, v, t)
		}
		return SBase + (l-LBase)*NCount + (v-VBase)*TCount + (t - TBase), nil
	}
	return 0, fmt.Errorf("%w: need 2 or 3 Jamo, have %d", ErrInvalidJamo, len(jamo))
}

// SyllableName derives the name of a Hangul syllable per naming rule NR1:
// the short names of the Jamo of its full canonical decomposition,
// concatenated in order. The result is the part of the character name
// following the "HANGUL SYLLABLE " prefix, e.g. "PWILH" for U+D4DB.
func SyllableName(r rune) (string, error) {
	jamo, err := Decompose(r, true)
	if err != nil {
		return "", err
	}
	var name strings.Builder
	for _, j := range jamo {
		short, err := ShortName(j)
		if err != nil {
			return "", err
		}
		name.WriteString(short)
	}
	return name.String(), nil
}

// ShortName returns the Jamo_Short_Name property of a conjoining Jamo.
// The short name of U+110B HANGUL CHOSEONG IEUNG is the empty string;
// codepoints without the property are rejected with ErrInvalidJamo.
func ShortName(jamo rune) (string, error) {
	if err := setupTables(); err != nil {
		return "", err
	}
	short, ok := jamoShortNames[jamo]
	if !ok {
		return "", fmt.Errorf("%w: %#U has no Jamo short name", ErrInvalidJamo, jamo)
	}
	return short, nil
}

// The composable Jamo sub-ranges. These are narrower than the L/V/T
// syllable-type ranges: old Hangul Jamo classify as L, V or T but do not
// participate in syllable composition.
func isL(r rune) bool { return r >= LBase && r < LBase+LCount }
func isV(r rune) bool { return r >= VBase && r < VBase+VCount }
func isT(r rune) bool { return r > TBase && r < TBase+TCount }
