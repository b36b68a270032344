package hangul

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/testconfig"
)

func TestSyllableType(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cases := []struct {
		r    rune
		want SyllableType
	}{
		{0xAC00, LVType},  // HANGUL SYLLABLE GA
		{0xD4CC, LVType},  // HANGUL SYLLABLE PWI
		{0xD4DB, LVTType}, // HANGUL SYLLABLE PWILH
		{0xD7A3, LVTType}, // HANGUL SYLLABLE HIH
	}
	for _, c := range cases {
		typ, err := TypeOf(c.r)
		if err != nil {
			t.Fatalf("TypeOf(%#U) failed: %v", c.r, err)
		}
		if typ != c.want {
			t.Errorf("expected type of %#U to be %s, is %s", c.r, c.want, typ)
		}
	}
}

func TestSyllableTypeOfNonSyllable(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for _, r := range []rune{'A', 0x1100, 0xABFF, 0xD7A4} {
		if _, err := TypeOf(r); !errors.Is(err, ErrNotASyllable) {
			t.Errorf("expected TypeOf(%#U) to fail with ErrNotASyllable, got %v", r, err)
		}
	}
}

func TestDecompose(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cases := []struct {
		r     rune
		fully bool
		want  []rune
	}{
		{0xD4DB, false, []rune{0xD4CC, 0x11B6}},
		{0xD4DB, true, []rune{0x1111, 0x1171, 0x11B6}},
		{0xD4CC, false, []rune{0x1111, 0x1171}},
		{0xAC00, true, []rune{0x1100, 0x1161}},
	}
	for _, c := range cases {
		jamo, err := Decompose(c.r, c.fully)
		if err != nil {
			t.Fatalf("Decompose(%#U, %v) failed: %v", c.r, c.fully, err)
		}
		if !equalRunes(jamo, c.want) {
			t.Errorf("Decompose(%#U, %v) = %U, expected %U", c.r, c.fully, jamo, c.want)
		}
	}
	if _, err := Decompose(0x1161, false); !errors.Is(err, ErrNotASyllable) {
		t.Errorf("expected decomposing a lone Jamo to fail with ErrNotASyllable, got %v", err)
	}
}

func TestCompose(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cases := []struct {
		jamo []rune
		want rune
	}{
		{[]rune{0x1111, 0x1171}, 0xD4CC},
		{[]rune{0x1111, 0x1171, 0x11B6}, 0xD4DB},
		{[]rune{0xD4CC, 0x11B6}, 0xD4DB},
		{[]rune{0x1100, 0x1161}, 0xAC00},
	}
	for _, c := range cases {
		s, err := Compose(c.jamo)
		if err != nil {
			t.Fatalf("Compose(%U) failed: %v", c.jamo, err)
		}
		if s != c.want {
			t.Errorf("Compose(%U) = %#U, expected %#U", c.jamo, s, c.want)
		}
	}
}

func TestComposeInvalidSequences(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	invalid := [][]rune{
		{0x1111},                         // wrong arity
		{0x1111, 0x1171, 0xD4CC, 0x11B6}, // wrong arity
		{0x1171, 0x1111},                 // V + L
		{0x1111, 0x11B6},                 // L + T
		{0xD4DB, 0x11B6},                 // LVT syllable + T
		{0x1111, 0x1171, 0x11A7},         // TBase itself is not a trailing consonant
		{'A', 'B'},                       // not Jamo at all
	}
	for _, jamo := range invalid {
		if _, err := Compose(jamo); !errors.Is(err, ErrInvalidJamo) {
			t.Errorf("expected Compose(%U) to fail with ErrInvalidJamo, got %v", jamo, err)
		}
	}
}

func TestComposeDecomposeRoundTrip(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for r := SBase; r < SBase+SCount; r++ {
		for _, fully := range []bool{false, true} {
			jamo, err := Decompose(r, fully)
			if err != nil {
				t.Fatalf("Decompose(%#U, %v) failed: %v", r, fully, err)
			}
			s, err := Compose(jamo)
			if err != nil {
				t.Fatalf("Compose(Decompose(%#U, %v)) failed: %v", r, fully, err)
			}
			if s != r {
				t.Fatalf("round trip of %#U via %U yields %#U", r, jamo, s)
			}
		}
	}
}

func TestSyllableName(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cases := []struct {
		r    rune
		want string
	}{
		{0xAC00, "GA"},
		{0xD4DB, "PWILH"},
		{0xC544, "A"}, // leading IEUNG has an empty short name
	}
	for _, c := range cases {
		name, err := SyllableName(c.r)
		if err != nil {
			t.Fatalf("SyllableName(%#U) failed: %v", c.r, err)
		}
		if name != c.want {
			t.Errorf("SyllableName(%#U) = %q, expected %q", c.r, name, c.want)
		}
	}
	if _, err := SyllableName(0x1100); !errors.Is(err, ErrNotASyllable) {
		t.Errorf("expected SyllableName of a lone Jamo to fail, got %v", err)
	}
}

func TestJamoShortName(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if short, err := ShortName(0x1100); err != nil || short != "G" {
		t.Errorf("expected short name of U+1100 to be \"G\", got %q (%v)", short, err)
	}
	if short, err := ShortName(0x110B); err != nil || short != "" {
		t.Errorf("expected short name of U+110B to be empty, got %q (%v)", short, err)
	}
	if _, err := ShortName('A'); !errors.Is(err, ErrInvalidJamo) {
		t.Errorf("expected ShortName('A') to fail with ErrInvalidJamo, got %v", err)
	}
}

func equalRunes(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
