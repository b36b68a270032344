package hangul

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/npillmayer/ucd/internal/ucdparse"
	"golang.org/x/text/unicode/rangetable"
)

// The property tables this package consults, as published in the UCD.
// HangulSyllableType.txt assigns the Hangul_Syllable_Type property,
// Jamo.txt the Jamo_Short_Name property.

//go:embed HangulSyllableType.txt
var syllableTypeData string

//go:embed Jamo.txt
var jamoData string

var setupOnce sync.Once
var setupError error

// rangeFromSyllableType holds one range table per syllable type,
// indexed by SyllableType.
var rangeFromSyllableType [LVTType + 1]*unicode.RangeTable

// jamoShortNames maps a conjoining Jamo to its Jamo_Short_Name value.
var jamoShortNames map[rune]string

// setupTables parses the embedded property tables. Loading is lazy and
// happens at most once; concurrent first use is safe.
func setupTables() error {
	setupOnce.Do(func() {
		setupError = loadSyllableTypes()
		if setupError == nil {
			setupError = loadJamoShortNames()
		}
	})
	return setupError
}

func loadSyllableTypes() error {
	runes := map[string][]rune{}
	err := ucdparse.Parse(strings.NewReader(syllableTypeData), func(token *ucdparse.Token) error {
		typ := token.Field(1)
		from, to := token.Range()
		for r := from; r <= to; r++ {
			runes[typ] = append(runes[typ], r)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to load Hangul syllable types: %w", err)
	}
	for typ, name := range map[SyllableType]string{
		LType: "L", VType: "V", TType: "T", LVType: "LV", LVTType: "LVT",
	} {
		rangeFromSyllableType[typ] = rangetable.New(runes[name]...)
	}
	TC().Debugf("loaded Hangul syllable types for %d codepoints", len(runes["L"])+
		len(runes["V"])+len(runes["T"])+len(runes["LV"])+len(runes["LVT"]))
	return nil
}

func loadJamoShortNames() error {
	jamoShortNames = make(map[rune]string, 70)
	err := ucdparse.Parse(strings.NewReader(jamoData), func(token *ucdparse.Token) error {
		jamoShortNames[token.From] = token.Field(1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to load Jamo short names: %w", err)
	}
	TC().Debugf("loaded %d Jamo short names", len(jamoShortNames))
	return nil
}

// typeFromTables consults the per-type range tables, callers must have
// run setupTables.
func typeFromTables(r rune) (SyllableType, bool) {
	for typ := LType; typ <= LVTType; typ++ {
		if unicode.Is(rangeFromSyllableType[typ], r) {
			return typ, true
		}
	}
	return 0, false
}
