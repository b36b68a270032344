package casefold

import (
	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
)

// Whether to use the Turkic case folding tables is a property of the
// language the text is written in, not of the text itself. The helpers
// below derive that decision from an IETF locale string or from the
// user's environment.

var turkicMatch = language.NewMatcher([]language.Tag{
	language.Turkish, // The first language is used as fallback.
	language.Azerbaijani,
})

// TurkicLocale reports whether the given IETF locale string ("tr",
// "az-AZ", …) identifies a language that needs the Turkic dotted/dotless
// 'i' mappings. Unparsable locales are not Turkic.
func TurkicLocale(locale string) bool {
	tag, err := language.Parse(locale)
	if err != nil {
		TC().Debugf("cannot parse locale '%s': %v", locale, err)
		return false
	}
	_, _, confidence := turkicMatch.Match(tag)
	return confidence != language.No
}

// TurkicFromEnvironment reports whether the user's environment locale
// calls for the Turkic case folding tables.
func TurkicFromEnvironment() bool {
	locale, err := jj.DetectIETF()
	if err != nil {
		TC().Infof("cannot detect locale from environment: %v", err)
		return false
	}
	return TurkicLocale(locale)
}
