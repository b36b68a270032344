/*
Package casefold implements Unicode case folding, a normalization of text
for caseless comparison. Case folding is related to case mapping, but not
identical to it: folded text is not meant to be displayed, only compared.
See section 3.13 of the Unicode Standard and the case mapping FAQ,
https://unicode.org/faq/casemap_charprop.htm.

A CaseFoldMap is built once from CaseFolding.txt-format data and carries
the four mapping tables of that file: common (C), full (F), simple (S)
and Turkic (T). Folding probes the tables in a configurable order, which
is how the simple/full and Turkic variants come about:

	m.Fold(s, true, false)   // full case fold, order "CF"
	m.Fold(s, false, false)  // simple case fold, order "CS"
	m.Fold(s, true, true)    // Turkic full case fold, order "TCF"

The Turkic tables resolve the dotted vs. dotless 'i' of Turkic languages:
folding "DİYARBAKIR" and "Diyarbakır" with the Turkic mappings yields
equal strings, folding them with the default mappings does not. For
callers that want to pick the mapping from the user's locale, see
TurkicLocale and TurkicFromEnvironment.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–21 Norbert Pillmayer <norbert@pillmayer.com>
*/
package casefold

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// TC traces to the core-tracer.
func TC() tracing.Trace {
	return gtrace.CoreTracer
}
