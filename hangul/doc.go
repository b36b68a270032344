/*
Package hangul implements conjoining-Jamo behavior for Hangul syllables,
as described in the Unicode Standard, ch. 03, section 3.12: syllable-type
classification, canonical and full canonical decomposition, composition,
and syllable-name derivation per naming rule NR1.

All operations are pure functions over the composition constants of the
standard. The two property tables they consult, Hangul_Syllable_Type and
Jamo_Short_Name, ship with the package as embedded UCD data files and
are parsed once, on first use.

Example: U+D4DB HANGUL SYLLABLE PWILH

	hangul.Decompose(0xD4DB, false)  =  [0xD4CC, 0x11B6]
	hangul.Decompose(0xD4DB, true)   =  [0x1111, 0x1171, 0x11B6]
	hangul.Compose([]rune{0x1111, 0x1171, 0x11B6})  =  0xD4DB
	hangul.SyllableName(0xD4DB)      =  "PWILH"

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–21 Norbert Pillmayer <norbert@pillmayer.com>
*/
package hangul

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// TC traces to the core-tracer.
func TC() tracing.Trace {
	return gtrace.CoreTracer
}
