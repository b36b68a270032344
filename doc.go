/*
Package ucd provides programmatic access to the Unicode Character Database.

# Description

From the Unicode Consortium:

The Unicode Character Database (UCD) consists of a number of data files
listing Unicode character properties and related data. It also includes
test data for conformance to several important algorithms.

This package materializes the per-codepoint records of UnicodeData.txt
into an in-memory store with two indices: one by codepoint and one by
character name, the latter keyed by the loose-matching transform of
UAX#44 (rule UAX44-LM2). Codepoints inside the algorithmically named
ranges of the standard (Hangul syllables, CJK/Tangut/Nushu ideographs,
CJK compatibility ideographs) are expanded from their First/Last range
markers, with names synthesized per naming rules NR1 and NR2.

Sub-package casefold implements simple, full and Turkic case folding
over the mapping tables of CaseFolding.txt. Sub-package hangul
implements conjoining-Jamo behavior for Hangul syllables: syllable-type
classification, canonical and full decomposition, composition, and
syllable-name derivation.

All stores are built once from UCD-format input and are immutable
afterwards; concurrent readers need no synchronization once construction
has completed.

# BSD License

# Copyright (c) 2017–21, Norbert Pillmayer

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
package ucd

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// UnicodeVersion identifies the version of the Unicode Character Database
// the built-in tables (derived-name ranges, Hangul data) correspond to.
// Stores built from UCD files of a different version will work, but names
// synthesized for algorithmically named ranges follow these bounds.
const UnicodeVersion = "10.0.0"
