/*
Package ucdparse provides a parser for Unicode Character Database files, the
format of which is defined in http://www.unicode.org/reports/tr44/. See
http://www.unicode.org/Public/UCD/latest/ucd/ for example files.

All UCD data files share one line-level shape: blank lines and lines
starting with '#' carry no data; data lines start with a hexadecimal
codepoint or codepoint range ("AC00" or "AC01..AC1B"), followed by
semicolon-separated fields, optionally followed by a '#' rest-of-line
comment. The parser tokenizes that shape and leaves field semantics to
the caller.
*/
package ucdparse

import (
	"fmt"
	"strings"
)

// Token subsumes the properties of one data line of UCD input.
type Token struct {
	LineNo    int      // 1-based line number within the input source
	Hex       string   // the codepoint field exactly as it appeared
	From, To  rune     // codepoint, or codepoint range (To == From for single codes)
	IsRange   bool     // whether the line carried a "From..To" range
	Fields    []string // semicolon-separated fields following the codepoint field
	Comment   string   // rest-of-line comment, if any
	TokenType TokenType
}

//go:generate stringer -type=TokenType
type TokenType int8

// Token types produced by the scanner.
const (
	Undefined TokenType = iota
	SingleDataItem
	RangeDataItem
)

// Field gets field #i (1…n) from the data item, trimmed of surrounding
// space. Out-of-range indices yield the empty string, which callers may
// treat like an empty (absent) field.
func (token *Token) Field(i int) string {
	if i >= 1 && i <= len(token.Fields) {
		return strings.TrimSpace(token.Fields[i-1])
	}
	return ""
}

// RawField gets field #i (1…n) untrimmed. UnicodeData.txt fields carry no
// padding, but names may legitimately contain interior spaces.
func (token *Token) RawField(i int) string {
	if i >= 1 && i <= len(token.Fields) {
		return token.Fields[i-1]
	}
	return ""
}

// Range gets the character range from the data item.
func (token *Token) Range() (from, to rune) {
	return token.From, token.To
}

func (token *Token) String() string {
	return fmt.Sprintf("token[at %d %#U..%#U %#v]", token.LineNo, token.From, token.To, token.Fields)
}
