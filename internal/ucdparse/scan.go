package ucdparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// --- Line level scanner ----------------------------------------------------

// scanner is a line-level scanner over a UCD data file. Comment-only and
// blank lines are consumed silently; every call to Next that returns true
// leaves a data token in Token.
type scanner struct {
	buf       *bufio.Scanner
	lineNo    int
	Token     *Token // last token produced by the scanner
	LastError error  // last error, if any
}

// New creates a scanner for an input reader.
func New(inputReader io.Reader) (*scanner, error) {
	if inputReader == nil {
		return nil, errors.New("no input present")
	}
	sc := &scanner{buf: bufio.NewScanner(inputReader)}
	return sc, nil
}

// Parse iterates over each data line of a UCD file and calls callback f on
// it. A non-nil error return from f aborts the iteration. Parsing stops at
// the first malformed line; UCD consumers depend on a fully consistent
// table, so there is no partial recovery.
func Parse(r io.Reader, f func(token *Token) error) error {
	sc, err := New(r)
	if err != nil {
		return err
	}
	for sc.Next() {
		if err := f(sc.Token); err != nil {
			return err
		}
	}
	return sc.LastError
}

// Next advances the scanner to the next data line. It returns false when
// the input is exhausted or a scan error occurred; the error, if any, is
// left in LastError.
func (sc *scanner) Next() bool {
	for sc.buf.Scan() {
		sc.lineNo++
		line := strings.TrimSpace(sc.buf.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		token, err := sc.scanLine(line)
		if err != nil {
			sc.LastError = err
			return false
		}
		sc.Token = token
		return true
	}
	sc.LastError = sc.buf.Err()
	return false
}

// scanLine tokenizes one data line: split off the '#' comment, split the
// rest on ';', and decode the leading codepoint or codepoint range.
func (sc *scanner) scanLine(line string) (*Token, error) {
	token := &Token{LineNo: sc.lineNo, TokenType: SingleDataItem}
	if i := strings.IndexByte(line, '#'); i >= 0 {
		token.Comment = strings.TrimSpace(line[i+1:])
		line = line[:i]
	}
	fields := strings.Split(line, ";")
	code := strings.TrimSpace(fields[0])
	token.Fields = fields[1:]
	token.Hex = code
	if from, to, isRange, err := scanRuneRange(code); err != nil {
		return nil, fmt.Errorf("line %d: %w", sc.lineNo, err)
	} else {
		token.From, token.To = from, to
		if isRange {
			token.IsRange = true
			token.TokenType = RangeDataItem
			token.Hex = code[:strings.Index(code, "..")]
		}
	}
	return token, nil
}

func scanRuneRange(code string) (from, to rune, isRange bool, err error) {
	lo, hi := code, code
	if i := strings.Index(code, ".."); i >= 0 {
		lo, hi = code[:i], code[i+2:]
		isRange = true
	}
	if from, err = scanHex(lo); err != nil {
		return
	}
	if to, err = scanHex(hi); err != nil {
		return
	}
	if to < from {
		err = fmt.Errorf("invalid codepoint range %q", code)
	}
	return
}

func scanHex(hex string) (rune, error) {
	n, err := strconv.ParseInt(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("hex decoding error: %w", err)
	}
	return rune(n), nil
}
