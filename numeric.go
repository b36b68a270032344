package ucd

import (
	"fmt"
	"strconv"
	"strings"
)

// NumericForm discriminates the representations of the numeric fields of
// a UCD record. The decimal, digit and numeric fields are independently
// absent, integral, or (for the numeric field only, in practice) an
// exact rational such as 1/4 or -1/2.
type NumericForm int8

// Forms of a Numeric value.
const (
	NoNumeric NumericForm = iota
	IntegerForm
	RationalForm
)

// Numeric is the value of one of the numeric fields of a UCD record.
// The zero value means "absent".
type Numeric struct {
	Form NumericForm
	Num  int64 // integer value, or numerator for RationalForm
	Den  int64 // denominator for RationalForm, 1 otherwise
}

// Int returns the integer value, if the field holds one.
func (n Numeric) Int() (int64, bool) {
	return n.Num, n.Form == IntegerForm
}

// Rat returns numerator and denominator, if the field holds a rational.
func (n Numeric) Rat() (num, den int64, ok bool) {
	return n.Num, n.Den, n.Form == RationalForm
}

// IsAbsent reports whether the field carried no value.
func (n Numeric) IsAbsent() bool {
	return n.Form == NoNumeric
}

func (n Numeric) String() string {
	switch n.Form {
	case IntegerForm:
		return strconv.FormatInt(n.Num, 10)
	case RationalForm:
		return fmt.Sprintf("%d/%d", n.Num, n.Den)
	}
	return ""
}

// parseNumeric parses a decimal/digit/numeric field of UnicodeData.txt.
// The empty field means absent.
func parseNumeric(field string) (Numeric, error) {
	if field == "" {
		return Numeric{}, nil
	}
	if i := strings.IndexByte(field, '/'); i >= 0 {
		num, err := strconv.ParseInt(field[:i], 10, 64)
		if err != nil {
			return Numeric{}, fmt.Errorf("malformed numeric field %q: %w", field, err)
		}
		den, err := strconv.ParseInt(field[i+1:], 10, 64)
		if err != nil {
			return Numeric{}, fmt.Errorf("malformed numeric field %q: %w", field, err)
		}
		return Numeric{Form: RationalForm, Num: num, Den: den}, nil
	}
	i, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		return Numeric{}, fmt.Errorf("malformed numeric field %q: %w", field, err)
	}
	return Numeric{Form: IntegerForm, Num: i, Den: 1}, nil
}
