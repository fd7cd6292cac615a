package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Entry is the user-typed value of a single line item. The text is kept
// verbatim so a field can be blank while it is being edited.
type Entry struct {
	Text string
}

// NewEntry wraps raw input text.
func NewEntry(text string) Entry {
	return Entry{Text: text}
}

// Blank reports whether the entry holds no text at all.
func (e Entry) Blank() bool { return e.Text == "" }

// Amount is the numeric reading of the text. Blank or non-numeric text is zero.
func (e Entry) Amount() decimal.Decimal {
	return ParseAmount(e.Text)
}

// MaxExponent bounds the decimal exponent accepted from text. Larger
// magnitudes would expand to numbers with millions of digits.
const MaxExponent = 100

// ErrOutOfRange is returned for numbers whose exponent exceeds MaxExponent.
var ErrOutOfRange = errors.New("number out of range")

// ParseDecimal reads s as a decimal number, ignoring surrounding whitespace.
func ParseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if exp := d.Exponent(); exp > MaxExponent || exp < -MaxExponent {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrOutOfRange, s)
	}
	return d, nil
}

// ParseAmount reads s like ParseDecimal, except that blank, non-numeric or
// out-of-range text yields zero.
func ParseAmount(s string) decimal.Decimal {
	if strings.TrimSpace(s) == "" {
		return decimal.Zero
	}
	d, err := ParseDecimal(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
