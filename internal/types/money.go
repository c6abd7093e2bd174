// README: Common money value object used across modules.
package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Fee is an amount of euros held as integer cents. Fee math stays in
// integers so sums never pick up binary floating point drift.
type Fee int64

// Cents builds a Fee from an amount of cents.
func Cents(n int64) Fee {
	return Fee(n)
}

func (f Fee) Add(other Fee) Fee {
	return f + other
}

// String renders the amount with exactly two fractional digits, e.g. "3.50".
func (f Fee) String() string {
	sign := ""
	n := int64(f)
	if n < 0 {
		sign = "-"
		n = -n
	}
	return fmt.Sprintf("%s%d.%02d", sign, n/100, n%100)
}

// MarshalJSON emits the fee as a JSON number with two fractional digits.
func (f Fee) MarshalJSON() ([]byte, error) {
	return []byte(f.String()), nil
}

// ParseFee reads a decimal euro amount with up to two fractional digits.
func ParseFee(s string) (Fee, error) {
	whole, frac, _ := strings.Cut(s, ".")
	neg := strings.HasPrefix(whole, "-")
	whole = strings.TrimPrefix(whole, "-")
	euros, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse fee %q: %w", s, err)
	}
	cents := int64(0)
	if frac != "" {
		if len(frac) > 2 {
			return 0, fmt.Errorf("parse fee %q: more than two fractional digits", s)
		}
		for len(frac) < 2 {
			frac += "0"
		}
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse fee %q: %w", s, err)
		}
	}
	n := euros*100 + cents
	if neg {
		n = -n
	}
	return Fee(n), nil
}
