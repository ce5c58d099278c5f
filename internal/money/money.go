// Package money provides a fixed-point monetary value with exactly two
// fractional digits, backed by an integer count of cents.
//
// All arithmetic (Add, Sub, Neg) is exact integer arithmetic. Rounding
// happens in exactly two places: DivShare and MulPercent, both of which
// round half up to the nearest cent. Callers that need a set of values to
// sum to an exact total assign the residual to one deterministically chosen
// entry rather than relying on rounding behavior.
package money

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Money is an amount of currency in minor units (cents).
// The zero value is zero money and ready to use.
type Money struct {
	cents int64
}

// Zero is the zero amount.
var Zero = Money{}

// FromCents returns the Money representing the given number of cents.
func FromCents(cents int64) Money {
	return Money{cents: cents}
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Parse parses a decimal string like "12.34", "-0.05", or "100" into Money.
// At most two fractional digits are accepted; "12.345" is an error, because
// silently rounding user input hides mistakes.
func Parse(s string) (Money, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Zero, fmt.Errorf("empty amount")
	}

	neg := false
	switch raw[0] {
	case '-':
		neg = true
		raw = raw[1:]
	case '+':
		raw = raw[1:]
	}

	whole, frac, hasFrac := strings.Cut(raw, ".")
	if whole == "" && frac == "" {
		return Zero, fmt.Errorf("invalid amount %q", s)
	}
	if whole == "" {
		whole = "0"
	}

	// ParseInt tolerates an interior sign, so both parts must be digits
	// only; the sign was consumed above.
	if !isDigits(whole) {
		return Zero, fmt.Errorf("invalid amount %q", s)
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return Zero, fmt.Errorf("invalid amount %q", s)
	}
	if units > (math.MaxInt64-99)/100 {
		return Zero, fmt.Errorf("invalid amount %q: out of range", s)
	}

	var cents int64
	if hasFrac {
		if len(frac) == 0 || len(frac) > 2 {
			return Zero, fmt.Errorf("invalid amount %q: expected at most 2 decimal places", s)
		}
		if !isDigits(frac) {
			return Zero, fmt.Errorf("invalid amount %q", s)
		}
		if len(frac) == 1 {
			frac += "0"
		}
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return Zero, fmt.Errorf("invalid amount %q", s)
		}
	}

	total := units*100 + cents
	if neg {
		total = -total
	}
	return Money{cents: total}, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// MustParse is Parse for trusted literal inputs; it panics on error.
// Intended for tests and constants.
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Add returns m + o.
func (m Money) Add(o Money) Money {
	return Money{cents: m.cents + o.cents}
}

// Sub returns m - o.
func (m Money) Sub(o Money) Money {
	return Money{cents: m.cents - o.cents}
}

// Neg returns -m.
func (m Money) Neg() Money {
	return Money{cents: -m.cents}
}

// Cmp compares m and o, returning -1, 0, or +1.
func (m Money) Cmp(o Money) int {
	switch {
	case m.cents < o.cents:
		return -1
	case m.cents > o.cents:
		return 1
	default:
		return 0
	}
}

// Min returns the smaller of m and o.
func (m Money) Min(o Money) Money {
	if o.cents < m.cents {
		return o
	}
	return m
}

// IsZero reports whether m is exactly zero.
func (m Money) IsZero() bool { return m.cents == 0 }

// IsPositive reports whether m is greater than zero.
func (m Money) IsPositive() bool { return m.cents > 0 }

// IsNegative reports whether m is less than zero.
func (m Money) IsNegative() bool { return m.cents < 0 }

// DivShare divides m into n equal shares, rounding the share half up to the
// nearest cent. n shares may undershoot m by up to n-1 cents; the caller
// assigns that residual explicitly.
func (m Money) DivShare(n int64) Money {
	if n <= 0 {
		panic("money: DivShare requires a positive divisor")
	}
	return Money{cents: roundHalfUp(m.cents, n)}
}

// MulPercent returns m * pct / 100, where pct is a percentage expressed as
// Money (e.g. MustParse("33.33") for 33.33%), rounded half up to the cent.
func (m Money) MulPercent(pct Money) Money {
	// m.cents * pct.cents is in units of cents * hundredths-of-percent,
	// so the true cent amount is the product divided by 100 * 100.
	return Money{cents: roundHalfUp(m.cents*pct.cents, 10_000)}
}

// roundHalfUp divides num by den (den > 0), rounding half up. Negative
// numerators round symmetrically (half away from zero), matching decimal
// HALF_UP semantics.
func roundHalfUp(num, den int64) int64 {
	if num >= 0 {
		return (2*num + den) / (2 * den)
	}
	return -((2*-num + den) / (2 * den))
}

// String formats the amount as a plain decimal with two fractional digits,
// e.g. "12.34" or "-0.05".
func (m Money) String() string {
	cents := m.cents
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// MarshalJSON encodes the amount as a decimal string, e.g. "12.34".
// Strings avoid the precision pitfalls of JSON numbers in clients.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(m.String())), nil
}

// UnmarshalJSON decodes a decimal string produced by MarshalJSON.
func (m *Money) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("money: expected a quoted decimal string, got %s", data)
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
