package num2words

import (
	"fmt"
	"math"
	"strings"

	"github.com/govalues/decimal"
)

// Number is a signed decimal value or an infinity. The zero value is 0.
type Number struct {
	dec decimal.Decimal
	inf int8
}

// FromInt64 returns n as a Number.
func FromInt64(n int64) Number {
	return Number{dec: decimal.MustNew(n, 0)}
}

// FromFloat64 converts f exactly as its shortest decimal representation.
// NaN and finite values beyond the decimal range are rejected.
func FromFloat64(f float64) (Number, error) {
	switch {
	case math.IsInf(f, 1):
		return Inf(1), nil
	case math.IsInf(f, -1):
		return Inf(-1), nil
	case math.IsNaN(f):
		return Number{}, fmt.Errorf("number: NaN has no written form")
	}
	d, err := decimal.NewFromFloat64(f)
	if err != nil {
		return Number{}, fmt.Errorf("number: %w", err)
	}
	return Number{dec: d}, nil
}

// FromDecimal wraps an existing decimal.
func FromDecimal(d decimal.Decimal) Number {
	return Number{dec: d}
}

// Inf returns positive infinity if sign >= 0, negative infinity otherwise.
func Inf(sign int) Number {
	if sign < 0 {
		return Number{inf: -1}
	}
	return Number{inf: 1}
}

// ParseNumber accepts decimal strings such as "-12.05" or "1_000", and
// "inf", "+inf", "-inf", "infinity".
func ParseNumber(s string) (Number, error) {
	trimmed := strings.ToLower(strings.TrimSpace(s))
	switch trimmed {
	case "inf", "+inf", "infinity", "+infinity":
		return Inf(1), nil
	case "-inf", "-infinity":
		return Inf(-1), nil
	}
	trimmed = strings.ReplaceAll(trimmed, "_", "")
	d, err := decimal.Parse(trimmed)
	if err != nil {
		return Number{}, fmt.Errorf("number: parse %q: %w", s, err)
	}
	// Parse rounds digits past the coefficient silently.
	mantissa := trimmed
	if idx := strings.IndexAny(mantissa, "eE"); idx >= 0 {
		mantissa = mantissa[:idx]
	}
	if significantDigits(mantissa) != significantDigits(d.String()) {
		return Number{}, fmt.Errorf("number: parse %q: more than %d significant digits", s, decimal.MaxPrec)
	}
	return Number{dec: d}, nil
}

// significantDigits counts the digits from the first to the last non-zero
// digit of a plain decimal string.
func significantDigits(s string) int {
	first, last, pos := -1, -1, 0
	for _, r := range s {
		if r < '0' || r > '9' {
			continue
		}
		if r != '0' {
			if first < 0 {
				first = pos
			}
			last = pos
		}
		pos++
	}
	if first < 0 {
		return 0
	}
	return last - first + 1
}

// MustParseNumber is like ParseNumber but panics on error.
func MustParseNumber(s string) Number {
	n, err := ParseNumber(s)
	if err != nil {
		panic(err)
	}
	return n
}

func (n Number) IsInf() bool    { return n.inf != 0 }
func (n Number) IsPosInf() bool { return n.inf > 0 }
func (n Number) IsNegInf() bool { return n.inf < 0 }

// IsZero reports whether n is finite and equal to zero.
func (n Number) IsZero() bool {
	return n.inf == 0 && n.dec.IsZero()
}

// IsNeg reports whether n is below zero, including negative infinity.
func (n Number) IsNeg() bool {
	if n.inf != 0 {
		return n.inf < 0
	}
	return n.dec.IsNeg()
}

// IsInt reports whether n is finite with a zero fractional part.
func (n Number) IsInt() bool {
	return n.inf == 0 && n.dec.IsInt()
}

// Abs returns |n|.
func (n Number) Abs() Number {
	if n.inf != 0 {
		return Inf(1)
	}
	return Number{dec: n.dec.Abs()}
}

func (n Number) String() string {
	switch {
	case n.inf > 0:
		return "inf"
	case n.inf < 0:
		return "-inf"
	}
	return n.dec.String()
}

// intPart returns the integer digits of |n|. Callers handle infinity first.
func (n Number) intPart() uint64 {
	return n.dec.Abs().Trunc(0).Coef()
}

// fracDigits returns the significant digits after the decimal point of |n|,
// most significant first; "" for integers.
func (n Number) fracDigits() string {
	s := n.dec.Abs().Trim(0).String()
	idx := strings.IndexByte(s, '.')
	if idx < 0 {
		return ""
	}
	return s[idx+1:]
}

// minorUnits returns floor(|n| * 10^digits) mod 10^digits.
func (n Number) minorUnits(digits int) uint64 {
	if digits <= 0 {
		return 0
	}
	t := n.dec.Abs().Trunc(digits)
	scale := t.Scale()
	if scale == 0 {
		return 0
	}
	minor := t.Coef() % pow10(scale)
	return minor * pow10(digits-scale)
}

func pow10(exp int) uint64 {
	p := uint64(1)
	for i := 0; i < exp; i++ {
		p *= 10
	}
	return p
}
