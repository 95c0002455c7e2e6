// Package magnitude parses and normalises the raw coefficient and exponent
// texts of a number written as coefficient × 10^exponent.
//
// After normalisation a non-zero coefficient lies in [1, 10): digits are
// shifted out of the coefficient and into the exponent. The exponent is an
// arbitrary-precision integer because scale words reach 10^(7·2^122).
package magnitude

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Magnitude is a normalised sign × coefficient × 10^exponent.
type Magnitude struct {
	Negative    bool            // Sign of the input; false for zero
	Coefficient decimal.Decimal // Absolute coefficient, in [1, 10) unless zero
	Exponent    *big.Int        // Power of ten after normalisation
	CoefLen     int             // Significant digits after the leading one
	ExpLow      *big.Int        // Significance floor: max(0, Exponent - CoefLen)
}

// Normalize validates coefText and expText and returns the normalised magnitude.
//
// Both texts must be plain signed decimal numerals ("12", "-1.5", ".5", "3.");
// the exponent must additionally be an integer. Errors wrap ErrInvalidNumber
// or ErrFractionalExponent in a *ValidationError.
func Normalize(coefText, expText string) (*Magnitude, error) {
	if !isNumeral(coefText) {
		return nil, &ValidationError{Field: FieldCoefficient, Value: coefText, Err: ErrInvalidNumber}
	}
	if !isNumeral(expText) {
		return nil, &ValidationError{Field: FieldExponent, Value: expText, Err: ErrInvalidNumber}
	}
	if strings.Contains(expText, ".") {
		return nil, &ValidationError{Field: FieldExponent, Value: expText, Err: ErrFractionalExponent}
	}

	coef, err := parseCoefficient(coefText)
	if err != nil {
		return nil, &ValidationError{Field: FieldCoefficient, Value: coefText, Err: fmt.Errorf("%w: %v", ErrInvalidNumber, err)}
	}

	exp, ok := new(big.Int).SetString(expText, 10)
	if !ok {
		return nil, &ValidationError{Field: FieldExponent, Value: expText, Err: ErrInvalidNumber}
	}

	m := &Magnitude{Exponent: exp}

	if coef.Sign() < 0 {
		m.Negative = true
		coef = coef.Abs()
	}

	if !coef.IsZero() {
		// floor(log10(coef)) from the unscaled digit count
		shift := int64(len(coef.Coefficient().String())) + int64(coef.Exponent()) - 1
		if shift != 0 {
			coef = coef.Shift(int32(-shift))
			exp.Add(exp, big.NewInt(shift))
		}
	}

	m.Coefficient = coef
	m.CoefLen = fractionDigits(coef)

	m.ExpLow = new(big.Int).Sub(exp, big.NewInt(int64(m.CoefLen)))
	if m.ExpLow.Sign() < 0 {
		m.ExpLow.SetInt64(0)
	}

	return m, nil
}

// IsZero reports whether the magnitude is exactly zero.
func (m *Magnitude) IsZero() bool {
	return m.Coefficient.IsZero()
}

// String formats the magnitude as "-1.5e21".
func (m *Magnitude) String() string {
	sign := ""
	if m.Negative {
		sign = "-"
	}
	return sign + m.Coefficient.String() + "e" + m.Exponent.String()
}

// parseCoefficient parses a validated numeral, filling in the digit that may
// be omitted on either side of the decimal point.
func parseCoefficient(s string) (decimal.Decimal, error) {
	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	s = strings.TrimSuffix(s, ".")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if neg {
		d = d.Neg()
	}
	return d, nil
}

// fractionDigits counts the digits after the decimal point, ignoring
// trailing zeros.
func fractionDigits(d decimal.Decimal) int {
	s := d.String()
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return 0
	}
	return len(s) - i - 1
}

// isNumeral reports whether s is an optionally signed decimal numeral with
// digits on at least one side of an optional decimal point.
func isNumeral(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	if !allDigits(intPart) || !allDigits(fracPart) {
		return false
	}
	return intPart != "" || fracPart != ""
}

// allDigits reports whether s consists only of ASCII digits. An empty string
// returns true.
func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
