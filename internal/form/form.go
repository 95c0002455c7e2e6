package form

import (
	"strings"

	"golang.org/x/text/width"
)

// Input is the coefficient/exponent pair handed to the converter.
type Input struct {
	Coefficient string
	Exponent    string
}

// Expression reads the two-field "coefficient × 10^exponent" form.
func Expression(coef, exp string) Input {
	return Input{
		Coefficient: clean(coef),
		Exponent:    clean(exp),
	}
}

// PlainNumber reads a single number field. Digit group separators are
// removed and the exponent is fixed at 0.
func PlainNumber(number string) Input {
	return Input{
		Coefficient: strings.ReplaceAll(clean(number), ",", ""),
		Exponent:    "0",
	}
}

// clean trims surrounding whitespace and folds full-width characters
// (１２３，４５６．７) to their ASCII forms.
func clean(s string) string {
	return strings.TrimSpace(width.Narrow.String(s))
}
