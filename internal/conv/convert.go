// Package conv converts coefficient × 10^exponent into Buddhist large-number
// scale words.
//
// A conversion normalises the input (package magnitude), decomposes the
// exponent into scale slots, fills each slot with a seven digit chunk of the
// coefficient and renders the chunks and scale words as tokens:
//
//	tokens, err := conv.Convert("1.5", "21", conv.DefaultOptions())
//	// 1 倶胝 " " 50 洛叉 阿庾多 " "
//
// Conversions share no mutable state and are safe for concurrent use.
package conv

import (
	"buddha-num-conv/internal/magnitude"
	"buddha-num-conv/internal/token"
)

// Result is a finished conversion together with its intermediate values.
type Result struct {
	Magnitude *magnitude.Magnitude
	Slots     []Slot
	Tokens    []token.Token
}

// Convert renders coefText × 10^expText as tokens.
//
// Errors wrap magnitude.ErrInvalidNumber, magnitude.ErrFractionalExponent
// or ErrMagnitudeTooLarge. No tokens are returned on error.
func Convert(coefText, expText string, opts Options) ([]token.Token, error) {
	res, err := Run(coefText, expText, opts)
	if err != nil {
		return nil, err
	}
	return res.Tokens, nil
}

// Run is Convert but also returns the normalised magnitude and slots.
func Run(coefText, expText string, opts Options) (*Result, error) {
	m, err := magnitude.Normalize(coefText, expText)
	if err != nil {
		return nil, err
	}

	slots, err := Slots(m)
	if err != nil {
		return nil, err
	}

	return &Result{
		Magnitude: m,
		Slots:     slots,
		Tokens:    Format(m, slots, opts),
	}, nil
}
