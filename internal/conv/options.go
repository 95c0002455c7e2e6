package conv

import (
	"buddha-num-conv/internal/digits"
	"buddha-num-conv/internal/token"
)

// Options holds the rendering switches of a conversion. They never change
// the numeric decomposition.
type Options struct {
	IncludeReadings   bool // Attach kana readings to scale and kanji tokens
	AllDigitsNamed    bool // Name every digit in kanji instead of Arabic numerals
	RakushaAsComma    bool // Write "," instead of 洛叉 between digit groups (numeral mode only)
	SpacingAfterScale bool // Emit a space token after each scale word
}

// DefaultOptions returns readings on, numerals, 洛叉 separators and spacing.
func DefaultOptions() Options {
	return Options{
		IncludeReadings:   true,
		AllDigitsNamed:    false,
		RakushaAsComma:    false,
		SpacingAfterScale: true,
	}
}

// digitMode maps the options onto a digit grouping mode.
func (o Options) digitMode() digits.Mode {
	switch {
	case o.AllDigitsNamed:
		return digits.Kanji
	case o.RakushaAsComma:
		return digits.NumeralComma
	default:
		return digits.Numeral
	}
}

// apply returns t as it should be emitted under o.
func (o Options) apply(t token.Token) token.Token {
	if !o.IncludeReadings {
		return t.WithoutReading()
	}
	return t
}

var minus = token.Plain("-")

// negativeSign returns the sign token for the digit mode.
func (o Options) negativeSign() token.Token {
	if o.AllDigitsNamed {
		return o.apply(token.New("負", "ふ"))
	}
	return minus
}

// zero returns the token emitted when the value collapses to nothing.
func (o Options) zero() token.Token {
	if o.AllDigitsNamed {
		return o.apply(digits.Zero)
	}
	return token.Plain("0")
}
