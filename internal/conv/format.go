package conv

import (
	"math/big"

	"github.com/shopspring/decimal"

	"buddha-num-conv/internal/digits"
	"buddha-num-conv/internal/magnitude"
	"buddha-num-conv/internal/token"
)

const chunkDigits = 7

// Slots decomposes m and fills in the digit chunk of every slot.
//
// The first slot takes exponent mod 7 plus one digits of the coefficient,
// every following slot takes seven. Coefficient digits left over after the
// last scale go into a trailing ones slot at position 0. Digits below 10^0
// are truncated, so zero values and negative exponents yield no slots.
func Slots(m *magnitude.Magnitude) ([]Slot, error) {
	if m.IsZero() || m.Exponent.Sign() < 0 {
		return nil, nil
	}

	slots, err := Decompose(m.Exponent, m.ExpLow)
	if err != nil {
		return nil, err
	}

	shift := int32(new(big.Int).Mod(m.Exponent, bigSeven).Int64())
	rest := m.Coefficient

	for i := range slots {
		slots[i].Value, rest = takeChunk(rest, shift)
		shift = chunkDigits
	}

	if !rest.IsZero() {
		value, _ := takeChunk(rest, shift)
		slots = append(slots, Slot{Position: new(big.Int), Value: value})
	}

	return slots, nil
}

// takeChunk moves the decimal point of rest right by shift digits and splits
// off the integer part.
func takeChunk(rest decimal.Decimal, shift int32) (int64, decimal.Decimal) {
	shifted := rest.Shift(shift)
	head := shifted.Truncate(0)
	return head.IntPart(), shifted.Sub(head)
}

// Format renders the slots of m as output tokens.
//
// A slot with a zero value still emits its scale word when it sits below
// the significance floor, where the word multiplies the chunks above it
// (1倶胝阿庾多 = 10^21). At or above the floor the word is dropped.
// When nothing is emitted the result is a single zero token.
func Format(m *magnitude.Magnitude, slots []Slot, opts Options) []token.Token {
	mode := opts.digitMode()

	var out []token.Token
	emit := func(t token.Token) {
		out = append(out, opts.apply(t))
	}

	for _, s := range slots {
		if s.Value != 0 {
			for _, p := range digits.Group(s.Value, mode) {
				for _, t := range p.Tokens() {
					emit(t)
				}
			}
		}

		if s.Scale == nil {
			continue
		}
		if s.Value == 0 && s.Position.Cmp(m.ExpLow) >= 0 {
			continue
		}

		emit(s.Scale.Token())
		if opts.SpacingAfterScale {
			out = append(out, token.Space)
		}
	}

	if len(out) == 0 {
		return []token.Token{opts.zero()}
	}

	if m.Negative {
		out = append([]token.Token{opts.negativeSign()}, out...)
	}
	return out
}
