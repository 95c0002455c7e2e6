package conv

import (
	"math/big"

	"buddha-num-conv/internal/scale"
)

var (
	bigOne   = big.NewInt(1)
	bigSeven = big.NewInt(7)
)

// Slot is one digit chunk of the decomposition and the scale word after it.
type Slot struct {
	Scale    *scale.Definition // nil for the trailing ones chunk
	Position *big.Int          // Power of ten at which the chunk sits
	Value    int64             // Chunk value in [0, 10^7)
}

// decomposer selects scale slots above a significance floor.
type decomposer struct {
	expLow *big.Int
}

// Decompose returns the scale slots for a number with the given normalised
// exponent, highest position first. Slot values are left at zero.
//
// The largest scale whose zero count fits the exponent is taken first and
// stacked above the previous ones. The span under each chosen scale is filled
// recursively with smaller scales, so every 7-digit group gets its own slot,
// unless the whole span lies below expLow.
//
// Returns an *OverflowError when a scale beyond scale.MaxOrdinal is needed.
func Decompose(exponent, expLow *big.Int) ([]Slot, error) {
	d := decomposer{expLow: expLow}

	slots, err := d.collect(exponent, new(big.Int))
	if err != nil {
		return nil, err
	}

	for i, j := 0, len(slots)-1; i < j; i, j = i+1, j-1 {
		slots[i], slots[j] = slots[j], slots[i]
	}
	return slots, nil
}

// collect returns the slots for exp starting at offset in ascending position.
func (d *decomposer) collect(exp, offset *big.Int) ([]Slot, error) {
	rest := new(big.Int).Set(exp)
	pos := new(big.Int).Set(offset)

	var slots []Slot
	for rest.Cmp(bigSeven) >= 0 {
		// floor(log2(floor(rest / 7)))
		ord := new(big.Int).Quo(rest, bigSeven).BitLen() - 1

		def, ok := scale.Lookup(ord)
		if !ok {
			return nil, &OverflowError{Ordinal: ord}
		}
		zeros := def.Zeros()

		if ord > 0 {
			next := new(big.Int).Sub(zeros, bigOne)
			if new(big.Int).Add(next, pos).Cmp(d.expLow) >= 0 {
				inner, err := d.collect(next, pos)
				if err != nil {
					return nil, err
				}
				slots = append(slots, inner...)
			}
		}

		rest.Sub(rest, zeros)
		pos.Add(pos, zeros)
		slots = append(slots, Slot{Scale: &def, Position: new(big.Int).Set(pos)})
	}

	return slots, nil
}
