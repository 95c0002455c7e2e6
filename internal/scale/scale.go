// Package scale holds the fixed catalog of Buddhist large-number scale words.
//
// Each scale word stands for 10^(7·2^ordinal), so the catalog grows as a
// doubling sequence of exponents: 倶胝 (10^7), 阿庾多 (10^14), 那由他 (10^28)
// and so on up to 不可説不可説転 at ordinal 122. The table is built once at
// package initialisation and never modified, so it is safe for concurrent use.
package scale

import (
	"math/big"

	"buddha-num-conv/internal/token"
)

const (
	// Count is the number of named scales.
	Count = 123

	// MaxOrdinal is the ordinal of the largest named scale.
	MaxOrdinal = Count - 1

	// baseZeros is the zero count of ordinal 0.
	baseZeros = 7
)

// Definition describes one named scale.
type Definition struct {
	Ordinal int    // Position in the table, 0..MaxOrdinal
	Name    string // Scale word (e.g., "倶胝")
	Reading string // Kana reading (e.g., "くてい")

	zeros *big.Int
}

// Zeros returns the power of ten the scale stands for, 7·2^Ordinal.
// The result is a fresh value owned by the caller.
func (d Definition) Zeros() *big.Int {
	return new(big.Int).Set(d.zeros)
}

// Token returns the scale word as an output token.
func (d Definition) Token() token.Token {
	return token.New(d.Name, d.Reading)
}

var table [Count]Definition

func init() {
	for i, e := range entries {
		zeros := big.NewInt(baseZeros)
		zeros.Lsh(zeros, uint(i))
		table[i] = Definition{
			Ordinal: i,
			Name:    e.name,
			Reading: e.reading,
			zeros:   zeros,
		}
	}
}

// Lookup returns the scale with the given ordinal.
// Returns false when the ordinal is outside the table.
func Lookup(ordinal int) (Definition, bool) {
	if ordinal < 0 || ordinal > MaxOrdinal {
		return Definition{}, false
	}
	return table[ordinal], true
}

// All returns every scale in ascending ordinal order.
func All() []Definition {
	out := make([]Definition, Count)
	copy(out, table[:])
	return out
}

// ByName returns the scale whose word is name.
func ByName(name string) (Definition, bool) {
	for _, d := range table {
		if d.Name == name {
			return d, true
		}
	}
	return Definition{}, false
}
