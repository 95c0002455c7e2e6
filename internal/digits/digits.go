// Package digits renders a single digit chunk, an integer below 10^7, the way
// it appears between two scale words.
//
// Three modes are supported:
//
//   - Numeral writes Arabic numerals split at the 洛叉 (10^5) boundary: "23洛叉45678".
//   - NumeralComma writes the same split with a comma and keeps the low
//     five digits zero-padded: "50,00000".
//   - Kanji names every digit and place: "十洛叉五万".
package digits

import (
	"fmt"
	"strconv"
	"strings"

	"buddha-num-conv/internal/token"
)

// Mode selects how a chunk is rendered.
type Mode int

const (
	// Numeral renders Arabic numerals with a 洛叉 separator.
	Numeral Mode = iota

	// NumeralComma renders Arabic numerals with a comma separator.
	NumeralComma

	// Kanji renders every digit with its kanji name and place word.
	Kanji
)

const (
	// ChunkLimit bounds chunk values: a chunk is always below 10^7.
	ChunkLimit = 10_000_000

	// rakushaDigits is the number of low digits below the 洛叉 boundary.
	rakushaDigits = 5
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Numeral:
		return "numeral"
	case NumeralComma:
		return "numeral-comma"
	case Kanji:
		return "kanji"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Part is one digit of a rendered chunk followed by its place word.
// Either token may be empty: a kanji zero digit has no Digit, and the low
// numeral group has no Place.
type Part struct {
	Digit token.Token
	Place token.Token
}

// Tokens returns the non-empty tokens of the part in output order.
func (p Part) Tokens() []token.Token {
	out := make([]token.Token, 0, 2)
	if !p.Digit.IsZero() {
		out = append(out, p.Digit)
	}
	if !p.Place.IsZero() {
		out = append(out, p.Place)
	}
	return out
}

// Group splits chunk into parts, highest place first.
// A zero chunk yields no parts.
// Group panics if chunk is outside [0, ChunkLimit).
func Group(chunk int64, mode Mode) []Part {
	if chunk < 0 || chunk >= ChunkLimit {
		panic(fmt.Sprintf("digits: chunk %d out of range", chunk))
	}
	if chunk == 0 {
		return nil
	}

	text := strconv.FormatInt(chunk, 10)
	if mode == Kanji {
		return groupKanji(text)
	}
	return groupNumeral(text, mode == NumeralComma)
}

// groupNumeral splits text at the 洛叉 boundary.
func groupNumeral(text string, comma bool) []Part {
	if len(text) <= rakushaDigits {
		return []Part{{Digit: token.Plain(text)}}
	}

	split := len(text) - rakushaDigits
	high, low := text[:split], text[split:]

	sep := Rakusha
	if comma {
		sep = Comma
	} else {
		low = strings.TrimLeft(low, "0")
	}

	parts := []Part{{Digit: token.Plain(high), Place: sep}}
	if low != "" {
		parts = append(parts, Part{Digit: token.Plain(low)})
	}
	return parts
}

// groupKanji names each digit of text from the highest place down.
func groupKanji(text string) []Part {
	parts := make([]Part, 0, len(text))

	for i := 0; i < len(text); i++ {
		place := len(text) - 1 - i
		d := text[i] - '0'

		switch {
		case place < len(lowPlaces):
			if d != 0 {
				parts = append(parts, Part{Digit: lowPlaces[place][d]})
			}
		case place == 4:
			if d != 0 {
				parts = append(parts, Part{Digit: ones[d], Place: Man})
			}
		case place == 5:
			// 洛叉 closes the group even when its own digit is zero
			// (十洛叉 = 10^6).
			parts = append(parts, Part{Digit: ones[d], Place: Rakusha})
		case place == 6:
			parts = append(parts, Part{Digit: tens[d]})
		}
	}

	return parts
}
