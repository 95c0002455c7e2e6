package token

// Token is one unit of converter output: a piece of text with an optional
// phonetic reading.
type Token struct {
	Text    string // Displayed text (e.g., "倶胝", "5000", "-")
	Reading string // Kana reading, empty when the token has none
}

// Space separates a scale word from whatever follows it.
var Space = Token{Text: " "}

// New creates a token with a reading.
func New(text, reading string) Token {
	return Token{Text: text, Reading: reading}
}

// Plain creates a token without a reading.
func Plain(text string) Token {
	return Token{Text: text}
}

// HasReading reports whether the token carries a phonetic reading.
func (t Token) HasReading() bool {
	return t.Reading != ""
}

// IsZero reports whether the token is empty and should not be emitted.
func (t Token) IsZero() bool {
	return t.Text == ""
}

// WithoutReading returns a copy of t with the reading dropped.
func (t Token) WithoutReading() Token {
	return Token{Text: t.Text}
}

// Join concatenates the text of all tokens, ignoring readings.
func Join(tokens []Token) string {
	n := 0
	for _, t := range tokens {
		n += len(t.Text)
	}
	b := make([]byte, 0, n)
	for _, t := range tokens {
		b = append(b, t.Text...)
	}
	return string(b)
}
