package render

import (
	"errors"
	"fmt"
	"html"
	"strings"

	"buddha-num-conv/internal/token"
)

// Format selects how tokens are serialised for display.
type Format string

const (
	FormatText      Format = "text"      // Token text only
	FormatHTML      Format = "html"      // <ruby> markup for tokens with readings
	FormatAnnotated Format = "annotated" // text(reading)
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat maps a format name to a Format. Matching ignores case and
// surrounding whitespace.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatText, FormatHTML, FormatAnnotated:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Tokens serialises tokens in the given format. Unknown formats fall back
// to FormatText.
func Tokens(format Format, tokens []token.Token) string {
	if format != FormatHTML && format != FormatAnnotated {
		return token.Join(tokens)
	}

	var b strings.Builder
	for _, t := range tokens {
		switch {
		case format == FormatHTML && t.HasReading():
			b.WriteString("<ruby>")
			b.WriteString(html.EscapeString(t.Text))
			b.WriteString("<rt>")
			b.WriteString(html.EscapeString(t.Reading))
			b.WriteString("</rt></ruby>")
		case format == FormatHTML:
			b.WriteString(html.EscapeString(t.Text))
		case t.HasReading():
			b.WriteString(t.Text)
			b.WriteString("(")
			b.WriteString(t.Reading)
			b.WriteString(")")
		default:
			b.WriteString(t.Text)
		}
	}
	return b.String()
}

// Error serialises a conversion failure in the given format.
func Error(format Format, err error) string {
	if format == FormatHTML {
		return `<div class="error">` + html.EscapeString(err.Error()) + `</div>`
	}
	return "error: " + err.Error()
}
