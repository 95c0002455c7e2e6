package token

import "testing"

func TestToken(t *testing.T) {
	tok := New("倶胝", "くてい")
	if !tok.HasReading() {
		t.Error("Expected reading to be set")
	}
	if tok.IsZero() {
		t.Error("Expected non-empty token")
	}
	if got := tok.WithoutReading(); got != Plain("倶胝") {
		t.Errorf("Expected reading dropped, got %+v", got)
	}
	if !(Token{}).IsZero() {
		t.Error("Expected zero token to report IsZero")
	}
	if Space.HasReading() || Space.Text != " " {
		t.Errorf("Unexpected Space token: %+v", Space)
	}
}

func TestJoin(t *testing.T) {
	tokens := []Token{Plain("1"), New("倶胝", "くてい"), Space, Plain("50")}
	if got := Join(tokens); got != "1倶胝 50" {
		t.Errorf("Expected '1倶胝 50', got '%s'", got)
	}
	if got := Join(nil); got != "" {
		t.Errorf("Expected empty string, got '%s'", got)
	}
}
