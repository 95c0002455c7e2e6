package magnitude

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

var (
	one = decimal.NewFromInt(1)
	ten = decimal.NewFromInt(10)
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		coef     string
		exp      string
		negative bool
		wantCoef string
		wantExp  string
		coefLen  int
		expLow   string
	}{
		{"one", "1", "0", false, "1", "0", 0, "0"},
		{"trailing zero ignored", "1.0", "7", false, "1", "7", 0, "7"},
		{"large coefficient shifted", "12345678", "0", false, "1.2345678", "7", 7, "0"},
		{"trailing integer zeros", "12000", "3", false, "1.2", "7", 1, "6"},
		{"negative", "-5", "3", true, "5", "3", 0, "3"},
		{"negative zero", "-0", "5", false, "0", "5", 0, "5"},
		{"explicit plus", "+2.5", "+1", false, "2.5", "1", 1, "0"},
		{"sub-unity coefficient", "0.5", "8", false, "5", "7", 0, "7"},
		{"leading point", ".05", "3", false, "5", "1", 0, "1"},
		{"trailing point", "3.", "2", false, "3", "2", 0, "2"},
		{"negative exponent", "5", "-3", false, "5", "-3", 0, "0"},
		{"floor clamps to zero", "1.23456789", "2", false, "1.23456789", "2", 8, "0"},
		{
			"huge exponent", "1", "74436767763955288882613195375699296255", false,
			"1", "74436767763955288882613195375699296255", 0, "74436767763955288882613195375699296255",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Normalize(tt.coef, tt.exp)
			if err != nil {
				t.Fatalf("Normalize(%q, %q) failed: %v", tt.coef, tt.exp, err)
			}
			if m.Negative != tt.negative {
				t.Errorf("Expected negative=%v, got %v", tt.negative, m.Negative)
			}
			if m.Coefficient.String() != tt.wantCoef {
				t.Errorf("Expected coefficient %s, got %s", tt.wantCoef, m.Coefficient.String())
			}
			if m.Exponent.String() != tt.wantExp {
				t.Errorf("Expected exponent %s, got %s", tt.wantExp, m.Exponent.String())
			}
			if m.CoefLen != tt.coefLen {
				t.Errorf("Expected coefLen %d, got %d", tt.coefLen, m.CoefLen)
			}
			if m.ExpLow.String() != tt.expLow {
				t.Errorf("Expected expLow %s, got %s", tt.expLow, m.ExpLow.String())
			}
		})
	}
}

func TestNormalizeCoefficientRange(t *testing.T) {
	inputs := []string{"1", "9.999", "10", "99999999999999999999999", "0.0000001", "123.456"}
	for _, in := range inputs {
		m, err := Normalize(in, "0")
		if err != nil {
			t.Fatalf("Normalize(%q) failed: %v", in, err)
		}
		if m.Coefficient.Cmp(one) < 0 || m.Coefficient.Cmp(ten) >= 0 {
			t.Errorf("Normalize(%q): coefficient %s outside [1, 10)", in, m.Coefficient)
		}
	}
}

func TestNormalizeErrors(t *testing.T) {
	tests := []struct {
		name  string
		coef  string
		exp   string
		field string
		want  error
	}{
		{"empty coefficient", "", "0", FieldCoefficient, ErrInvalidNumber},
		{"letters", "abc", "0", FieldCoefficient, ErrInvalidNumber},
		{"lone point", ".", "0", FieldCoefficient, ErrInvalidNumber},
		{"two points", "1.2.3", "0", FieldCoefficient, ErrInvalidNumber},
		{"scientific", "1e5", "0", FieldCoefficient, ErrInvalidNumber},
		{"comma", "1,000", "0", FieldCoefficient, ErrInvalidNumber},
		{"space", " 1", "0", FieldCoefficient, ErrInvalidNumber},
		{"lone sign", "-", "0", FieldCoefficient, ErrInvalidNumber},
		{"empty exponent", "1", "", FieldExponent, ErrInvalidNumber},
		{"exponent letters", "1", "x", FieldExponent, ErrInvalidNumber},
		{"fractional exponent", "1", "7.5", FieldExponent, ErrFractionalExponent},
		{"exponent trailing point", "1", "7.", FieldExponent, ErrFractionalExponent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Normalize(tt.coef, tt.exp)
			if err == nil {
				t.Fatalf("Expected error, got %v", m)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Expected *ValidationError, got %T", err)
			}
			if verr.Field != tt.field {
				t.Errorf("Expected field %s, got %s", tt.field, verr.Field)
			}
		})
	}
}

func TestMagnitudeString(t *testing.T) {
	m, err := Normalize("-150", "19")
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if got := m.String(); got != "-1.5e21" {
		t.Errorf("Expected -1.5e21, got %s", got)
	}
	if m.IsZero() {
		t.Error("Expected non-zero magnitude")
	}
}
