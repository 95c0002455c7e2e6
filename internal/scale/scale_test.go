package scale

import (
	"math/big"
	"testing"
)

func TestTableZeros(t *testing.T) {
	all := All()
	if len(all) != Count {
		t.Fatalf("Expected %d scales, got %d", Count, len(all))
	}

	want := big.NewInt(7)
	for i, d := range all {
		if d.Ordinal != i {
			t.Errorf("Scale %s: expected ordinal %d, got %d", d.Name, i, d.Ordinal)
		}
		if d.Zeros().Cmp(want) != 0 {
			t.Errorf("Scale %s: expected zeros %s, got %s", d.Name, want, d.Zeros())
		}
		if d.Name == "" || d.Reading == "" {
			t.Errorf("Scale %d: name and reading must be set", i)
		}
		want = new(big.Int).Lsh(want, 1)
	}
}

func TestTableIsStrictlyIncreasing(t *testing.T) {
	all := All()
	for i := 1; i < len(all); i++ {
		if all[i].Zeros().Cmp(all[i-1].Zeros()) <= 0 {
			t.Errorf("Scale %d does not exceed scale %d", i, i-1)
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		ordinal int
		name    string
		reading string
		zeros   string
	}{
		{0, "倶胝", "くてい", "7"},
		{1, "阿庾多", "あゆた", "14"},
		{2, "那由他", "なゆた", "28"},
		{103, "阿僧祇", "あそうぎ", "70988433612780846483815379501056"},
		{MaxOrdinal, "不可説不可説転", "ふかせつふかせつてん", "37218383881977644441306597687849648128"},
	}

	for _, tt := range tests {
		d, ok := Lookup(tt.ordinal)
		if !ok {
			t.Fatalf("Lookup(%d) not found", tt.ordinal)
		}
		if d.Name != tt.name || d.Reading != tt.reading {
			t.Errorf("Lookup(%d) = %s/%s, want %s/%s", tt.ordinal, d.Name, d.Reading, tt.name, tt.reading)
		}
		if d.Zeros().String() != tt.zeros {
			t.Errorf("Lookup(%d) zeros = %s, want %s", tt.ordinal, d.Zeros(), tt.zeros)
		}
		tok := d.Token()
		if tok.Text != tt.name || tok.Reading != tt.reading {
			t.Errorf("Lookup(%d) token = %+v", tt.ordinal, tok)
		}
	}

	for _, ord := range []int{-1, Count, 1000} {
		if _, ok := Lookup(ord); ok {
			t.Errorf("Lookup(%d) should fail", ord)
		}
	}
}

func TestZerosReturnsCopy(t *testing.T) {
	d, _ := Lookup(0)
	d.Zeros().SetInt64(100)

	again, _ := Lookup(0)
	if again.Zeros().Int64() != 7 {
		t.Errorf("Table was mutated through Zeros: got %s", again.Zeros())
	}
}

func TestByName(t *testing.T) {
	d, ok := ByName("無量")
	if !ok {
		t.Fatal("Expected 無量 to be found")
	}
	if d.Ordinal != 105 {
		t.Errorf("Expected ordinal 105, got %d", d.Ordinal)
	}

	if _, ok := ByName("万"); ok {
		t.Error("万 is not a named scale")
	}
}
