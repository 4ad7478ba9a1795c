package aspect

import (
	"math"
	"testing"
)

func TestDistanceSymmetryAndRange(t *testing.T) {
	for a := 0.0; a < 360; a += 11.7 {
		for b := 0.0; b < 360; b += 13.3 {
			ab := Distance(a, b)
			ba := Distance(b, a)
			if ab != ba {
				t.Fatalf("Distance(%v,%v)=%v but Distance(%v,%v)=%v", a, b, ab, b, a, ba)
			}
			if ab < 0 || ab > 180 {
				t.Fatalf("Distance(%v,%v)=%v out of [0,180]", a, b, ab)
			}
		}
	}
}

func TestDistanceWrap(t *testing.T) {
	tests := []struct {
		d1, d2, want float64
	}{
		{10, 70, 60},
		{350, 10, 20},
		{0, 180, 180},
		{0, 181, 179},
		{5, 355, 10},
	}
	for _, tt := range tests {
		if got := Distance(tt.d1, tt.d2); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Distance(%v,%v)=%v want %v", tt.d1, tt.d2, got, tt.want)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		d1, d2   float64
		policy   Policy
		wantType Type
		wantOrb  float64
		wantOK   bool
	}{
		{"exact sextile", 10, 70, NatalPolicy, Sextile, 0, true},
		{"sextile within orb", 10, 71.5, SynastryPolicy, Sextile, 1.5, true},
		{"exact square", 10, 100, NatalPolicy, Square, 0, true},
		{"exact trine", 10, 130, TransitPolicy, Trine, 0, true},
		{"opposition via wrap", 350, 170, NatalPolicy, Opposition, 0, true},
		{"quincunx natal only", 10, 160, NatalPolicy, Quincunx, 0, true},
		{"no aspect", 10, 50, NatalPolicy, Conjunction, 0, false},
		{"quincunx excluded from transit", 10, 160, TransitPolicy, Conjunction, 0, false},
	}
	for _, tt := range tests {
		m, ok := tt.policy.Classify(tt.d1, tt.d2)
		if ok != tt.wantOK {
			t.Errorf("%s: ok=%v want %v", tt.name, ok, tt.wantOK)
			continue
		}
		if !ok {
			continue
		}
		if m.Type != tt.wantType {
			t.Errorf("%s: type=%s want %s", tt.name, m.Type.Name(), tt.wantType.Name())
		}
		if math.Abs(m.Orb-tt.wantOrb) > 1e-9 {
			t.Errorf("%s: orb=%v want %v", tt.name, m.Orb, tt.wantOrb)
		}
		if m.Orb < 0 {
			t.Errorf("%s: negative orb %v", tt.name, m.Orb)
		}
	}
}

// With overlapping tolerance windows the first candidate in angle order
// wins even when a later candidate would be tighter. This ordering is part
// of the engine contract; do not switch it to best-match.
func TestClassifyFirstMatchWins(t *testing.T) {
	wide := Policy{
		Name: "wide",
		Candidates: []Tolerance{
			{Conjunction, 50},
			{Sextile, 50},
		},
	}
	// separation 40: conjunction orb 40, sextile orb 20 (tighter).
	m, ok := wide.Classify(0, 40)
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Type != Conjunction {
		t.Fatalf("got %s, first-match semantics require conjunction", m.Type.Name())
	}
	if m.Orb != 40 {
		t.Fatalf("orb=%v want 40", m.Orb)
	}
}

func TestHarmonyTable(t *testing.T) {
	tests := []struct {
		t    Type
		want int
	}{
		{Conjunction, 5},
		{Sextile, 7},
		{Square, -6},
		{Trine, 8},
		{Quincunx, -3},
		{Opposition, -5},
	}
	for _, tt := range tests {
		if got := tt.t.Harmony(); got != tt.want {
			t.Errorf("%s harmony=%d want %d", tt.t.Name(), got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(0, 359.9, 180); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := Validate(10, math.NaN()); err == nil {
		t.Error("NaN longitude accepted")
	}
	if err := Validate(math.Inf(1)); err == nil {
		t.Error("Inf longitude accepted")
	}
}
