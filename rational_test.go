package avfields

import "testing"

func TestRational_Float(t *testing.T) {
	tests := []struct {
		r    Rational
		want float64
	}{
		{Rational{Num: 1, Den: 25}, 0.04},
		{Rational{Num: 30000, Den: 1001}, 30000.0 / 1001.0},
		{Rational{Num: 0, Den: 1}, 0},
		{Rational{Num: 5, Den: 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.r.String(), func(t *testing.T) {
			if got := tt.r.Float(); got != tt.want {
				t.Errorf("Rational.Float() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRational_String(t *testing.T) {
	if got, want := NewRational(1, 90000).String(), "1/90000"; got != want {
		t.Errorf("Rational.String() = %q, want %q", got, want)
	}
}
