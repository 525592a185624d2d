package utils

import (
	"math"
	"testing"
)

func TestPRNGServiceIsReproducible(t *testing.T) {
	a := NewPRNGService(7)
	b := NewPRNGService(7)
	for i := 0; i < 10; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d: %f != %f", i, x, y)
		}
	}
	if a.Seed() != 7 {
		t.Errorf("Seed = %d, want 7", a.Seed())
	}
	if NewPRNGService(0).Seed() == 0 {
		t.Error("zero seed should be replaced by a time-based seed")
	}
}

func TestPRNGServiceRange(t *testing.T) {
	s := NewPRNGService(1)
	for i := 0; i < 1000; i++ {
		v := s.Range(4, 7)
		if v < 4 || v >= 7 {
			t.Fatalf("Range(4, 7) = %f, out of bounds", v)
		}
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0},
		{3 * math.Pi, math.Pi},
		{-3 * math.Pi / 2, math.Pi / 2},
	}
	for _, tt := range tests {
		if got := NormalizeAngle(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormalizeAngle(%f) = %f, want %f", tt.in, got, tt.want)
		}
	}
}
