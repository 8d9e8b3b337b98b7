package rng

import "testing"

func TestSeededReproducibility(t *testing.T) {
	a := NewSeeded(12345)
	b := NewSeeded(12345)

	for i := 0; i < 100; i++ {
		if x, y := a.Intn(97), b.Intn(97); x != y {
			t.Fatalf("Intn mismatch at %d: %d != %d", i, x, y)
		}
		if x, y := a.IntRange(3, 6), b.IntRange(3, 6); x != y {
			t.Fatalf("IntRange mismatch at %d: %d != %d", i, x, y)
		}
		if x, y := a.Bool(DefaultProbability), b.Bool(DefaultProbability); x != y {
			t.Fatalf("Bool mismatch at %d: %v != %v", i, x, y)
		}
	}
}

func TestIntRangeBounds(t *testing.T) {
	s := NewSeeded(7)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := s.IntRange(3, 6)
		if v < 3 || v > 6 {
			t.Fatalf("IntRange(3, 6) = %d, out of range", v)
		}
		seen[v] = true
	}
	for v := 3; v <= 6; v++ {
		if !seen[v] {
			t.Errorf("IntRange(3, 6) never produced %d", v)
		}
	}
}

func TestIntnBounds(t *testing.T) {
	s := NewSeeded(99)
	for i := 0; i < 1000; i++ {
		if v := s.Intn(4); v < 0 || v >= 4 {
			t.Fatalf("Intn(4) = %d, out of range", v)
		}
	}
}

func TestDegenerateRanges(t *testing.T) {
	s := NewSeeded(1)

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"Intn zero", s.Intn(0), 0},
		{"Intn negative", s.Intn(-5), 0},
		{"IntRange single", s.IntRange(4, 4), 4},
		{"IntRange inverted", s.IntRange(9, 2), 9},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestBoolExtremes(t *testing.T) {
	s := NewSeeded(3)
	for i := 0; i < 100; i++ {
		if s.Bool(0) {
			t.Fatal("Bool(0) returned true")
		}
		if !s.Bool(1) {
			t.Fatal("Bool(1) returned false")
		}
	}
}
