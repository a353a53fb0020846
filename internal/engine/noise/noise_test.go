package noise

import (
	"math"
	"testing"
)

func TestPerlin2DDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 100; i++ {
		x := float64(i) * 0.37
		y := float64(i) * 0.91
		if a.Perlin2D(x, y) != b.Perlin2D(x, y) {
			t.Fatalf("same seed produced different values at (%f, %f)", x, y)
		}
	}
}

func TestPerlin2DSeedMatters(t *testing.T) {
	a := New(1)
	b := New(2)

	same := 0
	total := 200
	for i := 0; i < total; i++ {
		x := float64(i)*0.13 + 0.5
		y := float64(i)*0.29 + 0.5
		if a.Perlin2D(x, y) == b.Perlin2D(x, y) {
			same++
		}
	}
	// A handful of coincidental matches is fine; identical output is not.
	if same > total/4 {
		t.Errorf("different seeds agree on %d/%d samples", same, total)
	}
}

func TestPerlin2DRange(t *testing.T) {
	g := New(7)
	for i := 0; i < 1000; i++ {
		x := float64(i) * 0.173
		y := float64(i) * 0.311
		v := g.Perlin2D(x, y)
		if math.IsNaN(v) || v < -1.5 || v > 1.5 {
			t.Fatalf("Perlin2D(%f, %f) = %f out of expected range", x, y, v)
		}
	}
}

func TestPerlin2DZeroAtLatticePoints(t *testing.T) {
	// Gradient noise is zero exactly on integer lattice points.
	g := New(99)
	for x := -3; x <= 3; x++ {
		for y := -3; y <= 3; y++ {
			if v := g.Perlin2D(float64(x), float64(y)); v != 0 {
				t.Errorf("expected 0 at lattice point (%d,%d), got %f", x, y, v)
			}
		}
	}
}

func TestFBM2DRange(t *testing.T) {
	g := New(13)
	for i := 0; i < 500; i++ {
		x := float64(i) * 0.217
		y := float64(i) * 0.489
		v := g.FBM2D(x, y, 4, 2.0, 0.5)
		if math.IsNaN(v) || v < -1.5 || v > 1.5 {
			t.Fatalf("FBM2D(%f, %f) = %f out of expected range", x, y, v)
		}
	}
}

func TestOffsetDecorrelates(t *testing.T) {
	g := New(5)
	o := g.Offset(42)

	if o.Seed() != 47 {
		t.Errorf("expected offset seed 47, got %d", o.Seed())
	}

	same := 0
	total := 200
	for i := 0; i < total; i++ {
		x := float64(i)*0.41 + 0.25
		y := float64(i)*0.67 + 0.25
		if g.Perlin2D(x, y) == o.Perlin2D(x, y) {
			same++
		}
	}
	if same > total/4 {
		t.Errorf("offset generator agrees on %d/%d samples", same, total)
	}
}
