package sdf2d

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
)

func TestCombinatorLaws(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		a := 4*rng.Float32() - 2
		b := 4*rng.Float32() - 2
		if Union(a, b) != Union(b, a) {
			t.Fatalf("union not commutative for a=%g b=%g", a, b)
		}
		if Union(a, b) != math32.Min(a, b) {
			t.Fatalf("union(a,b) != min(a,b) for a=%g b=%g", a, b)
		}
		if Intersect(a, b) != math32.Max(a, b) {
			t.Fatalf("intersection(a,b) != max(a,b) for a=%g b=%g", a, b)
		}
		if Subtract(a, b) != math32.Max(-a, b) {
			t.Fatalf("subtraction(a,b) != max(-a,b) for a=%g b=%g", a, b)
		}
		if Onion(a, 0) != math32.Abs(a) {
			t.Fatalf("onion(d,0) != |d| for d=%g", a)
		}
		if Round(a, 0) != a {
			t.Fatalf("roundness(d,0) != d for d=%g", a)
		}
	}
}

func TestUnionSmooth(t *testing.T) {
	const k = 0.25
	// Far apart distances degenerate to plain union.
	if got, want := UnionSmooth(1, 3, k), float32(1); got != want {
		t.Errorf("smooth union far apart = %g, want %g", got, want)
	}
	if got, want := UnionSmooth(3, 1, k), float32(1); got != want {
		t.Errorf("smooth union far apart = %g, want %g", got, want)
	}
	// Equal distances blend by k/4.
	if got, want := UnionSmooth(1, 1, k), float32(1-k*0.25); math32.Abs(got-want) > 1e-6 {
		t.Errorf("smooth union equal = %g, want %g", got, want)
	}
	// Smooth union never exceeds the hard union.
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		a := 2*rng.Float32() - 1
		b := 2*rng.Float32() - 1
		if UnionSmooth(a, b, k) > Union(a, b)+1e-6 {
			t.Fatalf("smooth union above hard union for a=%g b=%g", a, b)
		}
	}
}

func TestInterp(t *testing.T) {
	if got := Interp(-1, 1, 0.5); got != 0 {
		t.Errorf("interp midpoint = %g, want 0", got)
	}
	if got := Interp(-1, 1, 0); got != -1 {
		t.Errorf("interp t=0 = %g, want -1", got)
	}
	if got := Interp(-1, 1, 1); got != 1 {
		t.Errorf("interp t=1 = %g, want 1", got)
	}
}
