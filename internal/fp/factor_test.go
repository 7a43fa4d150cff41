package fp

import "testing"

func TestIsIrreducible(t *testing.T) {
	cases := []struct {
		f    Poly
		q    uint64
		want bool
	}{
		{Poly{1, 0, 1}, 3, true},   // x^2+1, -1 not a square mod 3
		{Poly{1, 0, 1}, 5, false},  // x^2+1 = (x+2)(x+3) mod 5
		{Poly{1, 1, 1}, 2, true},   // x^2+x+1
		{Poly{2, 1}, 47, true},     // linear
		{Poly{1, 2, 1}, 47, false}, // (x+1)^2
		{Poly{5}, 47, false},       // constant
		{Poly{1, 0, 0, 1}, 2, false},
		{Poly{1, 1, 0, 1}, 2, true}, // x^3+x+1
	}
	for _, tc := range cases {
		if got := IsIrreducible(tc.f, tc.q); got != tc.want {
			t.Fatalf("IsIrreducible(%v, %d) = %t, want %t", tc.f, tc.q, got, tc.want)
		}
	}
}

func TestDistinctDegreePattern(t *testing.T) {
	const q = 3
	// (x+1)(x+2)(x^2+1): two linear factors, one quadratic.
	f := PolyMul(PolyMul(Poly{1, 1}, Poly{2, 1}, q), Poly{1, 0, 1}, q)
	dp, err := DistinctDegreePattern(f, q)
	if err != nil {
		t.Fatalf("pattern: %v", err)
	}
	if dp.NumFactors() != 3 {
		t.Fatalf("NumFactors = %d, want 3", dp.NumFactors())
	}
	degs := dp.Factors()
	want := []int{1, 1, 2}
	if len(degs) != len(want) {
		t.Fatalf("Factors = %v, want %v", degs, want)
	}
	for i := range want {
		if degs[i] != want[i] {
			t.Fatalf("Factors = %v, want %v", degs, want)
		}
	}
}

func TestDistinctDegreePatternIrreducible(t *testing.T) {
	dp, err := DistinctDegreePattern(Poly{1, 0, 1}, 3)
	if err != nil {
		t.Fatalf("pattern: %v", err)
	}
	if dp.NumFactors() != 1 {
		t.Fatalf("NumFactors = %d for irreducible input", dp.NumFactors())
	}
	if f := dp.Factors(); len(f) != 1 || f[0] != 2 {
		t.Fatalf("Factors = %v, want [2]", f)
	}
}

func TestDistinctDegreePatternRejectsSquares(t *testing.T) {
	f := PolyMul(Poly{1, 1}, Poly{1, 1}, 5)
	if _, err := DistinctDegreePattern(f, 5); err == nil {
		t.Fatalf("no error on non-squarefree input")
	}
	if _, err := DistinctDegreePattern(Poly{4}, 5); err == nil {
		t.Fatalf("no error on constant input")
	}
}
