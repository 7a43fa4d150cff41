package fp

import "fmt"

// frobenius returns g^q mod (f, q), the Frobenius image of g.
func frobenius(g, f Poly, q uint64) Poly {
	return PolyPowMod(g, q, f, q)
}

// IsIrreducible implements the Ben-Or irreducibility test over F_q:
// f of degree n is irreducible iff x^(q^n) = x mod f and, for every
// i <= n/2, gcd(x^(q^i) - x, f) is constant.
func IsIrreducible(f Poly, q uint64) bool {
	f = f.Trim(q)
	if len(f) <= 1 {
		return false
	}
	n := len(f) - 1
	if n == 1 {
		return true
	}
	x := Poly{0, 1}
	xp := Poly{0, 1}
	for i := 1; i <= n/2; i++ {
		xp = frobenius(xp, f, q)
		g := PolyGCD(PolySub(xp, x, q), f, q)
		if len(g) > 1 {
			return false
		}
	}
	xp = Poly{0, 1}
	for i := 0; i < n; i++ {
		xp = frobenius(xp, f, q)
	}
	diff := PolySub(xp, x, q)
	return diff.IsZero(q)
}

// DegreePattern holds the outcome of distinct-degree factorization of a
// squarefree polynomial: Count[d] is the number of irreducible factors of
// degree d+1 (index 0 <-> degree 1).
type DegreePattern struct {
	Count []int
}

// Factors returns the multiset of irreducible factor degrees in
// ascending order.
func (dp DegreePattern) Factors() []int {
	var out []int
	for i, c := range dp.Count {
		for j := 0; j < c; j++ {
			out = append(out, i+1)
		}
	}
	return out
}

// NumFactors returns the total number of irreducible factors.
func (dp DegreePattern) NumFactors() int {
	total := 0
	for _, c := range dp.Count {
		total += c
	}
	return total
}

// DistinctDegreePattern runs distinct-degree factorization on a squarefree
// polynomial f mod q and returns how many irreducible factors of each
// degree it has. It errors on non-squarefree or constant input.
func DistinctDegreePattern(f Poly, q uint64) (DegreePattern, error) {
	f = Monic(f, q)
	if len(f) <= 1 {
		return DegreePattern{}, fmt.Errorf("fp: constant polynomial has no degree pattern")
	}
	if !IsSquarefree(f, q) {
		return DegreePattern{}, fmt.Errorf("fp: polynomial is not squarefree mod %d", q)
	}
	n := len(f) - 1
	dp := DegreePattern{Count: make([]int, n)}
	rem := f
	x := Poly{0, 1}
	h := Poly{0, 1}
	for d := 1; ; d++ {
		remDeg := len(rem) - 1
		if remDeg <= 0 {
			break
		}
		if 2*d > remDeg {
			// Whatever is left is a single irreducible factor.
			dp.Count[remDeg-1]++
			break
		}
		h = frobenius(h, rem, q)
		g := PolyGCD(PolySub(h, x, q), rem, q)
		if len(g) > 1 {
			gDeg := len(g) - 1
			dp.Count[d-1] += gDeg / d
			quot, _ := PolyDivMod(rem, g, q)
			rem = Monic(quot, q)
			h = PolyMod(h, rem, q)
		}
	}
	return dp, nil
}
