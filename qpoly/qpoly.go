// Package qpoly defines the polynomial Q(x) = x^47 - (x-1)^47 that the
// verification commands in this repository revolve around, together with
// exact and residue evaluation helpers.
//
// Expanding the binomial gives Q(x) = sum_{i=0}^{46} (-1)^i C(47,i) x^i, so
// Q has degree 46, leading coefficient 47, constant term 1, and every
// non-constant coefficient divisible by 47. The last fact is what makes
// Q(n) = 1 (mod 47) for every integer n.
package qpoly

import (
	"math/big"

	"Titan-Verify/internal/fp"
)

const (
	// Exponent is the 47 in x^47 - (x-1)^47.
	Exponent = 47
	// Degree is the degree of Q as a polynomial, one less than Exponent.
	Degree = Exponent - 1
)

// Coeffs returns the coefficient vector of Q in little-endian order
// (index = power), length Degree+1. The slice and its entries are fresh.
func Coeffs() []*big.Int {
	coeffs := make([]*big.Int, Degree+1)
	binom := big.NewInt(1)
	n := big.NewInt(Exponent)
	for i := 0; i <= Degree; i++ {
		c := new(big.Int).Set(binom)
		if i%2 == 1 {
			c.Neg(c)
		}
		coeffs[i] = c
		// C(47,i+1) = C(47,i) * (47-i) / (i+1)
		binom.Mul(binom, new(big.Int).Sub(n, big.NewInt(int64(i))))
		binom.Quo(binom, big.NewInt(int64(i+1)))
	}
	return coeffs
}

// ShiftedCoeffs returns the coefficient vector of Q(x) - h.
func ShiftedCoeffs(h *big.Int) []*big.Int {
	coeffs := Coeffs()
	coeffs[0].Sub(coeffs[0], h)
	return coeffs
}

// Eval returns Q(n) = n^47 - (n-1)^47 exactly.
func Eval(n *big.Int) *big.Int {
	a := new(big.Int).Exp(n, big.NewInt(Exponent), nil)
	m := new(big.Int).Sub(n, big.NewInt(1))
	b := new(big.Int).Exp(m, big.NewInt(Exponent), nil)
	return a.Sub(a, b)
}

// EvalMod returns Q(n) mod p using two modular exponentiations. p must be
// non-zero; it does not need to be prime.
func EvalMod(n, p uint64) uint64 {
	if p == 1 {
		return 0
	}
	n %= p
	m := n + p - 1
	if m >= p {
		m -= p
	}
	return fp.Sub(fp.Pow(n, Exponent, p), fp.Pow(m, Exponent, p), p)
}

// ReduceShiftMod reduces Q(x) - h modulo p into a dense fp.Poly.
// The leading coefficient vanishes exactly when p divides 47.
func ReduceShiftMod(h *big.Int, p uint64) fp.Poly {
	coeffs := ShiftedCoeffs(h)
	mod := new(big.Int).SetUint64(p)
	out := make(fp.Poly, len(coeffs))
	tmp := new(big.Int)
	for i, c := range coeffs {
		tmp.Mod(c, mod)
		out[i] = tmp.Uint64()
	}
	return out
}
