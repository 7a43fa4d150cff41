// Package expsum computes the complete exponential sums
//
//	S(a,p) = sum_{n=0}^{p-1} e(a*Q(n)/p),  e(x) = exp(2*pi*i*x),
//
// for Q(x) = x^47 - (x-1)^47 and checks them against the Hasse-Weil bound
// |S(a,p)| <= (deg Q - 1) * sqrt(p) = 45 * sqrt(p).
//
// The sum is evaluated exactly up to big-float rounding: the residues
// a*Q(n) mod p are first histogrammed, then each p-th root of unity is
// built from high-precision sine/cosine, so the result does not depend on
// the order of summation or on float64 trig.
package expsum

import (
	"math/big"

	"Titan-Verify/internal/bigcplx"
	"Titan-Verify/internal/bigtrig"
	"Titan-Verify/internal/fp"
	"Titan-Verify/qpoly"
)

// BoundFactor is deg Q - 1, the Weil constant for a degree-46 polynomial.
const BoundFactor = qpoly.Degree - 1

// DefaultPrec is the big-float precision (bits) used when the caller does
// not ask for a specific one.
const DefaultPrec = 128

// ResidueCounts returns the histogram of a*Q(n) mod p over a full period:
// counts[k] = #{ n in [0,p) : a*Q(n) = k (mod p) }. The counts always sum
// to p.
func ResidueCounts(a, p uint64) []uint64 {
	counts := make([]uint64, p)
	a %= p
	for n := uint64(0); n < p; n++ {
		k := qpoly.EvalMod(n, p)
		if a != 1 {
			k = fp.Mul(a, k, p)
		}
		counts[k]++
	}
	return counts
}

// SumCounts evaluates sum_k counts[k] * zeta^k with zeta = e(1/p),
// p = len(counts). Each root of unity is derived from its own angle so
// rounding errors do not accumulate across the loop.
func SumCounts(counts []uint64, prec uint) *bigcplx.Complex {
	p := uint64(len(counts))
	sum := bigcplx.New(prec)
	twoPi := bigtrig.Pi(prec + 8)
	twoPi.Mul(twoPi, big.NewFloat(2))
	pf := new(big.Float).SetPrec(prec + 8).SetUint64(p)
	theta := new(big.Float).SetPrec(prec + 8)
	for k, c := range counts {
		if c == 0 {
			continue
		}
		theta.SetUint64(uint64(k))
		theta.Quo(theta, pf)
		theta.Mul(theta, twoPi)
		z := bigcplx.Unit(theta, prec)
		if c != 1 {
			z = z.MulScalar(new(big.Float).SetPrec(prec).SetUint64(c))
		}
		sum.AccumAdd(z)
	}
	return sum
}

// Sum returns S(a,p) at the given precision.
func Sum(a, p uint64, prec uint) *bigcplx.Complex {
	return SumCounts(ResidueCounts(a, p), prec)
}

// Bound returns the Hasse-Weil bound 45*sqrt(p).
func Bound(p uint64, prec uint) *big.Float {
	b := new(big.Float).SetPrec(prec).SetUint64(p)
	b.Sqrt(b)
	return b.Mul(b, new(big.Float).SetPrec(prec).SetInt64(BoundFactor))
}

// Result is one (p, a) verification row.
type Result struct {
	P     uint64
	A     uint64
	Prec  uint
	Abs   float64
	Bound float64
	Ratio float64
	OK    bool
}

// Check computes S(a,p), compares |S| against the bound, and returns the
// row together with the exact sum. a must be non-zero mod p, since a = 0
// degenerates to S = p.
func Check(a, p uint64, prec uint) (Result, *bigcplx.Complex) {
	if prec == 0 {
		prec = DefaultPrec
	}
	s := Sum(a, p, prec)
	abs := s.Abs()
	bound := Bound(p, prec)
	res := Result{P: p, A: a, Prec: prec}
	res.Abs, _ = abs.Float64()
	res.Bound, _ = bound.Float64()
	if res.Bound > 0 {
		res.Ratio = res.Abs / res.Bound
	}
	res.OK = abs.Cmp(bound) <= 0
	return res, s
}
