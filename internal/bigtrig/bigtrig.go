// Package bigtrig provides pi, sine, and cosine on big.Float at arbitrary
// precision. Exponential-sum verification adds p complex terms of modulus
// one, so the roots of unity must be accurate well beyond float64; the
// series here are evaluated with guard bits and the argument reduced into
// a quadrant before summation.
package bigtrig

import (
	"math/big"
	"sync"
)

const guardBits = 32

var (
	piMu    sync.Mutex
	piCache = map[uint]*big.Float{}
)

// Pi returns pi at the given precision.
func Pi(prec uint) *big.Float {
	piMu.Lock()
	defer piMu.Unlock()
	if cached, ok := piCache[prec]; ok {
		return new(big.Float).Copy(cached)
	}
	wprec := prec + guardBits
	// Machin: pi = 16*arctan(1/5) - 4*arctan(1/239).
	a := atanRecip(5, wprec)
	b := atanRecip(239, wprec)
	pi := new(big.Float).SetPrec(wprec)
	pi.Mul(a, big.NewFloat(16))
	b.Mul(b, big.NewFloat(4))
	pi.Sub(pi, b)
	pi.SetPrec(prec)
	piCache[prec] = pi
	return new(big.Float).Copy(pi)
}

// atanRecip returns arctan(1/k) by the alternating power series.
func atanRecip(k int64, prec uint) *big.Float {
	kf := new(big.Float).SetPrec(prec).SetInt64(k)
	k2 := new(big.Float).SetPrec(prec).Mul(kf, kf)
	pw := new(big.Float).SetPrec(prec).Quo(big.NewFloat(1), kf)
	sum := new(big.Float).SetPrec(prec).Set(pw)
	term := new(big.Float).SetPrec(prec)
	for i := int64(1); ; i++ {
		pw.Quo(pw, k2)
		if pw.Sign() == 0 || pw.MantExp(nil) < -int(prec) {
			break
		}
		term.Quo(pw, new(big.Float).SetInt64(2*i+1))
		if i%2 == 1 {
			sum.Sub(sum, term)
		} else {
			sum.Add(sum, term)
		}
	}
	return sum
}

// SinCos returns sin(x) and cos(x) at the given precision. x may be any
// finite value; it is reduced mod 2*pi first.
func SinCos(x *big.Float, prec uint) (*big.Float, *big.Float) {
	wprec := prec + guardBits
	r := new(big.Float).SetPrec(wprec).Set(x)

	twoPi := Pi(wprec)
	twoPi.Mul(twoPi, big.NewFloat(2))
	// r <- x - 2*pi*floor(x/(2*pi))
	q := new(big.Float).SetPrec(wprec).Quo(r, twoPi)
	qi, _ := q.Int(nil)
	if q.Sign() < 0 && !q.IsInt() {
		qi.Sub(qi, big.NewInt(1))
	}
	r.Sub(r, new(big.Float).SetPrec(wprec).Mul(twoPi, new(big.Float).SetInt(qi)))

	halfPi := Pi(wprec)
	halfPi.Quo(halfPi, big.NewFloat(2))
	quadrant := 0
	for r.Cmp(halfPi) >= 0 {
		r.Sub(r, halfPi)
		quadrant++
	}
	quadrant %= 4

	sin, cos := taylorSinCos(r, wprec)
	switch quadrant {
	case 1:
		sin, cos = cos, sin.Neg(sin)
	case 2:
		sin, cos = sin.Neg(sin), cos.Neg(cos)
	case 3:
		sin, cos = cos.Neg(cos), sin
	}
	sin.SetPrec(prec)
	cos.SetPrec(prec)
	return sin, cos
}

// Sin returns sin(x) at the given precision.
func Sin(x *big.Float, prec uint) *big.Float {
	s, _ := SinCos(x, prec)
	return s
}

// Cos returns cos(x) at the given precision.
func Cos(x *big.Float, prec uint) *big.Float {
	_, c := SinCos(x, prec)
	return c
}

// taylorSinCos sums the Maclaurin series for t in [0, pi/2).
func taylorSinCos(t *big.Float, prec uint) (*big.Float, *big.Float) {
	t2 := new(big.Float).SetPrec(prec).Mul(t, t)

	sin := new(big.Float).SetPrec(prec).Set(t)
	termS := new(big.Float).SetPrec(prec).Set(t)
	for i := int64(1); ; i++ {
		termS.Mul(termS, t2)
		termS.Quo(termS, new(big.Float).SetInt64(2*i*(2*i+1)))
		if termS.Sign() == 0 || termS.MantExp(nil) < -int(prec) {
			break
		}
		if i%2 == 1 {
			sin.Sub(sin, termS)
		} else {
			sin.Add(sin, termS)
		}
	}

	cos := new(big.Float).SetPrec(prec).SetInt64(1)
	termC := new(big.Float).SetPrec(prec).SetInt64(1)
	for i := int64(1); ; i++ {
		termC.Mul(termC, t2)
		termC.Quo(termC, new(big.Float).SetInt64((2*i-1)*(2*i)))
		if termC.Sign() == 0 || termC.MantExp(nil) < -int(prec) {
			break
		}
		if i%2 == 1 {
			cos.Sub(cos, termC)
		} else {
			cos.Add(cos, termC)
		}
	}
	return sin, cos
}
