package bigcplx

import (
	"math"
	"math/big"
	"testing"

	"Titan-Verify/internal/bigtrig"
)

func fromFloats(re, im float64, prec uint) *Complex {
	return &Complex{
		Real: new(big.Float).SetPrec(prec).SetFloat64(re),
		Imag: new(big.Float).SetPrec(prec).SetFloat64(im),
	}
}

func TestMul(t *testing.T) {
	// (1+2i)(3+4i) = -5+10i
	z := fromFloats(1, 2, 64).Mul(fromFloats(3, 4, 64))
	re, _ := z.Real.Float64()
	im, _ := z.Imag.Float64()
	if re != -5 || im != 10 {
		t.Fatalf("(1+2i)(3+4i) = %v+%vi", re, im)
	}
}

func TestAbs(t *testing.T) {
	z := fromFloats(3, 4, 64)
	if abs, _ := z.Abs().Float64(); abs != 5 {
		t.Fatalf("|3+4i| = %v, want 5", abs)
	}
	if sq, _ := z.AbsSquared().Float64(); sq != 25 {
		t.Fatalf("|3+4i|^2 = %v, want 25", sq)
	}
}

func TestConjMulIsAbsSquared(t *testing.T) {
	z := fromFloats(2.5, -1.5, 96)
	prod := z.Mul(z.Conj())
	if prod.Imag.Sign() != 0 {
		t.Fatalf("z*conj(z) has imaginary part %v", prod.Imag)
	}
	want := z.AbsSquared()
	if prod.Real.Cmp(want) != 0 {
		t.Fatalf("z*conj(z) = %v, want %v", prod.Real, want)
	}
}

func TestAccumAdd(t *testing.T) {
	sum := New(64)
	for i := 0; i < 5; i++ {
		sum.AccumAdd(fromFloats(1, -2, 64))
	}
	re, _ := sum.Real.Float64()
	im, _ := sum.Imag.Float64()
	if re != 5 || im != -10 {
		t.Fatalf("accumulated sum = %v+%vi", re, im)
	}
}

func TestUnit(t *testing.T) {
	const prec = 96
	z := Unit(new(big.Float), prec)
	if re, _ := z.Real.Float64(); re != 1 {
		t.Fatalf("e^0 real = %v", re)
	}
	if z.Imag.Sign() != 0 {
		t.Fatalf("e^0 imag = %v", z.Imag)
	}

	// e^(i*pi/3) = 1/2 + i*sqrt(3)/2
	theta := bigtrig.Pi(prec)
	theta.Quo(theta, big.NewFloat(3))
	z = Unit(theta, prec)
	re, _ := z.Real.Float64()
	im, _ := z.Imag.Float64()
	if math.Abs(re-0.5) > 1e-15 || math.Abs(im-math.Sqrt(3)/2) > 1e-15 {
		t.Fatalf("e^(i*pi/3) = %v+%vi", re, im)
	}
	if abs, _ := z.Abs().Float64(); math.Abs(abs-1) > 1e-15 {
		t.Fatalf("|e^(i*theta)| = %v", abs)
	}
}

func TestSubCopy(t *testing.T) {
	z := fromFloats(1, 1, 64)
	w := z.Copy()
	w.Real.SetInt64(9)
	if re, _ := z.Real.Float64(); re != 1 {
		t.Fatalf("Copy shares storage")
	}
	d := fromFloats(4, 7, 64).Sub(fromFloats(1, 2, 64))
	re, _ := d.Real.Float64()
	im, _ := d.Imag.Float64()
	if re != 3 || im != 5 {
		t.Fatalf("difference = %v+%vi", re, im)
	}
}
