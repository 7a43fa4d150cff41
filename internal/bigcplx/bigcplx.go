// Package bigcplx implements complex numbers with arbitrary-precision
// big.Float parts, sized down to what exact root-of-unity summation needs.
package bigcplx

import (
	"fmt"
	"math/big"

	"Titan-Verify/internal/bigtrig"
)

// Complex is a complex number with big.Float real and imaginary parts.
type Complex struct {
	Real *big.Float
	Imag *big.Float
}

// New returns 0 + 0i at the given precision.
func New(prec uint) *Complex {
	return &Complex{
		Real: new(big.Float).SetPrec(prec),
		Imag: new(big.Float).SetPrec(prec),
	}
}

// Unit returns e^(i*theta) = cos(theta) + i*sin(theta).
func Unit(theta *big.Float, prec uint) *Complex {
	sin, cos := bigtrig.SinCos(theta, prec)
	return &Complex{Real: cos, Imag: sin}
}

// Copy returns a deep copy of z.
func (z *Complex) Copy() *Complex {
	return &Complex{
		Real: new(big.Float).Copy(z.Real),
		Imag: new(big.Float).Copy(z.Imag),
	}
}

// Add returns z + w.
func (z *Complex) Add(w *Complex) *Complex {
	return &Complex{
		Real: new(big.Float).Add(z.Real, w.Real),
		Imag: new(big.Float).Add(z.Imag, w.Imag),
	}
}

// Sub returns z - w.
func (z *Complex) Sub(w *Complex) *Complex {
	return &Complex{
		Real: new(big.Float).Sub(z.Real, w.Real),
		Imag: new(big.Float).Sub(z.Imag, w.Imag),
	}
}

// Mul returns z * w.
func (z *Complex) Mul(w *Complex) *Complex {
	ac := new(big.Float).Mul(z.Real, w.Real)
	bd := new(big.Float).Mul(z.Imag, w.Imag)
	ad := new(big.Float).Mul(z.Real, w.Imag)
	bc := new(big.Float).Mul(z.Imag, w.Real)
	return &Complex{
		Real: ac.Sub(ac, bd),
		Imag: ad.Add(ad, bc),
	}
}

// MulScalar returns z scaled by a real factor.
func (z *Complex) MulScalar(s *big.Float) *Complex {
	return &Complex{
		Real: new(big.Float).Mul(z.Real, s),
		Imag: new(big.Float).Mul(z.Imag, s),
	}
}

// AccumAdd adds w into z in place, avoiding allocations in summation loops.
func (z *Complex) AccumAdd(w *Complex) {
	z.Real.Add(z.Real, w.Real)
	z.Imag.Add(z.Imag, w.Imag)
}

// Conj returns the complex conjugate of z.
func (z *Complex) Conj() *Complex {
	return &Complex{
		Real: new(big.Float).Copy(z.Real),
		Imag: new(big.Float).Neg(z.Imag),
	}
}

// AbsSquared returns |z|^2.
func (z *Complex) AbsSquared() *big.Float {
	r2 := new(big.Float).Mul(z.Real, z.Real)
	i2 := new(big.Float).Mul(z.Imag, z.Imag)
	return r2.Add(r2, i2)
}

// Abs returns |z|.
func (z *Complex) Abs() *big.Float {
	sq := z.AbsSquared()
	return sq.Sqrt(sq)
}

// String renders z with enough digits to eyeball, not to round-trip.
func (z *Complex) String() string {
	return fmt.Sprintf("%s%+si", z.Real.Text('g', 12), z.Imag.Text('g', 12))
}
