// Package fp provides 64-bit prime-field scalar arithmetic and dense
// polynomial arithmetic over F_p, including the squarefree test, the
// Ben-Or irreducibility test, and distinct-degree factorization. All
// moduli are expected to be odd primes below 2^63.
package fp

import "math/bits"

// Add returns a + b mod q.
func Add(a, b, q uint64) uint64 {
	a %= q
	b %= q
	sum := a + b
	if sum >= q || sum < a {
		sum -= q
	}
	return sum
}

// Sub returns a - b mod q.
func Sub(a, b, q uint64) uint64 {
	a %= q
	b %= q
	if a >= b {
		return a - b
	}
	return a + q - b
}

// Mul returns a * b mod q using a full 128-bit product.
func Mul(a, b, q uint64) uint64 {
	a %= q
	b %= q
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, q)
	return rem
}

// Pow returns a^e mod q by square-and-multiply.
func Pow(a, e, q uint64) uint64 {
	if q == 1 {
		return 0
	}
	result := uint64(1 % q)
	base := a % q
	for e > 0 {
		if e&1 == 1 {
			result = Mul(result, base, q)
		}
		e >>= 1
		if e > 0 {
			base = Mul(base, base, q)
		}
	}
	return result
}

// Inv returns the inverse of a mod prime q via Fermat. It panics on zero.
func Inv(a, q uint64) uint64 {
	if a%q == 0 {
		panic("fp: inverse of zero")
	}
	return Pow(a, q-2, q)
}
