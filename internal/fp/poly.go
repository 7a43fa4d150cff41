package fp

// Poly is a dense little-endian coefficient vector over F_q. The zero
// polynomial is represented as {0} after trimming.
type Poly []uint64

// Trim drops leading zero coefficients and reduces every entry mod q.
func (p Poly) Trim(q uint64) Poly {
	if len(p) == 0 {
		return Poly{0}
	}
	idx := len(p) - 1
	for idx > 0 {
		if p[idx]%q != 0 {
			break
		}
		idx--
	}
	out := make(Poly, idx+1)
	for i := 0; i <= idx; i++ {
		out[i] = p[i] % q
	}
	return out
}

// Degree returns the degree of p, with the convention deg 0 = 0 for the
// zero polynomial (use IsZero to distinguish).
func (p Poly) Degree(q uint64) int {
	t := p.Trim(q)
	return len(t) - 1
}

// IsZero reports whether p is the zero polynomial mod q.
func (p Poly) IsZero(q uint64) bool {
	for _, c := range p {
		if c%q != 0 {
			return false
		}
	}
	return true
}

// Clone returns a copy of p.
func (p Poly) Clone() Poly {
	out := make(Poly, len(p))
	copy(out, p)
	return out
}

// Eval returns p(x) mod q by Horner's rule.
func (p Poly) Eval(x, q uint64) uint64 {
	var acc uint64
	for i := len(p) - 1; i >= 0; i-- {
		acc = Add(Mul(acc, x, q), p[i], q)
	}
	return acc
}

// PolyAdd returns a + b mod q, trimmed.
func PolyAdd(a, b Poly, q uint64) Poly {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make(Poly, n)
	for i := 0; i < n; i++ {
		var ai, bi uint64
		if i < len(a) {
			ai = a[i]
		}
		if i < len(b) {
			bi = b[i]
		}
		out[i] = Add(ai, bi, q)
	}
	return out.Trim(q)
}

// PolySub returns a - b mod q, trimmed.
func PolySub(a, b Poly, q uint64) Poly {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make(Poly, n)
	for i := 0; i < n; i++ {
		var ai, bi uint64
		if i < len(a) {
			ai = a[i]
		}
		if i < len(b) {
			bi = b[i]
		}
		out[i] = Sub(ai, bi, q)
	}
	return out.Trim(q)
}

// PolyMul returns a * b mod q by schoolbook multiplication.
func PolyMul(a, b Poly, q uint64) Poly {
	if len(a) == 0 || len(b) == 0 {
		return Poly{0}
	}
	out := make(Poly, len(a)+len(b)-1)
	for i := 0; i < len(a); i++ {
		ai := a[i] % q
		if ai == 0 {
			continue
		}
		for j := 0; j < len(b); j++ {
			bj := b[j] % q
			if bj == 0 {
				continue
			}
			out[i+j] = Add(out[i+j], Mul(ai, bj, q), q)
		}
	}
	return out.Trim(q)
}

// PolyDivMod returns the quotient and remainder of a / b mod q.
// It panics if b is the zero polynomial.
func PolyDivMod(a, b Poly, q uint64) (Poly, Poly) {
	A := a.Trim(q)
	B := b.Trim(q)
	if B.IsZero(q) {
		panic("fp: division by zero polynomial")
	}
	if len(A) < len(B) {
		return Poly{0}, A
	}
	rem := A.Clone()
	quot := make(Poly, len(A)-len(B)+1)
	invLead := Inv(B[len(B)-1], q)
	for i := len(A) - 1; i >= len(B)-1; i-- {
		coeff := rem[i]
		if coeff != 0 {
			coeff = Mul(coeff, invLead, q)
			quot[i-(len(B)-1)] = coeff
			for j := 0; j < len(B); j++ {
				rem[i-j] = Sub(rem[i-j], Mul(coeff, B[len(B)-1-j], q), q)
			}
		}
		if i == len(B)-1 {
			break
		}
	}
	return quot.Trim(q), Poly(rem[:len(B)-1]).Trim(q)
}

// PolyMod returns a mod b in F_q[x].
func PolyMod(a, b Poly, q uint64) Poly {
	_, r := PolyDivMod(a, b, q)
	return r
}

// PolyGCD returns the monic gcd of a and b mod q.
func PolyGCD(a, b Poly, q uint64) Poly {
	A := a.Trim(q)
	B := b.Trim(q)
	for !B.IsZero(q) {
		_, r := PolyDivMod(A, B, q)
		A, B = B, r
	}
	return Monic(A, q)
}

// Monic scales p by the inverse of its leading coefficient.
func Monic(p Poly, q uint64) Poly {
	t := p.Trim(q)
	if t.IsZero(q) {
		return t
	}
	lead := t[len(t)-1]
	if lead == 1 {
		return t
	}
	inv := Inv(lead, q)
	out := make(Poly, len(t))
	for i, c := range t {
		out[i] = Mul(c, inv, q)
	}
	return out
}

// PolyPowMod returns base^exp mod (modulus, q).
func PolyPowMod(base Poly, exp uint64, modulus Poly, q uint64) Poly {
	result := Poly{1}
	b := PolyMod(base.Trim(q), modulus, q)
	m := modulus.Trim(q)
	for exp > 0 {
		if exp&1 == 1 {
			result = PolyMod(PolyMul(result, b, q), m, q)
		}
		exp >>= 1
		if exp > 0 {
			b = PolyMod(PolyMul(b, b, q), m, q)
		}
	}
	return result.Trim(q)
}

// Derivative returns the formal derivative of p mod q.
func Derivative(p Poly, q uint64) Poly {
	if len(p) <= 1 {
		return Poly{0}
	}
	out := make(Poly, len(p)-1)
	for i := 1; i < len(p); i++ {
		out[i-1] = Mul(p[i], uint64(i)%q, q)
	}
	return out.Trim(q)
}

// IsSquarefree reports whether gcd(f, f') is constant mod q. The zero
// polynomial and constants are not squarefree by this convention.
func IsSquarefree(f Poly, q uint64) bool {
	t := f.Trim(q)
	if len(t) <= 1 {
		return false
	}
	d := Derivative(t, q)
	if d.IsZero(q) {
		return false
	}
	g := PolyGCD(t, d, q)
	return len(g) == 1
}
