// Package irreduce decides irreducibility over Q of integer polynomials by
// modular certificates. A polynomial is only ever CLAIMED irreducible with
// an explicit certificate: either it is irreducible modulo some good
// reduction prime, or the factor-degree patterns modulo several primes rule
// out every proper factor degree (Gauss's lemma transfers both facts to Q,
// up to integer content). When neither certificate materializes and no
// rational root was found, the verdict is Unknown, never a silent pass.
package irreduce

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/tuneinsight/lattigo/v4/ring"

	"Titan-Verify/internal/fp"
	"Titan-Verify/qpoly"
	"Titan-Verify/sieve"
)

// Verdict is the outcome of a check.
type Verdict int

const (
	// Unknown means no certificate either way was found.
	Unknown Verdict = iota
	// Irreducible means a modular certificate proves irreducibility over Q.
	Irreducible
	// Reducible means an explicit factor was exhibited.
	Reducible
)

// String implements fmt.Stringer.
func (v Verdict) String() string {
	switch v {
	case Irreducible:
		return "irreducible"
	case Reducible:
		return "reducible"
	default:
		return "unknown"
	}
}

// Certificate records the verdict and the evidence behind it.
type Certificate struct {
	Verdict Verdict
	// Kind names the certificate: "degree-1", "rational-root",
	// "irreducible-mod-p", or "degree-sieve".
	Kind string
	// Witness is the reduction prime for mod-p certificates.
	Witness uint64
	// Root is the exhibited rational root for reducible verdicts.
	Root *big.Int
	// Primes lists the reduction primes whose patterns were combined.
	Primes []uint64
	// Degrees lists the proper factor degrees the sieve could not rule
	// out; empty for decided verdicts.
	Degrees []int
}

// DefaultWitnesses is the number of usable reduction primes examined
// before giving up on a degree-sieve certificate.
const DefaultWitnesses = 8

// smallPrimeLimit bounds the first-choice pool of reduction primes.
const smallPrimeLimit = 2000

// CheckShift runs Check on Q(x) - h.
func CheckShift(h *big.Int, witnesses int) (Certificate, error) {
	return Check(qpoly.ShiftedCoeffs(h), witnesses)
}

// Check decides irreducibility over Q of the little-endian integer
// polynomial coeffs using up to the given number of reduction primes
// (DefaultWitnesses when witnesses <= 0).
func Check(coeffs []*big.Int, witnesses int) (Certificate, error) {
	if witnesses <= 0 {
		witnesses = DefaultWitnesses
	}
	f := trim(coeffs)
	deg := len(f) - 1
	if deg < 1 {
		return Certificate{}, fmt.Errorf("irreduce: degree %d polynomial", deg)
	}
	if deg == 1 {
		return Certificate{Verdict: Irreducible, Kind: "degree-1"}, nil
	}
	if root, ok := smallRoot(f); ok {
		return Certificate{Verdict: Reducible, Kind: "rational-root", Root: root}, nil
	}

	lead := f[len(f)-1]
	// Proper factor degrees still possible; starts as all of 1..deg-1.
	inter := new(big.Int)
	for d := 0; d <= deg; d++ {
		inter.SetBit(inter, d, 1)
	}

	cert := Certificate{Verdict: Unknown}
	used := 0
	for _, p := range witnessPrimes(witnesses, lead) {
		if used == witnesses {
			break
		}
		red := reduceMod(f, p)
		if len(red.Trim(p))-1 != deg {
			continue // degree dropped, bad reduction
		}
		pattern, err := fp.DistinctDegreePattern(red, p)
		if err != nil {
			continue // not squarefree mod p
		}
		used++
		cert.Primes = append(cert.Primes, p)
		if pattern.NumFactors() == 1 {
			cert.Verdict = Irreducible
			cert.Kind = "irreducible-mod-p"
			cert.Witness = p
			cert.Degrees = nil
			return cert, nil
		}
		inter.And(inter, subsetDegrees(pattern, deg))
		if properDegrees(inter, deg) == nil {
			cert.Verdict = Irreducible
			cert.Kind = "degree-sieve"
			cert.Degrees = nil
			return cert, nil
		}
	}
	if used == 0 {
		return cert, fmt.Errorf("irreduce: no usable reduction prime found")
	}
	cert.Degrees = properDegrees(inter, deg)
	return cert, nil
}

// trim drops leading zero coefficients, copying the rest.
func trim(coeffs []*big.Int) []*big.Int {
	idx := len(coeffs) - 1
	for idx > 0 && coeffs[idx].Sign() == 0 {
		idx--
	}
	out := make([]*big.Int, idx+1)
	for i := 0; i <= idx; i++ {
		out[i] = new(big.Int).Set(coeffs[i])
	}
	return out
}

// smallRoot checks the cheap root candidates 0, 1, and -1, which cover the
// control shifts (Q(0) = Q(1) = 1 makes x and x-1 divide Q - 1).
func smallRoot(f []*big.Int) (*big.Int, bool) {
	if f[0].Sign() == 0 {
		return big.NewInt(0), true
	}
	for _, r := range []int64{1, -1} {
		if evalInt(f, big.NewInt(r)).Sign() == 0 {
			return big.NewInt(r), true
		}
	}
	return nil, false
}

func evalInt(f []*big.Int, x *big.Int) *big.Int {
	acc := new(big.Int)
	for i := len(f) - 1; i >= 0; i-- {
		acc.Mul(acc, x)
		acc.Add(acc, f[i])
	}
	return acc
}

// witnessPrimes yields candidate reduction primes not dividing the leading
// coefficient: first the odd primes below smallPrimeLimit, then NTT-friendly
// 59-bit primes from lattigo when the small pool runs dry.
func witnessPrimes(want int, lead *big.Int) []uint64 {
	tmp := new(big.Int)
	mod := new(big.Int)
	var out []uint64
	for _, p := range sieve.Primes(smallPrimeLimit) {
		if p == 2 {
			continue
		}
		if tmp.Mod(lead, mod.SetUint64(p)).Sign() == 0 {
			continue
		}
		out = append(out, p)
	}
	// A degree-46 reduction can be non-squarefree at several small primes;
	// top the pool up with large primes so `want` usable witnesses remain.
	extra := want/2 + 2
	for _, p := range ring.GenerateNTTPrimes(59, 1<<13, extra) {
		if tmp.Mod(lead, mod.SetUint64(p)).Sign() != 0 {
			out = append(out, p)
		}
	}
	return out
}

// reduceMod reduces an integer polynomial into F_p.
func reduceMod(f []*big.Int, p uint64) fp.Poly {
	mod := new(big.Int).SetUint64(p)
	tmp := new(big.Int)
	out := make(fp.Poly, len(f))
	for i, c := range f {
		out[i] = tmp.Mod(c, mod).Uint64()
	}
	return out
}

// subsetDegrees returns the bitset of degrees expressible as sums of the
// irreducible factor degrees in the pattern (bit d set <=> some product of
// the mod-p factors has degree d).
func subsetDegrees(pattern fp.DegreePattern, deg int) *big.Int {
	set := big.NewInt(1)
	shifted := new(big.Int)
	for _, d := range pattern.Factors() {
		shifted.Lsh(set, uint(d))
		set.Or(set, shifted)
	}
	// Mask to 0..deg.
	mask := new(big.Int).Lsh(big.NewInt(1), uint(deg+1))
	mask.Sub(mask, big.NewInt(1))
	return set.And(set, mask)
}

// properDegrees lists the set bits of the intersection in 1..deg-1.
func properDegrees(set *big.Int, deg int) []int {
	var out []int
	for d := 1; d < deg; d++ {
		if set.Bit(d) == 1 {
			out = append(out, d)
		}
	}
	sort.Ints(out)
	return out
}
