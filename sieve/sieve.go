// Package sieve provides the prime enumeration and prime classification
// used across the verification commands. A "bad" prime is a prime
// p = 1 (mod 47); these are the only primes at which Q(x) = x^47 - (x-1)^47
// has roots, and the only ones where the exponential-sum bound is
// nontrivial.
package sieve

// BadModulus is the residue modulus that splits the primes into
// shielding, ramified, and splitting classes.
const BadModulus = 47

// Primes returns all primes up to and including n by Eratosthenes.
func Primes(n uint64) []uint64 {
	if n < 2 {
		return nil
	}
	composite := make([]bool, n+1)
	var out []uint64
	for i := uint64(2); i <= n; i++ {
		if composite[i] {
			continue
		}
		out = append(out, i)
		for j := i * i; j <= n; j += i {
			composite[j] = true
		}
	}
	return out
}

// BadPrimes returns the primes p <= limit with p = 1 (mod 47).
func BadPrimes(limit uint64) []uint64 {
	var out []uint64
	for _, p := range Primes(limit) {
		if p%BadModulus == 1 {
			out = append(out, p)
		}
	}
	return out
}

// SmallestBadPrime returns the least prime = 1 (mod 47). The paper's
// shield property hinges on this being 283 = 6*47 + 1.
func SmallestBadPrime() uint64 {
	for limit := uint64(512); ; limit *= 2 {
		if bad := BadPrimes(limit); len(bad) > 0 {
			return bad[0]
		}
	}
}

// Class describes how a prime interacts with Q mod p.
type Class int

const (
	// Shield primes (p != 47, p != 1 mod 47) never divide Q(n).
	Shield Class = iota
	// Ramified is the single prime 47, where Q(n) = 1 identically.
	Ramified
	// Split primes (p = 1 mod 47) give Q exactly 46 roots mod p.
	Split
)

// String implements fmt.Stringer.
func (c Class) String() string {
	switch c {
	case Shield:
		return "shield"
	case Ramified:
		return "ramified"
	case Split:
		return "split"
	default:
		return "unknown"
	}
}

// Classify assigns a prime to its class. The argument must be prime.
func Classify(p uint64) Class {
	switch {
	case p == BadModulus:
		return Ramified
	case p%BadModulus == 1:
		return Split
	default:
		return Shield
	}
}
