// Package obstruction verifies the complete local obstruction picture of
// Q(x) = x^47 - (x-1)^47: the root counts omega(p) per prime class, the
// pointwise invariant Q(n) = 1 (mod 47), the absence of small prime
// divisors of Q(n), and the density of "bad" moduli (all prime factors
// = 1 mod 47).
package obstruction

import (
	"Titan-Verify/qpoly"
	"Titan-Verify/sieve"
)

// OmegaBruteForce counts the n in [0, p) with Q(n) = 0 (mod p).
func OmegaBruteForce(p uint64) int {
	count := 0
	for n := uint64(0); n < p; n++ {
		if qpoly.EvalMod(n, p) == 0 {
			count++
		}
	}
	return count
}

// OmegaTheory returns the root count the obstruction theorem predicts:
// 46 at split primes, 0 everywhere else (including the ramified prime 47).
func OmegaTheory(p uint64) int {
	if sieve.Classify(p) == sieve.Split {
		return qpoly.Degree
	}
	return 0
}

// OmegaRow is one prime's brute-force/theory comparison.
type OmegaRow struct {
	P      uint64
	Theory int
	Brute  int
	Class  sieve.Class
	OK     bool
}

// VerifyOmega brute-forces omega(p) for every prime up to pmax and
// compares against theory. It returns all rows and whether they all match.
func VerifyOmega(pmax uint64) ([]OmegaRow, bool) {
	primes := sieve.Primes(pmax)
	rows := make([]OmegaRow, 0, len(primes))
	ok := true
	for _, p := range primes {
		row := OmegaRow{
			P:      p,
			Theory: OmegaTheory(p),
			Brute:  OmegaBruteForce(p),
			Class:  sieve.Classify(p),
		}
		row.OK = row.Theory == row.Brute
		if !row.OK {
			ok = false
		}
		rows = append(rows, row)
	}
	return rows, ok
}

// VerifyMod47 checks Q(n) = 1 (mod 47) for n in [0, nmax]. On failure it
// returns the first offending n and false.
func VerifyMod47(nmax uint64) (uint64, bool) {
	for n := uint64(0); n <= nmax; n++ {
		if qpoly.EvalMod(n, sieve.BadModulus) != 1 {
			return n, false
		}
	}
	return nmax, true
}

// DivisorHit reports a small prime dividing some Q(n).
type DivisorHit struct {
	N uint64
	P uint64
}

// VerifyNoSmallDivisors checks that no prime below the smallest bad prime
// divides Q(n) for n in [2, nmax]. It returns the first hit, if any.
func VerifyNoSmallDivisors(nmax uint64) (DivisorHit, bool) {
	small := sieve.Primes(sieve.SmallestBadPrime() - 1)
	for n := uint64(2); n <= nmax; n++ {
		for _, p := range small {
			if qpoly.EvalMod(n, p) == 0 {
				return DivisorHit{N: n, P: p}, false
			}
		}
	}
	return DivisorHit{}, true
}

// Density summarizes the bad-moduli count up to a limit.
type Density struct {
	QMax    uint64
	Bad     uint64
	BadPct  float64
	NullPct float64
}

// CountBadModuli counts the moduli q in [2, qmax] whose prime factors are
// all = 1 (mod 47). The complement ("null" moduli) is the set of moduli at
// which the obstruction kills every arithmetic progression.
func CountBadModuli(qmax uint64) Density {
	primes := sieve.Primes(qmax)
	badPrime := make(map[uint64]bool)
	for _, p := range primes {
		if p%sieve.BadModulus == 1 {
			badPrime[p] = true
		}
	}
	var bad uint64
	for q := uint64(2); q <= qmax; q++ {
		rest := q
		allBad := true
		for _, p := range primes {
			if p*p > rest {
				break
			}
			for rest%p == 0 {
				if !badPrime[p] {
					allBad = false
					break
				}
				rest /= p
			}
			if !allBad {
				break
			}
		}
		if allBad && rest > 1 && !badPrime[rest] {
			allBad = false
		}
		if allBad {
			bad++
		}
	}
	d := Density{QMax: qmax, Bad: bad}
	d.BadPct = 100 * float64(bad) / float64(qmax)
	d.NullPct = 100 - d.BadPct
	return d
}
