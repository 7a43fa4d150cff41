// obstruction verifies the local obstruction picture of Q(x) = x^47 - (x-1)^47
// end to end: brute-force root counts against theory, the pointwise invariant
// Q(n) = 1 (mod 47), the absence of divisors below the smallest bad prime,
// and the density of bad moduli.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"Titan-Verify/obstruction"
	"Titan-Verify/prof"
	"Titan-Verify/sieve"
)

// tableCutoff bounds the per-prime rows printed for the omega check; split
// primes are always shown since they carry the nontrivial counts.
const tableCutoff = 53

func main() {
	pmax := flag.Uint64("pmax", 6299, "brute-force omega(p) for primes up to this bound")
	nmax := flag.Uint64("nmax", 100000, "check Q(n) = 1 (mod 47) for n up to this bound")
	divmax := flag.Uint64("divmax", 10000, "check small divisors of Q(n) for n up to this bound")
	qmax := flag.Uint64("qmax", 50000, "count bad moduli up to this bound")
	flag.Parse()

	pass := true

	smallest := sieve.SmallestBadPrime()
	if smallest == 283 {
		fmt.Printf("Smallest prime = 1 (mod 47): %d\n\n", smallest)
	} else {
		fmt.Printf("Smallest prime = 1 (mod 47): %d, want 283\n\n", smallest)
		pass = false
	}

	start := time.Now()
	rows, ok := obstruction.VerifyOmega(*pmax)
	prof.Track(start, "omega brute force")
	fmt.Printf("Root counts omega(p) for primes up to %d:\n", *pmax)
	fmt.Println("       p  class     theory  brute  status")
	mismatches := 0
	for _, row := range rows {
		if !row.OK {
			mismatches++
		}
		if row.P > tableCutoff && row.Class != sieve.Split && row.OK {
			continue
		}
		status := "ok"
		if !row.OK {
			status = "FAIL"
		}
		fmt.Printf("%8d  %-8s  %6d  %5d  %s\n", row.P, row.Class, row.Theory, row.Brute, status)
	}
	fmt.Printf("  %d primes checked, %d mismatches\n\n", len(rows), mismatches)
	if !ok {
		pass = false
	}

	start = time.Now()
	n, ok := obstruction.VerifyMod47(*nmax)
	prof.Track(start, "mod-47 invariant")
	if ok {
		fmt.Printf("Q(n) = 1 (mod 47) holds for all n <= %d\n\n", n)
	} else {
		fmt.Printf("Q(n) = 1 (mod 47) FAILS at n = %d\n\n", n)
		pass = false
	}

	start = time.Now()
	hit, ok := obstruction.VerifyNoSmallDivisors(*divmax)
	prof.Track(start, "small divisors")
	if ok {
		fmt.Printf("No prime below %d divides Q(n) for 2 <= n <= %d\n\n", smallest, *divmax)
	} else {
		fmt.Printf("Small divisor found: %d | Q(%d)\n\n", hit.P, hit.N)
		pass = false
	}

	start = time.Now()
	d := obstruction.CountBadModuli(*qmax)
	prof.Track(start, "bad moduli density")
	fmt.Printf("Moduli up to %d: %d bad (%.4f%%), %.4f%% null\n\n", d.QMax, d.Bad, d.BadPct, d.NullPct)

	prof.Report(os.Stdout)
	if !pass {
		fmt.Println("FAIL")
		os.Exit(1)
	}
	fmt.Println("PASS")
}
