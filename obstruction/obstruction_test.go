package obstruction

import (
	"math"
	"testing"

	"Titan-Verify/sieve"
)

func TestOmegaRamified(t *testing.T) {
	if got := OmegaBruteForce(47); got != 0 {
		t.Fatalf("omega(47) = %d, want 0", got)
	}
	if got := OmegaTheory(47); got != 0 {
		t.Fatalf("theory omega(47) = %d, want 0", got)
	}
}

func TestOmegaSplit(t *testing.T) {
	if got := OmegaBruteForce(283); got != 46 {
		t.Fatalf("omega(283) = %d, want 46", got)
	}
	if got := OmegaTheory(283); got != 46 {
		t.Fatalf("theory omega(283) = %d, want 46", got)
	}
}

func TestOmegaShield(t *testing.T) {
	for _, p := range []uint64{2, 3, 5, 53, 101} {
		if got := OmegaBruteForce(p); got != 0 {
			t.Fatalf("omega(%d) = %d, want 0", p, got)
		}
	}
}

func TestVerifyOmega(t *testing.T) {
	rows, ok := VerifyOmega(300)
	if !ok {
		t.Fatalf("omega verification failed")
	}
	if len(rows) != len(sieve.Primes(300)) {
		t.Fatalf("%d rows for %d primes", len(rows), len(sieve.Primes(300)))
	}
	last := rows[len(rows)-1]
	if last.P != 293 || last.Class != sieve.Shield {
		t.Fatalf("last row p=%d class=%s", last.P, last.Class)
	}
	for _, row := range rows {
		if row.P == 283 && (row.Brute != 46 || row.Class != sieve.Split) {
			t.Fatalf("row for 283: brute=%d class=%s", row.Brute, row.Class)
		}
	}
}

func TestVerifyMod47(t *testing.T) {
	n, ok := VerifyMod47(2000)
	if !ok {
		t.Fatalf("Q(n) != 1 mod 47 at n = %d", n)
	}
	if n != 2000 {
		t.Fatalf("stopped at n = %d", n)
	}
}

func TestVerifyNoSmallDivisors(t *testing.T) {
	hit, ok := VerifyNoSmallDivisors(500)
	if !ok {
		t.Fatalf("prime %d divides Q(%d)", hit.P, hit.N)
	}
}

func TestCountBadModuli(t *testing.T) {
	// The only bad moduli up to 1000 are the split primes themselves:
	// 283, 659, 941 (283^2 is already out of range).
	d := CountBadModuli(1000)
	if d.Bad != 3 {
		t.Fatalf("bad moduli up to 1000 = %d, want 3", d.Bad)
	}
	if math.Abs(d.BadPct+d.NullPct-100) > 1e-9 {
		t.Fatalf("percentages do not add to 100: %v + %v", d.BadPct, d.NullPct)
	}
	// Below the smallest bad prime every modulus is null.
	d = CountBadModuli(200)
	if d.Bad != 0 {
		t.Fatalf("bad moduli up to 200 = %d, want 0", d.Bad)
	}
}
