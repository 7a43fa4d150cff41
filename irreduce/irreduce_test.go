package irreduce

import (
	"math/big"
	"testing"
)

func intPoly(coeffs ...int64) []*big.Int {
	out := make([]*big.Int, len(coeffs))
	for i, c := range coeffs {
		out[i] = big.NewInt(c)
	}
	return out
}

func TestCheckDegreeOne(t *testing.T) {
	cert, err := Check(intPoly(3, 2), 0)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if cert.Verdict != Irreducible || cert.Kind != "degree-1" {
		t.Fatalf("verdict %s kind %s for a linear polynomial", cert.Verdict, cert.Kind)
	}
}

func TestCheckRationalRoot(t *testing.T) {
	// x^2 - 1 has the root 1.
	cert, err := Check(intPoly(-1, 0, 1), 0)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if cert.Verdict != Reducible || cert.Kind != "rational-root" {
		t.Fatalf("verdict %s kind %s for x^2-1", cert.Verdict, cert.Kind)
	}
	if cert.Root.Cmp(big.NewInt(1)) != 0 {
		t.Fatalf("root = %s, want 1", cert.Root)
	}
	// x^3 + x has the root 0.
	cert, err = Check(intPoly(0, 1, 0, 1), 0)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if cert.Verdict != Reducible || cert.Root.Sign() != 0 {
		t.Fatalf("verdict %s root %s for x^3+x", cert.Verdict, cert.Root)
	}
}

func TestCheckIrreducibleModP(t *testing.T) {
	// x^2 + 1 is irreducible mod 3, the first witness prime.
	cert, err := Check(intPoly(1, 0, 1), 0)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if cert.Verdict != Irreducible {
		t.Fatalf("verdict %s for x^2+1", cert.Verdict)
	}
	if cert.Kind != "irreducible-mod-p" {
		t.Fatalf("kind %s for x^2+1", cert.Kind)
	}
	if cert.Witness == 0 {
		t.Fatalf("no witness recorded")
	}
}

func TestCheckUnknownForSwinnertonDyerStyle(t *testing.T) {
	// x^4 + 1 is irreducible over Q but reducible mod every prime, and its
	// factor degrees always allow a degree-2 product, so no modular
	// certificate exists.
	cert, err := Check(intPoly(1, 0, 0, 0, 1), 0)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if cert.Verdict != Unknown {
		t.Fatalf("verdict %s for x^4+1, want unknown", cert.Verdict)
	}
	found := false
	for _, d := range cert.Degrees {
		if d == 2 {
			found = true
		}
	}
	if !found {
		t.Fatalf("surviving degrees %v do not include 2", cert.Degrees)
	}
}

func TestCheckDegreeSieve(t *testing.T) {
	// x^4 + x + 1: no rational root, reducible mod some primes, but the
	// degree patterns across witnesses rule out every proper factor degree.
	cert, err := Check(intPoly(1, 1, 0, 0, 1), 0)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if cert.Verdict != Irreducible {
		t.Fatalf("verdict %s for x^4+x+1, degrees %v", cert.Verdict, cert.Degrees)
	}
}

func TestCheckConstantErrors(t *testing.T) {
	if _, err := Check(intPoly(5), 0); err == nil {
		t.Fatalf("no error for a constant polynomial")
	}
}

func TestCheckShiftControl(t *testing.T) {
	// Q(0) = 1, so Q(x) - 1 has the rational root 0.
	cert, err := CheckShift(big.NewInt(1), 0)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if cert.Verdict != Reducible || cert.Kind != "rational-root" {
		t.Fatalf("verdict %s kind %s for the control shift", cert.Verdict, cert.Kind)
	}
	if cert.Root.Sign() != 0 {
		t.Fatalf("root = %s, want 0", cert.Root)
	}
}

func TestCheckShiftIrreducible(t *testing.T) {
	if testing.Short() {
		t.Skip("degree-46 factorizations")
	}
	for _, h := range []int64{2, 3} {
		cert, err := CheckShift(big.NewInt(h), DefaultWitnesses)
		if err != nil {
			t.Fatalf("h=%d: %v", h, err)
		}
		if cert.Verdict != Irreducible {
			t.Fatalf("h=%d verdict %s, surviving degrees %v", h, cert.Verdict, cert.Degrees)
		}
	}
}

func TestWitnessPrimesTopUp(t *testing.T) {
	primes := witnessPrimes(DefaultWitnesses, big.NewInt(47))
	large := 0
	for _, p := range primes {
		if p == 2 || p == 47 {
			t.Fatalf("unusable witness prime %d", p)
		}
		if p > smallPrimeLimit {
			large++
		}
	}
	if large == 0 {
		t.Fatalf("no large top-up primes generated")
	}
}

func TestVerdictString(t *testing.T) {
	if Unknown.String() != "unknown" || Irreducible.String() != "irreducible" || Reducible.String() != "reducible" {
		t.Fatalf("verdict strings: %s %s %s", Unknown, Irreducible, Reducible)
	}
}
