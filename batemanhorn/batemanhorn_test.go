package batemanhorn

import (
	"math"
	"testing"

	"Titan-Verify/sieve"
)

func TestComputeShieldOnly(t *testing.T) {
	// Primes up to 10 are all shield, so each factor is 1/(1-1/p):
	// 2 * 3/2 * 5/4 * 7/6 = 4.375.
	prod := Compute(10, nil)
	if math.Abs(prod.CQ-4.375) > 1e-12 {
		t.Fatalf("C_Q truncated at 10 = %v, want 4.375", prod.CQ)
	}
	if prod.Shield != 4 || prod.Split != 0 {
		t.Fatalf("shield=%d split=%d", prod.Shield, prod.Split)
	}
}

func TestComputeFirstSplitPrime(t *testing.T) {
	var traced []Term
	prod := Compute(300, func(term Term) { traced = append(traced, term) })
	if prod.Split != 1 {
		t.Fatalf("split count = %d, want 1 (just 283)", prod.Split)
	}
	if len(traced) != len(sieve.Primes(300)) {
		t.Fatalf("traced %d terms for %d primes", len(traced), len(sieve.Primes(300)))
	}
	var split *Term
	for i := range traced {
		if traced[i].P == 283 {
			split = &traced[i]
		}
	}
	if split == nil {
		t.Fatalf("no trace term for 283")
	}
	if split.Omega != 46 || split.Class != sieve.Split {
		t.Fatalf("term for 283: omega=%d class=%s", split.Omega, split.Class)
	}
	// (1 - 46/283) / (1 - 1/283) = 237/282
	want := 237.0 / 282.0
	if math.Abs(split.Factor-want) > 1e-12 {
		t.Fatalf("factor at 283 = %v, want %v", split.Factor, want)
	}
}

func TestPredict(t *testing.T) {
	ref := ReferencePoint{N: 1e6, Actual: 12000}
	pred := Predict(1, ref, 50000)
	if pred.Predicted <= 0 || pred.Predicted >= ref.N {
		t.Fatalf("predicted count %v out of range", pred.Predicted)
	}
	// The integrand is below 1/ln(2^46), so the integral stays under
	// N / (46 ln 2).
	if pred.Predicted > ref.N/(46*math.Ln2) {
		t.Fatalf("predicted count %v above the integrand ceiling", pred.Predicted)
	}
	double := Predict(2, ref, 50000)
	if math.Abs(double.Predicted-2*pred.Predicted) > 1e-6*pred.Predicted {
		t.Fatalf("prediction not linear in C_Q: %v vs %v", double.Predicted, 2*pred.Predicted)
	}
	if pred.N != ref.N || pred.Actual != ref.Actual {
		t.Fatalf("reference point not carried through")
	}
}

func TestPredictRelErr(t *testing.T) {
	pred := Predict(1, ReferencePoint{N: 1e5, Actual: 1000}, 10000)
	want := (float64(pred.Actual) - pred.Predicted) / pred.Predicted * 100
	if math.Abs(pred.RelErrPct-want) > 1e-9 {
		t.Fatalf("rel err = %v, want %v", pred.RelErrPct, want)
	}
}

func TestSieveWeight(t *testing.T) {
	// No split prime below 283, so W(Q) keeps every factor at 1, while the
	// generic degree-46 polynomial loses a factor 1/p at each prime p <= 47.
	w := SieveWeight(50)
	if w.WQ != 1 {
		t.Fatalf("W(Q) up to 50 = %v, want 1", w.WQ)
	}
	if w.Generic <= 0 || w.Generic > 1e-17 {
		t.Fatalf("W(generic) up to 50 = %v", w.Generic)
	}
	// Past the first split prime the weight finally drops below 1.
	w = SieveWeight(300)
	want := 1 - 46.0/283.0
	if math.Abs(w.WQ-want) > 1e-12 {
		t.Fatalf("W(Q) up to 300 = %v, want %v", w.WQ, want)
	}
}
