package main

import (
	"testing"

	"Titan-Verify/batemanhorn"
	"Titan-Verify/sieve"
)

func TestTraceWanted(t *testing.T) {
	cases := []struct {
		p    uint64
		want bool
	}{
		{2, true},
		{53, true},
		{59, false},  // shield past the cutoff
		{283, true},  // first split primes stay visible
		{659, true},
		{941, false}, // split trace stops after 659
	}
	for _, tc := range cases {
		term := batemanhorn.Term{P: tc.p, Class: sieve.Classify(tc.p)}
		if got := traceWanted(term); got != tc.want {
			t.Fatalf("traceWanted(%d) = %t, want %t", tc.p, got, tc.want)
		}
	}
}
