package expsum

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/tuneinsight/lattigo/v4/utils"
	"golang.org/x/crypto/sha3"
)

// deriveKey expands a textual label and the prime into a PRNG key with
// SHAKE-256, so that the same (label, p) always yields the same
// coefficient set.
func deriveKey(label string, p uint64) []byte {
	h := sha3.NewShake256()
	if _, err := h.Write([]byte("titan/expsum/" + label)); err != nil {
		panic(fmt.Errorf("expsum: write label: %w", err))
	}
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], p)
	if _, err := h.Write(buf[:]); err != nil {
		panic(fmt.Errorf("expsum: write prime: %w", err))
	}
	key := make([]byte, 32)
	if _, err := h.Read(key); err != nil {
		panic(fmt.Errorf("expsum: read key: %w", err))
	}
	return key
}

// SampleCoefficients draws count distinct coefficients a in [1, p-1],
// deterministically from the (label, p) seed. It errors when count
// exceeds p-1 or the PRNG cannot be constructed.
func SampleCoefficients(label string, p uint64, count int) ([]uint64, error) {
	if p < 2 {
		return nil, fmt.Errorf("expsum: prime %d too small", p)
	}
	if uint64(count) > p-1 {
		return nil, fmt.Errorf("expsum: cannot draw %d distinct coefficients mod %d", count, p)
	}
	prng, err := utils.NewKeyedPRNG(deriveKey(label, p))
	if err != nil {
		return nil, fmt.Errorf("expsum: keyed prng: %w", err)
	}
	seen := make(map[uint64]struct{}, count)
	out := make([]uint64, 0, count)
	buf := make([]byte, 8)
	mod := new(big.Int).SetUint64(p - 1)
	r := new(big.Int)
	for len(out) < count {
		if _, err := prng.Read(buf); err != nil {
			return nil, fmt.Errorf("expsum: prng read: %w", err)
		}
		r.SetBytes(buf)
		a := r.Mod(r, mod).Uint64() + 1 // in [1, p-1]
		if _, dup := seen[a]; dup {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out, nil
}
