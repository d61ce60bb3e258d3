// sbox.go - S-box construction and acceptance testing (spec §4.3).
//
// Each of the cipher's 24 round S-boxes is produced by Fisher-Yates
// shuffling the identity permutation with a SHAKE256-derived byte stream,
// then screened for bijectivity, non-linearity, differential uniformity,
// and algebraic degree. A candidate that fails any test is regenerated
// with an extended, retry-counted domain separation tag, up to the
// policy's retry budget; exhausting it surfaces ErrSBoxGenerationFailed.
package sbox

import (
	"github.com/ruc-crypto/ruc/metrics"
	"github.com/ruc-crypto/ruc/rucerr"
	"github.com/ruc-crypto/ruc/shake"
)

// Size is the number of entries in an S-box.
const Size = 256

// Box is a bijective permutation of {0, ..., 255}.
type Box [Size]byte

// Apply looks up x in the S-box.
func (b Box) Apply(x byte) byte {
	return b[x]
}

// Build derives the round-r S-box for master key k under policy, retrying
// with an extended domain-separation tag as described in spec §4.3.
func Build(k []byte, round uint16, policy Policy) (Box, error) {
	roundBytes := shake.U16BE(round)

	candidate, ok := tryShuffle(k, roundBytes, nil)
	if ok && accept(candidate, policy) {
		return candidate, nil
	}

	for retry := 1; retry <= policy.MaxRetries; retry++ {
		metrics.SBoxRetries.Inc()
		retryBytes := shake.U16BE(uint16(retry))
		candidate, ok = tryShuffle(k, roundBytes, retryBytes)
		if ok && accept(candidate, policy) {
			return candidate, nil
		}
	}
	return Box{}, rucerr.ErrSBoxGenerationFailed
}

// tryShuffle requests 512 bytes of SHAKE256 output under tag "RUC-SBOX"
// and the given extra domain-separation bytes, and Fisher-Yates shuffles
// the identity permutation with them. ok is false only if the result is
// not a valid permutation, which should never happen by construction but
// is checked defensively before the more expensive acceptance tests run.
func tryShuffle(k []byte, roundBytes, retryBytes []byte) (Box, bool) {
	var stream [512]byte
	if retryBytes == nil {
		shake.Derive(stream[:], k, shake.TagSBox, roundBytes)
	} else {
		shake.Derive(stream[:], k, shake.TagSBox, roundBytes, retryBytes)
	}

	var perm Box
	for i := 0; i < Size; i++ {
		perm[i] = byte(i)
	}
	for i := Size - 1; i >= 1; i-- {
		off := 2 * (Size - 1 - i)
		v := uint16(stream[off])<<8 | uint16(stream[off+1])
		j := int(v % uint16(i+1))
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm, isPermutation(perm)
}

func isPermutation(perm Box) bool {
	var seen [Size]bool
	for _, v := range perm {
		if seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// accept evaluates all four acceptance tests named in spec §4.3 against
// policy: bijectivity, non-linearity, differential uniformity, and
// algebraic degree (the spec's prose says "three acceptance tests" but
// then enumerates four; this implementation takes the enumerated list as
// authoritative and requires all four, the stricter reading).
func accept(perm Box, policy Policy) bool {
	if !isPermutation(perm) {
		return false
	}
	if Nonlinearity(perm) < policy.MinNonlinearity {
		return false
	}
	if DifferentialUniformity(perm) > policy.MaxDifferential {
		return false
	}
	if AlgebraicDegree(perm) < policy.MinDegree {
		return false
	}
	return true
}
