// state.go - the IV mixer (spec §4.5): expands a 32-byte IV into the
// per-message initial state by XORing rotated copies of the IV into the
// key-expanded registers, then running three rounds of cross-diffusion.
// Each block then works from its own Clone of the initial state, never
// the initial state itself.
package state

import (
	"github.com/ruc-crypto/ruc/register"
	"github.com/ruc-crypto/ruc/rucerr"
	"github.com/ruc-crypto/ruc/shake"
)

// IVSize is the required length of an IV, in bytes (256 bits).
const IVSize = 32

const crossDiffusionRounds = 3

// State holds the seven 512-bit state registers R[0..6].
type State struct {
	R [7]register.Register
}

// Mix derives the per-message initial state from the key-expanded
// registers and a 32-byte IV.
func Mix(keyRegisters [7]register.Register, iv []byte) (*State, error) {
	if len(iv) != IVSize {
		return nil, rucerr.ErrInvalidIVLength
	}

	s := &State{R: keyRegisters}

	var ivExpandedBytes [register.Size]byte
	shake.Derive(ivExpandedBytes[:], iv, shake.TagIVExpand)
	ivExpanded := register.FromBytes(ivExpandedBytes[:])

	for i := 0; i < 7; i++ {
		s.R[i] = s.R[i].Xor(ivExpanded.Rol(uint(i*73) % 512))
	}

	for round := 0; round < crossDiffusionRounds; round++ {
		var next [7]register.Register
		for i := 0; i < 7; i++ {
			next[i] = s.R[i].
				Xor(s.R[(i+1)%7].Rol(17)).
				Xor(s.R[(i+3)%7].Rol(41))
		}
		s.R = next
	}

	return s, nil
}

// Clone returns an independent copy of s, safe for a single block's
// working state (spec §5: concurrent encryption tasks must not share a
// working copy).
func (s *State) Clone() *State {
	clone := &State{R: s.R}
	return clone
}

// Equal reports whether s and other hold the same seven registers.
func (s *State) Equal(other *State) bool {
	return s.R == other.R
}
