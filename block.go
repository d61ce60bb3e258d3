// block.go - the Block API (spec §6) and the round engine it drives
// (spec §4.6): per-block selector priority ordering, the 24-round
// transform, keystream emission, and the state feedback step.
package ruc

import (
	"sort"

	"github.com/ruc-crypto/ruc/chacha20"
	"github.com/ruc-crypto/ruc/gf"
	"github.com/ruc-crypto/ruc/keyschedule"
	"github.com/ruc-crypto/ruc/register"
	"github.com/ruc-crypto/ruc/sbox"
	"github.com/ruc-crypto/ruc/shake"
	"github.com/ruc-crypto/ruc/state"
)

// BlockSize is the cipher's block width, in bytes (256 bits).
const BlockSize = 32

const roundCount = 24

// KeyMaterial holds everything derived once from a 64-byte master key:
// the key-expanded registers, the selector sequence, the round keys, and
// the round S-boxes. It is immutable after ExpandKey returns and safe for
// concurrent use by any number of encryption tasks (spec §5).
type KeyMaterial struct {
	m      *keyschedule.Material
	policy sbox.Policy
}

// ExpandKey derives a KeyMaterial from a 64-byte master key under the
// cipher's strict S-box acceptance policy.
func ExpandKey(key []byte) (*KeyMaterial, error) {
	return expandKeyWithPolicy(key, sbox.StrictPolicy())
}

func expandKeyWithPolicy(key []byte, policy sbox.Policy) (*KeyMaterial, error) {
	m, err := keyschedule.Expand(key, policy)
	if err != nil {
		return nil, err
	}
	return &KeyMaterial{m: m, policy: policy}, nil
}

// Wipe zeroes the retained copy of the master key.
func (km *KeyMaterial) Wipe() {
	km.m.Wipe()
}

// State holds a per-message working state: the seven mixed registers plus
// the IV they were mixed from, which the round engine's Step A needs on
// every block. A State produced by MixIV is the per-message initial
// state; CTR and AEAD clone it per block, CBC advances it in place.
type State struct {
	s  *state.State
	iv [state.IVSize]byte
}

// MixIV derives the per-message initial State from km and a 32-byte IV.
func (km *KeyMaterial) MixIV(iv []byte) (*State, error) {
	s, err := state.Mix(km.m.Registers, iv)
	if err != nil {
		return nil, err
	}
	st := &State{s: s}
	copy(st.iv[:], iv)
	return st, nil
}

// Clone returns an independent copy of st, safe for one block's working
// state.
func (st *State) Clone() *State {
	return &State{s: st.s.Clone(), iv: st.iv}
}

// EncryptBlock transforms one 32-byte plaintext block at block index n,
// advancing st's feedback in place.
func EncryptBlock(plaintext [BlockSize]byte, n uint64, st *State, km *KeyMaterial) [BlockSize]byte {
	keystream := roundEngine(st, km, n)
	var ciphertext [BlockSize]byte
	for i := range ciphertext {
		ciphertext[i] = plaintext[i] ^ keystream[i]
	}
	feedback(&st.s.R, ciphertext)
	return ciphertext
}

// DecryptBlock transforms one 32-byte ciphertext block at block index n,
// advancing st's feedback in place. It reuses the same transform as
// EncryptBlock because the keystream depends only on state, key, IV, and
// n, and XOR is self-inverse.
func DecryptBlock(ciphertext [BlockSize]byte, n uint64, st *State, km *KeyMaterial) [BlockSize]byte {
	keystream := roundEngine(st, km, n)
	var plaintext [BlockSize]byte
	for i := range plaintext {
		plaintext[i] = ciphertext[i] ^ keystream[i]
	}
	feedback(&st.s.R, ciphertext)
	return plaintext
}

// roundEngine runs spec §4.6 Steps A-C against st, mutating st.s.R through
// all 24 rounds, and returns the resulting 32-byte keystream. Step D (the
// XOR with plaintext/ciphertext) and Step E (feedback) are the caller's
// responsibility, since decrypt needs the ciphertext bytes for feedback
// regardless of whether it just produced or consumed them.
func roundEngine(st *State, km *KeyMaterial, n uint64) [BlockSize]byte {
	ordered := orderedSelectors(km, st.iv[:], n)

	var acc register.Accumulator
	for r := 0; r < roundCount; r++ {
		roundKeyLow32 := km.m.RoundKeys[r].Low32()
		roundSBox := km.m.SBoxes[r]

		for _, sel := range ordered {
			placeIdx := int((st.s.R[0].Low32() ^ uint32(sel) ^ roundKeyLow32) % 7)
			temp := sel * 2 // wraps mod 2^16 via uint16 overflow
			stateByte := st.s.R[placeIdx].TopByte()
			gfResult := gf.Mul(byte(temp&0xFF), stateByte) ^ km.m.KeyConst(sel)
			result := roundSBox.Apply(gfResult)

			reg := st.s.R[placeIdx]
			reg = reg.GFMulRegister(result)
			reg = reg.Xor(register.LiftByte(result, uint(sel%16)))
			low := reg.LowByte()
			reg = reg.XorLowByte(roundSBox.Apply(low))
			reg = reg.Rol(1)
			reg = reg.Xor(st.s.R[(placeIdx+1)%7])
			st.s.R[placeIdx] = reg

			acc.Add(result)
		}

		snapshot := st.s.R
		for i := 0; i < 7; i++ {
			st.s.R[i] = snapshot[i].Xor(snapshot[(i+1)%7]).Xor(snapshot[(i+2)%7])
		}
	}

	return emitKeystream(acc, st.s.R, n)
}

// emitKeystream derives the 32-byte keystream from the accumulator and the
// final register state.
func emitKeystream(acc register.Accumulator, r [7]register.Register, n uint64) [BlockSize]byte {
	accBytes := acc.Bytes()
	input := make([]byte, 0, len(accBytes)+7*register.Size+len(shake.TagKeystream)+8)
	input = append(input, accBytes[:]...)
	for _, reg := range r {
		b := reg.Bytes()
		input = append(input, b[:]...)
	}
	input = append(input, []byte(shake.TagKeystream)...)
	input = append(input, shake.U64BE(n)...)

	var keystream [BlockSize]byte
	shake.Sum(keystream[:], input)
	return keystream
}

// feedback folds the just-produced ciphertext block back into every
// register, rotated by a different amount per register.
func feedback(r *[7]register.Register, c [BlockSize]byte) {
	for i := 0; i < 7; i++ {
		shift := uint((i * 37) % 256)
		r[i] = r[i].Xor(register.LiftBytes(c[:], shift))
	}
}

// orderedSelectors computes this block's selector priority ordering: a
// ChaCha20 stream seeded from K, the IV, and n assigns each selector a
// priority mod 7, and the selectors are stable-sorted by it.
func orderedSelectors(km *KeyMaterial, iv []byte, n uint64) []uint16 {
	var seed [32]byte
	shake.Sum(seed[:], km.m.Key(), iv, shake.U64BE(n), []byte(shake.TagPriority))

	stream := chacha20.New(seed[:], make([]byte, chacha20.NonceSize))

	selectors := km.m.Selectors
	type keyed struct {
		sel uint16
		pri uint32
	}
	entries := make([]keyed, len(selectors))
	for j, sel := range selectors {
		entries[j] = keyed{sel: sel, pri: stream.ReadUint32BE() % 7}
	}

	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].pri < entries[b].pri
	})

	ordered := make([]uint16, len(entries))
	for i, e := range entries {
		ordered[i] = e.sel
	}
	return ordered
}
