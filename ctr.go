// ctr.go - counter mode (spec §4.7): blocks are independent, each derived
// from a fresh clone of the message-initial state folded with the block
// counter, so encryption and decryption may be parallelised across
// blocks without changing the output. AEAD mode (aead.go) reuses
// ctrTransform directly to encrypt its payload under a derived sub-key.
package ruc

import (
	"github.com/ruc-crypto/ruc/register"
	"github.com/ruc-crypto/ruc/rucerr"
	"github.com/ruc-crypto/ruc/shake"
)

// EncryptCTR encrypts plaintext under km with the given 16-byte nonce and
// returns the envelope `nonce || ciphertext`, padding plaintext to a
// multiple of BlockSize with PKCS#7 first.
func EncryptCTR(km *KeyMaterial, nonce, plaintext []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		return nil, rucerr.ErrInvalidNonceLength
	}

	ciphertext, err := ctrTransform(km, nonce, pkcs7Pad(plaintext))
	if err != nil {
		return nil, err
	}

	envelope := make([]byte, NonceSize+len(ciphertext))
	copy(envelope, nonce)
	copy(envelope[NonceSize:], ciphertext)
	return envelope, nil
}

// DecryptCTR reverses EncryptCTR, rejecting envelopes that are too short
// or whose padding is malformed.
func DecryptCTR(km *KeyMaterial, envelope []byte) ([]byte, error) {
	if len(envelope) < NonceSize+BlockSize || (len(envelope)-NonceSize)%BlockSize != 0 {
		return nil, rucerr.ErrInvalidCiphertextLength
	}

	nonce := envelope[:NonceSize]
	padded, err := ctrTransform(km, nonce, envelope[NonceSize:])
	if err != nil {
		return nil, err
	}
	return pkcs7Unpad(padded)
}

// ctrTransform runs CTR mode over data, which must already be a non-zero
// multiple of BlockSize. CTR is its own inverse, so the same function
// encrypts and decrypts.
func ctrTransform(km *KeyMaterial, nonce, data []byte) ([]byte, error) {
	if len(data) == 0 || len(data)%BlockSize != 0 {
		return nil, rucerr.ErrInvalidCiphertextLength
	}

	initial, err := ctrInitialState(km, nonce)
	if err != nil {
		return nil, err
	}

	out := make([]byte, len(data))
	for n := uint64(0); n*uint64(BlockSize) < uint64(len(data)); n++ {
		off := n * uint64(BlockSize)
		var block [BlockSize]byte
		copy(block[:], data[off:off+uint64(BlockSize)])

		res := ctrBlockKeystream(initial.Clone(), km, n, block)
		copy(out[off:], res[:])
	}
	return out, nil
}

// ctrInitialState derives IV_32 from the nonce and mixes it into the
// per-message initial state once.
func ctrInitialState(km *KeyMaterial, nonce []byte) (*State, error) {
	var iv [32]byte
	shake.Derive(iv[:], nonce, shake.TagCTRIV)
	return km.MixIV(iv[:])
}

// ctrBlockKeystream folds the block counter into clone's R[0] and runs the
// round engine without the Step E feedback, then XORs the result with in.
// clone is discarded after this call: CTR blocks never accumulate state
// across each other.
func ctrBlockKeystream(clone *State, km *KeyMaterial, n uint64, in [BlockSize]byte) [BlockSize]byte {
	var fold [register.Size]byte
	shake.Sum(fold[:], shake.U64BE(n), []byte(shake.TagCTRCounter))
	clone.s.R[0] = clone.s.R[0].Xor(register.FromBytes(fold[:]))

	keystream := roundEngine(clone, km, n)
	var out [BlockSize]byte
	for i := range out {
		out[i] = in[i] ^ keystream[i]
	}
	return out
}
