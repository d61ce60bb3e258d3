// cbc.go - cipher-block chaining (spec §4.7): plaintext is XORed with the
// previous ciphertext block (or the IV for block 0) before entering the
// round engine, and the round engine's own Step E feedback is kept across
// blocks on top of that. CBC is inherently sequential.
package ruc

import "github.com/ruc-crypto/ruc/rucerr"

// EncryptCBC encrypts plaintext under km with the given 32-byte IV and
// returns the envelope `IV || ciphertext`.
func EncryptCBC(km *KeyMaterial, iv, plaintext []byte) ([]byte, error) {
	st, err := km.MixIV(iv)
	if err != nil {
		return nil, err
	}

	padded := pkcs7Pad(plaintext)
	envelope := make([]byte, BlockSize+len(padded))
	copy(envelope, iv)

	var prev [BlockSize]byte
	copy(prev[:], iv)

	for n := uint64(0); n*uint64(BlockSize) < uint64(len(padded)); n++ {
		off := n * uint64(BlockSize)
		var chained [BlockSize]byte
		for i := range chained {
			chained[i] = padded[off+uint64(i)] ^ prev[i]
		}
		ct := EncryptBlock(chained, n, st, km)
		copy(envelope[BlockSize+off:], ct[:])
		prev = ct
	}
	return envelope, nil
}

// DecryptCBC reverses EncryptCBC.
func DecryptCBC(km *KeyMaterial, envelope []byte) ([]byte, error) {
	if len(envelope) < 2*BlockSize || (len(envelope)-BlockSize)%BlockSize != 0 {
		return nil, rucerr.ErrInvalidCiphertextLength
	}

	iv := envelope[:BlockSize]
	ciphertext := envelope[BlockSize:]

	st, err := km.MixIV(iv)
	if err != nil {
		return nil, err
	}

	var prev [BlockSize]byte
	copy(prev[:], iv)

	padded := make([]byte, len(ciphertext))
	for n := uint64(0); n*uint64(BlockSize) < uint64(len(ciphertext)); n++ {
		off := n * uint64(BlockSize)
		var ct [BlockSize]byte
		copy(ct[:], ciphertext[off:off+uint64(BlockSize)])

		chained := DecryptBlock(ct, n, st, km)
		for i := range chained {
			padded[off+uint64(i)] = chained[i] ^ prev[i]
		}
		prev = ct
	}
	return pkcs7Unpad(padded)
}
