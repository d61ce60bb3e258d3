// aead.go - the GCM-style authenticated mode (spec §4.7): the payload is
// encrypted with CTR under a key derived solely for this purpose, and a
// GHASH-style tag over the associated data and ciphertext is masked with
// the keystream for the zero-counter block.
package ruc

import (
	"crypto/subtle"

	"github.com/ruc-crypto/ruc/keyschedule"
	"github.com/ruc-crypto/ruc/metrics"
	"github.com/ruc-crypto/ruc/rucerr"
	"github.com/ruc-crypto/ruc/shake"
)

// TagSize is the length, in bytes, of an AEAD authentication tag.
const TagSize = 16

// EncryptAEAD encrypts plaintext under km with the given 16-byte nonce and
// associated data aad, and returns the envelope `nonce || ciphertext ||
// tag`.
func EncryptAEAD(km *KeyMaterial, nonce, plaintext, aad []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		return nil, rucerr.ErrInvalidNonceLength
	}

	encKM, h, err := aeadSubKeys(km)
	if err != nil {
		return nil, err
	}

	ciphertext, err := ctrTransform(encKM, nonce, pkcs7Pad(plaintext))
	if err != nil {
		return nil, err
	}

	mask, err := aeadTagMask(encKM, nonce)
	if err != nil {
		return nil, err
	}
	tagBase := ghash(h, aad, ciphertext)
	var tag [TagSize]byte
	for i := range tag {
		tag[i] = tagBase[i] ^ mask[i]
	}

	envelope := make([]byte, NonceSize+len(ciphertext)+TagSize)
	copy(envelope, nonce)
	copy(envelope[NonceSize:], ciphertext)
	copy(envelope[NonceSize+len(ciphertext):], tag[:])
	return envelope, nil
}

// DecryptAEAD verifies and decrypts an envelope produced by EncryptAEAD.
// The tag is checked in constant time before any plaintext is returned.
func DecryptAEAD(km *KeyMaterial, envelope, aad []byte) ([]byte, error) {
	if len(envelope) < NonceSize+BlockSize+TagSize {
		return nil, rucerr.ErrInvalidCiphertextLength
	}

	nonce := envelope[:NonceSize]
	ciphertext := envelope[NonceSize : len(envelope)-TagSize]
	wantTag := envelope[len(envelope)-TagSize:]
	if len(ciphertext)%BlockSize != 0 {
		return nil, rucerr.ErrInvalidCiphertextLength
	}

	encKM, h, err := aeadSubKeys(km)
	if err != nil {
		return nil, err
	}

	mask, err := aeadTagMask(encKM, nonce)
	if err != nil {
		return nil, err
	}
	tagBase := ghash(h, aad, ciphertext)
	var gotTag [TagSize]byte
	for i := range gotTag {
		gotTag[i] = tagBase[i] ^ mask[i]
	}

	if subtle.ConstantTimeCompare(gotTag[:], wantTag) != 1 {
		metrics.AuthenticationFailures.Inc()
		return nil, rucerr.ErrAuthenticationFailed
	}

	padded, err := ctrTransform(encKM, nonce, ciphertext)
	if err != nil {
		return nil, err
	}
	return pkcs7Unpad(padded)
}

// aeadSubKeys derives the CTR encryption key and the GHASH polynomial key
// from km's master key (spec §4.7). The encryption sub-key gets its own
// full key schedule, under the same S-box acceptance policy km was
// expanded with.
func aeadSubKeys(km *KeyMaterial) (*KeyMaterial, [ghashBlockSize]byte, error) {
	var encKey [keyschedule.KeySize]byte
	shake.Derive(encKey[:], km.m.Key(), shake.TagGCMEncKey)
	encKM, err := expandKeyWithPolicy(encKey[:], km.policy)
	if err != nil {
		return nil, [ghashBlockSize]byte{}, err
	}

	var authKey [32]byte
	shake.Derive(authKey[:], km.m.Key(), shake.TagGCMAuthKey)
	var h [ghashBlockSize]byte
	copy(h[:], authKey[:ghashBlockSize])

	return encKM, h, nil
}

// aeadTagMask returns the keystream for the zero-counter block under
// encKM and nonce, whose first 16 bytes mask the GHASH tag base.
func aeadTagMask(encKM *KeyMaterial, nonce []byte) ([TagSize]byte, error) {
	initial, err := ctrInitialState(encKM, nonce)
	if err != nil {
		return [TagSize]byte{}, err
	}
	keystream := ctrBlockKeystream(initial, encKM, 0, [BlockSize]byte{})

	var mask [TagSize]byte
	copy(mask[:], keystream[:TagSize])
	return mask, nil
}
