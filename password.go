// password.go - the password-bundled envelope (spec §6): Argon2id turns a
// password and salt into a 64-byte master key, which the rest of this
// package treats exactly like any other master key.
package ruc

import (
	"crypto/rand"

	"golang.org/x/crypto/argon2"

	"github.com/ruc-crypto/ruc/keyschedule"
	"github.com/ruc-crypto/ruc/rucerr"
)

// SaltSize is the length, in bytes, of an Argon2id salt.
const SaltSize = 16

// Argon2Profile bounds the Argon2id work factor for DeriveKeyWithProfile.
// The cipher core treats K as opaque once derived; the profile is purely a
// caller-side time/memory tradeoff (spec §6: "a caller choice, not part of
// the core normative spec").
type Argon2Profile struct {
	Time      uint32
	MemoryKiB uint32
	Threads   uint8
}

// NormativeProfile is spec §6's recommended Argon2id parameterisation:
// memory 64 MiB, time 4, parallelism 4.
func NormativeProfile() Argon2Profile {
	return Argon2Profile{Time: 4, MemoryKiB: 64 * 1024, Threads: 4}
}

// InteractiveProfile trades derivation strength for responsiveness, as
// spec §6 notes the reference repository's own interactive mode does.
func InteractiveProfile() Argon2Profile {
	return Argon2Profile{Time: 2, MemoryKiB: 19 * 1024, Threads: 1}
}

// DeriveKey runs Argon2id under NormativeProfile over password and salt to
// produce a 64-byte master key suitable for ExpandKey.
func DeriveKey(password, salt []byte) []byte {
	return DeriveKeyWithProfile(password, salt, NormativeProfile())
}

// DeriveKeyWithProfile runs Argon2id under an explicit work-factor
// profile.
func DeriveKeyWithProfile(password, salt []byte, profile Argon2Profile) []byte {
	return argon2.IDKey(password, salt, profile.Time, profile.MemoryKiB, profile.Threads, keyschedule.KeySize)
}

// GenerateSalt returns a fresh random salt for DeriveKey.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// EncryptWithPassword derives a master key from password and a freshly
// generated salt and nonce, then returns the password-bundled envelope
// `salt || nonce || ciphertext || tag` (spec §6).
func EncryptWithPassword(password, plaintext, aad []byte) ([]byte, error) {
	salt, err := GenerateSalt()
	if err != nil {
		return nil, err
	}
	nonce, err := GenerateNonce()
	if err != nil {
		return nil, err
	}

	km, err := ExpandKey(DeriveKey(password, salt))
	if err != nil {
		return nil, err
	}
	defer km.Wipe()

	aeadEnvelope, err := EncryptAEAD(km, nonce, plaintext, aad)
	if err != nil {
		return nil, err
	}

	envelope := make([]byte, SaltSize+len(aeadEnvelope))
	copy(envelope, salt)
	copy(envelope[SaltSize:], aeadEnvelope)
	return envelope, nil
}

// DecryptWithPassword reverses EncryptWithPassword.
func DecryptWithPassword(password, envelope, aad []byte) ([]byte, error) {
	if len(envelope) < SaltSize+NonceSize+BlockSize+TagSize {
		return nil, rucerr.ErrInvalidCiphertextLength
	}

	salt := envelope[:SaltSize]
	km, err := ExpandKey(DeriveKey(password, salt))
	if err != nil {
		return nil, err
	}
	defer km.Wipe()

	return DecryptAEAD(km, envelope[SaltSize:], aad)
}
