package ruc

import "crypto/rand"

// NonceSize is the length, in bytes, of the nonce CTR and AEAD mode
// callers supply.
const NonceSize = 16

// GenerateNonce returns a fresh random nonce suitable for CTR or AEAD,
// read from the operating system's CSPRNG. Every (key, nonce) pair must
// be used at most once.
func GenerateNonce() ([]byte, error) {
	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	return nonce, nil
}
