// Package rucerr defines the sentinel error taxonomy shared by every layer
// of the Random Universe Cipher implementation. Callers should compare
// against these values with errors.Is rather than matching message text.
package rucerr

import "errors"

var (
	// ErrInvalidKeyLength is returned when a master key is not 64 bytes.
	ErrInvalidKeyLength = errors.New("ruc: invalid key length")

	// ErrInvalidIVLength is returned when an IV is not 32 bytes.
	ErrInvalidIVLength = errors.New("ruc: invalid IV length")

	// ErrInvalidNonceLength is returned when a nonce is not 16 bytes.
	ErrInvalidNonceLength = errors.New("ruc: invalid nonce length")

	// ErrInvalidCiphertextLength is returned when an envelope is shorter
	// than its header plus one block (plus a tag, for AEAD).
	ErrInvalidCiphertextLength = errors.New("ruc: invalid ciphertext length")

	// ErrInvalidPadding is returned when PKCS#7 padding fails to validate
	// after the final block has been decrypted.
	ErrInvalidPadding = errors.New("ruc: invalid padding")

	// ErrAuthenticationFailed is returned when an AEAD tag does not match.
	// No plaintext is released when this error is returned.
	ErrAuthenticationFailed = errors.New("ruc: authentication failed")

	// ErrSBoxGenerationFailed is returned when an S-box fails to meet its
	// acceptance policy after exhausting the retry budget.
	ErrSBoxGenerationFailed = errors.New("ruc: s-box generation failed")
)
