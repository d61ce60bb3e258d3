// Package ruc implements the Random Universe Cipher: a symmetric,
// key-derived block cipher with a 512-bit master key, a 256-bit block,
// and a 3,584-bit internal state (seven 512-bit registers), targeting a
// 256-bit post-quantum security level.
//
// Every operation the cipher performs (key expansion, S-box generation,
// the per-block round function, keystream derivation, and the modes built
// on top of it) is a deterministic, pure computation: the same master
// key and IV always produce the same state, and the same state, key, IV,
// and block index always produce the same keystream. There is no network
// I/O, no file handling, and no UI in this package; it is a library meant
// to be driven by a caller that owns those concerns.
//
// # Block API
//
// ExpandKey derives a KeyMaterial from a 64-byte master key. MixIV derives
// a per-message State from a KeyMaterial and a 32-byte IV. EncryptBlock
// and DecryptBlock transform one 32-byte block at a time, advancing the
// State's feedback in place.
//
// # Modes
//
// EncryptCTR/DecryptCTR implement counter mode with PKCS#7 padding.
// EncryptCBC/DecryptCBC implement cipher-block chaining, which is
// inherently sequential because of the state feedback step. EncryptAEAD/
// DecryptAEAD implement a GCM-style authenticated mode with its own
// derived sub-keys and a GHASH-style polynomial tag.
//
// # Password-based use
//
// DeriveKey and the Password* helpers implement the external KDF contract
// described in the cipher's interface specification: Argon2id turns a
// password and salt into a 64-byte master key, and the password-bundled
// envelope format prepends the salt to an AEAD envelope.
package ruc
