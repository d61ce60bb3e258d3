package ruc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveKeyIsDeterministic(t *testing.T) {
	salt := []byte("0123456789abcdef")
	a := DeriveKey([]byte("correct horse battery staple"), salt)
	b := DeriveKey([]byte("correct horse battery staple"), salt)
	require.Equal(t, a, b)
	require.Len(t, a, 64)
}

func TestDeriveKeyDiffersByProfile(t *testing.T) {
	salt := []byte("0123456789abcdef")
	password := []byte("correct horse battery staple")

	normative := DeriveKeyWithProfile(password, salt, NormativeProfile())
	interactive := DeriveKeyWithProfile(password, salt, InteractiveProfile())
	require.NotEqual(t, normative, interactive)
}

func TestEncryptDecryptWithPasswordRoundTrip(t *testing.T) {
	password := []byte("correct horse battery staple")
	plaintext := []byte("a message worth protecting")

	envelope, err := EncryptWithPassword(password, plaintext, []byte("aad"))
	require.NoError(t, err)
	require.True(t, len(envelope) >= SaltSize+NonceSize+BlockSize+TagSize)

	got, err := DecryptWithPassword(password, envelope, []byte("aad"))
	require.NoError(t, err)
	require.Equal(t, plaintext, got)
}

func TestDecryptWithWrongPasswordFails(t *testing.T) {
	plaintext := []byte("a message worth protecting")

	envelope, err := EncryptWithPassword([]byte("correct horse battery staple"), plaintext, nil)
	require.NoError(t, err)

	_, err = DecryptWithPassword([]byte("wrong password"), envelope, nil)
	require.Error(t, err)
}
