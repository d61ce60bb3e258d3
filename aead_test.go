package ruc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptAEADRoundTrip(t *testing.T) {
	km := testKey(t, 30)
	nonce := testNonce(31)
	aad := []byte("associated data")
	lengths := []int{0, 1, 17, 32, 10*32 + 17}

	for _, n := range lengths {
		plaintext := make([]byte, n)
		for i := range plaintext {
			plaintext[i] = byte(i)
		}

		envelope, err := EncryptAEAD(km, nonce, plaintext, aad)
		require.NoError(t, err)

		got, err := DecryptAEAD(km, envelope, aad)
		require.NoError(t, err)
		require.Equal(t, plaintext, got)
	}
}

// Property 10: AEAD output length equals 16 + ceil_multiple_of_32(|P|+pad)
// + 16.
func TestAEADEnvelopeLength(t *testing.T) {
	km := testKey(t, 32)
	nonce := testNonce(33)

	envelope, err := EncryptAEAD(km, nonce, make([]byte, 13), nil)
	require.NoError(t, err)
	require.Len(t, envelope, NonceSize+BlockSize+TagSize)
}

// S5: AEAD encrypt P=empty, aad="context-1" -> authentic; decrypt with
// aad="context-2" fails with AuthenticationFailed.
func TestScenarioS5AADBinding(t *testing.T) {
	km := testKey(t, 34)
	nonce := testNonce(35)

	envelope, err := EncryptAEAD(km, nonce, nil, []byte("context-1"))
	require.NoError(t, err)

	_, err = DecryptAEAD(km, envelope, []byte("context-1"))
	require.NoError(t, err)

	_, err = DecryptAEAD(km, envelope, []byte("context-2"))
	require.ErrorIs(t, err, ErrAuthenticationFailed)
}

// S6 / property 7: flipping any byte after the nonce (in ciphertext or
// tag) causes AuthenticationFailed.
func TestScenarioS6BitFlipAfterNonceFailsAuthentication(t *testing.T) {
	km := testKey(t, 36)
	nonce := testNonce(37)
	aad := []byte("context")

	envelope, err := EncryptAEAD(km, nonce, []byte("a short secret message"), aad)
	require.NoError(t, err)

	for _, idx := range []int{NonceSize, NonceSize + 1, len(envelope) - 1} {
		flipped := make([]byte, len(envelope))
		copy(flipped, envelope)
		flipped[idx] ^= 0x01

		_, err := DecryptAEAD(km, flipped, aad)
		require.ErrorIs(t, err, ErrAuthenticationFailed)
	}
}

func TestAEADRejectsShortEnvelope(t *testing.T) {
	km := testKey(t, 38)
	_, err := DecryptAEAD(km, make([]byte, NonceSize+TagSize), nil)
	require.ErrorIs(t, err, ErrInvalidCiphertextLength)
}

func TestAEADIsDeterministic(t *testing.T) {
	km := testKey(t, 39)
	nonce := testNonce(40)
	plaintext := []byte("same every time")

	a, err := EncryptAEAD(km, nonce, plaintext, nil)
	require.NoError(t, err)
	b, err := EncryptAEAD(km, nonce, plaintext, nil)
	require.NoError(t, err)

	require.Equal(t, a, b)
}
