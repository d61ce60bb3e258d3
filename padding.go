// padding.go - PKCS#7 padding at the cipher's 32-byte block size (spec
// §4.7's CTR/CBC note: "when plaintext length is a multiple of 32, a full
// pad block is still appended").
package ruc

import "github.com/ruc-crypto/ruc/rucerr"

func pkcs7Pad(data []byte) []byte {
	padLen := BlockSize - len(data)%BlockSize
	out := make([]byte, len(data)+padLen)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(padLen)
	}
	return out
}

func pkcs7Unpad(data []byte) ([]byte, error) {
	if len(data) == 0 || len(data)%BlockSize != 0 {
		return nil, rucerr.ErrInvalidPadding
	}
	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > BlockSize || padLen > len(data) {
		return nil, rucerr.ErrInvalidPadding
	}
	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, rucerr.ErrInvalidPadding
		}
	}
	return data[:len(data)-padLen], nil
}
