// errors.go - re-exports the sentinel error taxonomy at the package
// callers actually import, so `errors.Is(err, ruc.ErrAuthenticationFailed)`
// works without reaching into the internal rucerr package.
package ruc

import "github.com/ruc-crypto/ruc/rucerr"

var (
	ErrInvalidKeyLength        = rucerr.ErrInvalidKeyLength
	ErrInvalidIVLength         = rucerr.ErrInvalidIVLength
	ErrInvalidNonceLength      = rucerr.ErrInvalidNonceLength
	ErrInvalidCiphertextLength = rucerr.ErrInvalidCiphertextLength
	ErrInvalidPadding          = rucerr.ErrInvalidPadding
	ErrAuthenticationFailed    = rucerr.ErrAuthenticationFailed
	ErrSBoxGenerationFailed    = rucerr.ErrSBoxGenerationFailed
)
