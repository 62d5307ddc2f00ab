package aes

import "errors"

var (
	// ErrInvalidRounds is returned when Nr is not one of 10, 12, 14.
	ErrInvalidRounds = errors.New("aes: invalid round count, want 10, 12, or 14")
	// ErrInvalidKeySize is returned when Nk is not one of 4, 6, 8.
	ErrInvalidKeySize = errors.New("aes: invalid key size, want Nk of 4, 6, or 8")
	// ErrAuthentication is returned when a GCM tag fails to verify. It
	// must stay distinguishable from transport/configuration errors:
	// it is the only security-relevant failure in this package.
	ErrAuthentication = errors.New("aes: message does not match, refusing to decrypt")
)
