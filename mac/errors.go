package mac

import "errors"

// ErrInvalidRounds is returned when the requested round count does
// not map to a supported AES key size (10, 12, or 14).
var ErrInvalidRounds = errors.New("mac: invalid round count")
