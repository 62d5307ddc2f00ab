package util

import (
	"encoding/binary"

	"github.com/mr-tron/base58"
)

// Fingerprint renders a 256-bit session key as base58 text, for an
// operator to read aloud and compare against their peer's screen
// rather than trusting the network to deliver matching keys silently.
func Fingerprint(sk [4]uint64) string {
	var buf [32]byte
	for i, word := range sk {
		binary.BigEndian.PutUint64(buf[i*8:i*8+8], word)
	}
	return base58.Encode(buf[:])
}
