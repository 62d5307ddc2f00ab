// Package mac generates message authentication codes for the
// non-GCM AES modes, HMAC-SHA256 keyed by a deliberately mangled
// reduction of the session key rather than the session key itself.
package mac

import (
	"crypto/hmac"
	"crypto/sha256"
)

// DeriveKey reproduces the reference's HMAC key derivation, which
// compresses each 64-bit session-key word down to one byte per bit
// shifted out rather than using the word's actual bytes: for y in
// [0,8), it emits byte(num&0xf) and then shifts num right by one. The
// low nibble of a shrinking value carries only a handful of real bits
// of entropy by the last iteration, so the derived key is far weaker
// than its length suggests. This is reproduced bit-exact because
// interoperating implementations must agree on the same mangled key.
//
// keys selects how many of the four session-key words are folded in,
// driven by the round count: 2 words for Nr=10, 3 for Nr=12, 4 for
// Nr=14.
func DeriveKey(key [4]uint64, rounds int) ([]byte, error) {
	var keys int
	switch rounds {
	case 10:
		keys = 2
	case 12:
		keys = 3
	case 14:
		keys = 4
	default:
		return nil, ErrInvalidRounds
	}

	out := make([]byte, 0, keys*8)
	for x := 0; x < keys; x++ {
		num := key[x]
		for y := 0; y < 8; y++ {
			out = append(out, byte(num&0xf))
			num >>= 1
		}
	}
	return out, nil
}

// Sum computes the HMAC-SHA256 of message under the derived key for
// the given session key and round count.
func Sum(message []byte, key [4]uint64, rounds int) ([]byte, error) {
	derived, err := DeriveKey(key, rounds)
	if err != nil {
		return nil, err
	}
	h := hmac.New(sha256.New, derived)
	h.Write(message)
	return h.Sum(nil), nil
}

// Verify reports whether mac is the HMAC-SHA256 of message under the
// derived key, using a constant-time comparison.
func Verify(message, mac []byte, key [4]uint64, rounds int) (bool, error) {
	want, err := Sum(message, key, rounds)
	if err != nil {
		return false, err
	}
	return hmac.Equal(mac, want), nil
}
