package aes

import "encoding/binary"

// SeedFromBytes converts a standard raw AES key (16, 24, or 32 bytes)
// into the [4]uint64 seed form NewState/expandKey expect, together
// with its Nk. The session protocol hands over an already-negotiated
// four-word key directly; this exists for FIPS-197 conformance
// vectors and any caller that only has raw key bytes.
func SeedFromBytes(key []byte) ([4]uint64, int, error) {
	var nk int
	switch len(key) {
	case 16:
		nk = 4
	case 24:
		nk = 6
	case 32:
		nk = 8
	default:
		return [4]uint64{}, 0, ErrInvalidKeySize
	}

	padded := make([]byte, 32)
	copy(padded, key)

	var seed [4]uint64
	for i := 0; i < 4; i++ {
		w0 := binary.BigEndian.Uint32(padded[i*8 : i*8+4])
		w1 := binary.BigEndian.Uint32(padded[i*8+4 : i*8+8])
		seed[i] = uint64(w0) | uint64(w1)<<32
	}
	return seed, nk, nil
}
