package aes

import "encoding/binary"

// rcon holds the first ten AES round constants, most-significant byte
// carrying the constant (Table 5 of FIPS-197).
var rcon = [10]uint32{
	0x01000000, 0x02000000, 0x04000000, 0x08000000, 0x10000000,
	0x20000000, 0x40000000, 0x80000000, 0x1b000000, 0x36000000,
}

func rotWord(word uint32) uint32 {
	return word<<8 | word>>24
}

func subWord(word uint32) uint32 {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], word)
	for i := range b {
		b[i] = subByte(b[i])
	}
	return binary.LittleEndian.Uint32(b[:])
}

// roundsForNk maps a key length in 32-bit words to the AES round
// count: 10/12/14 for Nk = 4/6/8.
func roundsForNk(nk int) (int, error) {
	switch nk {
	case 4:
		return 10, nil
	case 6:
		return 12, nil
	case 8:
		return 14, nil
	default:
		return 0, ErrInvalidKeySize
	}
}

// nkForRounds is the inverse of roundsForNk.
func nkForRounds(nr int) (int, error) {
	switch nr {
	case 10:
		return 4, nil
	case 12:
		return 6, nil
	case 14:
		return 8, nil
	default:
		return 0, ErrInvalidRounds
	}
}

// expandKey derives the 4*(Nr+1)-word key schedule from the four
// 64-bit seed words, keyed by Nk words of actual key material. Each
// seed contributes its low 32 bits then its high 32 bits (little
// endian halves), per the wire/data-model convention for the 256-bit
// session key.
func expandKey(seed [4]uint64, nk int) ([]uint32, error) {
	nr, err := roundsForNk(nk)
	if err != nil {
		return nil, err
	}

	words := make([]uint32, 0, 8)
	for _, s := range seed {
		words = append(words, uint32(s), uint32(s>>32))
	}

	total := 4 * (nr + 1)
	w := make([]uint32, total)
	copy(w[:nk], words[:nk])

	for i := nk; i < total; i++ {
		temp := w[i-1]
		switch {
		case i%nk == 0:
			temp = subWord(rotWord(temp)) ^ rcon[i/nk-1]
		case nk > 6 && i%nk == 4:
			temp = subWord(temp)
		}
		w[i] = w[i-nk] ^ temp
	}
	return w, nil
}
