package aes

import "github.com/aesdh-lab/peerchat/gf"

// subByte replaces b with affine(inv(b)): the multiplicative inverse
// in GF(2^8) run through the AES affine transform against constant
// 0x63. It is computed bit by bit rather than through a lookup table
// (see SubBytes on Block), which is slower but keeps the field
// structure of the S-box visible.
func subByte(b byte) byte {
	i := gf.Inv(b)
	const c byte = 0x63
	var result byte
	for x := 0; x < 8; x++ {
		bit := bitAt(i, x) ^ bitAt(i, (x+4)%8) ^ bitAt(i, (x+5)%8) ^
			bitAt(i, (x+6)%8) ^ bitAt(i, (x+7)%8) ^ bitAt(c, x)
		if bit != 0 {
			result |= 1 << x
		}
	}
	return result
}

// invSubByte inverts subByte: undo the affine transform against
// constant 0x05 via three rotations, then take the GF(2^8) inverse.
func invSubByte(b byte) byte {
	const c byte = 0x05
	result := rotl8(b, 1) ^ rotl8(b, 3) ^ rotl8(b, 6) ^ c
	return gf.Inv(result)
}

func bitAt(b byte, i int) byte {
	return (b >> i) & 1
}

func rotl8(b byte, n int) byte {
	n &= 7
	return b<<n | b>>(8-n)
}
