package aes

import "github.com/aesdh-lab/peerchat/gf"

// BlockSize is the width of a single AES block in bytes.
const BlockSize = 16

// Block is the 4x4 byte state array AES operates on. It is addressed
// as Block[col][row]; loading is column-major, so byte i of an input
// string lands at Block[i/4][i%4] — four consecutive input bytes fill
// one column before moving to the next.
type Block [4][4]byte

// NewBlock loads up to BlockSize bytes from in into a fresh Block,
// zero-padding any remainder.
func NewBlock(in []byte) Block {
	var b Block
	for i := 0; i < BlockSize; i++ {
		if i < len(in) {
			b[i/4][i%4] = in[i]
		}
	}
	return b
}

// Unravel writes the block out in the same column-major order NewBlock
// reads it in: out[i] = b[i/4][i%4].
func (b Block) Unravel() []byte {
	out := make([]byte, BlockSize)
	i := 0
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			out[i] = b[col][row]
			i++
		}
	}
	return out
}

// Xor XORs other into b in place, returning b for chaining.
func (b *Block) Xor(other Block) *Block {
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			b[col][row] ^= other[col][row]
		}
	}
	return b
}

// ShiftRight1 shifts every bit of the 128-bit block right by one
// position, carrying the bit shifted out of one byte into the top of
// the next. Used by GCM's field multiplication.
func (b *Block) ShiftRight1() {
	var carry byte
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			v := b[col][row]>>1 | carry
			if b[col][row]&1 != 0 {
				carry = 0x80
			} else {
				carry = 0
			}
			b[col][row] = v
		}
	}
}

// AddRoundKey XORs round-key word 4*round+col (treated as little-endian
// bytes, low byte into row 0) into column col, for every column.
func (b *Block) AddRoundKey(round int, schedule []uint32) {
	for col := 0; col < 4; col++ {
		key := schedule[4*round+col]
		for row := 0; row < 4; row++ {
			b[col][row] ^= byte(key >> (8 * row))
		}
	}
}

// SubBytes replaces every byte with affine(inv(byte)), computed
// directly rather than through a precomputed S-box table.
func (b *Block) SubBytes() {
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			b[col][row] = subByte(b[col][row])
		}
	}
}

// InvSubBytes undoes SubBytes.
func (b *Block) InvSubBytes() {
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			b[col][row] = invSubByte(b[col][row])
		}
	}
}

// ShiftRows cyclically shifts row r left by r positions: new[col][row]
// = old[(col+row)%4][row]. Row 0 is unchanged as a consequence of the
// formula, not a special case.
func (b *Block) ShiftRows() {
	var buf Block
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			buf[col][row] = b[(col+row)%4][row]
		}
	}
	*b = buf
}

// InvShiftRows inverts ShiftRows.
func (b *Block) InvShiftRows() {
	var buf Block
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			buf[col][row] = b[(col-row+4)%4][row]
		}
	}
	*b = buf
}

// MixColumns multiplies each column by the fixed matrix
// [02 03 01 01; 01 02 03 01; 01 01 02 03; 03 01 01 02] over GF(2^8).
func (b *Block) MixColumns() {
	for col := 0; col < 4; col++ {
		s0, s1, s2, s3 := b[col][0], b[col][1], b[col][2], b[col][3]
		b[col][0] = gf.Mul(0x02, s0) ^ gf.Mul(0x03, s1) ^ s2 ^ s3
		b[col][1] = s0 ^ gf.Mul(0x02, s1) ^ gf.Mul(0x03, s2) ^ s3
		b[col][2] = s0 ^ s1 ^ gf.Mul(0x02, s2) ^ gf.Mul(0x03, s3)
		b[col][3] = gf.Mul(0x03, s0) ^ s1 ^ s2 ^ gf.Mul(0x02, s3)
	}
}

// InvMixColumns multiplies each column by the matrix
// [0e 0b 0d 09; 09 0e 0b 0d; 0d 09 0e 0b; 0b 0d 09 0e] over GF(2^8).
func (b *Block) InvMixColumns() {
	for col := 0; col < 4; col++ {
		s0, s1, s2, s3 := b[col][0], b[col][1], b[col][2], b[col][3]
		b[col][0] = gf.Mul(0x0e, s0) ^ gf.Mul(0x0b, s1) ^ gf.Mul(0x0d, s2) ^ gf.Mul(0x09, s3)
		b[col][1] = gf.Mul(0x09, s0) ^ gf.Mul(0x0e, s1) ^ gf.Mul(0x0b, s2) ^ gf.Mul(0x0d, s3)
		b[col][2] = gf.Mul(0x0d, s0) ^ gf.Mul(0x09, s1) ^ gf.Mul(0x0e, s2) ^ gf.Mul(0x0b, s3)
		b[col][3] = gf.Mul(0x0b, s0) ^ gf.Mul(0x0d, s1) ^ gf.Mul(0x09, s2) ^ gf.Mul(0x0e, s3)
	}
}
