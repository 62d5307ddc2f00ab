package aes

import "encoding/binary"

// gcmReducing is GF(2^128)'s reducing polynomial, represented as a
// Block whose top byte is 0xE1 (bit pattern 11100001) and whose
// remaining bytes are zero.
var gcmReducing = Block{{0xE1, 0, 0, 0}}

// GCMBlockMul multiplies X and Y in GF(2^128), iterating the 128 bits
// of X row-major, byte-major-bit-7-first.
//
// The reference this protocol was distilled from advances its byte
// cursor with a discarded `byte << 1` expression instead of `byte <<=
// 1`, so taken literally it only ever tests each byte's top bit.
// GCMBlockMul implements the intended behavior (the byte cursor does
// advance) by default; pass compat=true to reproduce the reference's
// literal behavior for byte-exact interoperability tests.
func GCMBlockMul(x, y Block, compat bool) Block {
	var z Block
	v := y

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			b := x[col][row]
			for bit := 0; bit < 8; bit++ {
				if b&0x80 != 0 {
					z.Xor(v)
				}
				lsb := v[3][3] & 1
				v.ShiftRight1()
				if lsb == 1 {
					v.Xor(gcmReducing)
				}
				if !compat {
					b <<= 1
				}
			}
		}
	}
	return z
}

func blockMul(x, y Block) Block {
	return GCMBlockMul(x, y, false)
}

// gcmGHASH folds every block of state through the GF(2^128) multiplier
// keyed by h, in sequence.
func gcmGHASH(blocks []Block, h Block) Block {
	var y Block
	for _, b := range blocks {
		y.Xor(b)
		y = blockMul(y, h)
	}
	return y
}

// gcmIncrement adds 1 mod 2^32 to the last four bytes of j (read
// most-significant-byte first), leaving the first twelve bytes
// untouched.
func gcmIncrement(j *Block) {
	lsb := uint32(j[3][0])<<24 | uint32(j[3][1])<<16 | uint32(j[3][2])<<8 | uint32(j[3][3])
	lsb++
	j[3][3] = byte(lsb)
	j[3][2] = byte(lsb >> 8)
	j[3][1] = byte(lsb >> 16)
	j[3][0] = byte(lsb >> 24)
}

// gcmGCTR runs AES-CTR specialized for GCM: the counter is a Block
// incremented with gcmIncrement rather than treated as a uint64.
func gcmGCTR(blocks []Block, icb Block, key [4]uint64, rounds int) ([]Block, error) {
	out := make([]Block, len(blocks))
	for i, b := range blocks {
		pad, err := cipherBlock(icb, key, rounds)
		if err != nil {
			return nil, err
		}
		b.Xor(pad)
		out[i] = b
		gcmIncrement(&icb)
	}
	return out, nil
}

func gcmHashSubkey(key [4]uint64, rounds int) (Block, error) {
	zero, err := Cipher(make([]byte, BlockSize), key, rounds)
	if err != nil {
		return Block{}, err
	}
	return NewBlock(zero), nil
}

func blocksFromBytes(in []byte) []Block {
	if len(in) == 0 {
		return []Block{NewBlock(nil)}
	}
	var blocks []Block
	for i := 0; i < len(in); i += BlockSize {
		end := i + BlockSize
		if end > len(in) {
			end = len(in)
		}
		blocks = append(blocks, NewBlock(in[i:end]))
	}
	return blocks
}

func unravelBlocks(blocks []Block) []byte {
	out := make([]byte, 0, len(blocks)*BlockSize)
	for _, b := range blocks {
		out = append(out, b.Unravel()...)
	}
	return out
}

// GCMEncrypt encrypts in under AES-GCM and appends the authentication
// tag block to the returned ciphertext. The ciphertext is as long as
// in; the 16-byte tag follows it.
func GCMEncrypt(in []byte, key [4]uint64, rounds int, nonce uint64) ([]byte, error) {
	h, err := gcmHashSubkey(key, rounds)
	if err != nil {
		return nil, err
	}

	var nonceBytes [8]byte
	binary.LittleEndian.PutUint64(nonceBytes[:], nonce)
	j0 := gcmGHASH(blocksFromBytes(nonceBytes[:]), h)

	jc := j0
	gcmIncrement(&jc)

	plainBlocks := blocksFromBytes(in)
	cipherBlocks, err := gcmGCTR(plainBlocks, jc, key, rounds)
	if err != nil {
		return nil, err
	}

	ciphertext := unravelBlocks(cipherBlocks)[:len(in)]

	ghash := gcmGHASH(blocksFromBytes(ciphertext), h)
	tagBlocks, err := gcmGCTR([]Block{ghash}, j0, key, rounds)
	if err != nil {
		return nil, err
	}

	return append(ciphertext, tagBlocks[0].Unravel()...), nil
}

// GCMDecrypt verifies the authentication tag appended to in (the last
// block) against a freshly computed GHASH before decrypting, failing
// with ErrAuthentication on any mismatch.
func GCMDecrypt(in []byte, key [4]uint64, rounds int, nonce uint64) ([]byte, error) {
	h, err := gcmHashSubkey(key, rounds)
	if err != nil {
		return nil, err
	}

	var nonceBytes [8]byte
	binary.LittleEndian.PutUint64(nonceBytes[:], nonce)
	j0 := gcmGHASH(blocksFromBytes(nonceBytes[:]), h)

	if len(in) < BlockSize {
		return nil, ErrAuthentication
	}
	ciphertext := in[:len(in)-BlockSize]
	cipherBlocks := blocksFromBytes(ciphertext)
	tag := NewBlock(in[len(in)-BlockSize:])

	expectedTag, err := gcmGCTR([]Block{tag}, j0, key, rounds)
	if err != nil {
		return nil, err
	}

	computed := gcmGHASH(cipherBlocks, h)
	if expectedTag[0] != computed {
		return nil, ErrAuthentication
	}

	gcmIncrement(&j0)
	plainBlocks, err := gcmGCTR(cipherBlocks, j0, key, rounds)
	if err != nil {
		return nil, err
	}
	return unravelBlocks(plainBlocks)[:len(ciphertext)], nil
}
