package aes

import "encoding/binary"

// Ctr partitions in into Blocks and XORs each against a pad generated
// by encrypting the current 64-bit nonce (encoded as 8 raw
// little-endian bytes, zero-padded to a full block by the state
// constructor), incrementing the nonce after every block. The output
// is as long as in, so it is its own inverse when called again with
// the same key and starting nonce.
func Ctr(in []byte, key [4]uint64, rounds int, nonce uint64) ([]byte, error) {
	s, err := NewState(in, key, rounds)
	if err != nil {
		return nil, err
	}

	for i := range s.blocks {
		var nonceBytes [8]byte
		binary.LittleEndian.PutUint64(nonceBytes[:], nonce)

		pad, err := cipherBlock(NewBlock(nonceBytes[:]), key, rounds)
		if err != nil {
			return nil, err
		}
		s.blocks[i].Xor(pad)
		nonce++
	}

	return s.Unravel()[:len(in)], nil
}
