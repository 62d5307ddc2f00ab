package aes

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func hexBytes(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex literal %q: %v", s, err)
	}
	return b
}

func TestCipherReferenceVectors(t *testing.T) {
	plaintext := hexBytes(t, "00112233445566778899aabbccddeeff")

	cases := []struct {
		name string
		key  string
		want string
	}{
		{
			name: "AES-128",
			key:  "000102030405060708090a0b0c0d0e0f",
			want: "69c4e0d86a7b0430d8cdb78070b4c55a",
		},
		{
			name: "AES-192",
			key:  "000102030405060708090a0b0c0d0e0f1011121314151617",
			want: "dda97ca4864cdfe06eaf70a0ec0d7191",
		},
		{
			name: "AES-256",
			key:  "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
			want: "8ea2b7ca516745bfeafc49904b496089",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			seed, nk, err := SeedFromBytes(hexBytes(t, tc.key))
			if err != nil {
				t.Fatal(err)
			}
			nr, err := roundsForNk(nk)
			if err != nil {
				t.Fatal(err)
			}

			got, err := Cipher(plaintext, seed, nr)
			if err != nil {
				t.Fatal(err)
			}
			want := hexBytes(t, tc.want)
			if !bytes.Equal(got, want) {
				t.Errorf("Cipher(%s) = %x, want %x", tc.name, got, want)
			}
		})
	}
}

func TestCipherInvCipherRoundTrip(t *testing.T) {
	plaintext := hexBytes(t, "00112233445566778899aabbccddeeff")
	seed, nk, err := SeedFromBytes(hexBytes(t, "000102030405060708090a0b0c0d0e0f"))
	if err != nil {
		t.Fatal(err)
	}
	nr, err := roundsForNk(nk)
	if err != nil {
		t.Fatal(err)
	}

	ct, err := Cipher(plaintext, seed, nr)
	if err != nil {
		t.Fatal(err)
	}
	pt, err := InvCipher(ct, seed, nr)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(pt, plaintext) {
		t.Errorf("InvCipher(Cipher(p)) = %x, want %x", pt, plaintext)
	}
}

func TestCipherRejectsBadRoundCount(t *testing.T) {
	var seed [4]uint64
	if _, err := Cipher(make([]byte, BlockSize), seed, 11); err != ErrInvalidRounds {
		t.Errorf("Cipher with Nr=11 = %v, want ErrInvalidRounds", err)
	}
}
