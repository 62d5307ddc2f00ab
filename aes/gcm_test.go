package aes

import "testing"

func TestGCMSelfTest(t *testing.T) {
	var key [4]uint64
	plaintext := []byte("hello, world\n")

	ct, err := GCMEncrypt(plaintext, key, 10, 1)
	if err != nil {
		t.Fatal(err)
	}
	pt, err := GCMDecrypt(ct, key, 10, 1)
	if err != nil {
		t.Fatal(err)
	}
	if string(pt) != string(plaintext) {
		t.Errorf("GCMDecrypt(GCMEncrypt(p)) = %q, want %q", pt, plaintext)
	}
}

func TestGCMTamperedCiphertextFailsAuthentication(t *testing.T) {
	var key [4]uint64
	plaintext := []byte("hello, world\n")

	ct, err := GCMEncrypt(plaintext, key, 10, 1)
	if err != nil {
		t.Fatal(err)
	}
	ct[0] ^= 0x01

	if _, err := GCMDecrypt(ct, key, 10, 1); err != ErrAuthentication {
		t.Errorf("GCMDecrypt on tampered ciphertext = %v, want ErrAuthentication", err)
	}
}

func TestGCMTamperedTagFailsAuthentication(t *testing.T) {
	var key [4]uint64
	plaintext := []byte("hello, world\n")

	ct, err := GCMEncrypt(plaintext, key, 10, 1)
	if err != nil {
		t.Fatal(err)
	}
	ct[len(ct)-1] ^= 0x01

	if _, err := GCMDecrypt(ct, key, 10, 1); err != ErrAuthentication {
		t.Errorf("GCMDecrypt on tampered tag = %v, want ErrAuthentication", err)
	}
}

func TestGCMBlockMulCompatModeDiverges(t *testing.T) {
	// With only a low bit of x's first byte set, the intended (byte
	// advances) and compat (byte frozen, tested 8 times) multipliers
	// disagree: compat never advances past the all-zero top bit and
	// contributes nothing, while the intended mode eventually rotates
	// that bit into the top position and contributes.
	x := NewBlock([]byte{0x03})
	y := NewBlock([]byte{0x80})

	if GCMBlockMul(x, y, false) == GCMBlockMul(x, y, true) {
		t.Error("expected intended and compat GCMBlockMul to diverge once a lower bit of x is set")
	}
}
