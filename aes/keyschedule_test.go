package aes

import "testing"

func TestRoundsForNk(t *testing.T) {
	cases := []struct {
		nk, nr int
	}{{4, 10}, {6, 12}, {8, 14}}
	for _, tc := range cases {
		got, err := roundsForNk(tc.nk)
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.nr {
			t.Errorf("roundsForNk(%d) = %d, want %d", tc.nk, got, tc.nr)
		}
		back, err := nkForRounds(tc.nr)
		if err != nil {
			t.Fatal(err)
		}
		if back != tc.nk {
			t.Errorf("nkForRounds(%d) = %d, want %d", tc.nr, back, tc.nk)
		}
	}
}

func TestRoundsForNkRejectsUnsupportedSizes(t *testing.T) {
	if _, err := roundsForNk(5); err != ErrInvalidKeySize {
		t.Errorf("roundsForNk(5) = %v, want ErrInvalidKeySize", err)
	}
}

func TestExpandKeyLength(t *testing.T) {
	var seed [4]uint64
	w, err := expandKey(seed, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(w) != 4*(10+1) {
		t.Errorf("len(expandKey) = %d, want %d", len(w), 4*(10+1))
	}
}

func TestRotWord(t *testing.T) {
	got := rotWord(0x01020304)
	want := uint32(0x02030401)
	if got != want {
		t.Errorf("rotWord(0x01020304) = %#08x, want %#08x", got, want)
	}
}
