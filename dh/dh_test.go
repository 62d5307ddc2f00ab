package dh

import "testing"

func TestIsPrimeKnownValues(t *testing.T) {
	primes := []uint64{2, 3, 5, 7, 11, 13, 97, 7919}
	for _, p := range primes {
		if !IsPrime(p) {
			t.Errorf("IsPrime(%d) = false, want true", p)
		}
	}

	composites := []uint64{0, 1, 4, 6, 8, 9, 100, 7921}
	for _, c := range composites {
		if IsPrime(c) {
			t.Errorf("IsPrime(%d) = true, want false", c)
		}
	}
}

func TestNextPrimeIsPrimeAndMinimal(t *testing.T) {
	// Candidates are rounded up to odd before the search begins, so
	// NextPrime can never return 2; stick to inputs above it where
	// minimality is well defined.
	cases := []uint32{3, 10, 100, 7900, 50000}
	for _, n := range cases {
		got := NextPrime(n)
		if !IsPrime(uint64(got)) {
			t.Errorf("NextPrime(%d) = %d, not prime", n, got)
		}
		if got < n {
			t.Errorf("NextPrime(%d) = %d, went backwards", n, got)
		}
		for m := n; m < got; m++ {
			if IsPrime(uint64(m)) {
				t.Errorf("NextPrime(%d) = %d skipped smaller prime %d", n, got, m)
			}
		}
	}
}

func TestGenerateProducesSafePrime(t *testing.T) {
	for i := 0; i < 20; i++ {
		p, q := Generate()
		if !IsPrime(p) {
			t.Fatalf("Generate produced non-prime p=%d", p)
		}
		if !IsPrime(q) {
			t.Fatalf("Generate produced non-prime q=%d", q)
		}
		if p != 2*q+1 {
			t.Fatalf("Generate: p=%d is not 2q+1 for q=%d", p, q)
		}
	}
}

func TestPowModKnownValues(t *testing.T) {
	// 2^10 mod 1000 = 24
	if got := PowMod(2, 10, 1000); got != 24 {
		t.Errorf("PowMod(2,10,1000) = %d, want 24", got)
	}
	// anything ^0 mod m = 1
	if got := PowMod(5, 0, 97); got != 1 {
		t.Errorf("PowMod(5,0,97) = %d, want 1", got)
	}
}

func TestGeneratorProducesOrderQElement(t *testing.T) {
	p, q := uint64(23), uint64(11) // 23 = 2*11+1, both prime
	g := Generator(p, q)
	if g <= 1 {
		t.Fatalf("Generator(%d,%d) = %d, want > 1", p, q, g)
	}
	if PowMod(g, q, p) != 1 {
		t.Errorf("Generator(%d,%d) = %d has order != q: g^q mod p = %d, want 1", p, q, g, PowMod(g, q, p))
	}
}

func TestIntermediaryMatchesDirectPowMod(t *testing.T) {
	p, q := uint64(23), uint64(11)
	g := Generator(p, q)

	for _, k := range []uint64{0, 1, 5, 22, 100, 1 << 40} {
		got := Intermediary(p, g, k)
		want := PowMod(g, k%(p-1), p)
		if got != want {
			t.Errorf("Intermediary(%d,%d,%d) = %d, want %d", p, g, k, got, want)
		}
	}
}
