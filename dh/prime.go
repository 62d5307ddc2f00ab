// Package dh implements Diffie-Hellman key agreement over 64-bit safe
// primes: primality testing, safe-prime generation, modular
// exponentiation, and the four-round handshake used to assemble a
// 256-bit session key.
//
// This is a teaching construction, not production cryptography: 64-bit
// DH is feasible to break with modest effort, and the generator used
// for q' below is a non-cryptographic PRNG.
package dh

import (
	"math"
	"math/bits"
	"math/rand"
)

// IsPrime reports whether n has no divisor in [2, floor(sqrt(n))+1].
// n<2 is not prime.
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	root := uint64(math.Sqrt(float64(n))) + 1
	for d := uint64(2); d <= root; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// NextPrime returns the smallest prime >= n, rounding an even n up to
// odd first. It operates on uint32 (not a wider type) specifically so
// that the search wraps on overflow exactly as the reference does: an
// input near the top of the 32-bit range that finds no prime before
// wrapping lands back near zero and continues from there.
func NextPrime(n uint32) uint32 {
	if n%2 == 0 {
		n++
	}
	for !IsPrime(uint64(n)) {
		n += 2
	}
	return n
}

// Generate draws a candidate from a non-cryptographic 32-bit PRNG,
// advances it to the next prime q, and forms the Sophie-Germain pair
// p = 2q+1. If p is not prime it re-rolls. The result is a 33-bit safe
// prime p with p = 2q+1, q prime.
func Generate() (p uint64, q uint64) {
	for {
		seed := rand.Uint32()
		qCandidate := NextPrime(seed)
		pCandidate := uint64(qCandidate)*2 + 1
		if IsPrime(pCandidate) {
			return pCandidate, uint64(qCandidate)
		}
	}
}

// PowMod computes value^exp mod mod via square-and-multiply, scanning
// the exponent low bit first. Products are formed at 128 bits before
// reduction, so moduli above 2^32 do not overflow.
func PowMod(value, exp, mod uint64) uint64 {
	ret := uint64(1)
	value %= mod
	for exp > 0 {
		if exp&1 == 1 {
			hi, lo := bits.Mul64(ret, value)
			ret = bits.Rem64(hi, lo, mod)
		}
		exp >>= 1
		hi, lo := bits.Mul64(value, value)
		value = bits.Rem64(hi, lo, mod)
	}
	return ret
}

// Generator finds the smallest h >= 2 with PowMod(h, (p-1)/q, p) > 1,
// then returns g = PowMod(h, (p-1)/q, p). This exploits the safe-prime
// structure of p = 2q+1: any quadratic non-residue mod p generates the
// order-q subgroup, so a brute-force search for h is fast.
func Generator(p, q uint64) uint64 {
	exp := (p - 1) / q
	h := uint64(1)
	for {
		h++
		if PowMod(h, exp, p) > 1 {
			break
		}
	}
	return PowMod(h, exp, p)
}

// Intermediary returns g^k mod p, reducing the exponent mod p-1 first
// via Fermat's little theorem (g^(p-1) = 1 mod p for g coprime to p).
func Intermediary(p, g, k uint64) uint64 {
	r := k % (p - 1)
	return PowMod(g, r, p)
}
