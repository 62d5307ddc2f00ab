package dh

import (
	"math/rand"

	"github.com/aesdh-lab/peerchat/wire"
)

// ExchangeKeys runs one round of the Diffie-Hellman handshake over c
// and returns the resulting 64-bit shared value. Role is determined by
// server: the server half generates the public parameters (p, g) and
// sends them first; the client half waits to receive them. Both
// sides draw a random 64-bit private scalar k from a
// non-cryptographic PRNG — this mirrors the reference's std::rand()
// and is not suitable for anything but teaching.
func ExchangeKeys(c *wire.Conn, server bool) (uint64, error) {
	k := rand.Uint64()

	var p, g, peerIntermediary uint64
	var err error

	if server {
		p, g, err = generateParams()
		if err != nil {
			return 0, err
		}

		if err := c.SendUint64(p, wire.TagData, wire.DataTimeout); err != nil {
			return 0, err
		}
		if err := c.SendUint64(g, wire.TagData, wire.DataTimeout); err != nil {
			return 0, err
		}
		if err := c.SendUint64(Intermediary(p, g, k), wire.TagData, wire.DataTimeout); err != nil {
			return 0, err
		}
		peerIntermediary, err = c.RecvUint64(wire.DataTimeout)
		if err != nil {
			return 0, err
		}
	} else {
		p, err = c.RecvUint64(wire.DataTimeout)
		if err != nil {
			return 0, err
		}
		g, err = c.RecvUint64(wire.DataTimeout)
		if err != nil {
			return 0, err
		}
		peerIntermediary, err = c.RecvUint64(wire.DataTimeout)
		if err != nil {
			return 0, err
		}
		if err := c.SendUint64(Intermediary(p, g, k), wire.TagData, wire.DataTimeout); err != nil {
			return 0, err
		}
	}

	return PowMod(peerIntermediary, k, p), nil
}

// generateParams produces a fresh (p, g) public parameter pair: a
// safe prime p and a generator g of its order-q subgroup.
func generateParams() (p, g uint64, err error) {
	p, q := Generate()
	g = Generator(p, q)
	return p, g, nil
}

// ConstructSharedKey runs the four-round handshake to assemble the
// 256-bit session key (four independent 64-bit DH shared values).
func ConstructSharedKey(c *wire.Conn, server bool) ([4]uint64, error) {
	var sk [4]uint64
	for i := 0; i < 4; i++ {
		v, err := ExchangeKeys(c, server)
		if err != nil {
			return [4]uint64{}, err
		}
		sk[i] = v
	}
	return sk, nil
}
