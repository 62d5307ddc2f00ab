// Package wire implements the peer-to-peer framing layer: fixed-size
// tagged packets over a reliable byte stream, length-prefixed string
// transfer, and the typed send/recv helpers the session and DH layers
// build on.
package wire

// Tag identifies what a Packet's payload carries.
type Tag byte

const (
	TagError Tag = iota
	TagEmpty
	TagData
	TagHMAC
	TagNonce
	TagIV
	TagFinal
	TagMessage
	TagAck
	TagRefused
	TagReexchange
)

func (t Tag) String() string {
	switch t {
	case TagError:
		return "ERROR"
	case TagEmpty:
		return "EMPTY"
	case TagData:
		return "DATA"
	case TagHMAC:
		return "HMAC"
	case TagNonce:
		return "NONCE"
	case TagIV:
		return "IV"
	case TagFinal:
		return "FINAL"
	case TagMessage:
		return "MESSAGE"
	case TagAck:
		return "ACK"
	case TagRefused:
		return "REFUSED"
	case TagReexchange:
		return "REEXCHANGE"
	default:
		return "UNKNOWN"
	}
}

// PayloadSize is the fixed payload length of every packet, in bytes.
const PayloadSize = 1024

// PacketSize is the full wire size of a packet: one tag byte plus its
// payload.
const PacketSize = 1 + PayloadSize

// Packet is the fixed-size record exchanged between peers.
type Packet struct {
	Tag     Tag
	Payload [PayloadSize]byte
}

// Marshal renders p as its exact 1025-byte wire form.
func (p Packet) Marshal() []byte {
	out := make([]byte, PacketSize)
	out[0] = byte(p.Tag)
	copy(out[1:], p.Payload[:])
	return out
}

// Unmarshal populates p from a 1025-byte wire record.
func (p *Packet) Unmarshal(b []byte) error {
	if len(b) != PacketSize {
		return ErrProtocol
	}
	p.Tag = Tag(b[0])
	copy(p.Payload[:], b[1:])
	return nil
}
