package session

import (
	"bytes"
	"math/rand"

	"github.com/aesdh-lab/peerchat/aes"
	"github.com/aesdh-lab/peerchat/mac"
	"github.com/aesdh-lab/peerchat/wire"
)

// Mode selects which AES construction a message is encrypted under.
// It is the in-process form of the wire's mode marker packet
// (EMPTY | NONCE | IV).
type Mode int

const (
	ModeECB Mode = iota
	ModeCTR
	ModeGCM
)

// Size selects the key length (and therefore round count) a message
// is encrypted under, mirroring the reference's 1/2/3 menu choice.
type Size int

const (
	Size128 Size = iota + 1
	Size192
	Size256
)

func (sz Size) rounds() (int, error) {
	switch sz {
	case Size128:
		return 10, nil
	case Size192:
		return 12, nil
	case Size256:
		return 14, nil
	default:
		return 0, ErrInvalidSize
	}
}

// SendMessage runs the initiator half of the MESSAGE sub-protocol:
// announce intent, wait for the peer's ACK, then transmit the round
// count, ciphertext, mode marker, and (for ECB/CTR) an HMAC over the
// ciphertext keyed by the session's derived MAC key.
func (s *Session) SendMessage(message []byte, mode Mode, size Size) error {
	if s.status != Connected {
		return ErrNotConnected
	}

	if err := s.conn.SendPacket(wire.Packet{Tag: wire.TagMessage}, wire.DataTimeout); err != nil {
		return err
	}

	response, err := s.conn.RecvPacket(wire.OperatorTimeout)
	if err != nil {
		return err
	}
	switch response.Tag {
	case wire.TagAck:
	case wire.TagRefused:
		return ErrRefused
	case wire.TagMessage:
		return ErrConflict
	default:
		return wire.ErrProtocol
	}

	rounds, err := size.rounds()
	if err != nil {
		return err
	}
	nonce := rand.Uint64()

	var cipher []byte
	switch mode {
	case ModeECB:
		cipher, err = aes.Cipher(message, s.sk, rounds)
	case ModeCTR:
		cipher, err = aes.Ctr(message, s.sk, rounds, nonce)
	case ModeGCM:
		cipher, err = aes.GCMEncrypt(message, s.sk, rounds, nonce)
	default:
		return ErrInvalidMode
	}
	if err != nil {
		return err
	}

	if err := s.conn.SendUint64(uint64(rounds), wire.TagData, wire.DataTimeout); err != nil {
		return err
	}
	if err := s.conn.SendString(cipher, wire.TagData, wire.DataTimeout); err != nil {
		return err
	}

	switch mode {
	case ModeECB:
		if err := s.conn.SendPacket(wire.Packet{Tag: wire.TagEmpty}, wire.DataTimeout); err != nil {
			return err
		}
	case ModeCTR:
		if err := s.conn.SendUint64(nonce, wire.TagNonce, wire.DataTimeout); err != nil {
			return err
		}
	case ModeGCM:
		return s.conn.SendUint64(nonce, wire.TagIV, wire.DataTimeout)
	}

	sum, err := mac.Sum(cipher, s.sk, rounds)
	if err != nil {
		return err
	}
	return s.conn.SendString(sum, wire.TagHMAC, wire.DataTimeout)
}

// ReceiveMessage runs the recipient half of the MESSAGE sub-protocol,
// after the caller has already accepted the announcement with
// AcceptMessage.
func (s *Session) ReceiveMessage() ([]byte, error) {
	if s.status != Connected {
		return nil, ErrNotConnected
	}

	nr, err := s.conn.RecvUint64(wire.DataTimeout)
	if err != nil {
		return nil, err
	}
	rounds := int(nr)

	cipher, err := s.conn.RecvString(wire.DataTimeout)
	if err != nil {
		return nil, err
	}

	modePacket, err := s.conn.RecvPacket(wire.DataTimeout)
	if err != nil {
		return nil, err
	}
	if modePacket.Tag == wire.TagError {
		return nil, wire.ErrProtocol
	}
	var nonce uint64
	if modePacket.Tag == wire.TagNonce || modePacket.Tag == wire.TagIV {
		nonce, err = wire.ParsePacketUint64(modePacket)
		if err != nil {
			return nil, err
		}
	}

	if modePacket.Tag == wire.TagIV {
		return aes.GCMDecrypt(cipher, s.sk, rounds, nonce)
	}

	sum, err := s.conn.RecvString(wire.DataTimeout)
	if err != nil {
		return nil, err
	}
	ok, err := mac.Verify(cipher, sum, s.sk, rounds)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrMAC
	}

	switch modePacket.Tag {
	case wire.TagNonce:
		return aes.Ctr(cipher, s.sk, rounds, nonce)
	case wire.TagEmpty:
		// ECB carries no message length: the zero bytes that filled out
		// the last block are stripped, and so are any zero bytes the
		// message itself ended with.
		plain, err := aes.InvCipher(cipher, s.sk, rounds)
		if err != nil {
			return nil, err
		}
		return bytes.TrimRight(plain, "\x00"), nil
	default:
		return nil, ErrInvalidMode
	}
}

// AcceptMessage acknowledges a pending message announcement,
// permitting the peer to begin transmitting.
func (s *Session) AcceptMessage() error {
	return s.conn.SendPacket(wire.Packet{Tag: wire.TagAck}, wire.DataTimeout)
}

// RefuseMessage declines a pending message announcement.
func (s *Session) RefuseMessage() error {
	return s.conn.SendPacket(wire.Packet{Tag: wire.TagRefused}, wire.DataTimeout)
}

// AwaitRequest blocks for an inbound REEXCHANGE or MESSAGE
// announcement (or an error/unexpected tag), for the caller to
// inspect and dispatch to AcceptMessage/RefuseMessage or
// AcceptReexchange/RefuseReexchange.
func (s *Session) AwaitRequest() (wire.Tag, error) {
	if s.status != Connected {
		return wire.TagError, ErrNotConnected
	}
	p, err := s.conn.RecvPacket(wire.OperatorTimeout)
	if err != nil {
		return wire.TagError, err
	}
	return p.Tag, nil
}
