package session

import "github.com/aesdh-lab/peerchat/wire"

// RequestReexchange asks the peer to agree to regenerate the shared
// key, then (on ACK) runs the handshake as the client half — the
// peer that accepts becomes the server half and generates the new
// public parameters.
func (s *Session) RequestReexchange() error {
	if s.status != Connected {
		return ErrNotConnected
	}

	if err := s.conn.SendPacket(wire.Packet{Tag: wire.TagReexchange}, wire.DataTimeout); err != nil {
		return err
	}

	response, err := s.conn.RecvPacket(wire.OperatorTimeout)
	if err != nil {
		return err
	}
	switch response.Tag {
	case wire.TagAck:
		return s.exchangeKeys(false)
	case wire.TagRefused:
		return ErrRefused
	case wire.TagReexchange:
		return ErrConflict
	default:
		return wire.ErrProtocol
	}
}

// AcceptReexchange acknowledges a pending re-exchange request and
// runs the handshake as the server half.
func (s *Session) AcceptReexchange() error {
	if s.status != Connected {
		return ErrNotConnected
	}
	if err := s.conn.SendPacket(wire.Packet{Tag: wire.TagAck}, wire.DataTimeout); err != nil {
		return err
	}
	return s.exchangeKeys(true)
}

// RefuseReexchange declines a pending re-exchange request.
func (s *Session) RefuseReexchange() error {
	return s.conn.SendPacket(wire.Packet{Tag: wire.TagRefused}, wire.DataTimeout)
}
