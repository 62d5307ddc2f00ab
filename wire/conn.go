package wire

import (
	"errors"
	"io"
	"net"
	"os"
	"time"
)

// DataTimeout is the default per-call timeout for data-path send/recv
// operations. It is a var, not a const, so a caller can override it
// at startup (the peer application's --timeout flag does this for
// OperatorTimeout); nothing in this package mutates it after that.
var DataTimeout = 5 * time.Second

// OperatorTimeout is the longer timeout used for operator-driven waits
// (listening for an inbound peer, waiting on a message ACK).
var OperatorTimeout = 30 * time.Second

// Conn wraps a single reliable bidirectional byte stream (ordinarily a
// net.Conn from a TCP Dial/Accept) with the fixed-packet framing
// layer. It has no global/singleton state: unlike the reference, which
// stores its socket file descriptors as module-level variables, every
// Conn owns its own lifecycle and must be Closed exactly once.
type Conn struct {
	rw net.Conn
}

// New wraps an established net.Conn.
func New(rw net.Conn) *Conn {
	return &Conn{rw: rw}
}

// Close releases the underlying connection.
func (c *Conn) Close() error {
	return c.rw.Close()
}

// SendPacket writes p to the connection, returning ErrTimeout if the
// write does not complete within timeout.
func (c *Conn) SendPacket(p Packet, timeout time.Duration) error {
	if err := c.rw.SetWriteDeadline(time.Now().Add(timeout)); err != nil {
		return err
	}
	defer c.rw.SetWriteDeadline(time.Time{})

	_, err := c.rw.Write(p.Marshal())
	if isTimeout(err) {
		return ErrTimeout
	}
	return err
}

// RecvPacket reads one packet from the connection, returning
// ErrTimeout if no full packet arrives within timeout and ErrProtocol
// on a short read caused by the peer disconnecting mid-record.
func (c *Conn) RecvPacket(timeout time.Duration) (Packet, error) {
	if err := c.rw.SetReadDeadline(time.Now().Add(timeout)); err != nil {
		return Packet{}, err
	}
	defer c.rw.SetReadDeadline(time.Time{})

	buf := make([]byte, PacketSize)
	_, err := io.ReadFull(c.rw, buf)
	if isTimeout(err) {
		return Packet{}, ErrTimeout
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return Packet{}, ErrProtocol
	}
	if err != nil {
		return Packet{}, err
	}

	var p Packet
	if err := p.Unmarshal(buf); err != nil {
		return Packet{}, err
	}
	return p, nil
}

func isTimeout(err error) bool {
	var ne net.Error
	if errors.As(err, &ne) {
		return ne.Timeout()
	}
	return errors.Is(err, os.ErrDeadlineExceeded)
}
