// Package session manages the lifecycle of a single peer connection:
// listening for or dialing a peer, negotiating the shared key, and
// driving the message and re-exchange sub-protocols over it. Unlike
// the reference this protocol was distilled from, which keeps its
// listening and connection sockets as package-level globals, every
// Session owns its own net.Listener and wire.Conn and can be torn
// down independently of any other Session in the process.
package session

import (
	"fmt"
	"net"
	"time"

	"github.com/aesdh-lab/peerchat/dh"
	"github.com/aesdh-lab/peerchat/wire"
)

// Status mirrors the reference's two-state program status.
type Status int

const (
	Idle Status = iota
	Connected
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "IDLE"
	case Connected:
		return "CONNECTED"
	default:
		return "UNKNOWN"
	}
}

// Session wraps one peer connection and its negotiated shared key.
type Session struct {
	ln     net.Listener
	conn   *wire.Conn
	status Status
	sk     [4]uint64
}

// New returns an idle Session with no connection.
func New() *Session {
	return &Session{status: Idle}
}

// Status reports whether the session is idle or connected.
func (s *Session) Status() Status {
	return s.status
}

// SharedKey returns the negotiated 256-bit session key. Only
// meaningful when Status() is Connected.
func (s *Session) SharedKey() [4]uint64 {
	return s.sk
}

// Listen binds port and blocks, within wire.OperatorTimeout, for a
// single inbound peer connection, then runs the DH handshake as the
// server half. It fails with ErrAlreadyConnected if already
// connected.
func (s *Session) Listen(port int) error {
	if s.status == Connected {
		return ErrAlreadyConnected
	}

	ln, err := net.Listen("tcp", portAddr(port))
	if err != nil {
		return err
	}
	s.ln = ln

	if tcpLn, ok := ln.(*net.TCPListener); ok {
		tcpLn.SetDeadline(time.Now().Add(wire.OperatorTimeout))
	}

	rw, err := ln.Accept()
	if err != nil {
		ln.Close()
		s.ln = nil
		return err
	}

	s.conn = wire.New(rw)
	if err := s.exchangeKeys(true); err != nil {
		s.conn.Close()
		s.conn = nil
		return err
	}

	s.status = Connected
	return nil
}

// Dial connects to a peer at address:port and runs the DH handshake
// as the client half. It fails with ErrAlreadyConnected if already
// connected.
func (s *Session) Dial(address string, port int) error {
	if s.status == Connected {
		return ErrAlreadyConnected
	}

	rw, err := net.Dial("tcp", net.JoinHostPort(address, portStr(port)))
	if err != nil {
		return err
	}

	s.conn = wire.New(rw)
	if err := s.exchangeKeys(false); err != nil {
		s.conn.Close()
		s.conn = nil
		return err
	}

	s.status = Connected
	return nil
}

// Terminate closes any open connection, zeroes the shared key, and
// returns the session to Idle. It does not error if already idle.
func (s *Session) Terminate() {
	if s.conn != nil {
		s.conn.Close()
		s.conn = nil
	}
	if s.ln != nil {
		s.ln.Close()
		s.ln = nil
	}
	s.sk = [4]uint64{}
	s.status = Idle
}

func (s *Session) exchangeKeys(server bool) error {
	sk, err := dh.ConstructSharedKey(s.conn, server)
	if err != nil {
		return err
	}
	s.sk = sk
	return nil
}

func portAddr(port int) string {
	return fmt.Sprintf(":%d", port)
}

func portStr(port int) string {
	return fmt.Sprintf("%d", port)
}
