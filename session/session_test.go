package session

import (
	"net"
	"testing"

	"github.com/aesdh-lab/peerchat/wire"
)

// pipeSessions builds two Connected Sessions over an in-process pipe,
// running the real DH handshake between them, without going through
// net.Listen/Dial.
func pipeSessions(t *testing.T) (*Session, *Session, func()) {
	t.Helper()
	a, b := net.Pipe()

	server := &Session{conn: wire.New(a)}
	client := &Session{conn: wire.New(b)}

	errc := make(chan error, 1)
	go func() { errc <- server.exchangeKeys(true) }()

	if err := client.exchangeKeys(false); err != nil {
		t.Fatalf("client exchangeKeys: %v", err)
	}
	if err := <-errc; err != nil {
		t.Fatalf("server exchangeKeys: %v", err)
	}

	server.status = Connected
	client.status = Connected

	return server, client, func() { a.Close(); b.Close() }
}

func TestHandshakeProducesMatchingSharedKey(t *testing.T) {
	server, client, closeFn := pipeSessions(t)
	defer closeFn()

	if server.sk != client.sk {
		t.Fatalf("shared keys differ: server=%v client=%v", server.sk, client.sk)
	}
	for i, word := range server.sk {
		if word < 2 {
			t.Errorf("shared key word %d = %d, want >= 2", i, word)
		}
	}
}

// runReceiver drives the full recipient half of the MESSAGE
// sub-protocol sequentially on one goroutine: a single net.Pipe
// connection has no buffering, so issuing the awaiting/accepting/
// receiving reads from more than one goroutine races over which read
// consumes which bytes.
func runReceiver(s *Session) ([]byte, error) {
	if _, err := s.AwaitRequest(); err != nil {
		return nil, err
	}
	if err := s.AcceptMessage(); err != nil {
		return nil, err
	}
	return s.ReceiveMessage()
}

func TestMessageRoundTripECB(t *testing.T) {
	server, client, closeFn := pipeSessions(t)
	defer closeFn()

	type result struct {
		got []byte
		err error
	}
	recvc := make(chan result, 1)
	go func() {
		got, err := runReceiver(server)
		recvc <- result{got, err}
	}()

	if err := client.SendMessage([]byte("hello from the client"), ModeECB, Size128); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}

	r := <-recvc
	if r.err != nil {
		t.Fatalf("ReceiveMessage: %v", r.err)
	}
	if string(r.got) != "hello from the client" {
		t.Errorf("ReceiveMessage = %q, want %q", r.got, "hello from the client")
	}
}

func TestMessageRoundTripGCM(t *testing.T) {
	server, client, closeFn := pipeSessions(t)
	defer closeFn()

	type result struct {
		got []byte
		err error
	}
	recvc := make(chan result, 1)
	go func() {
		got, err := runReceiver(server)
		recvc <- result{got, err}
	}()

	if err := client.SendMessage([]byte("gcm payload"), ModeGCM, Size256); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}

	r := <-recvc
	if r.err != nil {
		t.Fatalf("ReceiveMessage: %v", r.err)
	}
	if string(r.got) != "gcm payload" {
		t.Errorf("ReceiveMessage = %q, want %q", r.got, "gcm payload")
	}
}

func TestSendMessageSurfacesRefusal(t *testing.T) {
	server, client, closeFn := pipeSessions(t)
	defer closeFn()

	go func() {
		server.AwaitRequest()
		server.RefuseMessage()
	}()

	err := client.SendMessage([]byte("x"), ModeCTR, Size128)
	if err != ErrRefused {
		t.Errorf("SendMessage after refusal = %v, want ErrRefused", err)
	}
}

func TestReexchangeRotatesSharedKey(t *testing.T) {
	server, client, closeFn := pipeSessions(t)
	defer closeFn()

	oldKey := server.sk

	errc := make(chan error, 1)
	go func() {
		if _, err := server.AwaitRequest(); err != nil {
			errc <- err
			return
		}
		errc <- server.AcceptReexchange()
	}()

	if err := client.RequestReexchange(); err != nil {
		t.Fatalf("RequestReexchange: %v", err)
	}
	if err := <-errc; err != nil {
		t.Fatalf("AcceptReexchange: %v", err)
	}

	if server.sk != client.sk {
		t.Fatalf("shared keys differ after reexchange: server=%v client=%v", server.sk, client.sk)
	}
	if server.sk == oldKey {
		t.Error("shared key did not change after reexchange (vanishingly unlikely if it actually rotated)")
	}
}

func TestTerminateZeroesKeyAndClosesConn(t *testing.T) {
	server, _, closeFn := pipeSessions(t)
	defer closeFn()

	server.Terminate()

	if server.status != Idle {
		t.Errorf("status after Terminate = %v, want Idle", server.status)
	}
	if server.sk != [4]uint64{} {
		t.Error("shared key not zeroed after Terminate")
	}
	if err := server.SendMessage([]byte("x"), ModeECB, Size128); err != ErrNotConnected {
		t.Errorf("SendMessage after Terminate = %v, want ErrNotConnected", err)
	}
}
