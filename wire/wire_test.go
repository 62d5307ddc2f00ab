package wire

import (
	"net"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func pipe() (*Conn, *Conn, func()) {
	a, b := net.Pipe()
	return New(a), New(b), func() { a.Close(); b.Close() }
}

func TestPacketRoundTrip(t *testing.T) {
	a, b, closeFn := pipe()
	defer closeFn()

	want := Packet{Tag: TagMessage}
	copy(want.Payload[:], "hello")

	errc := make(chan error, 1)
	go func() { errc <- a.SendPacket(want, DataTimeout) }()

	got, err := b.RecvPacket(DataTimeout)
	if err != nil {
		t.Fatal(err)
	}
	if err := <-errc; err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("packet mismatch (-want +got):\n%s", diff)
	}
}

func TestUint64RoundTrip(t *testing.T) {
	cases := []uint64{0, 1, 42, 1<<64 - 1}
	for _, want := range cases {
		a, b, closeFn := pipe()

		errc := make(chan error, 1)
		go func() { errc <- a.SendUint64(want, TagData, DataTimeout) }()

		got, err := b.RecvUint64(DataTimeout)
		if err != nil {
			t.Fatal(err)
		}
		if err := <-errc; err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("RecvUint64 = %d, want %d", got, want)
		}
		closeFn()
	}
}

func TestStringRoundTrip(t *testing.T) {
	cases := [][]byte{
		[]byte(""),
		[]byte("abc"),
		make([]byte, PayloadSize),
		make([]byte, PayloadSize+1),
		make([]byte, PayloadSize*3+17),
	}
	for i := range cases {
		for j := range cases[i] {
			cases[i][j] = byte(j)
		}
	}

	for _, want := range cases {
		a, b, closeFn := pipe()

		errc := make(chan error, 1)
		go func() { errc <- a.SendString(want, TagData, DataTimeout) }()

		got, err := b.RecvString(DataTimeout)
		if err != nil {
			t.Fatal(err)
		}
		if err := <-errc; err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("string round-trip mismatch, len(want)=%d (-want +got):\n%s", len(want), diff)
		}
		closeFn()
	}
}

func TestRecvUint64SurfacesTimeout(t *testing.T) {
	a, b, closeFn := pipe()
	defer closeFn()
	_ = a

	_, err := b.RecvUint64(10 * time.Millisecond)
	if err != ErrTimeout {
		t.Fatalf("RecvUint64 on idle conn = %v, want ErrTimeout", err)
	}
}
