package wire

import (
	"strconv"
	"strings"
	"time"
)

// SendUint64 serializes value's decimal text representation into a
// packet's payload, null-padded to PayloadSize, tagged with tag.
func (c *Conn) SendUint64(value uint64, tag Tag, timeout time.Duration) error {
	str := strconv.FormatUint(value, 10)
	if len(str) > PayloadSize {
		return ErrValueTooLarge
	}
	var p Packet
	p.Tag = tag
	copy(p.Payload[:], str)
	return c.SendPacket(p, timeout)
}

// RecvUint64 receives a packet and parses its payload's decimal text
// back into a uint64.
//
// The reference this protocol was distilled from guards this read with
// `p.m = meta::ERROR` where `==` was clearly intended, so its error
// path for a failed/timed-out receive is dead code. RecvUint64
// implements the intended comparison: a received TagError packet
// surfaces as ErrProtocol rather than being silently parsed as if it
// were data, and a receive that times out surfaces as ErrTimeout from
// RecvPacket.
func (c *Conn) RecvUint64(timeout time.Duration) (uint64, error) {
	p, err := c.RecvPacket(timeout)
	if err != nil {
		return 0, err
	}
	if p.Tag == TagError {
		return 0, ErrProtocol
	}

	str := strings.TrimRight(string(p.Payload[:]), "\x00")
	return strconv.ParseUint(str, 10, 64)
}

// ParsePacketUint64 parses a packet's payload as a decimal uint64
// without inspecting its tag, for callers that need to branch on the
// tag themselves (the message sub-protocol's mode marker packet
// carries both a nonce value and a tag selecting the cipher mode).
func ParsePacketUint64(p Packet) (uint64, error) {
	str := strings.TrimRight(string(p.Payload[:]), "\x00")
	return strconv.ParseUint(str, 10, 64)
}
