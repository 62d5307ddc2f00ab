package wire

import "time"

// SendString transmits message as a uint64 length followed by
// ceil(length/PayloadSize) payload packets (a single empty TagFinal
// packet when message is empty). All but the last carry tag (DATA by
// convention), and the last carries TagFinal regardless of tag.
func (c *Conn) SendString(message []byte, tag Tag, timeout time.Duration) error {
	if err := c.SendUint64(uint64(len(message)), TagData, timeout); err != nil {
		return err
	}

	if len(message) == 0 {
		return c.SendPacket(Packet{Tag: TagFinal}, timeout)
	}

	for offset := 0; offset < len(message); offset += PayloadSize {
		end := offset + PayloadSize
		last := end >= len(message)
		if last {
			end = len(message)
		}

		var p Packet
		if last {
			p.Tag = TagFinal
		} else {
			p.Tag = tag
		}
		copy(p.Payload[:], message[offset:end])

		if err := c.SendPacket(p, timeout); err != nil {
			return err
		}
	}
	return nil
}

// RecvString receives a length-prefixed string: a uint64 length, then
// packets accumulated until one tagged TagFinal arrives, truncated to
// the declared length.
func (c *Conn) RecvString(timeout time.Duration) ([]byte, error) {
	length, err := c.RecvUint64(timeout)
	if err != nil {
		return nil, err
	}

	var out []byte
	for {
		p, err := c.RecvPacket(timeout)
		if err != nil {
			return nil, err
		}
		if p.Tag == TagError {
			return nil, ErrProtocol
		}
		out = append(out, p.Payload[:]...)
		if p.Tag == TagFinal {
			break
		}
	}

	if uint64(len(out)) > length {
		out = out[:length]
	}
	return out, nil
}
