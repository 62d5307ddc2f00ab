package wire

import "errors"

var (
	// ErrTimeout is returned when a send or receive exceeds its
	// per-call deadline.
	ErrTimeout = errors.New("wire: timed out")
	// ErrProtocol is returned when a peer sends an unexpected tag for
	// the current sub-protocol state, or a malformed record.
	ErrProtocol = errors.New("wire: protocol violation")
	// ErrValueTooLarge is returned when a value's textual encoding
	// would not fit in a single packet's payload.
	ErrValueTooLarge = errors.New("wire: value exceeds packet size")
)
