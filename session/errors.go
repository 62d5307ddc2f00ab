package session

import "errors"

var (
	// ErrNotConnected is returned by operations that require an active
	// peer connection when none exists.
	ErrNotConnected = errors.New("session: not connected")
	// ErrAlreadyConnected is returned by Listen/Dial when a connection
	// already exists.
	ErrAlreadyConnected = errors.New("session: already connected")
	// ErrRefused is returned when a peer declines a message or
	// re-exchange request.
	ErrRefused = errors.New("session: peer refused request")
	// ErrConflict is returned when both peers attempt to initiate a
	// message send or key re-exchange at the same time; the policy is
	// to abort rather than arbitrate.
	ErrConflict = errors.New("session: simultaneous request from peer")
	// ErrMAC is returned when a received message's HMAC does not match
	// its ciphertext.
	ErrMAC = errors.New("session: message authentication failed")
	// ErrInvalidMode is returned for an unrecognized mode marker on a
	// received message.
	ErrInvalidMode = errors.New("session: peer sent invalid mode marker")
	// ErrInvalidSize is returned for an unrecognized key-size selector.
	ErrInvalidSize = errors.New("session: invalid key size selection")
)
