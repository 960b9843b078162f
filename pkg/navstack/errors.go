package navstack

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrNilPeer is returned by New when no native peer is supplied.
	ErrNilPeer = errors.New("navstack: nil peer")

	// ErrNoBuilder indicates a position needs a subtree but no builder is
	// registered for its destination name and no default builder is set.
	ErrNoBuilder = errors.New("navstack: no destination builder")

	// ErrStaleIndex indicates the native peer reported an id for a position
	// that the stack no longer knows about.
	ErrStaleIndex = errors.New("navstack: native index does not resolve to a live entry")

	// ErrUnknownLaunchMode is returned when parsing an unrecognized launch mode.
	ErrUnknownLaunchMode = errors.New("navstack: unknown launch mode")

	// ErrEmptyName is returned when registering a builder or route without a name.
	ErrEmptyName = errors.New("navstack: empty destination name")
)

// PeerError wraps a failure reported by the native peer.
// These are not retried; the caller decides whether the navigation instance
// is still usable.
type PeerError struct {
	Op  string // Bridge call that failed (e.g., "set_path", "sync_stack")
	Err error  // Underlying error
}

func (e *PeerError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("navstack: peer %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("navstack: peer %s", e.Op)
}

func (e *PeerError) Unwrap() error {
	return e.Err
}

// NewPeerError creates a new peer error.
func NewPeerError(op string, err error) *PeerError {
	return &PeerError{Op: op, Err: err}
}

// IsPeerError checks if an error came from the native peer.
func IsPeerError(err error) bool {
	var peerErr *PeerError
	return errors.As(err, &peerErr)
}
