package ticketaccess

import (
	"fmt"

	"loket/internal/daemon"
	"loket/internal/ipc"
)

// Session represents a ticket access handle and its cleanup function.
type Session struct {
	Access Access
	// Direct reports whether the session bypassed the daemon socket.
	Direct bool
	close  func() error
}

// Close releases resources associated with the session.
func (s Session) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// OpenWithFallback tries IPC-backed access first, then falls back to an
// in-process daemon. Two processes writing the same database is safe for
// reads and prints but can reuse a number under concurrent allocation, so
// the caller should surface Direct to the operator.
func OpenWithFallback(
	dial func() (*ipc.Client, error),
	direct func() (*daemon.Daemon, error),
) (Session, error) {
	if dial != nil {
		if client, err := dial(); err == nil {
			return Session{
				Access: NewIPCAccess(client),
				close:  client.Close,
			}, nil
		}
	}

	if direct == nil {
		return Session{}, fmt.Errorf("open ticket access: no direct opener configured")
	}
	d, err := direct()
	if err != nil {
		return Session{}, fmt.Errorf("open ticket access: %w", err)
	}
	return Session{
		Access: NewDirectAccess(d),
		Direct: true,
		close:  d.Close,
	}, nil
}
