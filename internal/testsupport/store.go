package testsupport

import (
	"testing"

	"loket/internal/config"
	"loket/internal/ticket"
)

// MustOpenStore opens a ticket.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config, opts ...ticket.Option) *ticket.Store {
	t.Helper()

	store, err := ticket.Open(cfg, opts...)
	if err != nil {
		t.Fatalf("ticket.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}
