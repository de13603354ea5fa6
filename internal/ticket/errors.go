package ticket

import (
	"errors"
	"fmt"
)

// ErrStore marks failures caused by an unreachable or failing ticket store.
// Callers surface these verbatim and never retry.
var ErrStore = errors.New("ticket store")

func storeError(operation string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStore, operation, err)
}
