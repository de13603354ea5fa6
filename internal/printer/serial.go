package printer

import (
	"context"
	"strings"
	"time"

	"go.bug.st/serial"
)

type serialCandidate struct {
	path    string
	baud    int
	timeout time.Duration
}

func (c *serialCandidate) Kind() Kind    { return KindSerial }
func (c *serialCandidate) Label() string { return c.path }

// Print opens the port, writes the whole job, and drains the OS buffer. The
// serial library has no deadline support, so the work runs in a goroutine and
// the timeout abandons it; a wedged port costs one leaked goroutine until the
// driver gives up.
func (c *serialCandidate) Print(ctx context.Context, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		port, err := serial.Open(c.path, &serial.Mode{BaudRate: c.baud})
		if err != nil {
			done <- openError(c.path, err)
			return
		}
		defer port.Close()

		if _, err := port.Write(data); err != nil {
			done <- writeError(c.path, err)
			return
		}
		if err := port.Drain(); err != nil {
			done <- writeError(c.path, err)
			return
		}
		done <- nil
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return writeError(c.path, ctx.Err())
	}
}

func listSerialPorts() ([]string, error) {
	return serial.GetPortsList()
}

// matchesSerialPattern reports whether a port name looks like a USB thermal
// printer. Matching is case-sensitive substring search, which is what the
// deployed kiosks rely on.
func matchesSerialPattern(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if strings.Contains(name, pattern) {
			return true
		}
	}
	return false
}
