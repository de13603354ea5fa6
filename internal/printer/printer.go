package printer

import (
	"context"
	"errors"
	"fmt"
)

// Kind identifies the transport a candidate device uses.
type Kind string

const (
	// KindSpooler is a named queue in the OS print spooler.
	KindSpooler Kind = "spooler"
	// KindSerial is a raw serial port.
	KindSerial Kind = "serial"
)

// Candidate is a device the dispatcher may try to print to. Print sends one
// complete job and must leave the device closed regardless of outcome.
type Candidate interface {
	Kind() Kind
	Label() string
	Print(ctx context.Context, data []byte) error
}

// Sentinel errors for device failures. Wrapped errors carry the device label
// and the underlying cause.
var (
	ErrDeviceOpen  = errors.New("gagal membuka perangkat")
	ErrDeviceWrite = errors.New("gagal menulis ke perangkat")
)

// FailedAttempt records one candidate that rejected a job.
type FailedAttempt struct {
	Device string
	Kind   Kind
	Err    error
}

// AllFailedError reports that every candidate device rejected the job. The
// message matches what operators see on the kiosk, so it stays localized.
type AllFailedError struct {
	Attempts []FailedAttempt
}

func (e *AllFailedError) Error() string {
	return "Tidak ada printer thermal yang ditemukan"
}

func openError(device string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrDeviceOpen, device, err)
}

func writeError(device string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrDeviceWrite, device, err)
}
