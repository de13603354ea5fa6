package printer

import (
	"context"
	"errors"
	"testing"

	"loket/internal/logging"
	"loket/internal/testsupport"
)

func TestMatchesSerialPattern(t *testing.T) {
	patterns := []string{"USB", "ttyUSB", "ttyACM", "cu.usbserial", "cu.usbmodem", "POS", "Printer"}

	cases := []struct {
		name string
		want bool
	}{
		{"/dev/ttyUSB0", true},
		{"/dev/ttyACM1", true},
		{"/dev/cu.usbserial-1420", true},
		{"COM-POS1", true},
		{"/dev/ttyS0", false},
		{"/dev/usb0", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := matchesSerialPattern(tc.name, patterns); got != tc.want {
			t.Errorf("matchesSerialPattern(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func collectLabels(r *Resolver) []string {
	var labels []string
	for candidate := range r.Candidates() {
		labels = append(labels, candidate.Label())
	}
	return labels
}

func TestCandidatesFiltersSerialPorts(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	r := NewResolver(cfg, logging.NewNop(),
		WithPortLister(func() ([]string, error) {
			return []string{"/dev/ttyS0", "/dev/ttyUSB0", "/dev/ttyACM0", "/dev/rfcomm0"}, nil
		}),
	)
	r.spoolerOn = false

	labels := collectLabels(r)
	want := []string{"/dev/ttyUSB0", "/dev/ttyACM0"}
	if len(labels) != len(want) {
		t.Fatalf("labels = %v, want %v", labels, want)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Fatalf("labels = %v, want %v", labels, want)
		}
	}
}

func TestCandidatesOrdersSpoolerBeforeSerial(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Printer.SpoolerNames = []string{"USB-001", "POS-80"}
	r := NewResolver(cfg, logging.NewNop(),
		WithSpooler(
			func() ([]string, error) { return []string{"POS-80", "OfficeJet"}, nil },
			func(string, []byte) error { return nil },
		),
		WithPortLister(func() ([]string, error) { return []string{"/dev/ttyUSB0"}, nil }),
	)

	labels := collectLabels(r)
	// Curated names first, enumerated queues deduplicated, serial last.
	want := []string{"USB-001", "POS-80", "OfficeJet", "/dev/ttyUSB0"}
	if len(labels) != len(want) {
		t.Fatalf("labels = %v, want %v", labels, want)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Fatalf("labels = %v, want %v", labels, want)
		}
	}
}

func TestCandidatesSurvivesEnumerationFailure(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Printer.SpoolerNames = []string{"USB-001"}
	r := NewResolver(cfg, logging.NewNop(),
		WithSpooler(
			func() ([]string, error) { return nil, errors.New("spooler down") },
			func(string, []byte) error { return nil },
		),
		WithPortLister(func() ([]string, error) { return []string{"/dev/ttyUSB0"}, nil }),
	)

	labels := collectLabels(r)
	want := []string{"USB-001", "/dev/ttyUSB0"}
	if len(labels) != len(want) {
		t.Fatalf("labels = %v, want %v", labels, want)
	}
}

func TestCandidatesAreLazy(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Printer.SpoolerNames = []string{"USB-001", "USB-002"}
	portsListed := false
	r := NewResolver(cfg, logging.NewNop(),
		WithSpooler(
			func() ([]string, error) { return nil, nil },
			func(string, []byte) error { return nil },
		),
		WithPortLister(func() ([]string, error) {
			portsListed = true
			return nil, nil
		}),
	)

	for range r.Candidates() {
		break
	}
	if portsListed {
		t.Fatal("serial ports enumerated before spooler candidates were exhausted")
	}
}

func TestSpoolerCandidateHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	c := &spoolerCandidate{name: "USB-001", print: func(string, []byte) error {
		called = true
		return nil
	}}
	if err := c.Print(ctx, []byte{0x1B, 0x40}); err == nil {
		t.Fatal("expected error from cancelled context")
	}
	if called {
		t.Fatal("print should not run after cancellation")
	}
}
