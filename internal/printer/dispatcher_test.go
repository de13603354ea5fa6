package printer

import (
	"context"
	"errors"
	"iter"
	"slices"
	"testing"

	"loket/internal/logging"
)

type fakeCandidate struct {
	label string
	err   error
	calls int
}

func (f *fakeCandidate) Kind() Kind    { return KindSerial }
func (f *fakeCandidate) Label() string { return f.label }

func (f *fakeCandidate) Print(ctx context.Context, data []byte) error {
	f.calls++
	return f.err
}

func sequence(candidates ...Candidate) iter.Seq[Candidate] {
	return slices.Values(candidates)
}

func TestDispatchStopsAtFirstSuccess(t *testing.T) {
	broken := &fakeCandidate{label: "/dev/ttyUSB0", err: errors.New("busy")}
	working := &fakeCandidate{label: "/dev/ttyUSB1"}
	spare := &fakeCandidate{label: "/dev/ttyACM0"}

	d := NewDispatcher(logging.NewNop())
	accepted, err := d.Dispatch(context.Background(), []byte{0x1B, 0x40}, sequence(broken, working, spare))
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if accepted.Label() != working.label {
		t.Fatalf("accepted %q, want %q", accepted.Label(), working.label)
	}
	if spare.calls != 0 {
		t.Fatal("dispatch should stop after the first success")
	}
}

func TestDispatchReportsEveryFailedAttempt(t *testing.T) {
	first := &fakeCandidate{label: "USB-001", err: errors.New("offline")}
	second := &fakeCandidate{label: "/dev/ttyUSB0", err: errors.New("busy")}

	d := NewDispatcher(logging.NewNop())
	_, err := d.Dispatch(context.Background(), []byte{0x1B, 0x40}, sequence(first, second))

	var failed *AllFailedError
	if !errors.As(err, &failed) {
		t.Fatalf("error = %v, want AllFailedError", err)
	}
	if len(failed.Attempts) != 2 {
		t.Fatalf("attempts = %d, want 2", len(failed.Attempts))
	}
	if failed.Attempts[0].Device != "USB-001" || failed.Attempts[1].Device != "/dev/ttyUSB0" {
		t.Fatalf("attempt order wrong: %+v", failed.Attempts)
	}
}

func TestDispatchWithNoCandidatesFails(t *testing.T) {
	d := NewDispatcher(logging.NewNop())
	_, err := d.Dispatch(context.Background(), []byte{0x1B, 0x40}, sequence())

	var failed *AllFailedError
	if !errors.As(err, &failed) {
		t.Fatalf("error = %v, want AllFailedError", err)
	}
	if len(failed.Attempts) != 0 {
		t.Fatalf("attempts = %d, want 0", len(failed.Attempts))
	}
}

func TestDispatchStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	untouched := &fakeCandidate{label: "/dev/ttyUSB0"}
	d := NewDispatcher(logging.NewNop())
	_, err := d.Dispatch(ctx, []byte{0x1B, 0x40}, sequence(untouched))
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
	if untouched.calls != 0 {
		t.Fatal("no candidate should be tried after cancellation")
	}
}
