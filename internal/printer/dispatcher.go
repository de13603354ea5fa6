package printer

import (
	"context"
	"iter"
	"log/slog"

	"github.com/google/uuid"

	"loket/internal/logging"
)

// Dispatcher sends one encoded job to the first candidate that accepts it.
type Dispatcher struct {
	logger *slog.Logger
}

// NewDispatcher builds a Dispatcher.
func NewDispatcher(logger *slog.Logger) *Dispatcher {
	return &Dispatcher{logger: logging.NewComponentLogger(logger, "printer-dispatcher")}
}

// Dispatch tries each candidate in order and returns the one that accepted
// the job. When every candidate fails it returns an AllFailedError carrying
// each attempt.
func (d *Dispatcher) Dispatch(ctx context.Context, data []byte, candidates iter.Seq[Candidate]) (Candidate, error) {
	jobID := uuid.NewString()
	var attempts []FailedAttempt

	for candidate := range candidates {
		if err := ctx.Err(); err != nil {
			attempts = append(attempts, FailedAttempt{Device: candidate.Label(), Kind: candidate.Kind(), Err: err})
			break
		}

		err := candidate.Print(ctx, data)
		if err == nil {
			d.logger.Info("print job accepted",
				logging.String(logging.FieldJobID, jobID),
				logging.String(logging.FieldDevice, candidate.Label()),
				logging.String(logging.FieldTransport, string(candidate.Kind())),
				logging.Int("attempts", len(attempts)+1),
				logging.String(logging.FieldEventType, "print_succeeded"),
			)
			return candidate, nil
		}

		attempts = append(attempts, FailedAttempt{Device: candidate.Label(), Kind: candidate.Kind(), Err: err})
		d.logger.Debug("candidate rejected print job",
			logging.Error(err),
			logging.String(logging.FieldJobID, jobID),
			logging.String(logging.FieldDevice, candidate.Label()),
			logging.String(logging.FieldTransport, string(candidate.Kind())),
		)
	}

	d.logger.Warn("no device accepted print job",
		logging.String(logging.FieldJobID, jobID),
		logging.Int("attempts", len(attempts)),
		logging.String(logging.FieldEventType, "print_failed"),
		logging.String(logging.FieldErrorHint, "check printer cabling and configured device names"),
		logging.String(logging.FieldImpact, "ticket not printed"),
	)
	return nil, &AllFailedError{Attempts: attempts}
}
