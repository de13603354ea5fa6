package printer

import (
	"iter"
	"log/slog"
	"time"

	"loket/internal/config"
	"loket/internal/logging"
)

// Resolver discovers candidate print devices in fallback order: curated
// spooler queue names first, then every other local spooler queue, then
// serial ports whose names match the configured patterns.
type Resolver struct {
	cfg    *config.Config
	logger *slog.Logger

	spoolerOn    bool
	printSpooler func(name string, data []byte) error
	enumSpooler  func() ([]string, error)
	listPorts    func() ([]string, error)
}

// ResolverOption adjusts a Resolver, mainly so tests can substitute the
// platform probes.
type ResolverOption func(*Resolver)

// WithPortLister replaces the serial port enumeration.
func WithPortLister(fn func() ([]string, error)) ResolverOption {
	return func(r *Resolver) {
		r.listPorts = fn
	}
}

// WithSpooler enables the spooler path with the given enumeration and write
// functions regardless of platform.
func WithSpooler(enum func() ([]string, error), print func(name string, data []byte) error) ResolverOption {
	return func(r *Resolver) {
		r.spoolerOn = true
		r.enumSpooler = enum
		r.printSpooler = print
	}
}

// NewResolver builds a Resolver from the printer section of the config.
func NewResolver(cfg *config.Config, logger *slog.Logger, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		cfg:          cfg,
		logger:       logging.NewComponentLogger(logger, "printer-resolver"),
		spoolerOn:    spoolerSupported,
		printSpooler: printToSpooler,
		enumSpooler:  enumerateSpoolerPrinters,
		listPorts:    listSerialPorts,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Candidates yields print devices lazily in fallback order. Enumeration
// failures are logged and skipped so one broken subsystem never hides the
// other.
func (r *Resolver) Candidates() iter.Seq[Candidate] {
	return func(yield func(Candidate) bool) {
		if r.spoolerOn {
			seen := make(map[string]bool)
			for _, name := range r.cfg.Printer.SpoolerNames {
				seen[name] = true
				if !yield(&spoolerCandidate{name: name, print: r.printSpooler}) {
					return
				}
			}

			names, err := r.enumSpooler()
			if err != nil {
				r.logger.Warn("spooler enumeration failed",
					logging.Error(err),
					logging.String(logging.FieldEventType, "spooler_enum_failed"),
				)
			}
			for _, name := range names {
				if seen[name] {
					continue
				}
				seen[name] = true
				if !yield(&spoolerCandidate{name: name, print: r.printSpooler}) {
					return
				}
			}
		}

		ports, err := r.listPorts()
		if err != nil {
			r.logger.Warn("serial port enumeration failed",
				logging.Error(err),
				logging.String(logging.FieldEventType, "serial_enum_failed"),
			)
			return
		}
		baud := r.cfg.Printer.BaudRate
		timeout := time.Duration(r.cfg.Printer.WriteTimeoutMillis) * time.Millisecond
		for _, port := range ports {
			if !matchesSerialPattern(port, r.cfg.Printer.SerialPatterns) {
				continue
			}
			if !yield(&serialCandidate{path: port, baud: baud, timeout: timeout}) {
				return
			}
		}
	}
}
