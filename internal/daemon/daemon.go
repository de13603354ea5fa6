package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"loket/internal/config"
	"loket/internal/escpos"
	"loket/internal/logging"
	"loket/internal/notifications"
	"loket/internal/printer"
	"loket/internal/ticket"
)

// ErrUnknownCounter rejects requests for counters the config does not list.
var ErrUnknownCounter = errors.New("loket tidak dikenal")

// ErrPrinterUnavailable is returned when no print device accepted a job. The
// caller is expected to fall back to a browser print dialog.
var ErrPrinterUnavailable = errors.New("Printer thermal tidak ditemukan")

// Daemon owns the ticket store and the print pipeline. All allocations go
// through one process-wide mutex, which also covers lazy store
// initialization; printing never takes that lock.
type Daemon struct {
	cfg        *config.Config
	logger     *slog.Logger
	notifier   notifications.Service
	resolver   *printer.Resolver
	dispatcher *printer.Dispatcher
	layout     escpos.Layout

	hotplug *hotplugMonitor
	logPath string

	mu        sync.Mutex
	store     *ticket.Store
	storeOpts []ticket.Option

	startedAt time.Time
}

// Option adjusts a Daemon during construction.
type Option func(*Daemon)

// WithNotifier replaces the notification service.
func WithNotifier(svc notifications.Service) Option {
	return func(d *Daemon) {
		d.notifier = svc
	}
}

// WithResolver replaces device discovery.
func WithResolver(r *printer.Resolver) Option {
	return func(d *Daemon) {
		d.resolver = r
	}
}

// WithStoreOptions passes options through to the lazily opened store.
func WithStoreOptions(opts ...ticket.Option) Option {
	return func(d *Daemon) {
		d.storeOpts = opts
	}
}

// WithLogPath records where this process writes its log so clients can tail
// it over IPC.
func WithLogPath(path string) Option {
	return func(d *Daemon) {
		d.logPath = path
	}
}

// New constructs a Daemon. The store is not opened until the first request
// that needs it, so the daemon comes up even when the data directory is
// briefly unavailable.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) (*Daemon, error) {
	if cfg == nil || logger == nil {
		return nil, errors.New("daemon requires config and logger")
	}

	d := &Daemon{
		cfg:        cfg,
		logger:     logging.NewComponentLogger(logger, "daemon"),
		notifier:   notifications.NewService(cfg),
		layout:     escpos.LayoutFromConfig(cfg),
		dispatcher: printer.NewDispatcher(logger),
		hotplug:    newHotplugMonitor(logger),
		startedAt:  time.Now(),
	}
	d.resolver = printer.NewResolver(cfg, logger)
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// ensureStoreLocked opens the store on first use. Callers must hold d.mu.
func (d *Daemon) ensureStoreLocked() (*ticket.Store, error) {
	if d.store != nil {
		return d.store, nil
	}
	store, err := ticket.Open(d.cfg, d.storeOpts...)
	if err != nil {
		return nil, err
	}
	d.store = store
	d.logger.Info("ticket store opened",
		logging.String("path", store.Path()),
		logging.String(logging.FieldEventType, "store_opened"),
	)
	return store, nil
}

// sweepLocked prunes expired rows before a read or an allocation. Callers
// must hold d.mu. Failures are logged and reported but never block the
// request that triggered them.
func (d *Daemon) sweepLocked(ctx context.Context, store *ticket.Store) {
	removed, err := store.Sweep(ctx, d.cfg.Tickets.RetentionDays)
	if err != nil {
		d.logger.Warn("retention sweep failed",
			logging.Error(err),
			logging.String(logging.FieldEventType, "sweep_failed"),
			logging.String(logging.FieldErrorHint, "check database file permissions"),
			logging.String(logging.FieldImpact, "old rows linger until the next sweep"),
		)
		if notifyErr := d.notifier.NotifyStoreError(ctx, err, "sweep"); notifyErr != nil {
			d.logger.Debug("store error notification failed", logging.Error(notifyErr))
		}
		return
	}
	if removed > 0 {
		d.logger.Info("expired tickets removed",
			logging.Int64("removed", removed),
			logging.Int("retention_days", d.cfg.Tickets.RetentionDays),
			logging.String(logging.FieldEventType, "sweep_completed"),
		)
	}
}

// CreateTicket allocates the next number for a counter and returns the
// stored ticket. An empty category falls back to the configured default.
func (d *Daemon) CreateTicket(ctx context.Context, counter, category string) (*ticket.Ticket, error) {
	if !d.cfg.HasCounter(counter) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCounter, counter)
	}
	if category == "" {
		category = d.cfg.Tickets.DefaultCategory
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	store, err := d.ensureStoreLocked()
	if err != nil {
		return nil, err
	}
	d.sweepLocked(ctx, store)

	issued, err := store.Allocate(ctx, counter, category)
	if err != nil {
		if notifyErr := d.notifier.NotifyStoreError(ctx, err, "allocate"); notifyErr != nil {
			d.logger.Debug("store error notification failed", logging.Error(notifyErr))
		}
		return nil, err
	}

	d.logger.Info("ticket issued",
		logging.Int64(logging.FieldTicketID, issued.ID),
		logging.String(logging.FieldTicketCode, issued.Code),
		logging.String(logging.FieldCounter, issued.Counter),
		logging.String("category", issued.Category),
		logging.String(logging.FieldEventType, "ticket_issued"),
	)
	return issued, nil
}

// CurrentCounts reports today's issued count per configured counter.
func (d *Daemon) CurrentCounts(ctx context.Context) (map[string]int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	store, err := d.ensureStoreLocked()
	if err != nil {
		return nil, err
	}
	d.sweepLocked(ctx, store)

	return store.CountsForToday(ctx, d.cfg.Tickets.Counters)
}

// ListTickets returns today's tickets, oldest first.
func (d *Daemon) ListTickets(ctx context.Context) ([]ticket.Ticket, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	store, err := d.ensureStoreLocked()
	if err != nil {
		return nil, err
	}
	d.sweepLocked(ctx, store)

	rows, err := store.ListForToday(ctx)
	if err != nil {
		return nil, err
	}
	tickets := make([]ticket.Ticket, 0, len(rows))
	for _, row := range rows {
		tickets = append(tickets, *row)
	}
	return tickets, nil
}

// GetTicket returns the most recent ticket with the given code, or nil.
func (d *Daemon) GetTicket(ctx context.Context, code string) (*ticket.Ticket, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	store, err := d.ensureStoreLocked()
	if err != nil {
		return nil, err
	}
	d.sweepLocked(ctx, store)

	return store.GetByCode(ctx, code)
}

// PrintRequest names the receipt fields for one print job.
type PrintRequest struct {
	Code      string
	Counter   string
	Category  string
	CreatedAt string
}

// PrintTicket renders the receipt and sends it to the first device that
// accepts it. The returned message is operator-facing. Printing does not
// hold the allocation lock, so a slow device never blocks numbering.
func (d *Daemon) PrintTicket(ctx context.Context, req PrintRequest) (string, error) {
	data := escpos.Encode(d.layout, escpos.Request{
		Code:      req.Code,
		Counter:   req.Counter,
		Category:  req.Category,
		CreatedAt: req.CreatedAt,
	})

	accepted, err := d.dispatcher.Dispatch(ctx, data, d.resolver.Candidates())
	if err != nil {
		var failed *printer.AllFailedError
		if errors.As(err, &failed) {
			if notifyErr := d.notifier.NotifyPrintFailed(ctx, req.Code, len(failed.Attempts)); notifyErr != nil {
				d.logger.Debug("print failure notification failed", logging.Error(notifyErr))
			}
			return "", fmt.Errorf("%w: %s. Gunakan print dialog.", ErrPrinterUnavailable, failed.Error())
		}
		return "", err
	}

	return fmt.Sprintf("Berhasil mencetak ke %s", accepted.Label()), nil
}

// LogPath reports where this process writes its log, or empty when logging
// only to stdout.
func (d *Daemon) LogPath() string {
	return d.logPath
}

// TestNotification pushes a test message through the notifier.
func (d *Daemon) TestNotification(ctx context.Context) error {
	return d.notifier.TestNotification(ctx)
}

// StatusInfo is the daemon snapshot surfaced over IPC.
type StatusInfo struct {
	Running      bool
	StartedAt    string
	UptimeSecs   int64
	DatabasePath string
	StoreOpen    bool
	Counters     []string
}

// Status reports runtime information for the status command.
func (d *Daemon) Status() StatusInfo {
	d.mu.Lock()
	storeOpen := d.store != nil
	d.mu.Unlock()

	return StatusInfo{
		Running:      true,
		StartedAt:    ticket.Timestamp(d.startedAt),
		UptimeSecs:   int64(time.Since(d.startedAt).Seconds()),
		DatabasePath: d.cfg.DatabasePath(),
		StoreOpen:    storeOpen,
		Counters:     append([]string(nil), d.cfg.Tickets.Counters...),
	}
}

// Start launches background monitors. Safe to call once per daemon.
func (d *Daemon) Start(ctx context.Context) error {
	return d.hotplug.Start(ctx)
}

// Close stops monitors and releases the store if it was opened.
func (d *Daemon) Close() error {
	d.hotplug.Stop()

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.store == nil {
		return nil
	}
	err := d.store.Close()
	d.store = nil
	return err
}
