package ticket

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "modernc.org/sqlite"

	"loket/internal/config"
)

// Store manages ticket persistence backed by SQLite.
//
// Allocate performs a count-then-insert and is not safe for concurrent use on
// its own; the daemon serializes every allocation (and the lazy store open)
// behind a single lock. All other methods are safe for concurrent readers.
type Store struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// Option customizes Store construction.
type Option func(*Store)

// WithClock overrides the time source, primarily so tests can create rows on
// chosen calendar days.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// Open initializes or connects to the ticket database and applies the schema.
func Open(cfg *config.Config, opts ...Option) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, storeError("ensure directories", err)
	}

	dbPath := cfg.DatabasePath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, storeError("open sqlite db", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, storeError("apply pragma "+pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath, now: Now}
	for _, opt := range opts {
		opt(store)
	}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, storeError("init schema", err)
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Allocate issues the next ticket for the counter on the current WIB day.
//
// The sequence number is the count of existing rows for (counter, day) plus
// one. The caller must hold the allocation lock across the whole call so two
// allocations cannot observe the same count.
func (s *Store) Allocate(ctx context.Context, counter, category string) (*Ticket, error) {
	now := s.now()
	count, err := s.CountForDay(ctx, counter, DateOf(now))
	if err != nil {
		return nil, err
	}

	sequence := count + 1
	stamp := Timestamp(now)
	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO tickets (counter, sequence_number, code, category, status, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
		counter,
		sequence,
		FormatCode(counter, sequence),
		category,
		StatusWaiting,
		stamp,
		stamp,
	)
	if err != nil {
		return nil, storeError("insert ticket", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, storeError("last insert id", err)
	}

	created, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, storeError("read back ticket", sql.ErrNoRows)
	}
	return created, nil
}

// CountForDay returns how many tickets exist for the counter on the given
// WIB calendar date (YYYY-MM-DD).
func (s *Store) CountForDay(ctx context.Context, counter, day string) (int, error) {
	var count int
	err := s.db.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM tickets WHERE counter = ? AND DATE(created_at) = ?`,
		counter,
		day,
	).Scan(&count)
	if err != nil {
		return 0, storeError("count tickets", err)
	}
	return count, nil
}

// CountsForToday returns per-counter ticket counts for the current WIB day.
func (s *Store) CountsForToday(ctx context.Context, counters []string) (map[string]int, error) {
	day := DateOf(s.now())
	counts := make(map[string]int, len(counters))
	for _, counter := range counters {
		count, err := s.CountForDay(ctx, counter, day)
		if err != nil {
			return nil, err
		}
		counts[counter] = count
	}
	return counts, nil
}

// Sweep deletes tickets whose WIB calendar date is strictly older than
// retentionDays before today. It reports how many rows were removed and is
// safe to run with nothing to delete.
func (s *Store) Sweep(ctx context.Context, retentionDays int) (int64, error) {
	cutoff := DateOf(s.now().AddDate(0, 0, -retentionDays))
	res, err := s.db.ExecContext(ctx, `DELETE FROM tickets WHERE DATE(created_at) < ?`, cutoff)
	if err != nil {
		return 0, storeError("sweep tickets", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, storeError("sweep rows affected", err)
	}
	return removed, nil
}

// GetByID fetches a ticket by identifier.
func (s *Store) GetByID(ctx context.Context, id int64) (*Ticket, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE id = ?`, id)
	t, err := scanTicket(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeError("get ticket", err)
	}
	return t, nil
}

// GetByCode fetches the most recent ticket with the given code. Codes repeat
// across days, so the newest row wins.
func (s *Store) GetByCode(ctx context.Context, code string) (*Ticket, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT `+ticketColumns+` FROM tickets WHERE code = ? ORDER BY id DESC LIMIT 1`,
		code,
	)
	t, err := scanTicket(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeError("get ticket by code", err)
	}
	return t, nil
}

// ListForToday returns the current WIB day's tickets in issue order.
func (s *Store) ListForToday(ctx context.Context) ([]*Ticket, error) {
	day := DateOf(s.now())
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+ticketColumns+` FROM tickets WHERE DATE(created_at) = ? ORDER BY id`,
		day,
	)
	if err != nil {
		return nil, storeError("list tickets", err)
	}
	defer rows.Close()

	var tickets []*Ticket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, storeError("scan ticket", err)
		}
		tickets = append(tickets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("iterate tickets", err)
	}
	return tickets, nil
}

const ticketColumns = "id, counter, sequence_number, code, category, status, created_at, updated_at"

func scanTicket(scanner interface{ Scan(dest ...any) error }) (*Ticket, error) {
	var (
		id        int64
		counter   string
		sequence  int
		code      string
		category  string
		statusStr string
		createdAt sql.NullString
		updatedAt sql.NullString
	)

	if err := scanner.Scan(&id, &counter, &sequence, &code, &category, &statusStr, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	return &Ticket{
		ID:             id,
		Counter:        counter,
		SequenceNumber: sequence,
		Code:           code,
		Category:       category,
		Status:         Status(statusStr),
		CreatedAt:      createdAt.String,
		UpdatedAt:      updatedAt.String,
	}, nil
}
