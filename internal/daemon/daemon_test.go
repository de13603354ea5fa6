package daemon_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"loket/internal/daemon"
	"loket/internal/logging"
	"loket/internal/printer"
	"loket/internal/testsupport"
	"loket/internal/ticket"
)

func newDaemon(t *testing.T, opts ...daemon.Option) *daemon.Daemon {
	t.Helper()

	cfg := testsupport.NewConfig(t)
	d, err := daemon.New(cfg, logging.NewNop(), opts...)
	if err != nil {
		t.Fatalf("daemon.New: %v", err)
	}
	t.Cleanup(func() {
		d.Close()
	})
	return d
}

func TestCreateTicketRejectsUnknownCounter(t *testing.T) {
	d := newDaemon(t)

	_, err := d.CreateTicket(context.Background(), "Z", "Umum")
	if !errors.Is(err, daemon.ErrUnknownCounter) {
		t.Fatalf("error = %v, want ErrUnknownCounter", err)
	}
}

func TestCreateTicketDefaultsCategory(t *testing.T) {
	d := newDaemon(t)

	issued, err := d.CreateTicket(context.Background(), "A", "")
	if err != nil {
		t.Fatalf("CreateTicket: %v", err)
	}
	if issued.Category != "Umum" {
		t.Fatalf("category = %q, want Umum", issued.Category)
	}
}

func TestConcurrentCreateTicketNeverSharesNumbers(t *testing.T) {
	d := newDaemon(t)

	const workers = 20
	codes := make([]string, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			issued, err := d.CreateTicket(context.Background(), "A", "Umum")
			if err != nil {
				t.Errorf("CreateTicket: %v", err)
				return
			}
			codes[i] = issued.Code
		}(i)
	}
	wg.Wait()

	sort.Strings(codes)
	for i := 1; i < workers; i++ {
		if codes[i] == codes[i-1] {
			t.Fatalf("duplicate code issued: %s", codes[i])
		}
	}

	counts, err := d.CurrentCounts(context.Background())
	if err != nil {
		t.Fatalf("CurrentCounts: %v", err)
	}
	if counts["A"] != workers {
		t.Fatalf("count = %d, want %d", counts["A"], workers)
	}
}

func TestCurrentCountsCoversAllCounters(t *testing.T) {
	d := newDaemon(t)

	counts, err := d.CurrentCounts(context.Background())
	if err != nil {
		t.Fatalf("CurrentCounts: %v", err)
	}
	if counts["A"] != 0 || counts["B"] != 0 {
		t.Fatalf("counts = %v, want zeros for A and B", counts)
	}
}

func TestPrintTicketSucceedsThroughResolver(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	var written []byte
	resolver := printer.NewResolver(cfg, logging.NewNop(),
		printer.WithSpooler(
			func() ([]string, error) { return nil, nil },
			func(name string, data []byte) error {
				if name != "USB-001" {
					return errors.New("offline")
				}
				written = data
				return nil
			},
		),
		printer.WithPortLister(func() ([]string, error) { return nil, nil }),
	)

	d, err := daemon.New(cfg, logging.NewNop(), daemon.WithResolver(resolver))
	if err != nil {
		t.Fatalf("daemon.New: %v", err)
	}
	defer d.Close()

	msg, err := d.PrintTicket(context.Background(), daemon.PrintRequest{
		Code:      "A007",
		Counter:   "A",
		Category:  "Umum",
		CreatedAt: "2024-01-01T08:00:00.000Z",
	})
	if err != nil {
		t.Fatalf("PrintTicket: %v", err)
	}
	if msg != "Berhasil mencetak ke USB-001" {
		t.Fatalf("message = %q", msg)
	}
	if len(written) == 0 || written[0] != 0x1B || written[1] != 0x40 {
		t.Fatalf("device did not receive an initialized stream: % X", written[:2])
	}
}

func TestPrintTicketReportsFallbackMessage(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	resolver := printer.NewResolver(cfg, logging.NewNop(),
		printer.WithSpooler(
			func() ([]string, error) { return nil, nil },
			func(string, []byte) error { return errors.New("offline") },
		),
		printer.WithPortLister(func() ([]string, error) { return nil, nil }),
	)

	d, err := daemon.New(cfg, logging.NewNop(), daemon.WithResolver(resolver))
	if err != nil {
		t.Fatalf("daemon.New: %v", err)
	}
	defer d.Close()

	_, err = d.PrintTicket(context.Background(), daemon.PrintRequest{Code: "A007", Counter: "A"})
	if !errors.Is(err, daemon.ErrPrinterUnavailable) {
		t.Fatalf("error = %v, want ErrPrinterUnavailable", err)
	}
	if !strings.Contains(err.Error(), "Gunakan print dialog") {
		t.Fatalf("message should tell the operator to use the print dialog: %v", err)
	}
}

func TestListTicketsReturnsTodayInIssueOrder(t *testing.T) {
	d := newDaemon(t)

	for i := 0; i < 3; i++ {
		if _, err := d.CreateTicket(context.Background(), "A", "Umum"); err != nil {
			t.Fatalf("CreateTicket: %v", err)
		}
	}

	tickets, err := d.ListTickets(context.Background())
	if err != nil {
		t.Fatalf("ListTickets: %v", err)
	}
	if len(tickets) != 3 {
		t.Fatalf("len = %d, want 3", len(tickets))
	}
	for i, want := range []string{"A001", "A002", "A003"} {
		if tickets[i].Code != want {
			t.Fatalf("tickets[%d].Code = %q, want %q", i, tickets[i].Code, want)
		}
	}
}

func TestReadsSweepExpiredRows(t *testing.T) {
	current := ticket.Now().AddDate(0, 0, -8)
	d := newDaemon(t, daemon.WithStoreOptions(ticket.WithClock(func() time.Time {
		return current
	})))

	issued, err := d.CreateTicket(context.Background(), "A", "Umum")
	if err != nil {
		t.Fatalf("CreateTicket: %v", err)
	}

	current = ticket.Now()

	found, err := d.GetTicket(context.Background(), issued.Code)
	if err != nil {
		t.Fatalf("GetTicket: %v", err)
	}
	if found != nil {
		t.Fatalf("expired ticket %s should be swept before the lookup", issued.Code)
	}

	tickets, err := d.ListTickets(context.Background())
	if err != nil {
		t.Fatalf("ListTickets: %v", err)
	}
	if len(tickets) != 0 {
		t.Fatalf("tickets = %v, want none", tickets)
	}
}

func TestStatusReportsLazyStore(t *testing.T) {
	d := newDaemon(t)

	if d.Status().StoreOpen {
		t.Fatal("store should stay closed until first use")
	}
	if _, err := d.CreateTicket(context.Background(), "A", "Umum"); err != nil {
		t.Fatalf("CreateTicket: %v", err)
	}
	status := d.Status()
	if !status.StoreOpen {
		t.Fatal("store should be open after first allocation")
	}
	if len(status.Counters) != 2 {
		t.Fatalf("counters = %v", status.Counters)
	}
}
