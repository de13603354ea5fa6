package ipc

import "loket/internal/ticket"

// Ticket is the wire representation of a stored ticket.
type Ticket struct {
	ID             int64  `json:"id"`
	Counter        string `json:"counter"`
	SequenceNumber int    `json:"sequence_number"`
	Code           string `json:"code"`
	Category       string `json:"category"`
	Status         string `json:"status"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

// FromTicket converts a stored ticket to its wire form.
func FromTicket(t *ticket.Ticket) Ticket {
	if t == nil {
		return Ticket{}
	}
	return Ticket{
		ID:             t.ID,
		Counter:        t.Counter,
		SequenceNumber: t.SequenceNumber,
		Code:           t.Code,
		Category:       t.Category,
		Status:         string(t.Status),
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

// StatusRequest asks for a daemon snapshot.
type StatusRequest struct{}

// StatusResponse carries the daemon snapshot.
type StatusResponse struct {
	Running      bool     `json:"running"`
	PID          int      `json:"pid"`
	StartedAt    string   `json:"started_at"`
	UptimeSecs   int64    `json:"uptime_secs"`
	DatabasePath string   `json:"database_path"`
	StoreOpen    bool     `json:"store_open"`
	Counters     []string `json:"counters"`
}

// CountsRequest asks for today's per-counter totals.
type CountsRequest struct{}

// CountsResponse carries today's per-counter totals.
type CountsResponse struct {
	Counts map[string]int `json:"counts"`
}

// CreateTicketRequest allocates the next number for a counter. Category may
// be empty to use the configured default.
type CreateTicketRequest struct {
	Counter  string `json:"counter"`
	Category string `json:"category"`
}

// CreateTicketResponse carries the stored ticket.
type CreateTicketResponse struct {
	Ticket Ticket `json:"ticket"`
}

// PrintTicketRequest sends one receipt to the print pipeline.
type PrintTicketRequest struct {
	Code      string `json:"code"`
	Counter   string `json:"counter"`
	Category  string `json:"category"`
	CreatedAt string `json:"created_at"`
}

// PrintTicketResponse carries the operator-facing result message.
type PrintTicketResponse struct {
	Message string `json:"message"`
}

// TicketListRequest asks for today's tickets.
type TicketListRequest struct{}

// TicketListResponse carries today's tickets, oldest first.
type TicketListResponse struct {
	Tickets []Ticket `json:"tickets"`
}

// TicketDescribeRequest looks up one ticket by code.
type TicketDescribeRequest struct {
	Code string `json:"code"`
}

// TicketDescribeResponse carries the lookup result.
type TicketDescribeResponse struct {
	Found  bool   `json:"found"`
	Ticket Ticket `json:"ticket"`
}

// TestNotificationRequest pushes a test message to the notifier.
type TestNotificationRequest struct{}

// TestNotificationResponse reports the notifier result.
type TestNotificationResponse struct {
	Sent    bool   `json:"sent"`
	Message string `json:"message"`
}

// LogTailRequest reads daemon log lines. A negative offset asks for the
// last Limit lines.
type LogTailRequest struct {
	Offset     int64 `json:"offset"`
	Limit      int   `json:"limit"`
	Follow     bool  `json:"follow"`
	WaitMillis int64 `json:"wait_millis"`
}

// LogTailResponse carries log lines and the offset to resume from.
type LogTailResponse struct {
	Lines  []string `json:"lines"`
	Offset int64    `json:"offset"`
}

// StopRequest asks the daemon process to shut down.
type StopRequest struct{}

// StopResponse acknowledges a shutdown request.
type StopResponse struct {
	Stopping bool `json:"stopping"`
}
