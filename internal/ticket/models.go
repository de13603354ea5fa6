package ticket

import (
	"fmt"
	"strings"
)

// Status represents the lifecycle tag of a ticket. The backend only ever
// assigns StatusWaiting; later transitions belong to the display frontend.
type Status string

const (
	StatusWaiting Status = "waiting"
	StatusCalled  Status = "called"
	StatusDone    Status = "done"
)

var statusSet = map[Status]struct{}{
	StatusWaiting: {},
	StatusCalled:  {},
	StatusDone:    {},
}

// ParseStatus converts a string into a known Status.
func ParseStatus(value string) (Status, bool) {
	normalized := Status(strings.ToLower(strings.TrimSpace(value)))
	_, ok := statusSet[normalized]
	return normalized, ok
}

// Ticket represents one issued visit ticket persisted in SQLite.
//
// CreatedAt and UpdatedAt are WIB wall-clock stamps in the exact text form
// the row stores (see Timestamp); they are kept as strings because the print
// pipeline reproduces them verbatim on the receipt.
type Ticket struct {
	ID             int64
	Counter        string
	SequenceNumber int
	Code           string
	Category       string
	Status         Status
	CreatedAt      string
	UpdatedAt      string
}

// FormatCode derives the human-readable ticket code from a counter identifier
// and a sequence number: the counter letter followed by the number zero-padded
// to three digits ("A007").
func FormatCode(counter string, sequence int) string {
	return fmt.Sprintf("%s%03d", counter, sequence)
}
