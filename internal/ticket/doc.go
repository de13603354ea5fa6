// Package ticket persists visit tickets in SQLite and owns the numbering and
// retention rules.
//
// Ticket days are scoped to a fixed UTC+7 offset (WIB); a counter's sequence
// restarts at 1 on each new WIB calendar day. Sequence numbers are derived by
// counting the counter's rows for the day and adding one, which matches the
// deployed behavior exactly: the number is not a monotonic counter, so
// deleting same-day rows could reissue a code. Retention only removes rows
// at least a week old, which keeps that case unreachable today; do not relax
// the retention window without revisiting Allocate.
//
// The Store does not serialize allocations itself; the daemon holds one
// process-wide lock across store initialization and every Allocate call.
package ticket
