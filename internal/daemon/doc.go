// Package daemon hosts the long-running queue service.
//
// The daemon serializes every allocation behind one mutex so concurrent
// kiosk requests never share a sequence number, opens the SQLite store
// lazily, and runs the retention sweep as a side effect of normal traffic.
// Print jobs bypass the allocation lock entirely.
package daemon
