// Package logs reads daemon log files incrementally for the CLI logs
// command.
package logs
