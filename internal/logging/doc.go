// Package logging builds the slog loggers used by the daemon and CLI.
//
// Two output formats are supported: a compact console format for interactive
// use and JSON for log shipping. Attribute helpers and standardized field
// names keep log lines greppable across components; NewComponentLogger tags
// every record from a subsystem with its component name.
package logging
