// Package config loads, normalizes, and validates loket configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files from ~/.config/loket/config.toml or a
// project-local loket.toml. The Config type centralizes every knob the daemon
// and CLI need: counter identifiers, retention policy, receipt text, and
// printer discovery heuristics.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths and clear validation errors.
package config
