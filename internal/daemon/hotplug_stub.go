//go:build !linux

package daemon

import (
	"context"
	"log/slog"
)

type hotplugMonitor struct{}

func newHotplugMonitor(*slog.Logger) *hotplugMonitor { return &hotplugMonitor{} }

func (m *hotplugMonitor) Start(context.Context) error { return nil }

func (m *hotplugMonitor) Stop() {}
