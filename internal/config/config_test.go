package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(cfg.Tickets.Counters) != 2 {
		t.Fatalf("expected two default counters, got %v", cfg.Tickets.Counters)
	}
	if cfg.Tickets.RetentionDays != 7 {
		t.Fatalf("expected 7 day retention, got %d", cfg.Tickets.RetentionDays)
	}
}

func TestLoadAppliesOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "loket.toml")
	content := strings.Join([]string{
		"[tickets]",
		`counters = ["a", "b", "C", "a"]`,
		"retention_days = 14",
		"",
		"[printer]",
		"baud_rate = 19200",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected resolved existing path %q, got %q exists=%v", path, resolved, exists)
	}
	want := []string{"A", "B", "C"}
	if len(cfg.Tickets.Counters) != len(want) {
		t.Fatalf("counters = %v, want %v", cfg.Tickets.Counters, want)
	}
	for i, counter := range want {
		if cfg.Tickets.Counters[i] != counter {
			t.Fatalf("counters = %v, want %v", cfg.Tickets.Counters, want)
		}
	}
	if cfg.Tickets.RetentionDays != 14 {
		t.Fatalf("retention_days = %d, want 14", cfg.Tickets.RetentionDays)
	}
	if cfg.Printer.BaudRate != 19200 {
		t.Fatalf("baud_rate = %d, want 19200", cfg.Printer.BaudRate)
	}
	// Untouched sections keep defaults.
	if cfg.Receipt.Header != defaultReceiptHeader {
		t.Fatalf("receipt header = %q", cfg.Receipt.Header)
	}
}

func TestValidateRejectsBadCounter(t *testing.T) {
	cfg := Default()
	cfg.Tickets.Counters = []string{"AB"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for multi-letter counter")
	}

	cfg.Tickets.Counters = nil
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty counter list")
	}
}

func TestValidateRejectsBadRetention(t *testing.T) {
	cfg := Default()
	cfg.Tickets.RetentionDays = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative retention")
	}
}

func TestHasCounter(t *testing.T) {
	cfg := Default()
	if !cfg.HasCounter("A") {
		t.Fatal("expected counter A")
	}
	if cfg.HasCounter("Z") {
		t.Fatal("did not expect counter Z")
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[tickets]") {
		t.Fatalf("sample missing tickets section")
	}
}
