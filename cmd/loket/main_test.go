package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestConfig(t *testing.T) string {
	t.Helper()

	base := t.TempDir()
	configPath := filepath.Join(base, "loket.toml")
	content := fmt.Sprintf(`[paths]
data_dir = %q
log_dir = %q

[tickets]
counters = ["A", "B"]
`, filepath.Join(base, "data"), filepath.Join(base, "logs"))
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return configPath
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCommand(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, target) {
		t.Fatalf("output = %q", out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("sample config missing: %v", err)
	}

	if _, err := runCommand(t, "config", "init", "--path", target); err == nil {
		t.Fatal("second init without --overwrite should fail")
	}
}

func TestCreateAndCountsFallBackToDirectAccess(t *testing.T) {
	configPath := writeTestConfig(t)

	out, err := runCommand(t, "--config", configPath, "create", "a", "--category", "BPJS")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !strings.Contains(out, "A001") || !strings.Contains(out, "BPJS") {
		t.Fatalf("output = %q", out)
	}

	out, err = runCommand(t, "--config", configPath, "counts")
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if !strings.Contains(out, "A002") {
		t.Fatalf("counts should show next code A002, got %q", out)
	}
}

func TestShowUnknownTicketFails(t *testing.T) {
	configPath := writeTestConfig(t)

	_, err := runCommand(t, "--config", configPath, "show", "Z999")
	if err == nil || !strings.Contains(err.Error(), "Z999") {
		t.Fatalf("error = %v", err)
	}
}

func TestCreateRejectsUnknownCounter(t *testing.T) {
	configPath := writeTestConfig(t)

	_, err := runCommand(t, "--config", configPath, "create", "Q")
	if err == nil {
		t.Fatal("expected unknown counter error")
	}
}
