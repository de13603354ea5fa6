package notifications_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"loket/internal/notifications"
	"loket/internal/testsupport"
)

type captured struct {
	title    string
	priority string
	tags     string
	body     string
}

func newCapturingService(t *testing.T, printFailures bool) (notifications.Service, *captured) {
	t.Helper()

	got := &captured{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		got.title = r.Header.Get("Title")
		got.priority = r.Header.Get("Priority")
		got.tags = r.Header.Get("Tags")
		got.body = string(body)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	cfg := testsupport.NewConfig(t)
	cfg.Notifications.NtfyTopic = server.URL
	cfg.Notifications.PrintFailures = printFailures
	return notifications.NewService(cfg), got
}

func TestNewServiceReturnsNoopWhenTopicMissing(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Notifications.NtfyTopic = ""
	svc := notifications.NewService(cfg)
	if err := svc.NotifyPrintFailed(context.Background(), "A007", 3); err != nil {
		t.Fatalf("expected noop notifier to return nil, got %v", err)
	}
}

func TestNotifyPrintFailedFormatsMessage(t *testing.T) {
	svc, got := newCapturingService(t, true)

	if err := svc.NotifyPrintFailed(context.Background(), "A007", 3); err != nil {
		t.Fatalf("NotifyPrintFailed: %v", err)
	}
	if got.title != "Loket - Print Failed" {
		t.Fatalf("title = %q", got.title)
	}
	if got.priority != "high" {
		t.Fatalf("priority = %q", got.priority)
	}
	if !strings.Contains(got.body, "A007") || !strings.Contains(got.body, "3 device attempts") {
		t.Fatalf("body = %q", got.body)
	}
}

func TestNotifyPrintFailedRespectsOptOut(t *testing.T) {
	svc, got := newCapturingService(t, false)

	if err := svc.NotifyPrintFailed(context.Background(), "A007", 3); err != nil {
		t.Fatalf("NotifyPrintFailed: %v", err)
	}
	if got.body != "" {
		t.Fatalf("expected no request, got body %q", got.body)
	}
}

func TestNotifyStoreErrorIncludesOperation(t *testing.T) {
	svc, got := newCapturingService(t, true)

	if err := svc.NotifyStoreError(context.Background(), errors.New("disk full"), "allocate"); err != nil {
		t.Fatalf("NotifyStoreError: %v", err)
	}
	if !strings.Contains(got.body, "allocate") || !strings.Contains(got.body, "disk full") {
		t.Fatalf("body = %q", got.body)
	}
	if got.tags != "loket,store,alert" {
		t.Fatalf("tags = %q", got.tags)
	}
}

func TestSendReportsServerErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "topic blocked", http.StatusForbidden)
	}))
	t.Cleanup(server.Close)

	cfg := testsupport.NewConfig(t)
	cfg.Notifications.NtfyTopic = server.URL
	svc := notifications.NewService(cfg)

	err := svc.TestNotification(context.Background())
	if err == nil || !strings.Contains(err.Error(), "403") {
		t.Fatalf("expected 403 error, got %v", err)
	}
}
