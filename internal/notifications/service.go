package notifications

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"loket/internal/config"
)

const userAgent = "Loket/0.1.0"

// Service defines the notification surface exposed to the daemon.
type Service interface {
	NotifyPrintFailed(ctx context.Context, code string, attempts int) error
	NotifyStoreError(ctx context.Context, err error, operation string) error
	TestNotification(ctx context.Context) error
}

// NewService builds a notification service backed by ntfy when configured.
// When no ntfy topic is configured, a noop implementation is returned.
func NewService(cfg *config.Config) Service {
	topic := strings.TrimSpace(cfg.Notifications.NtfyTopic)
	if topic == "" {
		return noopService{}
	}

	timeout := time.Duration(cfg.Notifications.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &ntfyService{
		endpoint:      topic,
		client:        &http.Client{Timeout: timeout},
		printFailures: cfg.Notifications.PrintFailures,
	}
}

type payload struct {
	title    string
	message  string
	tags     []string
	priority string
}

type ntfyService struct {
	endpoint      string
	client        *http.Client
	printFailures bool
}

func (n *ntfyService) NotifyPrintFailed(ctx context.Context, code string, attempts int) error {
	if !n.printFailures {
		return nil
	}
	data := payload{
		title:    "Loket - Print Failed",
		message:  fmt.Sprintf("Ticket %s was not printed after %d device attempts", strings.TrimSpace(code), attempts),
		tags:     []string{"loket", "printer", "failed"},
		priority: "high",
	}
	return n.send(ctx, data)
}

func (n *ntfyService) NotifyStoreError(ctx context.Context, err error, operation string) error {
	var builder strings.Builder
	builder.WriteString("Database error")
	if operation = strings.TrimSpace(operation); operation != "" {
		builder.WriteString(" during ")
		builder.WriteString(operation)
	}
	builder.WriteString(": ")
	if err != nil {
		builder.WriteString(strings.TrimSpace(err.Error()))
	} else {
		builder.WriteString("unknown")
	}

	data := payload{
		title:    "Loket - Store Error",
		message:  builder.String(),
		tags:     []string{"loket", "store", "alert"},
		priority: "high",
	}
	return n.send(ctx, data)
}

func (n *ntfyService) TestNotification(ctx context.Context) error {
	data := payload{
		title:    "Loket - Test",
		message:  "Notification system test",
		tags:     []string{"loket", "test"},
		priority: "low",
	}
	return n.send(ctx, data)
}

func (n *ntfyService) send(ctx context.Context, data payload) error {
	if n == nil || n.client == nil {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, strings.NewReader(data.message))
	if err != nil {
		return fmt.Errorf("build ntfy request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	if data.title != "" {
		req.Header.Set("Title", data.title)
	}
	if len(data.tags) > 0 {
		req.Header.Set("Tags", strings.Join(data.tags, ","))
	}
	if data.priority != "" && data.priority != "default" {
		req.Header.Set("Priority", data.priority)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send ntfy notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("ntfy returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

type noopService struct{}

func (noopService) NotifyPrintFailed(context.Context, string, int) error  { return nil }
func (noopService) NotifyStoreError(context.Context, error, string) error { return nil }
func (noopService) TestNotification(context.Context) error                { return nil }
