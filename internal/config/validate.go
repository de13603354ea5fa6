package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTickets(); err != nil {
		return err
	}
	if err := c.validateReceipt(); err != nil {
		return err
	}
	if err := c.validatePrinter(); err != nil {
		return err
	}
	if err := c.validateNotifications(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateTickets() error {
	if len(c.Tickets.Counters) == 0 {
		return errors.New("tickets.counters must list at least one counter")
	}
	for _, counter := range c.Tickets.Counters {
		if len(counter) != 1 || counter[0] < 'A' || counter[0] > 'Z' {
			return fmt.Errorf("tickets.counters entry %q must be a single uppercase letter", counter)
		}
	}
	if c.Tickets.RetentionDays < 1 {
		return errors.New("tickets.retention_days must be at least 1")
	}
	return nil
}

func (c *Config) validateReceipt() error {
	if c.Receipt.FeedLines < 1 || c.Receipt.FeedLines > 255 {
		return errors.New("receipt.feed_lines must be between 1 and 255")
	}
	return nil
}

func (c *Config) validatePrinter() error {
	if c.Printer.BaudRate <= 0 {
		return errors.New("printer.baud_rate must be positive")
	}
	if c.Printer.WriteTimeoutMillis <= 0 {
		return errors.New("printer.write_timeout_ms must be positive")
	}
	return nil
}

func (c *Config) validateNotifications() error {
	if c.Notifications.RequestTimeout <= 0 {
		return errors.New("notifications.request_timeout must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}
