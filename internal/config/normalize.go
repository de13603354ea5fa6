package config

import "strings"

func (c *Config) normalize() error {
	var err error
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return err
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return err
	}

	counters := make([]string, 0, len(c.Tickets.Counters))
	seen := map[string]struct{}{}
	for _, counter := range c.Tickets.Counters {
		trimmed := strings.ToUpper(strings.TrimSpace(counter))
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		counters = append(counters, trimmed)
	}
	c.Tickets.Counters = counters

	if c.Tickets.RetentionDays == 0 {
		c.Tickets.RetentionDays = defaultRetentionDays
	}
	if strings.TrimSpace(c.Tickets.DefaultCategory) == "" {
		c.Tickets.DefaultCategory = defaultCategory
	}

	if strings.TrimSpace(c.Receipt.Header) == "" {
		c.Receipt.Header = defaultReceiptHeader
	}
	if strings.TrimSpace(c.Receipt.Subtitle) == "" {
		c.Receipt.Subtitle = defaultReceiptSubtitle
	}
	if len(c.Receipt.Footer) == 0 {
		c.Receipt.Footer = defaultReceiptFooter()
	}
	if c.Receipt.FeedLines == 0 {
		c.Receipt.FeedLines = defaultReceiptFeedLines
	}

	if len(c.Printer.SpoolerNames) == 0 {
		c.Printer.SpoolerNames = defaultSpoolerNames()
	}
	if len(c.Printer.SerialPatterns) == 0 {
		c.Printer.SerialPatterns = defaultSerialPatterns()
	}
	if c.Printer.BaudRate == 0 {
		c.Printer.BaudRate = defaultBaudRate
	}
	if c.Printer.WriteTimeoutMillis == 0 {
		c.Printer.WriteTimeoutMillis = defaultWriteTimeoutMillis
	}

	c.Notifications.NtfyTopic = strings.TrimSpace(c.Notifications.NtfyTopic)
	if c.Notifications.RequestTimeout == 0 {
		c.Notifications.RequestTimeout = defaultNotifyTimeout
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}

	return nil
}
