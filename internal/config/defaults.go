package config

const (
	defaultDataDir            = "~/.local/share/loket"
	defaultLogDir             = "~/.local/share/loket/logs"
	defaultRetentionDays      = 7
	defaultCategory           = "Umum"
	defaultReceiptHeader      = "PUSKESMAS MREBET"
	defaultReceiptSubtitle    = "Nomor Antrian"
	defaultReceiptFeedLines   = 3
	defaultBaudRate           = 9600
	defaultWriteTimeoutMillis = 2000
	defaultNotifyTimeout      = 10
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

func defaultCounters() []string {
	return []string{"A", "B"}
}

func defaultReceiptFooter() []string {
	return []string{"Terima Kasih", "Harap Menunggu"}
}

// defaultSpoolerNames lists print-spooler share names thermal printers
// commonly register under. Tried in order before full enumeration.
func defaultSpoolerNames() []string {
	return []string{
		"USB-001",
		"USB001",
		"USB-002",
		"USB002",
		"POS-80",
		"TP806",
		"TP860",
		"Thermal Printer",
		"XP-80C",
		"ZJ-80",
	}
}

// defaultSerialPatterns lists the name substrings that mark a serial port as
// a likely USB-serial thermal printer. Matching is case-sensitive.
func defaultSerialPatterns() []string {
	return []string{
		"USB",
		"ttyUSB",
		"ttyACM",
		"cu.usbserial",
		"cu.usbmodem",
		"POS",
		"Printer",
	}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Tickets: Tickets{
			Counters:        defaultCounters(),
			RetentionDays:   defaultRetentionDays,
			DefaultCategory: defaultCategory,
		},
		Receipt: Receipt{
			Header:    defaultReceiptHeader,
			Subtitle:  defaultReceiptSubtitle,
			Footer:    defaultReceiptFooter(),
			FeedLines: defaultReceiptFeedLines,
		},
		Printer: Printer{
			SpoolerNames:       defaultSpoolerNames(),
			SerialPatterns:     defaultSerialPatterns(),
			BaudRate:           defaultBaudRate,
			WriteTimeoutMillis: defaultWriteTimeoutMillis,
		},
		Notifications: Notifications{
			RequestTimeout: defaultNotifyTimeout,
			PrintFailures:  true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
