package ticket

import (
	"testing"
	"time"
)

func TestTimestampUsesWIBWallClock(t *testing.T) {
	// 01:00 UTC is 08:00 in WIB.
	moment := time.Date(2024, 1, 1, 1, 0, 0, 0, time.UTC)
	if got := Timestamp(moment); got != "2024-01-01T08:00:00.000Z" {
		t.Fatalf("Timestamp = %q", got)
	}
}

func TestTimestampKeepsMilliseconds(t *testing.T) {
	moment := time.Date(2024, 1, 1, 8, 0, 0, 123_000_000, wib)
	if got := Timestamp(moment); got != "2024-01-01T08:00:00.123Z" {
		t.Fatalf("Timestamp = %q", got)
	}
}

func TestDateOfCrossesMidnightInWIB(t *testing.T) {
	// 18:30 UTC is already the next day in UTC+7.
	moment := time.Date(2024, 1, 1, 18, 30, 0, 0, time.UTC)
	if got := DateOf(moment); got != "2024-01-02" {
		t.Fatalf("DateOf = %q", got)
	}
}

func TestFormatCodeZeroPads(t *testing.T) {
	cases := []struct {
		counter  string
		sequence int
		want     string
	}{
		{"A", 7, "A007"},
		{"B", 42, "B042"},
		{"A", 123, "A123"},
		{"C", 1000, "C1000"},
	}
	for _, tc := range cases {
		if got := FormatCode(tc.counter, tc.sequence); got != tc.want {
			t.Fatalf("FormatCode(%q, %d) = %q, want %q", tc.counter, tc.sequence, got, tc.want)
		}
	}
}
