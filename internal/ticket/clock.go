package ticket

import "time"

// Counter operation runs on Indonesian western time regardless of the host
// zone; day boundaries and timestamps always use this fixed offset.
var wib = time.FixedZone("WIB", 7*60*60)

// Location returns the fixed UTC+7 zone ticket days are scoped to.
func Location() *time.Location {
	return wib
}

// Now returns the current time in the WIB zone.
func Now() time.Time {
	return time.Now().In(wib)
}

// Timestamp formats a time the way ticket rows store it: WIB wall-clock time
// with millisecond precision and a literal trailing Z, matching the stamps the
// display frontend already renders.
func Timestamp(t time.Time) string {
	return t.In(wib).Format("2006-01-02T15:04:05.000") + "Z"
}

// DateOf returns the WIB calendar date of t in YYYY-MM-DD form.
func DateOf(t time.Time) string {
	return t.In(wib).Format("2006-01-02")
}
