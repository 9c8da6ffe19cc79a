// Package biztime centralizes time handling. All storage and transport use
// UTC; implicit Local timezone is prohibited. Week boundaries for statistics
// are computed here so every caller agrees on what "this week" means.
package biztime

import "time"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// StartOfDayUTC returns the start of the UTC day containing t.
func StartOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekAgoUTC returns the instant seven days before t. Statistics count
// "new this week" as registrations after this point, matching the bot's
// rolling seven-day window rather than a calendar week.
func WeekAgoUTC(t time.Time) time.Time {
	return t.UTC().AddDate(0, 0, -7)
}

// FormatRFC3339 renders t for API payloads. Zero times render as "".
func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// FormatRFC3339Ptr renders an optional time for API payloads.
func FormatRFC3339Ptr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return FormatRFC3339(*t)
}
