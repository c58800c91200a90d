package util

import "time"

// DateRange returns the from/to bounds for a lookback window ending at now,
// formatted as YYYY-MM-DD in UTC, the shape the company-news API expects.
func DateRange(now time.Time, windowDays int) (string, string) {
	from := now.UTC().AddDate(0, 0, -windowDays)
	return from.Format("2006-01-02"), now.UTC().Format("2006-01-02")
}

// UnixRange returns unix-second bounds for a lookback window ending at now.
func UnixRange(now time.Time, lookbackDays int) (int64, int64) {
	to := now.UTC().Unix()
	return to - int64(lookbackDays)*24*3600, to
}
