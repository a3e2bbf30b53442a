package utils

import "time"

var monthIndex = map[string]int{
	"January": 1, "February": 2, "March": 3, "April": 4,
	"May": 5, "June": 6, "July": 7, "August": 8,
	"September": 9, "October": 10, "November": 11, "December": 12,
}

// MonthIndex maps a month name to its calendar index (January = 1).
// Unknown names map to 0.
func MonthIndex(name string) int {
	return monthIndex[name]
}

// MonthName returns the English name for a calendar month index, or "".
func MonthName(index int) string {
	if index < 1 || index > 12 {
		return ""
	}
	return time.Month(index).String()
}

// ParseDate accepts the date formats clients send: a bare calendar date or a
// full RFC 3339 timestamp. Either way the result is truncated to a calendar
// day in UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, err
		}
	}
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
