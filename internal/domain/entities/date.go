package entities

import (
	"errors"
	"strings"
	"time"
)

// DateLayout is the ISO calendar-day form used for Order.Date.
const DateLayout = "2006-01-02"

// MonthLayout identifies a calendar month ("2026-01").
const MonthLayout = "2006-01"

var ErrInvalidDateFormat = errors.New("date must be YYYY-MM-DD")

// ParseDate validates and canonicalizes a calendar day.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// FormatDate renders t as a calendar day in t's own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// AddDays shifts a calendar day. The input must already be valid.
func AddDays(date string, days int) string {
	t, err := ParseDate(date)
	if err != nil {
		return date
	}
	return FormatDate(t.AddDate(0, 0, days))
}
