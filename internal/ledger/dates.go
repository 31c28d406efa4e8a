package ledger

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/assabeel/internal/common/clock"
)

// ParseDate parses a YYYY-MM-DD calendar date as midnight UTC
func ParseDate(date string) (time.Time, error) {
	t, err := time.ParseInLocation(clock.DateLayout, date, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t, nil
}

// AddDays shifts a calendar date by n days
func AddDays(date string, n int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, n).Format(clock.DateLayout), nil
}

// DaysInRange lists every calendar date in [start, end] inclusive.
// An end before start yields no days.
func DaysInRange(start, end string) ([]string, error) {
	from, err := ParseDate(start)
	if err != nil {
		return nil, err
	}
	to, err := ParseDate(end)
	if err != nil {
		return nil, err
	}

	var days []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(clock.DateLayout))
	}
	return days, nil
}

// WeekBounds returns the first and last date of the week containing date,
// with weeks starting on weekStart.
func WeekBounds(date string, weekStart time.Weekday) (string, string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", "", err
	}
	offset := (int(t.Weekday()) - int(weekStart) + 7) % 7
	first := t.AddDate(0, 0, -offset)
	return first.Format(clock.DateLayout), first.AddDate(0, 0, 6).Format(clock.DateLayout), nil
}

// MonthBounds returns the first and last date of the calendar month containing date
func MonthBounds(date string) (string, string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", "", err
	}
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format(clock.DateLayout), last.Format(clock.DateLayout), nil
}
