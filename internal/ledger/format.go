package ledger

import (
	"fmt"
	"strings"
)

// Unit ratios for FormatDuration. Months are a flat 30 days and years 12 such
// months; this is an approximation and deliberately not calendar accurate.
const (
	MinutesPerHour = 60
	HoursPerDay    = 24
	DaysPerWeek    = 7
	DaysPerMonth   = 30
	MonthsPerYear  = 12
)

// Breakdown is a minute count decomposed into units, largest first
type Breakdown struct {
	Years   int
	Months  int
	Weeks   int
	Days    int
	Hours   int
	Minutes int
}

// Breakdown units in minutes, largest first.
var (
	minutesPerDay   = HoursPerDay * MinutesPerHour
	minutesPerWeek  = DaysPerWeek * minutesPerDay
	minutesPerMonth = DaysPerMonth * minutesPerDay
	minutesPerYear  = MonthsPerYear * minutesPerMonth
)

// Decompose breaks totalMinutes into years, months, weeks, days, hours and minutes
func Decompose(totalMinutes int) Breakdown {
	if totalMinutes <= 0 {
		return Breakdown{}
	}
	rest := totalMinutes
	var b Breakdown
	b.Years, rest = rest/minutesPerYear, rest%minutesPerYear
	b.Months, rest = rest/minutesPerMonth, rest%minutesPerMonth
	b.Weeks, rest = rest/minutesPerWeek, rest%minutesPerWeek
	b.Days, rest = rest/minutesPerDay, rest%minutesPerDay
	b.Hours, b.Minutes = rest/MinutesPerHour, rest%MinutesPerHour
	return b
}

// FormatDuration renders the non-zero units of Decompose, e.g. "1w 2d 3h 4m"
func FormatDuration(totalMinutes int) string {
	b := Decompose(totalMinutes)
	parts := make([]string, 0, 6)
	add := func(n int, unit string) {
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%d%s", n, unit))
		}
	}
	add(b.Years, "y")
	add(b.Months, "mo")
	add(b.Weeks, "w")
	add(b.Days, "d")
	add(b.Hours, "h")
	add(b.Minutes, "m")
	if len(parts) == 0 {
		return "0m"
	}
	return strings.Join(parts, " ")
}

// FormatHoursMinutes renders a minute total as "H:MM"
func FormatHoursMinutes(totalMinutes int) string {
	h, m := SplitHoursMinutes(totalMinutes)
	return fmt.Sprintf("%d:%02d", h, m)
}
