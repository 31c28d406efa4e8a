package clock

import "time"

// DateLayout is the calendar-date format used for every stored date.
const DateLayout = "2006-01-02"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/assabeel/internal/common/clock Clock
type Clock interface {
	Now() time.Time
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct{}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}

// Today returns the calendar date of now in loc, formatted with DateLayout.
// A nil loc means UTC.
func Today(c Clock, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return c.Now().In(loc).Format(DateLayout)
}
