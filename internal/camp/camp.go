// Package camp evaluates the 30-day camp challenge.
//
// A user's camp state is re-derived from their sessions on every call: each
// challenge day is pending (not reached yet), success (daily goal met) or fail.
// Failures cost lives, and the trailing run of successes up to today is the
// current streak.
package camp

import (
	"errors"
	"sort"

	"github.com/KirkDiggler/assabeel/internal/ledger"
	"github.com/KirkDiggler/assabeel/internal/models"
)

const (
	// DefaultDurationDays is the length of a camp challenge
	DefaultDurationDays = 30

	// DefaultDailyGoalMinutes is the minutes needed for a successful day (4 hours)
	DefaultDailyGoalMinutes = 240

	// StartingLives is the number of failures a user can absorb
	StartingLives = 3

	// EliminationFailures is the failure count a user must exceed to be
	// eliminated. With exactly this many failures lives are 0 but the user
	// is still in.
	EliminationFailures = 3
)

// ErrInvalidWindow is returned when the challenge window cannot be built
var ErrInvalidWindow = errors.New("invalid camp window")

// Window is the fixed challenge period
type Window struct {
	// StartDate is day 1 (YYYY-MM-DD)
	StartDate string

	// DurationDays is the number of challenge days
	DurationDays int

	// DailyGoalMinutes is the per-day success threshold
	DailyGoalMinutes int
}

// DefaultWindow returns a 30 day, 4 hour/day window starting on startDate
func DefaultWindow(startDate string) Window {
	return Window{
		StartDate:        startDate,
		DurationDays:     DefaultDurationDays,
		DailyGoalMinutes: DefaultDailyGoalMinutes,
	}
}

// Days lists the calendar dates of the window, day 1 first
func (w Window) Days() ([]string, error) {
	if w.DurationDays <= 0 {
		return nil, ErrInvalidWindow
	}
	end, err := ledger.AddDays(w.StartDate, w.DurationDays-1)
	if err != nil {
		return nil, errors.Join(ErrInvalidWindow, err)
	}
	return ledger.DaysInRange(w.StartDate, end)
}

// Evaluate derives one user's camp status from their sessions as of today
func Evaluate(w Window, user *models.User, sessions []*models.Session, today string) (*models.CampUserStatus, error) {
	days, err := w.Days()
	if err != nil {
		return nil, err
	}
	return evaluateDays(w, days, user, sessions, today), nil
}

func evaluateDays(w Window, days []string, user *models.User, sessions []*models.Session, today string) *models.CampUserStatus {
	byDay := ledger.MinutesByDay(sessions)

	status := &models.CampUserStatus{
		UserID:   user.ID,
		Name:     user.Name,
		Progress: make([]models.DayProgress, 0, len(days)),
	}

	// index of the latest day that is not in the future
	todayIdx := -1
	for i, date := range days {
		day := models.DayProgress{
			Day:     i + 1,
			Date:    date,
			Minutes: byDay[date],
		}
		switch {
		case date > today:
			day.Status = models.DayStatusPending
		case day.Minutes >= w.DailyGoalMinutes:
			day.Status = models.DayStatusSuccess
			todayIdx = i
		default:
			day.Status = models.DayStatusFail
			status.Failures++
			todayIdx = i
		}
		status.Progress = append(status.Progress, day)
	}

	status.Lives = StartingLives - status.Failures
	if status.Lives < 0 {
		status.Lives = 0
	}
	status.IsEliminated = status.Failures > EliminationFailures

	for i := todayIdx; i >= 0; i-- {
		if status.Progress[i].Status != models.DayStatusSuccess {
			break
		}
		status.CurrentStreak++
	}

	return status
}

// EvaluateAll evaluates every user and returns them in standings order
func EvaluateAll(w Window, users []*models.UserWithSessions, today string) ([]*models.CampUserStatus, error) {
	days, err := w.Days()
	if err != nil {
		return nil, err
	}

	statuses := make([]*models.CampUserStatus, 0, len(users))
	for _, u := range users {
		if u == nil || u.User == nil {
			continue
		}
		statuses = append(statuses, evaluateDays(w, days, u.User, u.Sessions, today))
	}
	Sort(statuses)
	return statuses, nil
}

// Sort orders statuses by lives, then current streak, both descending.
// Ties keep their input order.
func Sort(statuses []*models.CampUserStatus) {
	sort.SliceStable(statuses, func(i, j int) bool {
		if statuses[i].Lives != statuses[j].Lives {
			return statuses[i].Lives > statuses[j].Lives
		}
		return statuses[i].CurrentStreak > statuses[j].CurrentStreak
	})
}
