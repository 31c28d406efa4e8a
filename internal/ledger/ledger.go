// Package ledger aggregates session durations over date windows.
//
// Every function here is pure: aggregates are recomputed from the passed-in
// sessions on each call and never stored.
package ledger

import (
	"github.com/KirkDiggler/assabeel/internal/models"
)

// Predicate selects sessions to include in an aggregate
type Predicate func(s *models.Session) bool

// TotalMinutes sums hours*60+minutes over the sessions matching every predicate.
// Nil sessions are skipped.
func TotalMinutes(sessions []*models.Session, preds ...Predicate) int {
	total := 0
	for _, s := range sessions {
		if s == nil || !matches(s, preds) {
			continue
		}
		total += s.TotalMinutes()
	}
	return total
}

// MinutesByDay groups total minutes by the session's date string
func MinutesByDay(sessions []*models.Session, preds ...Predicate) map[string]int {
	byDay := make(map[string]int)
	for _, s := range sessions {
		if s == nil || !matches(s, preds) {
			continue
		}
		byDay[s.Date] += s.TotalMinutes()
	}
	return byDay
}

// MinutesByProject groups total minutes by project id. Sub-project sessions
// count towards their parent project. Orphaned sessions are keyed by "".
func MinutesByProject(sessions []*models.Session, preds ...Predicate) map[string]int {
	byProject := make(map[string]int)
	for _, s := range sessions {
		if s == nil || !matches(s, preds) {
			continue
		}
		byProject[s.ProjectID] += s.TotalMinutes()
	}
	return byProject
}

// SplitHoursMinutes splits a minute total into whole hours and remaining minutes
func SplitHoursMinutes(totalMinutes int) (hours, minutes int) {
	if totalMinutes <= 0 {
		return 0, 0
	}
	return totalMinutes / 60, totalMinutes % 60
}

func matches(s *models.Session, preds []Predicate) bool {
	for _, p := range preds {
		if p != nil && !p(s) {
			return false
		}
	}
	return true
}

// OnDate matches sessions logged on date
func OnDate(date string) Predicate {
	return func(s *models.Session) bool {
		return s.Date == date
	}
}

// InRange matches sessions whose date is within [start, end] inclusive
func InRange(start, end string) Predicate {
	return func(s *models.Session) bool {
		return s.Date >= start && s.Date <= end
	}
}

// ForUser matches sessions owned by userID
func ForUser(userID string) Predicate {
	return func(s *models.Session) bool {
		return s.UserID == userID
	}
}

// ForProject matches sessions of a project, including its sub-projects
func ForProject(projectID string) Predicate {
	return func(s *models.Session) bool {
		return s.ProjectID == projectID
	}
}

// ForSubProject matches sessions of a single sub-project
func ForSubProject(subProjectID string) Predicate {
	return func(s *models.Session) bool {
		return s.SubProjectID == subProjectID
	}
}
