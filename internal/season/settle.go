// Package season holds the rules for settling a finished season and for
// admitting a new one.
package season

import (
	"github.com/KirkDiggler/assabeel/internal/ledger"
	"github.com/KirkDiggler/assabeel/internal/models"
)

const (
	// DailyGoalMinutes is the minutes a user must log on a season day to keep a life
	DailyGoalMinutes = 240

	// MaxLivesLost is the settled elimination line: a survivor lost fewer than
	// this many lives over the whole season. This is not the same rule as the
	// live camp check, which eliminates only past three failures.
	MaxLivesLost = 3
)

// Tally is one user's settled result over a season's full range
type Tally struct {
	UserID       string
	Name         string
	TotalMinutes int
	LivesLost    int
	Survivor     bool
}

// Result is the outcome of settling a season
type Result struct {
	// Tallies holds every user in input order
	Tallies []Tally

	// Champion is the survivor with the most minutes; empty when nobody survived
	Champion string

	// Survivors are the remaining survivors in input order, champion excluded
	Survivors []string
}

// NoSurvivors reports whether the season should be deleted instead of archived
func (r *Result) NoSurvivors() bool {
	return r.Champion == ""
}

// TallyUser walks every day of the season and counts the days under goal
func TallyUser(s *models.Season, days []string, u *models.UserWithSessions, goal int) Tally {
	inSeason := ledger.InRange(s.StartDate, s.EndDate)
	byDay := ledger.MinutesByDay(u.Sessions, inSeason)

	t := Tally{
		UserID:       u.User.ID,
		Name:         u.User.Name,
		TotalMinutes: ledger.TotalMinutes(u.Sessions, inSeason),
	}
	for _, d := range days {
		if byDay[d] < goal {
			t.LivesLost++
		}
	}
	t.Survivor = t.LivesLost < MaxLivesLost
	return t
}

// Settle tallies every user over the season range and elects the champion.
// Ties on minutes go to the first survivor encountered.
func Settle(s *models.Season, users []*models.UserWithSessions, goal int) (*Result, error) {
	days, err := ledger.DaysInRange(s.StartDate, s.EndDate)
	if err != nil {
		return nil, err
	}

	res := &Result{Tallies: make([]Tally, 0, len(users))}
	championIdx := -1
	for _, u := range users {
		if u == nil || u.User == nil {
			continue
		}
		t := TallyUser(s, days, u, goal)
		res.Tallies = append(res.Tallies, t)
		if !t.Survivor {
			continue
		}
		if championIdx == -1 || t.TotalMinutes > res.Tallies[championIdx].TotalMinutes {
			championIdx = len(res.Tallies) - 1
		}
	}

	if championIdx == -1 {
		return res, nil
	}

	res.Champion = res.Tallies[championIdx].UserID
	for i, t := range res.Tallies {
		if t.Survivor && i != championIdx {
			res.Survivors = append(res.Survivors, t.UserID)
		}
	}
	return res, nil
}
