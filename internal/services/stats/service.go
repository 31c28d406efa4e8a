package stats

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/KirkDiggler/assabeel/internal/common/clock"
	"github.com/KirkDiggler/assabeel/internal/ledger"
	"github.com/KirkDiggler/assabeel/internal/models"
	"github.com/KirkDiggler/assabeel/internal/rank"
	projectRepo "github.com/KirkDiggler/assabeel/internal/repositories/project"
	sessionRepo "github.com/KirkDiggler/assabeel/internal/repositories/session"
	userRepo "github.com/KirkDiggler/assabeel/internal/repositories/user"
	"github.com/KirkDiggler/assabeel/internal/services/roster"
	"github.com/KirkDiggler/assabeel/internal/services/validate"
)

// service implements the Service interface
type service struct {
	location    *time.Location
	userRepo    userRepo.Repository
	sessionRepo sessionRepo.Repository
	projectRepo projectRepo.Repository
	clock       clock.Clock
}

// New creates a new stats service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.UserRepo == nil {
		return nil, ErrNilUserRepo
	}
	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}
	if cfg.ProjectRepo == nil {
		return nil, ErrNilProjectRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	location := cfg.Location
	if location == nil {
		location = time.UTC
	}

	return &service{
		location:    location,
		userRepo:    cfg.UserRepo,
		sessionRepo: cfg.SessionRepo,
		projectRepo: cfg.ProjectRepo,
		clock:       cfg.Clock,
	}, nil
}

// GetUserStats returns one user's totals, target progress and rank
func (s *service) GetUserStats(ctx context.Context, input *GetUserStatsInput) (*GetUserStatsOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	user, err := s.userRepo.GetUser(ctx, &userRepo.GetUserInput{UserID: input.UserID})
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	loaded, err := s.sessionRepo.GetSessionsForUser(ctx, &sessionRepo.GetSessionsForUserInput{UserID: user.ID})
	if err != nil {
		return nil, err
	}
	sessions := loaded.Sessions

	today := clock.Today(s.clock, s.location)
	weekStart, weekEnd, err := ledger.WeekBounds(today, WeekStart)
	if err != nil {
		return nil, err
	}
	monthStart, monthEnd, err := ledger.MonthBounds(today)
	if err != nil {
		return nil, err
	}

	out := &GetUserStatsOutput{
		User:         user,
		Today:        today,
		TodayMinutes: ledger.TotalMinutes(sessions, ledger.OnDate(today)),
		WeekMinutes:  ledger.TotalMinutes(sessions, ledger.InRange(weekStart, weekEnd)),
		MonthMinutes: ledger.TotalMinutes(sessions, ledger.InRange(monthStart, monthEnd)),
		TotalMinutes: ledger.TotalMinutes(sessions),
	}

	target := user.DailyTarget
	if target <= 0 {
		target = models.DefaultDailyTarget
	}
	out.TargetPercent = out.TodayMinutes * 100 / target

	out.Rank = rank.For(out.TotalMinutes)
	if next, missing, ok := rank.Next(out.TotalMinutes); ok {
		out.NextRank = next
		out.MinutesToNextRank = missing
	}

	projects, unassigned, err := s.projectTotals(ctx, user.ID, sessions)
	if err != nil {
		return nil, err
	}
	out.Projects = projects
	out.UnassignedMinutes = unassigned

	return out, nil
}

// projectTotals rolls sub-project minutes into their parent project.
// Sessions without a known project count as unassigned.
func (s *service) projectTotals(ctx context.Context, userID string, sessions []*models.Session) ([]*ProjectTotal, int, error) {
	listed, err := s.projectRepo.ListProjectsForUser(ctx, &projectRepo.ListProjectsForUserInput{UserID: userID})
	if err != nil {
		return nil, 0, err
	}

	byProject := ledger.MinutesByProject(sessions)

	totals := make([]*ProjectTotal, 0, len(listed.Projects))
	known := make(map[string]bool, len(listed.Projects))
	for _, project := range listed.Projects {
		known[project.ID] = true

		subs, err := s.projectRepo.ListSubProjects(ctx, &projectRepo.ListSubProjectsInput{ProjectID: project.ID})
		if err != nil {
			return nil, 0, err
		}

		total := &ProjectTotal{
			ProjectID:   project.ID,
			Name:        project.Name,
			Status:      project.Status,
			Minutes:     byProject[project.ID],
			SubProjects: make([]*SubProjectTotal, 0, len(subs.SubProjects)),
		}
		for _, sub := range subs.SubProjects {
			total.SubProjects = append(total.SubProjects, &SubProjectTotal{
				SubProjectID: sub.ID,
				Name:         sub.Name,
				Minutes:      ledger.TotalMinutes(sessions, ledger.ForSubProject(sub.ID)),
			})
		}
		totals = append(totals, total)
	}

	unassigned := 0
	for projectID, minutes := range byProject {
		if !known[projectID] {
			unassigned += minutes
		}
	}

	return totals, unassigned, nil
}

// GetLeaderboard ranks every user by minutes logged in the window. Rank
// labels always come from all-time minutes. Ties keep user id order.
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	window := WindowAll
	if input != nil && input.Window != "" {
		window = input.Window
	}

	today := clock.Today(s.clock, s.location)

	var from, to string
	var err error
	switch window {
	case WindowAll:
	case WindowMonth:
		from, to, err = ledger.MonthBounds(today)
	case WindowWeek:
		from, to, err = ledger.WeekBounds(today, WeekStart)
	default:
		return nil, validate.NewValidationError(
			fmt.Errorf("unknown leaderboard window %q", window),
			validate.FieldError{Field: "window", Error: "must be one of all, month, week"},
		)
	}
	if err != nil {
		return nil, err
	}

	users, err := roster.Load(ctx, s.userRepo, s.sessionRepo)
	if err != nil {
		return nil, err
	}

	entries := make([]*models.LeaderboardEntry, 0, len(users))
	for _, u := range users {
		minutes := ledger.TotalMinutes(u.Sessions)
		if from != "" {
			minutes = ledger.TotalMinutes(u.Sessions, ledger.InRange(from, to))
		}
		entries = append(entries, &models.LeaderboardEntry{
			UserID:       u.User.ID,
			Name:         u.User.Name,
			TotalMinutes: minutes,
			Rank:         string(rank.For(ledger.TotalMinutes(u.Sessions))),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalMinutes > entries[j].TotalMinutes
	})
	for i, entry := range entries {
		entry.Position = i + 1
	}

	return &GetLeaderboardOutput{
		Leaderboard: &models.Leaderboard{
			Window:  string(window),
			Entries: entries,
		},
		From: from,
		To:   to,
	}, nil
}
