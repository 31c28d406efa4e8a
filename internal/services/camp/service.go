package camp

import (
	"context"
	"time"

	campEngine "github.com/KirkDiggler/assabeel/internal/camp"
	"github.com/KirkDiggler/assabeel/internal/common/clock"
	"github.com/KirkDiggler/assabeel/internal/ledger"
	seasonRepo "github.com/KirkDiggler/assabeel/internal/repositories/season"
	sessionRepo "github.com/KirkDiggler/assabeel/internal/repositories/session"
	userRepo "github.com/KirkDiggler/assabeel/internal/repositories/user"
	"github.com/KirkDiggler/assabeel/internal/services/roster"
)

// service implements the Service interface
type service struct {
	startDate        string
	durationDays     int
	dailyGoalMinutes int
	location         *time.Location
	userRepo         userRepo.Repository
	sessionRepo      sessionRepo.Repository
	seasonRepo       seasonRepo.Repository
	clock            clock.Clock
}

// New creates a new camp service
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
	if cfg.StartDate == "" && cfg.SeasonRepo == nil {
		return nil, ErrNilSeasonRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	svc := &service{
		startDate:        cfg.StartDate,
		durationDays:     cfg.DurationDays,
		dailyGoalMinutes: cfg.DailyGoalMinutes,
		location:         cfg.Location,
		userRepo:         cfg.UserRepo,
		sessionRepo:      cfg.SessionRepo,
		seasonRepo:       cfg.SeasonRepo,
		clock:            cfg.Clock,
	}
	if svc.durationDays <= 0 {
		svc.durationDays = campEngine.DefaultDurationDays
	}
	if svc.dailyGoalMinutes <= 0 {
		svc.dailyGoalMinutes = campEngine.DefaultDailyGoalMinutes
	}
	if svc.location == nil {
		svc.location = time.UTC
	}

	return svc, nil
}

// EvaluateCamp returns every user's camp status, best first
func (s *service) EvaluateCamp(ctx context.Context, input *EvaluateCampInput) (*EvaluateCampOutput, error) {
	if input == nil {
		input = &EvaluateCampInput{}
	}

	today := clock.Today(s.clock, s.location)

	window, err := s.window(ctx, input.StartDate, today)
	if err != nil {
		return nil, err
	}

	days, err := window.Days()
	if err != nil {
		return nil, err
	}

	users, err := roster.Load(ctx, s.userRepo, s.sessionRepo)
	if err != nil {
		return nil, err
	}

	statuses, err := campEngine.EvaluateAll(window, users, today)
	if err != nil {
		return nil, err
	}

	return &EvaluateCampOutput{
		StartDate:        days[0],
		EndDate:          days[len(days)-1],
		Today:            today,
		DailyGoalMinutes: window.DailyGoalMinutes,
		Statuses:         statuses,
	}, nil
}

// GetUserStatus returns one user's camp status and standing
func (s *service) GetUserStatus(ctx context.Context, input *GetUserStatusInput) (*GetUserStatusOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrUserNotInCamp
	}

	standings, err := s.EvaluateCamp(ctx, &EvaluateCampInput{})
	if err != nil {
		return nil, err
	}

	for i, status := range standings.Statuses {
		if status.UserID == input.UserID {
			return &GetUserStatusOutput{
				Status:       status,
				Position:     i + 1,
				Participants: len(standings.Statuses),
				StartDate:    standings.StartDate,
				Today:        standings.Today,
			}, nil
		}
	}

	return nil, ErrUserNotInCamp
}

// window picks the camp window: an explicit start, the configured start, or
// the running season
func (s *service) window(ctx context.Context, override, today string) (campEngine.Window, error) {
	start := override
	if start == "" {
		start = s.startDate
	}
	if start != "" {
		return campEngine.Window{
			StartDate:        start,
			DurationDays:     s.durationDays,
			DailyGoalMinutes: s.dailyGoalMinutes,
		}, nil
	}

	if s.seasonRepo == nil {
		return campEngine.Window{}, ErrNoActiveCamp
	}

	out, err := s.seasonRepo.ListSeasons(ctx, &seasonRepo.ListSeasonsInput{})
	if err != nil {
		return campEngine.Window{}, err
	}

	for _, season := range out.Seasons {
		if !season.Contains(today) {
			continue
		}
		days, err := ledger.DaysInRange(season.StartDate, season.EndDate)
		if err != nil {
			return campEngine.Window{}, err
		}
		return campEngine.Window{
			StartDate:        season.StartDate,
			DurationDays:     len(days),
			DailyGoalMinutes: s.dailyGoalMinutes,
		}, nil
	}

	return campEngine.Window{}, ErrNoActiveCamp
}
