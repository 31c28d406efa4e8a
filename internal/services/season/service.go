package season

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/assabeel/internal/common/clock"
	"github.com/KirkDiggler/assabeel/internal/common/uuid"
	"github.com/KirkDiggler/assabeel/internal/models"
	seasonRepo "github.com/KirkDiggler/assabeel/internal/repositories/season"
	sessionRepo "github.com/KirkDiggler/assabeel/internal/repositories/session"
	userRepo "github.com/KirkDiggler/assabeel/internal/repositories/user"
	seasonRules "github.com/KirkDiggler/assabeel/internal/season"
	"github.com/KirkDiggler/assabeel/internal/services/roster"
	"github.com/KirkDiggler/assabeel/internal/services/validate"
)

// service implements the Service interface
type service struct {
	dailyGoalMinutes int
	location         *time.Location
	seasonRepo       seasonRepo.Repository
	userRepo         userRepo.Repository
	sessionRepo      sessionRepo.Repository
	clock            clock.Clock
	uuid             uuid.UUID
	onChange         models.ChangeFunc
}

// New creates a new season service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SeasonRepo == nil {
		return nil, ErrNilSeasonRepo
	}
	if cfg.UserRepo == nil {
		return nil, ErrNilUserRepo
	}
	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	svc := &service{
		dailyGoalMinutes: cfg.DailyGoalMinutes,
		location:         cfg.Location,
		seasonRepo:       cfg.SeasonRepo,
		userRepo:         cfg.UserRepo,
		sessionRepo:      cfg.SessionRepo,
		clock:            cfg.Clock,
		uuid:             cfg.UUIDGenerator,
		onChange:         cfg.OnChange,
	}
	if svc.dailyGoalMinutes <= 0 {
		svc.dailyGoalMinutes = seasonRules.DailyGoalMinutes
	}
	if svc.location == nil {
		svc.location = time.UTC
	}

	return svc, nil
}

// CreateSeason validates the range against existing non-draft seasons and
// stores it. An overlap is reported as a *season.ConflictError naming the
// first season found.
func (s *service) CreateSeason(ctx context.Context, input *CreateSeasonInput) (*CreateSeasonOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	candidate := seasonRules.Range{Start: input.StartDate, End: input.EndDate}
	if err := candidate.Validate(); err != nil {
		return nil, validate.NewValidationError(err, validate.FieldError{
			Field: "endDate",
			Error: "must not be before startDate",
		})
	}

	if !input.Draft {
		existing, err := s.seasonRepo.ListSeasons(ctx, &seasonRepo.ListSeasonsInput{})
		if err != nil {
			return nil, err
		}
		if err := seasonRules.ValidateNew(candidate, existing.Seasons); err != nil {
			return nil, err
		}
	}

	created := &models.Season{
		ID:        s.uuid.NewUUID(),
		Name:      input.Name,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Draft:     input.Draft,
		CreatedAt: s.clock.Now(),
	}
	if err := s.seasonRepo.CreateSeason(ctx, &seasonRepo.CreateSeasonInput{Season: created}); err != nil {
		return nil, err
	}

	s.notify(ctx, models.EventSeasonCreated, created.ID)

	return &CreateSeasonOutput{Season: created}, nil
}

// ArchiveFinishedSeasons settles every non-draft season that ended before
// today and has no champion. Users and sessions are loaded once for the whole
// run. Each season commits on its own; an error stops the run and is returned
// together with the output for the seasons already settled.
func (s *service) ArchiveFinishedSeasons(ctx context.Context, input *ArchiveFinishedSeasonsInput) (*ArchiveFinishedSeasonsOutput, error) {
	today := clock.Today(s.clock, s.location)

	listed, err := s.seasonRepo.ListSeasons(ctx, &seasonRepo.ListSeasonsInput{})
	if err != nil {
		return nil, err
	}

	var finished []*models.Season
	for _, candidate := range listed.Seasons {
		if candidate.Draft || candidate.IsArchived() || candidate.EndDate >= today {
			continue
		}
		finished = append(finished, candidate)
	}

	output := &ArchiveFinishedSeasonsOutput{Outcomes: []*SeasonOutcome{}}
	if len(finished) == 0 {
		return output, nil
	}

	users, err := roster.Load(ctx, s.userRepo, s.sessionRepo)
	if err != nil {
		return nil, err
	}

	for _, finishedSeason := range finished {
		outcome, err := s.settle(ctx, finishedSeason, users)
		if err != nil {
			return output, fmt.Errorf("failed to archive season %s: %w", finishedSeason.ID, err)
		}

		switch {
		case outcome.Skipped:
		case outcome.Deleted:
			output.DeletedCount++
		default:
			output.ArchivedCount++
		}
		output.Outcomes = append(output.Outcomes, outcome)
	}

	return output, nil
}

// settle writes one season's result. Losing the race to another archiver is
// reported as a skipped outcome, not an error.
func (s *service) settle(ctx context.Context, finished *models.Season, users []*models.UserWithSessions) (*SeasonOutcome, error) {
	result, err := seasonRules.Settle(finished, users, s.dailyGoalMinutes)
	if err != nil {
		return nil, err
	}

	outcome := &SeasonOutcome{
		SeasonID: finished.ID,
		Name:     finished.Name,
	}

	if result.NoSurvivors() {
		err := s.seasonRepo.DeleteSeason(ctx, &seasonRepo.DeleteSeasonInput{
			SeasonID:          finished.ID,
			RequireUnarchived: true,
		})
		if errors.Is(err, seasonRepo.ErrSeasonAlreadyArchived) || errors.Is(err, seasonRepo.ErrSeasonNotFound) {
			outcome.Skipped = true
			return outcome, nil
		}
		if err != nil {
			return nil, err
		}

		outcome.Deleted = true
		s.notify(ctx, models.EventSeasonDeleted, finished.ID)
		return outcome, nil
	}

	_, err = s.seasonRepo.ArchiveSeason(ctx, &seasonRepo.ArchiveSeasonInput{
		SeasonID:   finished.ID,
		Champion:   result.Champion,
		Survivors:  result.Survivors,
		ArchivedAt: s.clock.Now(),
	})
	if errors.Is(err, seasonRepo.ErrSeasonAlreadyArchived) || errors.Is(err, seasonRepo.ErrSeasonNotFound) {
		outcome.Skipped = true
		return outcome, nil
	}
	if err != nil {
		return nil, err
	}

	outcome.Champion = result.Champion
	outcome.Survivors = result.Survivors
	s.notify(ctx, models.EventSeasonArchived, finished.ID)
	return outcome, nil
}

// ListSeasons returns seasons newest first
func (s *service) ListSeasons(ctx context.Context, input *ListSeasonsInput) (*ListSeasonsOutput, error) {
	if input == nil {
		input = &ListSeasonsInput{}
	}

	out, err := s.seasonRepo.ListSeasons(ctx, &seasonRepo.ListSeasonsInput{IncludeDrafts: input.IncludeDrafts})
	if err != nil {
		return nil, err
	}

	return &ListSeasonsOutput{Seasons: out.Seasons}, nil
}

// CurrentSeason returns the non-draft season whose range contains today
func (s *service) CurrentSeason(ctx context.Context, input *CurrentSeasonInput) (*CurrentSeasonOutput, error) {
	today := clock.Today(s.clock, s.location)

	out, err := s.seasonRepo.ListSeasons(ctx, &seasonRepo.ListSeasonsInput{})
	if err != nil {
		return nil, err
	}

	for _, candidate := range out.Seasons {
		if candidate.Contains(today) {
			return &CurrentSeasonOutput{Season: candidate, Today: today}, nil
		}
	}

	return &CurrentSeasonOutput{Today: today}, nil
}

// DeleteSeason removes a season that has not been archived
func (s *service) DeleteSeason(ctx context.Context, input *DeleteSeasonInput) (*DeleteSeasonOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	err := s.seasonRepo.DeleteSeason(ctx, &seasonRepo.DeleteSeasonInput{
		SeasonID:          input.SeasonID,
		RequireUnarchived: true,
	})
	if err != nil {
		switch {
		case errors.Is(err, seasonRepo.ErrSeasonNotFound):
			return nil, ErrSeasonNotFound
		case errors.Is(err, seasonRepo.ErrSeasonAlreadyArchived):
			return nil, ErrSeasonArchived
		}
		return nil, err
	}

	s.notify(ctx, models.EventSeasonDeleted, input.SeasonID)

	return &DeleteSeasonOutput{Success: true}, nil
}

func (s *service) notify(ctx context.Context, eventType models.EventType, seasonID string) {
	if s.onChange == nil {
		return
	}
	s.onChange(ctx, &models.Event{
		Type:     eventType,
		EntityID: seasonID,
		At:       s.clock.Now(),
	})
}
