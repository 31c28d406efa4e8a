package tracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/assabeel/internal/common/clock"
	"github.com/KirkDiggler/assabeel/internal/common/uuid"
	"github.com/KirkDiggler/assabeel/internal/models"
	projectRepo "github.com/KirkDiggler/assabeel/internal/repositories/project"
	sessionRepo "github.com/KirkDiggler/assabeel/internal/repositories/session"
	userRepo "github.com/KirkDiggler/assabeel/internal/repositories/user"
	"github.com/KirkDiggler/assabeel/internal/services/validate"
)

// service implements the Service interface
type service struct {
	location    *time.Location
	userRepo    userRepo.Repository
	sessionRepo sessionRepo.Repository
	projectRepo projectRepo.Repository
	clock       clock.Clock
	uuid        uuid.UUID
	onChange    models.ChangeFunc
}

// New creates a new tracker service
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
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
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
		uuid:        cfg.UUIDGenerator,
		onChange:    cfg.OnChange,
	}, nil
}

// RegisterUser creates the user on first sight and refreshes the display name after
func (s *service) RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterUserOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetUser(ctx, &userRepo.GetUserInput{UserID: input.UserID})
	if err != nil && !errors.Is(err, userRepo.ErrUserNotFound) {
		return nil, err
	}

	if existing != nil {
		if existing.Name == input.Name {
			return &RegisterUserOutput{User: existing}, nil
		}
		existing.Name = input.Name
		if err := s.userRepo.SaveUser(ctx, &userRepo.SaveUserInput{User: existing}); err != nil {
			return nil, err
		}
		return &RegisterUserOutput{User: existing}, nil
	}

	user := &models.User{
		ID:          input.UserID,
		Name:        input.Name,
		DailyTarget: models.DefaultDailyTarget,
		CreatedAt:   s.clock.Now(),
	}
	if err := s.userRepo.SaveUser(ctx, &userRepo.SaveUserInput{User: user}); err != nil {
		return nil, err
	}

	s.notify(ctx, models.EventUserRegistered, user.ID, user.ID)

	return &RegisterUserOutput{
		User:    user,
		Created: true,
	}, nil
}

// SetDailyTarget changes a user's personal daily goal
func (s *service) SetDailyTarget(ctx context.Context, input *SetDailyTargetInput) (*SetDailyTargetOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	user, err := s.getUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	user.DailyTarget = input.Minutes
	if err := s.userRepo.SaveUser(ctx, &userRepo.SaveUserInput{User: user}); err != nil {
		return nil, err
	}

	return &SetDailyTargetOutput{User: user}, nil
}

// LogSession records a work interval. Negative duration parts are stored as zero.
func (s *service) LogSession(ctx context.Context, input *LogSessionInput) (*LogSessionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	if _, err := s.getUser(ctx, input.UserID); err != nil {
		return nil, err
	}

	projectID, subProjectID, err := s.resolveLink(ctx, input.UserID, input.ProjectID, input.SubProjectID)
	if err != nil {
		return nil, err
	}

	date := input.Date
	if date == "" {
		date = clock.Today(s.clock, s.location)
	}

	session := &models.Session{
		ID:           s.uuid.NewUUID(),
		UserID:       input.UserID,
		ProjectID:    projectID,
		SubProjectID: subProjectID,
		Date:         date,
		Hours:        clamp(input.Hours),
		Minutes:      clamp(input.Minutes),
		Notes:        input.Notes,
		Time:         input.Time,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	s.notify(ctx, models.EventSessionLogged, session.UserID, session.ID)

	return &LogSessionOutput{Session: session}, nil
}

// LogDurationSeconds floors seconds to whole minutes and logs the result
func (s *service) LogDurationSeconds(ctx context.Context, input *LogDurationSecondsInput) (*LogSessionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	totalMinutes := input.Seconds / 60

	return s.LogSession(ctx, &LogSessionInput{
		UserID:       input.UserID,
		ProjectID:    input.ProjectID,
		SubProjectID: input.SubProjectID,
		Date:         input.Date,
		Hours:        models.DurationComponent(totalMinutes / 60),
		Minutes:      models.DurationComponent(totalMinutes % 60),
		Notes:        input.Notes,
		Time:         input.Time,
	})
}

// EditSession changes the given fields of a session owned by input.UserID
func (s *service) EditSession(ctx context.Context, input *EditSessionInput) (*EditSessionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}
	if input.Time != nil && *input.Time != "" {
		if err := validate.Struct(struct {
			Time string `json:"time" validate:"clocktime"`
		}{*input.Time}); err != nil {
			return nil, err
		}
	}

	session, err := s.getOwnedSession(ctx, input.SessionID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.ProjectID != nil || input.SubProjectID != nil {
		projectID := session.ProjectID
		subProjectID := session.SubProjectID
		if input.ProjectID != nil {
			projectID = *input.ProjectID
			subProjectID = ""
		}
		if input.SubProjectID != nil {
			subProjectID = *input.SubProjectID
		}

		projectID, subProjectID, err = s.resolveLink(ctx, input.UserID, projectID, subProjectID)
		if err != nil {
			return nil, err
		}
		session.ProjectID = projectID
		session.SubProjectID = subProjectID
	}

	if input.Date != nil {
		session.Date = *input.Date
	}
	if input.Hours != nil {
		session.Hours = clamp(*input.Hours)
	}
	if input.Minutes != nil {
		session.Minutes = clamp(*input.Minutes)
	}
	if input.Notes != nil {
		session.Notes = *input.Notes
	}
	if input.Time != nil {
		session.Time = *input.Time
	}

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	s.notify(ctx, models.EventSessionEdited, session.UserID, session.ID)

	return &EditSessionOutput{Session: session}, nil
}

// DeleteSession removes a session owned by input.UserID
func (s *service) DeleteSession(ctx context.Context, input *DeleteSessionInput) (*DeleteSessionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	if _, err := s.getOwnedSession(ctx, input.SessionID, input.UserID); err != nil {
		return nil, err
	}

	err := s.sessionRepo.DeleteSession(ctx, &sessionRepo.DeleteSessionInput{SessionID: input.SessionID})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	s.notify(ctx, models.EventSessionDeleted, input.UserID, input.SessionID)

	return &DeleteSessionOutput{Success: true}, nil
}

// ListSessions returns a user's sessions ordered by date
func (s *service) ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	out, err := s.sessionRepo.GetSessionsForUser(ctx, &sessionRepo.GetSessionsForUserInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	sessions := make([]*models.Session, 0, len(out.Sessions))
	for _, session := range out.Sessions {
		if input.From != "" && session.Date < input.From {
			continue
		}
		if input.To != "" && session.Date > input.To {
			continue
		}
		sessions = append(sessions, session)
	}

	return &ListSessionsOutput{Sessions: sessions}, nil
}

// CreateProject adds a project to the user's list
func (s *service) CreateProject(ctx context.Context, input *CreateProjectInput) (*CreateProjectOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	if _, err := s.getUser(ctx, input.UserID); err != nil {
		return nil, err
	}

	project := &models.Project{
		ID:        s.uuid.NewUUID(),
		UserID:    input.UserID,
		Name:      input.Name,
		Status:    models.ProjectStatusActive,
		CreatedAt: s.clock.Now(),
	}
	if err := s.projectRepo.CreateProject(ctx, &projectRepo.CreateProjectInput{Project: project}); err != nil {
		return nil, err
	}

	s.notify(ctx, models.EventProjectCreated, project.UserID, project.ID)

	return &CreateProjectOutput{Project: project}, nil
}

// AddSubProject adds a sub-project under one of the user's projects
func (s *service) AddSubProject(ctx context.Context, input *AddSubProjectInput) (*AddSubProjectOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	if _, err := s.getOwnedProject(ctx, input.ProjectID, input.UserID); err != nil {
		return nil, err
	}

	sub := &models.SubProject{
		ID:        s.uuid.NewUUID(),
		ProjectID: input.ProjectID,
		Name:      input.Name,
		Status:    models.ProjectStatusActive,
		CreatedAt: s.clock.Now(),
	}
	err := s.projectRepo.AddSubProject(ctx, &projectRepo.AddSubProjectInput{SubProject: sub})
	if err != nil {
		if errors.Is(err, projectRepo.ErrProjectNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	s.notify(ctx, models.EventProjectUpdated, input.UserID, input.ProjectID)

	return &AddSubProjectOutput{SubProject: sub}, nil
}

// SetProjectStatus changes the status of a project or one of its sub-projects
func (s *service) SetProjectStatus(ctx context.Context, input *SetProjectStatusInput) (*SetProjectStatusOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	project, err := s.getOwnedProject(ctx, input.ProjectID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.SubProjectID == "" {
		err = s.projectRepo.UpdateProject(ctx, &projectRepo.UpdateProjectInput{
			ProjectID: project.ID,
			Mutate: func(stored *models.Project) error {
				if stored.UserID != input.UserID {
					return ErrProjectNotFound
				}
				stored.Status = input.Status
				return nil
			},
		})
	} else {
		err = s.projectRepo.UpdateSubProject(ctx, &projectRepo.UpdateSubProjectInput{
			SubProjectID: input.SubProjectID,
			Mutate: func(stored *models.SubProject) error {
				if stored.ProjectID != project.ID {
					return ErrSubProjectNotFound
				}
				stored.Status = input.Status
				return nil
			},
		})
	}
	switch {
	case err == nil:
	case errors.Is(err, projectRepo.ErrProjectNotFound), errors.Is(err, ErrProjectNotFound):
		return nil, ErrProjectNotFound
	case errors.Is(err, projectRepo.ErrSubProjectNotFound), errors.Is(err, ErrSubProjectNotFound):
		return nil, ErrSubProjectNotFound
	default:
		return nil, err
	}

	s.notify(ctx, models.EventProjectUpdated, input.UserID, input.ProjectID)

	return &SetProjectStatusOutput{Status: input.Status}, nil
}

// ListProjects returns the user's projects with their sub-projects
func (s *service) ListProjects(ctx context.Context, input *ListProjectsInput) (*ListProjectsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	out, err := s.projectRepo.ListProjectsForUser(ctx, &projectRepo.ListProjectsForUserInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	trees := make([]*ProjectTree, 0, len(out.Projects))
	for _, project := range out.Projects {
		subs, err := s.projectRepo.ListSubProjects(ctx, &projectRepo.ListSubProjectsInput{ProjectID: project.ID})
		if err != nil {
			return nil, err
		}
		trees = append(trees, &ProjectTree{
			Project:     project,
			SubProjects: subs.SubProjects,
		})
	}

	return &ListProjectsOutput{Projects: trees}, nil
}

// DeleteProject removes a project owned by input.UserID. The repository runs
// the whole cascade as one transaction, so on error nothing changed.
func (s *service) DeleteProject(ctx context.Context, input *DeleteProjectInput) (*DeleteProjectOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	if _, err := s.getOwnedProject(ctx, input.ProjectID, input.UserID); err != nil {
		return nil, err
	}

	out, err := s.projectRepo.DeleteProject(ctx, &projectRepo.DeleteProjectInput{ProjectID: input.ProjectID})
	if err != nil {
		if errors.Is(err, projectRepo.ErrProjectNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	s.notify(ctx, models.EventProjectDeleted, input.UserID, input.ProjectID)

	return &DeleteProjectOutput{
		DeletedSubProjectIDs: out.DeletedSubProjectIDs,
		OrphanedSessionIDs:   out.OrphanedSessionIDs,
	}, nil
}

// resolveLink checks a project/sub-project pair belongs to userID. A
// sub-project alone resolves to its parent project.
func (s *service) resolveLink(ctx context.Context, userID, projectID, subProjectID string) (string, string, error) {
	if subProjectID != "" {
		sub, err := s.getSubProject(ctx, subProjectID)
		if err != nil {
			return "", "", err
		}
		if projectID == "" {
			projectID = sub.ProjectID
		}
		if sub.ProjectID != projectID {
			return "", "", validate.NewValidationError(
				fmt.Errorf("sub-project %s is not part of project %s", subProjectID, projectID),
				validate.FieldError{Field: "subProjectId", Error: "does not belong to the project"},
			)
		}
	}

	if projectID == "" {
		return "", "", nil
	}

	if _, err := s.getOwnedProject(ctx, projectID, userID); err != nil {
		return "", "", err
	}

	return projectID, subProjectID, nil
}

func (s *service) getUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetUser(ctx, &userRepo.GetUserInput{UserID: userID})
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// getOwnedSession hides sessions of other users behind ErrSessionNotFound
func (s *service) getOwnedSession(ctx context.Context, sessionID, userID string) (*models.Session, error) {
	session, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{SessionID: sessionID})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if session.UserID != userID {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// getOwnedProject hides projects of other users behind ErrProjectNotFound
func (s *service) getOwnedProject(ctx context.Context, projectID, userID string) (*models.Project, error) {
	project, err := s.projectRepo.GetProject(ctx, &projectRepo.GetProjectInput{ProjectID: projectID})
	if err != nil {
		if errors.Is(err, projectRepo.ErrProjectNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	if project.UserID != userID {
		return nil, ErrProjectNotFound
	}
	return project, nil
}

func (s *service) getSubProject(ctx context.Context, subProjectID string) (*models.SubProject, error) {
	sub, err := s.projectRepo.GetSubProject(ctx, &projectRepo.GetSubProjectInput{SubProjectID: subProjectID})
	if err != nil {
		if errors.Is(err, projectRepo.ErrSubProjectNotFound) {
			return nil, ErrSubProjectNotFound
		}
		return nil, err
	}
	return sub, nil
}

func (s *service) notify(ctx context.Context, eventType models.EventType, userID, entityID string) {
	if s.onChange == nil {
		return
	}
	s.onChange(ctx, &models.Event{
		Type:     eventType,
		UserID:   userID,
		EntityID: entityID,
		At:       s.clock.Now(),
	})
}

// saveSession maps a project that vanished before the write to ErrProjectNotFound
func (s *service) saveSession(ctx context.Context, session *models.Session) error {
	err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{Session: session})
	if errors.Is(err, sessionRepo.ErrProjectNotFound) {
		return ErrProjectNotFound
	}
	return err
}

func clamp(c models.DurationComponent) models.DurationComponent {
	return models.DurationComponent(c.Value())
}
