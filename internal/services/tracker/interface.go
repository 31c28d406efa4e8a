package tracker

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/assabeel/internal/services/tracker Service

import "context"

// Service records users, sessions and projects
type Service interface {
	// RegisterUser creates the user on first sight and refreshes the display name after
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterUserOutput, error)

	// SetDailyTarget changes a user's personal daily goal
	SetDailyTarget(ctx context.Context, input *SetDailyTargetInput) (*SetDailyTargetOutput, error)

	// LogSession records a work interval
	LogSession(ctx context.Context, input *LogSessionInput) (*LogSessionOutput, error)

	// LogDurationSeconds records a work interval measured in seconds
	LogDurationSeconds(ctx context.Context, input *LogDurationSecondsInput) (*LogSessionOutput, error)

	// EditSession changes the given fields of a session
	EditSession(ctx context.Context, input *EditSessionInput) (*EditSessionOutput, error)

	// DeleteSession removes a session
	DeleteSession(ctx context.Context, input *DeleteSessionInput) (*DeleteSessionOutput, error)

	// ListSessions returns a user's sessions, optionally bounded by date
	ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error)

	// CreateProject adds a project to the user's list
	CreateProject(ctx context.Context, input *CreateProjectInput) (*CreateProjectOutput, error)

	// AddSubProject adds a sub-project under one of the user's projects
	AddSubProject(ctx context.Context, input *AddSubProjectInput) (*AddSubProjectOutput, error)

	// SetProjectStatus changes the status of a project or one of its sub-projects
	SetProjectStatus(ctx context.Context, input *SetProjectStatusInput) (*SetProjectStatusOutput, error)

	// ListProjects returns the user's projects with their sub-projects
	ListProjects(ctx context.Context, input *ListProjectsInput) (*ListProjectsOutput, error)

	// DeleteProject removes a project and orphans its sessions
	DeleteProject(ctx context.Context, input *DeleteProjectInput) (*DeleteProjectOutput, error)
}
