package tracker

import (
	"time"

	"github.com/KirkDiggler/assabeel/internal/common/clock"
	"github.com/KirkDiggler/assabeel/internal/common/uuid"
	"github.com/KirkDiggler/assabeel/internal/models"
	projectRepo "github.com/KirkDiggler/assabeel/internal/repositories/project"
	sessionRepo "github.com/KirkDiggler/assabeel/internal/repositories/session"
	userRepo "github.com/KirkDiggler/assabeel/internal/repositories/user"
)

// Config holds configuration for the tracker service
type Config struct {
	// Location decides which calendar day "today" is; defaults to UTC
	Location *time.Location

	// Repository dependencies
	UserRepo    userRepo.Repository
	SessionRepo sessionRepo.Repository
	ProjectRepo projectRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// OnChange is called after every committed mutation, if set
	OnChange models.ChangeFunc
}

// RegisterUserInput contains parameters for registering a user
type RegisterUserInput struct {
	// UserID is the external identity (Discord user id or token subject)
	UserID string `json:"userId" validate:"notblank"`

	// Name is the display name
	Name string `json:"name" validate:"notblank"`
}

// RegisterUserOutput contains the registered user
type RegisterUserOutput struct {
	User *models.User `json:"user"`

	// Created is false when the user already existed
	Created bool `json:"created"`
}

// SetDailyTargetInput contains parameters for changing the daily goal
type SetDailyTargetInput struct {
	UserID string `json:"userId" validate:"notblank"`

	// Minutes is the new target, at most one day
	Minutes int `json:"minutes" validate:"min=1,max=1440"`
}

// SetDailyTargetOutput contains the updated user
type SetDailyTargetOutput struct {
	User *models.User `json:"user"`
}

// LogSessionInput contains parameters for logging a session
type LogSessionInput struct {
	UserID string `json:"userId" validate:"notblank"`

	// ProjectID and SubProjectID are optional; a sub-project implies its parent
	ProjectID    string `json:"projectId"`
	SubProjectID string `json:"subProjectId"`

	// Date defaults to today in the configured location
	Date string `json:"date" validate:"omitempty,isodate"`

	Hours   models.DurationComponent `json:"hours" validate:"max=24"`
	Minutes models.DurationComponent `json:"minutes" validate:"max=1440"`

	Notes string `json:"notes" validate:"max=2000"`

	// Time is an optional time of day, HH:MM
	Time string `json:"time" validate:"omitempty,clocktime"`
}

// LogSessionOutput contains the stored session
type LogSessionOutput struct {
	Session *models.Session `json:"session"`
}

// LogDurationSecondsInput logs a session from a duration in seconds
type LogDurationSecondsInput struct {
	UserID       string `json:"userId" validate:"notblank"`
	ProjectID    string `json:"projectId"`
	SubProjectID string `json:"subProjectId"`
	Date         string `json:"date" validate:"omitempty,isodate"`

	// Seconds is floored to whole minutes
	Seconds int `json:"seconds" validate:"min=0,max=86400"`

	Notes string `json:"notes" validate:"max=2000"`
	Time  string `json:"time" validate:"omitempty,clocktime"`
}

// EditSessionInput changes the non-nil fields of a session
type EditSessionInput struct {
	SessionID string `json:"sessionId" validate:"notblank"`

	// UserID must own the session
	UserID string `json:"userId" validate:"notblank"`

	// ProjectID set to an empty string unlinks the session
	ProjectID    *string `json:"projectId"`
	SubProjectID *string `json:"subProjectId"`

	Date    *string                   `json:"date" validate:"omitempty,isodate"`
	Hours   *models.DurationComponent `json:"hours" validate:"omitempty,max=24"`
	Minutes *models.DurationComponent `json:"minutes" validate:"omitempty,max=1440"`
	Notes   *string                   `json:"notes" validate:"omitempty,max=2000"`
	Time    *string                   `json:"time"`
}

// EditSessionOutput contains the updated session
type EditSessionOutput struct {
	Session *models.Session `json:"session"`
}

// DeleteSessionInput contains parameters for deleting a session
type DeleteSessionInput struct {
	SessionID string `json:"sessionId" validate:"notblank"`
	UserID    string `json:"userId" validate:"notblank"`
}

// DeleteSessionOutput contains the result of deleting a session
type DeleteSessionOutput struct {
	Success bool
}

// ListSessionsInput contains parameters for listing a user's sessions
type ListSessionsInput struct {
	UserID string `json:"userId" validate:"notblank"`

	// From and To are optional inclusive bounds
	From string `json:"from" validate:"omitempty,isodate"`
	To   string `json:"to" validate:"omitempty,isodate"`
}

// ListSessionsOutput contains sessions ordered by date
type ListSessionsOutput struct {
	Sessions []*models.Session `json:"sessions"`
}

// CreateProjectInput contains parameters for creating a project
type CreateProjectInput struct {
	UserID string `json:"userId" validate:"notblank"`
	Name   string `json:"name" validate:"notblank,max=100"`
}

// CreateProjectOutput contains the created project
type CreateProjectOutput struct {
	Project *models.Project `json:"project"`
}

// AddSubProjectInput contains parameters for adding a sub-project
type AddSubProjectInput struct {
	UserID    string `json:"userId" validate:"notblank"`
	ProjectID string `json:"projectId" validate:"notblank"`
	Name      string `json:"name" validate:"notblank,max=100"`
}

// AddSubProjectOutput contains the created sub-project
type AddSubProjectOutput struct {
	SubProject *models.SubProject `json:"subProject"`
}

// SetProjectStatusInput contains parameters for changing a status
type SetProjectStatusInput struct {
	UserID    string `json:"userId" validate:"notblank"`
	ProjectID string `json:"projectId" validate:"notblank"`

	// SubProjectID targets a sub-project of ProjectID instead of the project
	SubProjectID string `json:"subProjectId"`

	Status models.ProjectStatus `json:"status" validate:"oneof=active completed deferred"`
}

// SetProjectStatusOutput contains the result of a status change
type SetProjectStatusOutput struct {
	Status models.ProjectStatus `json:"status"`
}

// ListProjectsInput contains parameters for listing projects
type ListProjectsInput struct {
	UserID string `json:"userId" validate:"notblank"`
}

// ProjectTree is a project with its sub-projects
type ProjectTree struct {
	Project     *models.Project      `json:"project"`
	SubProjects []*models.SubProject `json:"subProjects,omitempty"`
}

// ListProjectsOutput contains the user's projects in creation order
type ListProjectsOutput struct {
	Projects []*ProjectTree `json:"projects"`
}

// DeleteProjectInput contains parameters for deleting a project
type DeleteProjectInput struct {
	UserID    string `json:"userId" validate:"notblank"`
	ProjectID string `json:"projectId" validate:"notblank"`
}

// DeleteProjectOutput reports what the cascade touched
type DeleteProjectOutput struct {
	DeletedSubProjectIDs []string `json:"deletedSubProjectIDs"`
	OrphanedSessionIDs   []string `json:"orphanedSessionIDs"`
}
