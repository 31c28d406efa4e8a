package project

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/assabeel/internal/repositories/project Repository

import (
	"context"

	"github.com/KirkDiggler/assabeel/internal/models"
)

// Repository defines the interface for project and sub-project persistence
type Repository interface {
	// CreateProject stores a new project and appends it to its owner's list
	CreateProject(ctx context.Context, input *CreateProjectInput) error

	// GetProject retrieves a project by ID
	GetProject(ctx context.Context, input *GetProjectInput) (*models.Project, error)

	// UpdateProject applies a change to an existing project in one transaction
	UpdateProject(ctx context.Context, input *UpdateProjectInput) error

	// ListProjectsForUser retrieves a user's projects in creation order
	ListProjectsForUser(ctx context.Context, input *ListProjectsForUserInput) (*ListProjectsForUserOutput, error)

	// AddSubProject creates a sub-project and appends its reference to the parent atomically
	AddSubProject(ctx context.Context, input *AddSubProjectInput) error

	// GetSubProject retrieves a sub-project by ID
	GetSubProject(ctx context.Context, input *GetSubProjectInput) (*models.SubProject, error)

	// UpdateSubProject applies a change to an existing sub-project in one transaction
	UpdateSubProject(ctx context.Context, input *UpdateSubProjectInput) error

	// ListSubProjects retrieves a project's sub-projects in creation order
	ListSubProjects(ctx context.Context, input *ListSubProjectsInput) (*ListSubProjectsOutput, error)

	// DeleteProject removes a project, its sub-projects and every session link to them in one transaction
	DeleteProject(ctx context.Context, input *DeleteProjectInput) (*DeleteProjectOutput, error)
}
