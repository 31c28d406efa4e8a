package project

import "github.com/KirkDiggler/assabeel/internal/models"

type CreateProjectInput struct {
	Project *models.Project
}

type GetProjectInput struct {
	ProjectID string
}

// UpdateProjectInput changes a stored project. Mutate runs on a copy read
// inside the write transaction and may run again if the transaction retries.
// An error from Mutate aborts the update.
type UpdateProjectInput struct {
	ProjectID string
	Mutate    func(project *models.Project) error
}

type ListProjectsForUserInput struct {
	UserID string
}

type ListProjectsForUserOutput struct {
	Projects []*models.Project
}

type AddSubProjectInput struct {
	SubProject *models.SubProject
}

type GetSubProjectInput struct {
	SubProjectID string
}

// UpdateSubProjectInput changes a stored sub-project the same way
// UpdateProjectInput does
type UpdateSubProjectInput struct {
	SubProjectID string
	Mutate       func(sub *models.SubProject) error
}

type ListSubProjectsInput struct {
	ProjectID string
}

type ListSubProjectsOutput struct {
	SubProjects []*models.SubProject
}

type DeleteProjectInput struct {
	ProjectID string
}

type DeleteProjectOutput struct {
	// OwnerID is the user whose project list was updated
	OwnerID string

	// DeletedSubProjectIDs are the sub-projects removed with the project
	DeletedSubProjectIDs []string

	// OrphanedSessionIDs are the sessions whose project link was cleared
	OrphanedSessionIDs []string
}
