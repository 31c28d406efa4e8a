package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/assabeel/internal/repositories/session Repository

import (
	"context"

	"github.com/KirkDiggler/assabeel/internal/models"
)

// Repository defines the interface for session data persistence
type Repository interface {
	// SaveSession creates or replaces a session and keeps its indexes current
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// DeleteSession removes a session
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error

	// GetSessionsForUser retrieves all sessions of one user
	GetSessionsForUser(ctx context.Context, input *GetSessionsForUserInput) (*GetSessionsForUserOutput, error)

	// GetSessionsForUsers batch-loads the sessions of many users in two round trips
	GetSessionsForUsers(ctx context.Context, input *GetSessionsForUsersInput) (*GetSessionsForUsersOutput, error)
}
