package user

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/assabeel/internal/repositories/user Repository

import (
	"context"

	"github.com/KirkDiggler/assabeel/internal/models"
)

// Repository defines the interface for user data persistence
type Repository interface {
	// SaveUser persists a user
	SaveUser(ctx context.Context, input *SaveUserInput) error

	// GetUser retrieves a user by ID
	GetUser(ctx context.Context, input *GetUserInput) (*models.User, error)

	// ListUsers retrieves every user
	ListUsers(ctx context.Context, input *ListUsersInput) (*ListUsersOutput, error)
}
