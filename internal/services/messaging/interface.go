package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/assabeel/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetSessionLoggedMessage returns a line reacting to a freshly logged session
	GetSessionLoggedMessage(ctx context.Context, input *GetSessionLoggedMessageInput) (*GetSessionLoggedMessageOutput, error)

	// GetCampStatusMessage returns a line describing a user's camp standing
	GetCampStatusMessage(ctx context.Context, input *GetCampStatusMessageInput) (*GetCampStatusMessageOutput, error)

	// GetLeaderboardMessage returns a line to head the leaderboard
	GetLeaderboardMessage(ctx context.Context, input *GetLeaderboardMessageInput) (*GetLeaderboardMessageOutput, error)
}
