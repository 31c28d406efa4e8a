package stats

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/assabeel/internal/services/stats Service

import "context"

// Service computes dashboard aggregates from logged sessions
type Service interface {
	// GetUserStats returns one user's totals, target progress and rank
	GetUserStats(ctx context.Context, input *GetUserStatsInput) (*GetUserStatsOutput, error)

	// GetLeaderboard ranks every user by minutes logged in a window
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)
}
