package camp

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/assabeel/internal/services/camp Service

import "context"

// Service reports camp challenge standings
type Service interface {
	// EvaluateCamp returns every user's camp status, best first
	EvaluateCamp(ctx context.Context, input *EvaluateCampInput) (*EvaluateCampOutput, error)

	// GetUserStatus returns one user's camp status and standing
	GetUserStatus(ctx context.Context, input *GetUserStatusInput) (*GetUserStatusOutput, error)
}
