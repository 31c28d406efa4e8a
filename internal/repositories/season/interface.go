package season

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/assabeel/internal/repositories/season Repository

import (
	"context"

	"github.com/KirkDiggler/assabeel/internal/models"
)

// Repository defines the interface for season persistence
type Repository interface {
	// CreateSeason stores a new season
	CreateSeason(ctx context.Context, input *CreateSeasonInput) error

	// GetSeason retrieves a season by ID
	GetSeason(ctx context.Context, input *GetSeasonInput) (*models.Season, error)

	// ListSeasons retrieves every season, newest start date first
	ListSeasons(ctx context.Context, input *ListSeasonsInput) (*ListSeasonsOutput, error)

	// ArchiveSeason records the champion and survivors unless a champion is already set
	ArchiveSeason(ctx context.Context, input *ArchiveSeasonInput) (*models.Season, error)

	// DeleteSeason removes a season
	DeleteSeason(ctx context.Context, input *DeleteSeasonInput) error
}
