package season

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/assabeel/internal/services/season Service

import "context"

// Service manages camp seasons
type Service interface {
	// CreateSeason validates the range against existing seasons and stores it
	CreateSeason(ctx context.Context, input *CreateSeasonInput) (*CreateSeasonOutput, error)

	// ArchiveFinishedSeasons settles every season that ended before today
	ArchiveFinishedSeasons(ctx context.Context, input *ArchiveFinishedSeasonsInput) (*ArchiveFinishedSeasonsOutput, error)

	// ListSeasons returns seasons newest first
	ListSeasons(ctx context.Context, input *ListSeasonsInput) (*ListSeasonsOutput, error)

	// CurrentSeason returns the season running today, if any
	CurrentSeason(ctx context.Context, input *CurrentSeasonInput) (*CurrentSeasonOutput, error)

	// DeleteSeason removes a season that has not been archived
	DeleteSeason(ctx context.Context, input *DeleteSeasonInput) (*DeleteSeasonOutput, error)
}
