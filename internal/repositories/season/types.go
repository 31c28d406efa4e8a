package season

import (
	"time"

	"github.com/KirkDiggler/assabeel/internal/models"
)

type CreateSeasonInput struct {
	Season *models.Season
}

type GetSeasonInput struct {
	SeasonID string
}

type ListSeasonsInput struct {
	// IncludeDrafts also returns draft seasons
	IncludeDrafts bool
}

type ListSeasonsOutput struct {
	Seasons []*models.Season
}

type ArchiveSeasonInput struct {
	SeasonID   string
	Champion   string
	Survivors  []string
	ArchivedAt time.Time
}

type DeleteSeasonInput struct {
	SeasonID string

	// RequireUnarchived refuses to delete a season that already has a champion
	RequireUnarchived bool
}
