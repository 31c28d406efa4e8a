package season

import (
	"time"

	"github.com/KirkDiggler/assabeel/internal/common/clock"
	"github.com/KirkDiggler/assabeel/internal/common/uuid"
	"github.com/KirkDiggler/assabeel/internal/models"
	seasonRepo "github.com/KirkDiggler/assabeel/internal/repositories/season"
	sessionRepo "github.com/KirkDiggler/assabeel/internal/repositories/session"
	userRepo "github.com/KirkDiggler/assabeel/internal/repositories/user"
)

// Config holds configuration for the season service
type Config struct {
	// DailyGoalMinutes is the per-day threshold when settling; defaults to 240
	DailyGoalMinutes int

	// Location decides which calendar day "today" is; defaults to UTC
	Location *time.Location

	// Repository dependencies
	SeasonRepo  seasonRepo.Repository
	UserRepo    userRepo.Repository
	SessionRepo sessionRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// OnChange is called after every committed mutation, if set
	OnChange models.ChangeFunc
}

// CreateSeasonInput contains parameters for creating a season
type CreateSeasonInput struct {
	Name      string `json:"name" validate:"notblank,max=100"`
	StartDate string `json:"startDate" validate:"required,isodate"`
	EndDate   string `json:"endDate" validate:"required,isodate"`

	// Draft seasons skip overlap checks and are never archived
	Draft bool `json:"draft"`
}

// CreateSeasonOutput contains the created season
type CreateSeasonOutput struct {
	Season *models.Season `json:"season"`
}

// ArchiveFinishedSeasonsInput contains parameters for an archive run
type ArchiveFinishedSeasonsInput struct {
}

// SeasonOutcome is what an archive run did with one season
type SeasonOutcome struct {
	SeasonID  string   `json:"seasonId"`
	Name      string   `json:"name"`
	Champion  string   `json:"champion,omitempty"`
	Survivors []string `json:"survivors,omitempty"`

	// Deleted is true when nobody survived
	Deleted bool `json:"deleted,omitempty"`

	// Skipped is true when another run archived or deleted the season first
	Skipped bool `json:"skipped,omitempty"`
}

// ArchiveFinishedSeasonsOutput contains the counts of an archive run
type ArchiveFinishedSeasonsOutput struct {
	ArchivedCount int              `json:"archivedCount"`
	DeletedCount  int              `json:"deletedCount"`
	Outcomes      []*SeasonOutcome `json:"outcomes"`
}

// ListSeasonsInput contains parameters for listing seasons
type ListSeasonsInput struct {
	IncludeDrafts bool
}

// ListSeasonsOutput contains seasons newest first
type ListSeasonsOutput struct {
	Seasons []*models.Season `json:"seasons"`
}

// CurrentSeasonInput contains parameters for finding the running season
type CurrentSeasonInput struct {
}

// CurrentSeasonOutput contains the running season; Season is nil when none runs
type CurrentSeasonOutput struct {
	Season *models.Season `json:"season"`
	Today  string         `json:"today"`
}

// DeleteSeasonInput contains parameters for deleting a season
type DeleteSeasonInput struct {
	SeasonID string `json:"seasonId" validate:"notblank"`
}

// DeleteSeasonOutput contains the result of deleting a season
type DeleteSeasonOutput struct {
	Success bool
}
