package camp

import (
	"time"

	"github.com/KirkDiggler/assabeel/internal/common/clock"
	"github.com/KirkDiggler/assabeel/internal/models"
	seasonRepo "github.com/KirkDiggler/assabeel/internal/repositories/season"
	sessionRepo "github.com/KirkDiggler/assabeel/internal/repositories/session"
	userRepo "github.com/KirkDiggler/assabeel/internal/repositories/user"
)

// Config holds configuration for the camp service
type Config struct {
	// StartDate is day 1 of the camp. When empty, the running season's
	// range is used instead.
	StartDate string

	// DurationDays defaults to 30
	DurationDays int

	// DailyGoalMinutes defaults to 240
	DailyGoalMinutes int

	// Location decides which calendar day "today" is; defaults to UTC
	Location *time.Location

	// Repository dependencies
	UserRepo    userRepo.Repository
	SessionRepo sessionRepo.Repository
	SeasonRepo  seasonRepo.Repository

	// Service dependencies
	Clock clock.Clock
}

// EvaluateCampInput contains parameters for evaluating the camp
type EvaluateCampInput struct {
	// StartDate overrides the configured start date when set
	StartDate string
}

// EvaluateCampOutput contains camp standings
type EvaluateCampOutput struct {
	// StartDate and EndDate bound the evaluated window
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`

	// Today is the evaluation date
	Today string `json:"today"`

	// DailyGoalMinutes is the success threshold used
	DailyGoalMinutes int `json:"dailyGoalMinutes"`

	// Statuses is sorted by lives then current streak, both descending
	Statuses []*models.CampUserStatus `json:"statuses"`
}

// GetUserStatusInput contains parameters for one user's status
type GetUserStatusInput struct {
	UserID string
}

// GetUserStatusOutput contains one user's status
type GetUserStatusOutput struct {
	Status *models.CampUserStatus `json:"status"`

	// Position is 1-based within the standings
	Position int `json:"position"`

	// Participants is the number of users in the standings
	Participants int `json:"participants"`

	StartDate string `json:"startDate"`
	Today     string `json:"today"`
}
