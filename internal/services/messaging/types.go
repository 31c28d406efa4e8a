package messaging

import (
	"math/rand"

	"github.com/KirkDiggler/assabeel/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"

	// ToneWarning is used when a user is close to losing
	ToneWarning MessageTone = "warning"
)

// ServiceConfig holds the configuration for the messaging service
type ServiceConfig struct {
	// Rand picks between equivalent messages. A time-seeded source is used when nil.
	Rand *rand.Rand
}

// GetSessionLoggedMessageInput contains parameters for a session logged message
type GetSessionLoggedMessageInput struct {
	// Name is the user's display name
	Name string

	// TodayMinutes is the user's total for today, including the new session
	TodayMinutes int

	// DailyTarget is the user's personal goal in minutes
	DailyTarget int
}

// GetSessionLoggedMessageOutput contains the selected message
type GetSessionLoggedMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetCampStatusMessageInput contains parameters for a camp status message
type GetCampStatusMessageInput struct {
	Status *models.CampUserStatus
}

// GetCampStatusMessageOutput contains the selected message
type GetCampStatusMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetLeaderboardMessageInput contains parameters for a leaderboard message
type GetLeaderboardMessageInput struct {
	Leaderboard *models.Leaderboard
}

// GetLeaderboardMessageOutput contains the selected message
type GetLeaderboardMessageOutput struct {
	Message string
	Tone    MessageTone
}
