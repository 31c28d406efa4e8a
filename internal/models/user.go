package models

import (
	"time"
)

// DefaultDailyTarget is the daily minute target given to new users (4 hours)
const DefaultDailyTarget = 240

// User is a person logging time
type User struct {
	// ID is the external identity (Discord user id or token subject)
	ID string `json:"id"`

	// Name is the display name
	Name string `json:"name"`

	// DailyTarget is the personal daily goal in minutes
	DailyTarget int `json:"dailyTarget"`

	// CreatedAt is when the user was first seen
	CreatedAt time.Time `json:"createdAt"`
}

// UserWithSessions pairs a user with their full session list
type UserWithSessions struct {
	User     *User
	Sessions []*Session
}
