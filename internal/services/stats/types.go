package stats

import (
	"time"

	"github.com/KirkDiggler/assabeel/internal/common/clock"
	"github.com/KirkDiggler/assabeel/internal/models"
	"github.com/KirkDiggler/assabeel/internal/rank"
	projectRepo "github.com/KirkDiggler/assabeel/internal/repositories/project"
	sessionRepo "github.com/KirkDiggler/assabeel/internal/repositories/session"
	userRepo "github.com/KirkDiggler/assabeel/internal/repositories/user"
)

// WeekStart is the first day of the dashboard week
const WeekStart = time.Saturday

// Window selects the period a leaderboard covers
type Window string

const (
	WindowAll   Window = "all"
	WindowMonth Window = "month"
	WindowWeek  Window = "week"
)

// Config holds configuration for the stats service
type Config struct {
	// Location decides which calendar day "today" is; defaults to UTC
	Location *time.Location

	// Repository dependencies
	UserRepo    userRepo.Repository
	SessionRepo sessionRepo.Repository
	ProjectRepo projectRepo.Repository

	// Service dependencies
	Clock clock.Clock
}

// GetUserStatsInput contains parameters for one user's stats
type GetUserStatsInput struct {
	UserID string
}

// SubProjectTotal is the minutes logged against one sub-project
type SubProjectTotal struct {
	SubProjectID string `json:"subProjectId"`
	Name         string `json:"name"`
	Minutes      int    `json:"minutes"`
}

// ProjectTotal is the minutes logged against a project, sub-projects included
type ProjectTotal struct {
	ProjectID   string               `json:"projectId"`
	Name        string               `json:"name"`
	Status      models.ProjectStatus `json:"status"`
	Minutes     int                  `json:"minutes"`
	SubProjects []*SubProjectTotal   `json:"subProjects,omitempty"`
}

// GetUserStatsOutput contains one user's dashboard numbers
type GetUserStatsOutput struct {
	User  *models.User `json:"user"`
	Today string       `json:"today"`

	TodayMinutes int `json:"todayMinutes"`
	WeekMinutes  int `json:"weekMinutes"`
	MonthMinutes int `json:"monthMinutes"`
	TotalMinutes int `json:"totalMinutes"`

	// TargetPercent is today's minutes as a percentage of the daily target
	TargetPercent int `json:"targetPercent"`

	Rank rank.Label `json:"rank"`

	// NextRank is empty once the top rank is held
	NextRank          rank.Label `json:"nextRank,omitempty"`
	MinutesToNextRank int        `json:"minutesToNextRank"`

	// Projects are in the user's project order
	Projects []*ProjectTotal `json:"projects"`

	// UnassignedMinutes were logged without a project or lost their project
	UnassignedMinutes int `json:"unassignedMinutes"`
}

// GetLeaderboardInput contains parameters for a leaderboard
type GetLeaderboardInput struct {
	// Window defaults to all time
	Window Window
}

// GetLeaderboardOutput contains the standings
type GetLeaderboardOutput struct {
	Leaderboard *models.Leaderboard `json:"leaderboard"`

	// From and To bound the window; empty for all time
	From string `json:"from"`
	To   string `json:"to"`
}
