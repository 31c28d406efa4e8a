package models

import (
	"time"
)

// Season is one camp challenge run over an inclusive date range
type Season struct {
	// ID is the unique identifier for the season
	ID string `json:"id"`

	// Name is the display name
	Name string `json:"name"`

	// StartDate and EndDate are inclusive calendar dates (YYYY-MM-DD)
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`

	// Draft seasons are ignored by overlap checks and archiving
	Draft bool `json:"draft,omitempty"`

	// Champion is set exactly once, when the season is archived
	Champion string `json:"champion,omitempty"`

	// Survivors are the other users who survived, champion excluded
	Survivors []string `json:"survivors,omitempty"`

	// CreatedAt is when the season was created
	CreatedAt time.Time `json:"createdAt"`

	// ArchivedAt is when the champion was recorded
	ArchivedAt *time.Time `json:"archivedAt,omitempty"`
}

// IsArchived reports whether the season already has a champion
func (s *Season) IsArchived() bool {
	return s.Champion != ""
}

// Contains reports whether date falls within the inclusive range
func (s *Season) Contains(date string) bool {
	return s.StartDate <= date && date <= s.EndDate
}
