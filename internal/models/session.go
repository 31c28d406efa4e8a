package models

import (
	"time"
)

// Session is a logged work interval
type Session struct {
	// ID is the unique identifier for this session
	ID string `json:"id"`

	// UserID is the owner of the session
	UserID string `json:"userId"`

	// ProjectID links the session to a project; empty once the project is deleted
	ProjectID string `json:"projectId,omitempty"`

	// SubProjectID optionally narrows the link to a sub-project of ProjectID
	SubProjectID string `json:"subProjectId,omitempty"`

	// Date is the calendar day the work counts towards (YYYY-MM-DD, no timezone)
	Date string `json:"date"`

	// Hours and Minutes make up the duration; Minutes may exceed 59
	Hours   DurationComponent `json:"hours"`
	Minutes DurationComponent `json:"minutes"`

	// Notes is optional free text
	Notes string `json:"notes,omitempty"`

	// Time is an optional clock time of day (HH:MM)
	Time string `json:"time,omitempty"`

	// CreatedAt is when the session was logged
	CreatedAt time.Time `json:"createdAt"`
}

// TotalMinutes returns hours*60 + minutes with each part clamped to
// [0, MaxDurationComponent]
func (s *Session) TotalMinutes() int {
	return s.Hours.Value()*60 + s.Minutes.Value()
}

// IsOrphaned reports whether the session lost its project link
func (s *Session) IsOrphaned() bool {
	return s.ProjectID == ""
}
