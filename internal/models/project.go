package models

import (
	"time"
)

// ProjectStatus is the lifecycle state of a project or sub-project
type ProjectStatus string

const (
	// ProjectStatusActive is the default state
	ProjectStatusActive ProjectStatus = "active"

	// ProjectStatusCompleted marks finished work
	ProjectStatusCompleted ProjectStatus = "completed"

	// ProjectStatusDeferred marks work put on hold
	ProjectStatusDeferred ProjectStatus = "deferred"
)

// IsValid reports whether s is a known status
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusCompleted, ProjectStatusDeferred:
		return true
	}
	return false
}

// Project is a named grouping of sessions owned by a user
type Project struct {
	ID        string        `json:"id"`
	UserID    string        `json:"userId"`
	Name      string        `json:"name"`
	Status    ProjectStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}

// SubProject is a grouping nested under a Project
type SubProject struct {
	ID        string        `json:"id"`
	ProjectID string        `json:"projectId"`
	Name      string        `json:"name"`
	Status    ProjectStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}
