package models

import (
	"context"
	"time"
)

// EventType names a completed mutation
type EventType string

const (
	EventUserRegistered EventType = "user_registered"
	EventSessionLogged  EventType = "session_logged"
	EventSessionEdited  EventType = "session_edited"
	EventSessionDeleted EventType = "session_deleted"
	EventProjectCreated EventType = "project_created"
	EventProjectUpdated EventType = "project_updated"
	EventProjectDeleted EventType = "project_deleted"
	EventSeasonCreated  EventType = "season_created"
	EventSeasonArchived EventType = "season_archived"
	EventSeasonDeleted  EventType = "season_deleted"
)

// Event describes a mutation after it has been committed
type Event struct {
	Type EventType

	// UserID is the acting or owning user, empty for system actions
	UserID string

	// EntityID is the id of the changed document
	EntityID string

	At time.Time
}

// ChangeFunc receives events from the services that were given one
type ChangeFunc func(ctx context.Context, event *Event)
