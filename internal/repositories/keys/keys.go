// Package keys is the Redis key layout shared by the repositories.
//
// Documents live under "<kind>:<id>" as JSON. Relationships are index keys
// owned by the parent, so cascades can find their children without scanning.
package keys

import "fmt"

const (
	// Users is the set of all user ids
	Users = "users"

	// Seasons is the set of all season ids
	Seasons = "seasons"
)

// User is the user document key
func User(id string) string { return fmt.Sprintf("user:%s", id) }

// Session is the session document key
func Session(id string) string { return fmt.Sprintf("session:%s", id) }

// Project is the project document key
func Project(id string) string { return fmt.Sprintf("project:%s", id) }

// SubProject is the sub-project document key
func SubProject(id string) string { return fmt.Sprintf("subproject:%s", id) }

// Season is the season document key
func Season(id string) string { return fmt.Sprintf("season:%s", id) }

// UserSessions is the set of session ids owned by a user
func UserSessions(userID string) string { return fmt.Sprintf("user_sessions:%s", userID) }

// UserProjects is the sorted set of a user's project ids, scored by position
func UserProjects(userID string) string { return fmt.Sprintf("user_projects:%s", userID) }

// ProjectSubProjects is the sorted set of a project's sub-project ids
func ProjectSubProjects(projectID string) string {
	return fmt.Sprintf("project_subprojects:%s", projectID)
}

// ProjectSessions is the set of session ids linked to a project or any of its sub-projects
func ProjectSessions(projectID string) string {
	return fmt.Sprintf("project_sessions:%s", projectID)
}
