package session

import "github.com/KirkDiggler/assabeel/internal/models"

type SaveSessionInput struct {
	Session *models.Session
}

type GetSessionInput struct {
	SessionID string
}

type DeleteSessionInput struct {
	SessionID string
}

type GetSessionsForUserInput struct {
	UserID string
}

type GetSessionsForUserOutput struct {
	Sessions []*models.Session
}

type GetSessionsForUsersInput struct {
	UserIDs []string
}

type GetSessionsForUsersOutput struct {
	// SessionsByUser maps every requested user ID to its sessions (possibly empty)
	SessionsByUser map[string][]*models.Session
}
