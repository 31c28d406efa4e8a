// Package roster loads every user together with their sessions in a fixed
// number of store round trips.
package roster

import (
	"context"
	"errors"

	"github.com/KirkDiggler/assabeel/internal/models"
	sessionRepo "github.com/KirkDiggler/assabeel/internal/repositories/session"
	userRepo "github.com/KirkDiggler/assabeel/internal/repositories/user"
)

// Load returns every user in id order, each paired with their sessions
func Load(ctx context.Context, users userRepo.Repository, sessions sessionRepo.Repository) ([]*models.UserWithSessions, error) {
	if users == nil || sessions == nil {
		return nil, errors.New("repositories cannot be nil")
	}

	listed, err := users.ListUsers(ctx, &userRepo.ListUsersInput{})
	if err != nil {
		return nil, err
	}
	if len(listed.Users) == 0 {
		return []*models.UserWithSessions{}, nil
	}

	ids := make([]string, len(listed.Users))
	for i, u := range listed.Users {
		ids[i] = u.ID
	}

	loaded, err := sessions.GetSessionsForUsers(ctx, &sessionRepo.GetSessionsForUsersInput{UserIDs: ids})
	if err != nil {
		return nil, err
	}

	out := make([]*models.UserWithSessions, len(listed.Users))
	for i, u := range listed.Users {
		out[i] = &models.UserWithSessions{
			User:     u,
			Sessions: loaded.SessionsByUser[u.ID],
		}
	}
	return out, nil
}
