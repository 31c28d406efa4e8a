package user

import "github.com/KirkDiggler/assabeel/internal/models"

type SaveUserInput struct {
	User *models.User
}

type GetUserInput struct {
	UserID string
}

type ListUsersInput struct {
}

type ListUsersOutput struct {
	Users []*models.User
}
