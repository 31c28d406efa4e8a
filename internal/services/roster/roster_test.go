package roster

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/assabeel/internal/models"
	sessionRepo "github.com/KirkDiggler/assabeel/internal/repositories/session"
	sessionMocks "github.com/KirkDiggler/assabeel/internal/repositories/session/mocks"
	userRepo "github.com/KirkDiggler/assabeel/internal/repositories/user"
	userMocks "github.com/KirkDiggler/assabeel/internal/repositories/user/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := userMocks.NewMockRepository(ctrl)
	sessions := sessionMocks.NewMockRepository(ctrl)
	ctx := context.Background()

	users.EXPECT().ListUsers(ctx, gomock.Any()).Return(&userRepo.ListUsersOutput{
		Users: []*models.User{{ID: "a"}, {ID: "b"}},
	}, nil)
	sessions.EXPECT().
		GetSessionsForUsers(ctx, &sessionRepo.GetSessionsForUsersInput{UserIDs: []string{"a", "b"}}).
		Return(&sessionRepo.GetSessionsForUsersOutput{SessionsByUser: map[string][]*models.Session{
			"a": {{ID: "s1", UserID: "a"}},
			"b": {},
		}}, nil)

	out, err := Load(ctx, users, sessions)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].User.ID)
	assert.Len(t, out[0].Sessions, 1)
	assert.Empty(t, out[1].Sessions)
}

func TestLoadNoUsersSkipsSessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := userMocks.NewMockRepository(ctrl)
	sessions := sessionMocks.NewMockRepository(ctrl)

	users.EXPECT().ListUsers(gomock.Any(), gomock.Any()).Return(&userRepo.ListUsersOutput{}, nil)

	out, err := Load(context.Background(), users, sessions)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestLoadPropagatesStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := userMocks.NewMockRepository(ctrl)
	sessions := sessionMocks.NewMockRepository(ctrl)
	storeErr := errors.New("down")

	users.EXPECT().ListUsers(gomock.Any(), gomock.Any()).Return(nil, storeErr)

	_, err := Load(context.Background(), users, sessions)
	assert.ErrorIs(t, err, storeErr)
}
