package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/assabeel/internal/models"
	"github.com/KirkDiggler/assabeel/internal/repositories/keys"
	"github.com/KirkDiggler/assabeel/internal/repositories/txn"
	"github.com/redis/go-redis/v9"
)

var (
	// ErrSessionNotFound is returned when a session is not found
	ErrSessionNotFound = errors.New("session not found")

	// ErrProjectNotFound is returned when a session links to a project or
	// sub-project that no longer exists at commit time
	ErrProjectNotFound = errors.New("project not found")
)

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed session repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveSession writes the session document and moves it between the user and
// project indexes in one transaction. A linked project and sub-project are
// watched and must still exist, so a save racing a project cascade either
// replays after it and fails or commits before it and gets orphaned.
func (r *redisRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	session := input.Session
	if session.ID == "" {
		return errors.New("session ID cannot be empty")
	}

	if session.UserID == "" {
		return errors.New("session user ID cannot be empty")
	}

	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	sessionKey := keys.Session(session.ID)
	watched := []string{sessionKey}
	var linkKeys []string
	if session.ProjectID != "" {
		linkKeys = append(linkKeys, keys.Project(session.ProjectID))
	}
	if session.SubProjectID != "" {
		linkKeys = append(linkKeys, keys.SubProject(session.SubProjectID))
	}
	watched = append(watched, linkKeys...)

	err = txn.Run(ctx, r.client, func(tx *redis.Tx) error {
		if len(linkKeys) > 0 {
			exists, err := tx.Exists(ctx, linkKeys...).Result()
			if err != nil {
				return err
			}
			if int(exists) != len(linkKeys) {
				return ErrProjectNotFound
			}
		}

		var previous models.Session
		existed, err := txn.GetJSON(ctx, tx, sessionKey, &previous)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, sessionKey, sessionJSON, 0)
			pipe.SAdd(ctx, keys.UserSessions(session.UserID), session.ID)

			if existed && previous.UserID != session.UserID {
				pipe.SRem(ctx, keys.UserSessions(previous.UserID), session.ID)
			}
			if existed && previous.ProjectID != "" && previous.ProjectID != session.ProjectID {
				pipe.SRem(ctx, keys.ProjectSessions(previous.ProjectID), session.ID)
			}
			if session.ProjectID != "" {
				pipe.SAdd(ctx, keys.ProjectSessions(session.ProjectID), session.ID)
			}
			return nil
		})
		return err
	}, watched...)
	if err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// GetSession retrieves a session by ID
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	var session models.Session
	found, err := txn.GetJSON(ctx, r.client, keys.Session(input.SessionID), &session)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrSessionNotFound
	}

	return &session, nil
}

// DeleteSession removes the session and its index entries
func (r *redisRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	sessionKey := keys.Session(input.SessionID)
	err := txn.Run(ctx, r.client, func(tx *redis.Tx) error {
		var session models.Session
		found, err := txn.GetJSON(ctx, tx, sessionKey, &session)
		if err != nil {
			return err
		}
		if !found {
			return ErrSessionNotFound
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, sessionKey)
			pipe.SRem(ctx, keys.UserSessions(session.UserID), session.ID)
			if session.ProjectID != "" {
				pipe.SRem(ctx, keys.ProjectSessions(session.ProjectID), session.ID)
			}
			return nil
		})
		return err
	}, sessionKey)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// GetSessionsForUser retrieves all sessions of one user ordered by date
func (r *redisRepository) GetSessionsForUser(ctx context.Context, input *GetSessionsForUserInput) (*GetSessionsForUserOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	out, err := r.GetSessionsForUsers(ctx, &GetSessionsForUsersInput{
		UserIDs: []string{input.UserID},
	})
	if err != nil {
		return nil, err
	}

	return &GetSessionsForUserOutput{
		Sessions: out.SessionsByUser[input.UserID],
	}, nil
}

// GetSessionsForUsers loads the session index of every user in one pipeline
// and then every session document in a second one
func (r *redisRepository) GetSessionsForUsers(ctx context.Context, input *GetSessionsForUsersInput) (*GetSessionsForUsersOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	byUser := make(map[string][]*models.Session, len(input.UserIDs))
	if len(input.UserIDs) == 0 {
		return &GetSessionsForUsersOutput{SessionsByUser: byUser}, nil
	}

	pipe := r.client.Pipeline()
	indexCommands := make(map[string]*redis.StringSliceCmd, len(input.UserIDs))
	for _, userID := range input.UserIDs {
		byUser[userID] = []*models.Session{}
		indexCommands[userID] = pipe.SMembers(ctx, keys.UserSessions(userID))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to get session IDs: %w", err)
	}

	pipe = r.client.Pipeline()
	sessionCommands := make(map[string]*redis.StringCmd)
	for _, cmd := range indexCommands {
		for _, sessionID := range cmd.Val() {
			sessionCommands[sessionID] = pipe.Get(ctx, keys.Session(sessionID))
		}
	}
	if len(sessionCommands) == 0 {
		return &GetSessionsForUsersOutput{SessionsByUser: byUser}, nil
	}

	// redis.Nil for a vanished session is handled per command below
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get sessions: %w", err)
	}

	for sessionID, cmd := range sessionCommands {
		sessionJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get session %s: %w", sessionID, err)
		}

		var session models.Session
		if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
			return nil, fmt.Errorf("failed to unmarshal session %s: %w", sessionID, err)
		}

		if _, requested := byUser[session.UserID]; requested {
			byUser[session.UserID] = append(byUser[session.UserID], &session)
		}
	}

	for _, sessions := range byUser {
		sortSessions(sessions)
	}

	return &GetSessionsForUsersOutput{
		SessionsByUser: byUser,
	}, nil
}

// sortSessions orders by date, then creation time, then ID
func sortSessions(sessions []*models.Session) {
	sort.Slice(sessions, func(i, j int) bool {
		a, b := sessions[i], sessions[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
}
