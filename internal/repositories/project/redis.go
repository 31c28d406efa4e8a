package project

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/assabeel/internal/models"
	"github.com/KirkDiggler/assabeel/internal/repositories/keys"
	"github.com/KirkDiggler/assabeel/internal/repositories/txn"
	"github.com/redis/go-redis/v9"
)

var (
	// ErrProjectNotFound is returned when a project is not found
	ErrProjectNotFound = errors.New("project not found")

	// ErrSubProjectNotFound is returned when a sub-project is not found
	ErrSubProjectNotFound = errors.New("sub-project not found")

	// ErrProjectExists is returned when creating a project whose ID is taken
	ErrProjectExists = errors.New("project already exists")
)

// Config holds configuration for the Redis project repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed project repository
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

// CreateProject stores the project and appends it to the owner's ordered list
func (r *redisRepository) CreateProject(ctx context.Context, input *CreateProjectInput) error {
	if input == nil || input.Project == nil {
		return errors.New("input and project cannot be nil")
	}

	project := input.Project
	if project.ID == "" {
		return errors.New("project ID cannot be empty")
	}
	if project.UserID == "" {
		return errors.New("project user ID cannot be empty")
	}

	projectKey := keys.Project(project.ID)
	listKey := keys.UserProjects(project.UserID)

	err := txn.Run(ctx, r.client, func(tx *redis.Tx) error {
		exists, err := tx.Exists(ctx, projectKey).Result()
		if err != nil {
			return err
		}
		if exists > 0 {
			return ErrProjectExists
		}

		position, err := tx.ZCard(ctx, listKey).Result()
		if err != nil {
			return err
		}

		var batch txn.Batch
		if err := batch.SetJSON(projectKey, project); err != nil {
			return err
		}
		batch.ZAdd(listKey, project.ID, float64(position))
		return batch.Commit(ctx, tx)
	}, projectKey, listKey)
	if err != nil {
		if errors.Is(err, ErrProjectExists) {
			return ErrProjectExists
		}
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

// GetProject retrieves a project by ID
func (r *redisRepository) GetProject(ctx context.Context, input *GetProjectInput) (*models.Project, error) {
	if input == nil || input.ProjectID == "" {
		return nil, errors.New("input and project ID cannot be empty")
	}

	var project models.Project
	found, err := txn.GetJSON(ctx, r.client, keys.Project(input.ProjectID), &project)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrProjectNotFound
	}

	return &project, nil
}

// UpdateProject re-reads the project under WATCH, applies input.Mutate and
// writes it back, so two concurrent updates cannot overwrite each other
func (r *redisRepository) UpdateProject(ctx context.Context, input *UpdateProjectInput) error {
	if input == nil || input.ProjectID == "" || input.Mutate == nil {
		return errors.New("input, project ID and mutate cannot be empty")
	}

	key := keys.Project(input.ProjectID)
	return r.update(ctx, key, ErrProjectNotFound, func(tx *redis.Tx) (interface{}, error) {
		var project models.Project
		found, err := txn.GetJSON(ctx, tx, key, &project)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, ErrProjectNotFound
		}
		if err := input.Mutate(&project); err != nil {
			return nil, err
		}
		project.ID = input.ProjectID
		return &project, nil
	})
}

// ListProjectsForUser retrieves a user's projects in creation order
func (r *redisRepository) ListProjectsForUser(ctx context.Context, input *ListProjectsForUserInput) (*ListProjectsForUserOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	raws, err := r.loadOrdered(ctx, keys.UserProjects(input.UserID), keys.Project)
	if err != nil {
		return nil, err
	}

	projects := make([]*models.Project, 0, len(raws))
	for _, raw := range raws {
		var project models.Project
		if err := json.Unmarshal(raw, &project); err != nil {
			return nil, fmt.Errorf("failed to unmarshal project: %w", err)
		}
		projects = append(projects, &project)
	}

	return &ListProjectsForUserOutput{
		Projects: projects,
	}, nil
}

// AddSubProject stores the sub-project and appends its reference to the parent
// in one transaction. The parent must exist when the transaction commits.
func (r *redisRepository) AddSubProject(ctx context.Context, input *AddSubProjectInput) error {
	if input == nil || input.SubProject == nil {
		return errors.New("input and sub-project cannot be nil")
	}

	sub := input.SubProject
	if sub.ID == "" {
		return errors.New("sub-project ID cannot be empty")
	}
	if sub.ProjectID == "" {
		return errors.New("sub-project project ID cannot be empty")
	}

	projectKey := keys.Project(sub.ProjectID)
	listKey := keys.ProjectSubProjects(sub.ProjectID)

	err := txn.Run(ctx, r.client, func(tx *redis.Tx) error {
		exists, err := tx.Exists(ctx, projectKey).Result()
		if err != nil {
			return err
		}
		if exists == 0 {
			return ErrProjectNotFound
		}

		position, err := tx.ZCard(ctx, listKey).Result()
		if err != nil {
			return err
		}

		var batch txn.Batch
		if err := batch.SetJSON(keys.SubProject(sub.ID), sub); err != nil {
			return err
		}
		batch.ZAdd(listKey, sub.ID, float64(position))
		return batch.Commit(ctx, tx)
	}, projectKey, listKey)
	if err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to add sub-project: %w", err)
	}

	return nil
}

// GetSubProject retrieves a sub-project by ID
func (r *redisRepository) GetSubProject(ctx context.Context, input *GetSubProjectInput) (*models.SubProject, error) {
	if input == nil || input.SubProjectID == "" {
		return nil, errors.New("input and sub-project ID cannot be empty")
	}

	var sub models.SubProject
	found, err := txn.GetJSON(ctx, r.client, keys.SubProject(input.SubProjectID), &sub)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrSubProjectNotFound
	}

	return &sub, nil
}

// UpdateSubProject re-reads the sub-project under WATCH, applies input.Mutate
// and writes it back
func (r *redisRepository) UpdateSubProject(ctx context.Context, input *UpdateSubProjectInput) error {
	if input == nil || input.SubProjectID == "" || input.Mutate == nil {
		return errors.New("input, sub-project ID and mutate cannot be empty")
	}

	key := keys.SubProject(input.SubProjectID)
	return r.update(ctx, key, ErrSubProjectNotFound, func(tx *redis.Tx) (interface{}, error) {
		var sub models.SubProject
		found, err := txn.GetJSON(ctx, tx, key, &sub)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, ErrSubProjectNotFound
		}
		if err := input.Mutate(&sub); err != nil {
			return nil, err
		}
		sub.ID = input.SubProjectID
		return &sub, nil
	})
}

// ListSubProjects retrieves a project's sub-projects in creation order
func (r *redisRepository) ListSubProjects(ctx context.Context, input *ListSubProjectsInput) (*ListSubProjectsOutput, error) {
	if input == nil || input.ProjectID == "" {
		return nil, errors.New("input and project ID cannot be empty")
	}

	raws, err := r.loadOrdered(ctx, keys.ProjectSubProjects(input.ProjectID), keys.SubProject)
	if err != nil {
		return nil, err
	}

	subs := make([]*models.SubProject, 0, len(raws))
	for _, raw := range raws {
		var sub models.SubProject
		if err := json.Unmarshal(raw, &sub); err != nil {
			return nil, fmt.Errorf("failed to unmarshal sub-project: %w", err)
		}
		subs = append(subs, &sub)
	}

	return &ListSubProjectsOutput{
		SubProjects: subs,
	}, nil
}

// DeleteProject runs the cascade as one optimistic transaction. The project,
// its indexes and every linked session are watched, so a concurrent write to
// any of them replays the whole cascade instead of committing part of it.
func (r *redisRepository) DeleteProject(ctx context.Context, input *DeleteProjectInput) (*DeleteProjectOutput, error) {
	if input == nil || input.ProjectID == "" {
		return nil, errors.New("input and project ID cannot be empty")
	}

	projectKey := keys.Project(input.ProjectID)
	subListKey := keys.ProjectSubProjects(input.ProjectID)
	sessionSetKey := keys.ProjectSessions(input.ProjectID)

	var output *DeleteProjectOutput
	err := txn.Run(ctx, r.client, func(tx *redis.Tx) error {
		var project models.Project
		found, err := txn.GetJSON(ctx, tx, projectKey, &project)
		if err != nil {
			return err
		}
		if !found {
			return ErrProjectNotFound
		}

		subIDs, err := tx.ZRange(ctx, subListKey, 0, -1).Result()
		if err != nil {
			return err
		}

		sessionIDs, err := tx.SMembers(ctx, sessionSetKey).Result()
		if err != nil {
			return err
		}

		sessionKeys := make([]string, 0, len(sessionIDs))
		for _, id := range sessionIDs {
			sessionKeys = append(sessionKeys, keys.Session(id))
		}
		if len(sessionKeys) > 0 {
			if err := tx.Watch(ctx, sessionKeys...).Err(); err != nil {
				return err
			}
		}

		var batch txn.Batch
		orphaned := make([]string, 0, len(sessionIDs))
		for _, id := range sessionIDs {
			var session models.Session
			found, err := txn.GetJSON(ctx, tx, keys.Session(id), &session)
			if err != nil {
				return err
			}
			if !found || session.ProjectID != input.ProjectID {
				continue
			}

			session.ProjectID = ""
			session.SubProjectID = ""
			if err := batch.SetJSON(keys.Session(id), &session); err != nil {
				return err
			}
			orphaned = append(orphaned, id)
		}

		for _, subID := range subIDs {
			batch.Del(keys.SubProject(subID))
		}
		batch.Del(subListKey, sessionSetKey)
		batch.ZRem(keys.UserProjects(project.UserID), project.ID)
		batch.Del(projectKey)

		if err := batch.Commit(ctx, tx); err != nil {
			return err
		}

		output = &DeleteProjectOutput{
			OwnerID:              project.UserID,
			DeletedSubProjectIDs: subIDs,
			OrphanedSessionIDs:   orphaned,
		}
		return nil
	}, projectKey, subListKey, sessionSetKey)
	if err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to delete project: %w", err)
	}

	return output, nil
}

// update watches key, builds the new document from a fresh read with load and
// commits it. load runs again on every retry.
func (r *redisRepository) update(ctx context.Context, key string, notFound error, load func(tx *redis.Tx) (interface{}, error)) error {
	err := txn.Run(ctx, r.client, func(tx *redis.Tx) error {
		v, err := load(tx)
		if err != nil {
			return err
		}

		var batch txn.Batch
		if err := batch.SetJSON(key, v); err != nil {
			return err
		}
		return batch.Commit(ctx, tx)
	}, key)
	if err != nil {
		if errors.Is(err, notFound) {
			return notFound
		}
		return fmt.Errorf("failed to update %s: %w", key, err)
	}

	return nil
}

// loadOrdered reads the ids of an ordered index and fetches their documents
// in one pipeline, skipping ids whose document is gone
func (r *redisRepository) loadOrdered(ctx context.Context, indexKey string, docKey func(string) string) ([][]byte, error) {
	ids, err := r.client.ZRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", indexKey, err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.Get(ctx, docKey(id))
	}
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to load %s: %w", indexKey, err)
	}

	raws := make([][]byte, 0, len(ids))
	for _, cmd := range cmds {
		raw, err := cmd.Bytes()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, err
		}
		raws = append(raws, raw)
	}

	return raws, nil
}
