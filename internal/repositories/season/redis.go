package season

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
	// ErrSeasonNotFound is returned when a season is not found
	ErrSeasonNotFound = errors.New("season not found")

	// ErrSeasonExists is returned when creating a season whose ID is taken
	ErrSeasonExists = errors.New("season already exists")

	// ErrSeasonAlreadyArchived is returned when the champion field is already set
	ErrSeasonAlreadyArchived = errors.New("season already archived")
)

// Config holds configuration for the Redis season repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed season repository
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

// CreateSeason stores the season and adds it to the season index
func (r *redisRepository) CreateSeason(ctx context.Context, input *CreateSeasonInput) error {
	if input == nil || input.Season == nil {
		return errors.New("input and season cannot be nil")
	}
	if input.Season.ID == "" {
		return errors.New("season ID cannot be empty")
	}

	seasonKey := keys.Season(input.Season.ID)
	err := txn.Run(ctx, r.client, func(tx *redis.Tx) error {
		exists, err := tx.Exists(ctx, seasonKey).Result()
		if err != nil {
			return err
		}
		if exists > 0 {
			return ErrSeasonExists
		}

		var batch txn.Batch
		if err := batch.SetJSON(seasonKey, input.Season); err != nil {
			return err
		}
		batch.SAdd(keys.Seasons, input.Season.ID)
		return batch.Commit(ctx, tx)
	}, seasonKey)
	if err != nil {
		if errors.Is(err, ErrSeasonExists) {
			return ErrSeasonExists
		}
		return fmt.Errorf("failed to create season: %w", err)
	}

	return nil
}

// GetSeason retrieves a season by ID
func (r *redisRepository) GetSeason(ctx context.Context, input *GetSeasonInput) (*models.Season, error) {
	if input == nil || input.SeasonID == "" {
		return nil, errors.New("input and season ID cannot be empty")
	}

	var season models.Season
	found, err := txn.GetJSON(ctx, r.client, keys.Season(input.SeasonID), &season)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrSeasonNotFound
	}

	return &season, nil
}

// ListSeasons retrieves every season, newest start date first
func (r *redisRepository) ListSeasons(ctx context.Context, input *ListSeasonsInput) (*ListSeasonsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	ids, err := r.client.SMembers(ctx, keys.Seasons).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get season IDs: %w", err)
	}

	seasons := make([]*models.Season, 0, len(ids))
	if len(ids) == 0 {
		return &ListSeasonsOutput{Seasons: seasons}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.Get(ctx, keys.Season(id))
	}
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get seasons: %w", err)
	}

	for i, cmd := range cmds {
		raw, err := cmd.Bytes()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get season %s: %w", ids[i], err)
		}

		var season models.Season
		if err := json.Unmarshal(raw, &season); err != nil {
			return nil, fmt.Errorf("failed to unmarshal season %s: %w", ids[i], err)
		}
		if season.Draft && !input.IncludeDrafts {
			continue
		}
		seasons = append(seasons, &season)
	}

	sort.Slice(seasons, func(i, j int) bool {
		if seasons[i].StartDate != seasons[j].StartDate {
			return seasons[i].StartDate > seasons[j].StartDate
		}
		return seasons[i].ID < seasons[j].ID
	})

	return &ListSeasonsOutput{
		Seasons: seasons,
	}, nil
}

// ArchiveSeason sets the champion under WATCH. The champion field is the
// archive marker: once set, later archive attempts fail with
// ErrSeasonAlreadyArchived, so two concurrent archivers cannot both win.
func (r *redisRepository) ArchiveSeason(ctx context.Context, input *ArchiveSeasonInput) (*models.Season, error) {
	if input == nil || input.SeasonID == "" {
		return nil, errors.New("input and season ID cannot be empty")
	}
	if input.Champion == "" {
		return nil, errors.New("champion cannot be empty")
	}

	seasonKey := keys.Season(input.SeasonID)
	var archived *models.Season
	err := txn.Run(ctx, r.client, func(tx *redis.Tx) error {
		var season models.Season
		found, err := txn.GetJSON(ctx, tx, seasonKey, &season)
		if err != nil {
			return err
		}
		if !found {
			return ErrSeasonNotFound
		}
		if season.IsArchived() {
			return ErrSeasonAlreadyArchived
		}

		archivedAt := input.ArchivedAt
		season.Champion = input.Champion
		season.Survivors = input.Survivors
		season.ArchivedAt = &archivedAt

		var batch txn.Batch
		if err := batch.SetJSON(seasonKey, &season); err != nil {
			return err
		}
		if err := batch.Commit(ctx, tx); err != nil {
			return err
		}

		archived = &season
		return nil
	}, seasonKey)
	if err != nil {
		if errors.Is(err, ErrSeasonNotFound) || errors.Is(err, ErrSeasonAlreadyArchived) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to archive season: %w", err)
	}

	return archived, nil
}

// DeleteSeason removes a season and its index entry
func (r *redisRepository) DeleteSeason(ctx context.Context, input *DeleteSeasonInput) error {
	if input == nil || input.SeasonID == "" {
		return errors.New("input and season ID cannot be empty")
	}

	seasonKey := keys.Season(input.SeasonID)
	err := txn.Run(ctx, r.client, func(tx *redis.Tx) error {
		var season models.Season
		found, err := txn.GetJSON(ctx, tx, seasonKey, &season)
		if err != nil {
			return err
		}
		if !found {
			return ErrSeasonNotFound
		}
		if input.RequireUnarchived && season.IsArchived() {
			return ErrSeasonAlreadyArchived
		}

		var batch txn.Batch
		batch.Del(seasonKey)
		batch.SRem(keys.Seasons, input.SeasonID)
		return batch.Commit(ctx, tx)
	}, seasonKey)
	if err != nil {
		if errors.Is(err, ErrSeasonNotFound) || errors.Is(err, ErrSeasonAlreadyArchived) {
			return err
		}
		return fmt.Errorf("failed to delete season: %w", err)
	}

	return nil
}
