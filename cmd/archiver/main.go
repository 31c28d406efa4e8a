// Command archiver settles every finished season once and exits. Run it from
// cron or any external scheduler shortly after midnight in TIMEZONE.
package main

import (
	"context"
	"log"
	"time"

	"github.com/KirkDiggler/assabeel/internal/common/clock"
	"github.com/KirkDiggler/assabeel/internal/common/uuid"
	"github.com/KirkDiggler/assabeel/internal/config"
	"github.com/KirkDiggler/assabeel/internal/models"
	seasonRepo "github.com/KirkDiggler/assabeel/internal/repositories/season"
	sessionRepo "github.com/KirkDiggler/assabeel/internal/repositories/session"
	userRepo "github.com/KirkDiggler/assabeel/internal/repositories/user"
	seasonService "github.com/KirkDiggler/assabeel/internal/services/season"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.Load()

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("Failed to load timezone: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	users, err := userRepo.NewRedis(&userRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create user repository: %v", err)
	}

	sessions, err := sessionRepo.NewRedis(&sessionRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create session repository: %v", err)
	}

	seasons, err := seasonRepo.NewRedis(&seasonRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create season repository: %v", err)
	}

	svc, err := seasonService.New(&seasonService.Config{
		DailyGoalMinutes: cfg.DailyGoalMinutes,
		Location:         loc,
		SeasonRepo:       seasons,
		UserRepo:         users,
		SessionRepo:      sessions,
		Clock:            &clock.DefaultClock{},
		UUIDGenerator:    uuid.New(),
		OnChange: func(_ context.Context, event *models.Event) {
			log.Printf("%s entity=%s", event.Type, event.EntityID)
		},
	})
	if err != nil {
		log.Fatalf("Failed to create season service: %v", err)
	}

	out, err := svc.ArchiveFinishedSeasons(ctx, &seasonService.ArchiveFinishedSeasonsInput{})
	if out != nil {
		for _, o := range out.Outcomes {
			switch {
			case o.Skipped:
				log.Printf("Season %s (%s) was archived concurrently, skipped", o.Name, o.SeasonID)
			case o.Deleted:
				log.Printf("Season %s (%s) had no survivors and was deleted", o.Name, o.SeasonID)
			default:
				log.Printf("Season %s (%s) champion %s, %d other survivors", o.Name, o.SeasonID, o.Champion, len(o.Survivors))
			}
		}
	}
	if err != nil {
		log.Fatalf("Archive run failed: %v", err)
	}

	log.Printf("Archive run finished: %d archived, %d deleted", out.ArchivedCount, out.DeletedCount)
}
