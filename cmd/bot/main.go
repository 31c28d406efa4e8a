package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/assabeel/internal/common/clock"
	"github.com/KirkDiggler/assabeel/internal/common/uuid"
	"github.com/KirkDiggler/assabeel/internal/config"
	"github.com/KirkDiggler/assabeel/internal/handlers/api"
	"github.com/KirkDiggler/assabeel/internal/handlers/discord"
	"github.com/KirkDiggler/assabeel/internal/models"
	projectRepo "github.com/KirkDiggler/assabeel/internal/repositories/project"
	seasonRepo "github.com/KirkDiggler/assabeel/internal/repositories/season"
	sessionRepo "github.com/KirkDiggler/assabeel/internal/repositories/session"
	userRepo "github.com/KirkDiggler/assabeel/internal/repositories/user"
	campService "github.com/KirkDiggler/assabeel/internal/services/camp"
	"github.com/KirkDiggler/assabeel/internal/services/messaging"
	seasonService "github.com/KirkDiggler/assabeel/internal/services/season"
	statsService "github.com/KirkDiggler/assabeel/internal/services/stats"
	trackerService "github.com/KirkDiggler/assabeel/internal/services/tracker"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.Load()

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("Failed to load timezone: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	users, err := userRepo.NewRedis(&userRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create user repository: %v", err)
	}

	sessions, err := sessionRepo.NewRedis(&sessionRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create session repository: %v", err)
	}

	projects, err := projectRepo.NewRedis(&projectRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create project repository: %v", err)
	}

	seasons, err := seasonRepo.NewRedis(&seasonRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create season repository: %v", err)
	}

	systemClock := &clock.DefaultClock{}
	ids := uuid.New()

	// The bot is created after the services but announces season events,
	// so the callback reads it lazily.
	var bot *discord.Bot
	announce := func(ctx context.Context, event *models.Event) {
		logEvent(ctx, event)
		if bot != nil {
			bot.Announce(ctx, event)
		}
	}

	// Initialize services
	trackerSvc, err := trackerService.New(&trackerService.Config{
		Location:      loc,
		UserRepo:      users,
		SessionRepo:   sessions,
		ProjectRepo:   projects,
		Clock:         systemClock,
		UUIDGenerator: ids,
		OnChange:      logEvent,
	})
	if err != nil {
		log.Fatalf("Failed to create tracker service: %v", err)
	}

	statsSvc, err := statsService.New(&statsService.Config{
		Location:    loc,
		UserRepo:    users,
		SessionRepo: sessions,
		ProjectRepo: projects,
		Clock:       systemClock,
	})
	if err != nil {
		log.Fatalf("Failed to create stats service: %v", err)
	}

	campSvc, err := campService.New(&campService.Config{
		StartDate:        cfg.CampStartDate,
		DurationDays:     cfg.CampDurationDays,
		DailyGoalMinutes: cfg.DailyGoalMinutes,
		Location:         loc,
		UserRepo:         users,
		SessionRepo:      sessions,
		SeasonRepo:       seasons,
		Clock:            systemClock,
	})
	if err != nil {
		log.Fatalf("Failed to create camp service: %v", err)
	}

	seasonSvc, err := seasonService.New(&seasonService.Config{
		DailyGoalMinutes: cfg.DailyGoalMinutes,
		Location:         loc,
		SeasonRepo:       seasons,
		UserRepo:         users,
		SessionRepo:      sessions,
		Clock:            systemClock,
		UUIDGenerator:    ids,
		OnChange:         announce,
	})
	if err != nil {
		log.Fatalf("Failed to create season service: %v", err)
	}

	// Start the HTTP API
	server, err := api.New(&api.Config{
		JWTSecret:      cfg.JWTSecret,
		TrackerService: trackerSvc,
		StatsService:   statsSvc,
		CampService:    campSvc,
		SeasonService:  seasonSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create API server: %v", err)
	}

	go func() {
		log.Printf("API listening on %s", cfg.HTTPAddr)
		if err := server.Listen(cfg.HTTPAddr); err != nil {
			log.Printf("API server stopped: %v", err)
		}
	}()

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	// Start the Discord bot when a token is configured
	if cfg.DiscordToken == "" {
		log.Println("DISCORD_TOKEN not set, running the API only")
	} else {
		bot, err = discord.New(&discord.Config{
			Token:             cfg.DiscordToken,
			ApplicationID:     cfg.ApplicationID,
			GuildID:           cfg.GuildID,
			AnnounceChannelID: cfg.AnnounceChannelID,
			Admins:            cfg.Admins(),
			TrackerService:    trackerSvc,
			StatsService:      statsSvc,
			CampService:       campSvc,
			SeasonService:     seasonSvc,
			MessagingService:  messagingSvc,
		})
		if err != nil {
			log.Fatalf("Failed to create Discord bot: %v", err)
		}

		if err := bot.Start(); err != nil {
			log.Fatalf("Failed to start Discord bot: %v", err)
		}
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if bot != nil {
		if err := bot.Stop(); err != nil {
			log.Printf("Error stopping bot: %v", err)
		}
	}

	if err := server.Shutdown(); err != nil {
		log.Printf("Error stopping API server: %v", err)
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}

	log.Println("Assabeel has been shut down")
}

func logEvent(_ context.Context, event *models.Event) {
	log.Printf("%s entity=%s user=%s", event.Type, event.EntityID, event.UserID)
}
