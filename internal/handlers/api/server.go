package api

import (
	"errors"

	"github.com/KirkDiggler/assabeel/internal/services/camp"
	"github.com/KirkDiggler/assabeel/internal/services/season"
	"github.com/KirkDiggler/assabeel/internal/services/stats"
	"github.com/KirkDiggler/assabeel/internal/services/tracker"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Server is the dashboard's JSON API
type Server struct {
	App *fiber.App

	tracker tracker.Service
	stats   stats.Service
	camp    camp.Service
	seasons season.Service
}

// Config holds the configuration for the API server
type Config struct {
	// JWTSecret verifies HS256 bearer tokens
	JWTSecret string

	// DisableAccessLog turns off the request logger, mostly for tests
	DisableAccessLog bool

	TrackerService tracker.Service
	StatsService   stats.Service
	CampService    camp.Service
	SeasonService  season.Service
}

// New builds the fiber app and registers every route
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("jwt secret cannot be empty")
	}
	if cfg.TrackerService == nil {
		return nil, errors.New("tracker service cannot be nil")
	}
	if cfg.StatsService == nil {
		return nil, errors.New("stats service cannot be nil")
	}
	if cfg.CampService == nil {
		return nil, errors.New("camp service cannot be nil")
	}
	if cfg.SeasonService == nil {
		return nil, errors.New("season service cannot be nil")
	}

	app := fiber.New(fiber.Config{
		AppName:               "assabeel",
		ErrorHandler:          errorHandler,
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	if !cfg.DisableAccessLog {
		app.Use(logger.New())
	}

	s := &Server{
		App:     app,
		tracker: cfg.TrackerService,
		stats:   cfg.StatsService,
		camp:    cfg.CampService,
		seasons: cfg.SeasonService,
	}
	s.registerRoutes(JWTMiddleware(cfg.JWTSecret))

	return s, nil
}

// Listen serves until Shutdown is called
func (s *Server) Listen(addr string) error {
	return s.App.Listen(addr)
}

// Shutdown stops accepting connections and waits for in-flight requests
func (s *Server) Shutdown() error {
	return s.App.Shutdown()
}

func (s *Server) registerRoutes(auth fiber.Handler) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := s.App.Group("/v1", auth)

	v1.Post("/me", s.registerUser)
	v1.Put("/me/target", s.setDailyTarget)
	v1.Get("/me/stats", s.getUserStats)
	v1.Get("/me/camp", s.getCampStatus)

	v1.Get("/sessions", s.listSessions)
	v1.Post("/sessions", s.logSession)
	v1.Patch("/sessions/:id", s.editSession)
	v1.Delete("/sessions/:id", s.deleteSession)

	v1.Get("/projects", s.listProjects)
	v1.Post("/projects", s.createProject)
	v1.Post("/projects/:id/subprojects", s.addSubProject)
	v1.Put("/projects/:id/status", s.setProjectStatus)
	v1.Delete("/projects/:id", s.deleteProject)

	v1.Get("/leaderboard", s.getLeaderboard)
	v1.Get("/camp", s.evaluateCamp)

	v1.Get("/seasons", s.listSeasons)
	v1.Get("/seasons/current", s.currentSeason)
	v1.Post("/seasons", RequireAdmin(), s.createSeason)
	v1.Post("/seasons/archive", RequireAdmin(), s.archiveSeasons)
	v1.Delete("/seasons/:id", RequireAdmin(), s.deleteSeason)
}
