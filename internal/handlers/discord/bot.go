package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/KirkDiggler/assabeel/internal/models"
	"github.com/KirkDiggler/assabeel/internal/services/camp"
	"github.com/KirkDiggler/assabeel/internal/services/messaging"
	"github.com/KirkDiggler/assabeel/internal/services/season"
	"github.com/KirkDiggler/assabeel/internal/services/stats"
	"github.com/KirkDiggler/assabeel/internal/services/tracker"
	"github.com/bwmarrin/discordgo"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	sabeel     *SabeelCommand
	seasons    season.Service
	config     *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Optional channel that receives season announcements
	AnnounceChannelID string

	// Admins may create and archive seasons
	Admins map[string]bool

	TrackerService tracker.Service
	StatsService   stats.Service
	CampService    camp.Service
	SeasonService  season.Service

	// Optional flavor text for replies
	MessagingService messaging.Service
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
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

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:    session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		sabeel: NewSabeelCommand(&SabeelCommandConfig{
			Tracker:  cfg.TrackerService,
			Stats:    cfg.StatsService,
			Camp:     cfg.CampService,
			Seasons:  cfg.SeasonService,
			Messages: cfg.MessagingService,
			Admins:   cfg.Admins,
		}),
		seasons: cfg.SeasonService,
		config:  cfg,
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := b.RegisterCommand(b.sabeel); err != nil {
		return fmt.Errorf("failed to register sabeel command: %w", err)
	}

	log.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	appID := b.appID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.Printf("Failed to delete command %s (ID: %s): %v", cmdName, cmdID, err)
		} else {
			log.Printf("Successfully deleted command %s (ID: %s)", cmdName, cmdID)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.appID()

	// Register per guild when a guild is configured, otherwise globally
	if b.config.GuildID != "" {
		log.Printf("Registering command %s for guild %s", cmd.GetName(), b.config.GuildID)
	} else {
		log.Printf("Registering command %s globally", cmd.GetName())
	}

	createdCmd, err := b.session.ApplicationCommandCreate(appID, b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	log.Printf("Registered command: %s with ID: %s", cmd.GetName(), createdCmd.ID)

	return nil
}

// Announce posts season lifecycle events to the announcement channel.
// It has the models.ChangeFunc signature so services can call it directly.
func (b *Bot) Announce(ctx context.Context, event *models.Event) {
	if b.config.AnnounceChannelID == "" || event == nil {
		return
	}
	if event.Type != models.EventSeasonCreated && event.Type != models.EventSeasonArchived {
		return
	}

	listed, err := b.seasons.ListSeasons(ctx, &season.ListSeasonsInput{IncludeDrafts: true})
	if err != nil {
		log.Printf("Error loading seasons for announcement: %v", err)
		return
	}
	var found *models.Season
	for _, s := range listed.Seasons {
		if s.ID == event.EntityID {
			found = s
			break
		}
	}

	embed := renderSeasonAnnouncement(event, found)
	if embed == nil {
		return
	}
	if _, err := b.session.ChannelMessageSendEmbed(b.config.AnnounceChannelID, embed); err != nil {
		log.Printf("Error announcing %s for season %s: %v", event.Type, event.EntityID, err)
	}
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if h, ok := b.commands[i.ApplicationCommandData().Name]; ok {
			if err := h.Handle(s, i); err != nil {
				log.Printf("Error handling command %s: %v", i.ApplicationCommandData().Name, err)
			}
		}
	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID
		if strings.HasPrefix(customID, ButtonLeaderboardPrefix) || strings.HasPrefix(customID, "camp:") {
			if err := b.sabeel.HandleComponent(s, i); err != nil {
				log.Printf("Error handling component %s: %v", customID, err)
			}
			return
		}
		if err := RespondWithError(s, i, fmt.Sprintf("Unknown button: %s", customID)); err != nil {
			log.Printf("Error responding to component %s: %v", customID, err)
		}
	}
}
