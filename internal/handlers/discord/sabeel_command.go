package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/KirkDiggler/assabeel/internal/models"
	seasonRules "github.com/KirkDiggler/assabeel/internal/season"
	"github.com/KirkDiggler/assabeel/internal/services/camp"
	"github.com/KirkDiggler/assabeel/internal/services/messaging"
	"github.com/KirkDiggler/assabeel/internal/services/season"
	"github.com/KirkDiggler/assabeel/internal/services/stats"
	"github.com/KirkDiggler/assabeel/internal/services/tracker"
	"github.com/KirkDiggler/assabeel/internal/services/validate"
	"github.com/bwmarrin/discordgo"
)

// Component custom IDs
const (
	ButtonLeaderboardPrefix = "leaderboard:"
	ButtonCampBoard         = "camp:board"
	ButtonCampMine          = "camp:mine"
)

const genericFailure = "Something went wrong, please try again later."

var errAdminOnly = errors.New("only admins can manage seasons")

// SabeelCommand handles the /sabeel command and its components
type SabeelCommand struct {
	BaseCommand
	tracker tracker.Service
	stats   stats.Service
	camp    camp.Service
	seasons season.Service
	// messages is optional flavor text
	messages messaging.Service
	admins   map[string]bool
}

// SabeelCommandConfig holds the services the command delegates to
type SabeelCommandConfig struct {
	Tracker tracker.Service
	Stats   stats.Service
	Camp    camp.Service
	Seasons season.Service

	// Messages adds encouragement lines to replies when set
	Messages messaging.Service

	// Admins are the user ids allowed to manage seasons
	Admins map[string]bool
}

// NewSabeelCommand creates the /sabeel command handler
func NewSabeelCommand(cfg *SabeelCommandConfig) *SabeelCommand {
	minHours := 0.0
	minTarget := 1.0
	admins := cfg.Admins
	if admins == nil {
		admins = map[string]bool{}
	}

	return &SabeelCommand{
		BaseCommand: BaseCommand{
			Name:        "sabeel",
			Description: "Track your study hours and camp progress",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "log",
					Description: "Log time you worked",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionInteger, Name: "hours", Description: "Hours worked", Required: true, MinValue: &minHours},
						{Type: discordgo.ApplicationCommandOptionInteger, Name: "minutes", Description: "Extra minutes", MinValue: &minHours},
						{Type: discordgo.ApplicationCommandOptionString, Name: "project", Description: "Project name or id"},
						{Type: discordgo.ApplicationCommandOptionString, Name: "subproject", Description: "Sub-project name or id"},
						{Type: discordgo.ApplicationCommandOptionString, Name: "date", Description: "Day worked, YYYY-MM-DD (defaults to today)"},
						{Type: discordgo.ApplicationCommandOptionString, Name: "notes", Description: "What you worked on"},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "unlog",
					Description: "Delete one of your sessions",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: "id", Description: "Session id", Required: true},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "stats",
					Description: "Show your totals and rank",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "target",
					Description: "Set your personal daily target",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionInteger, Name: "minutes", Description: "Minutes per day", Required: true, MinValue: &minTarget, MaxValue: 1440},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "leaderboard",
					Description: "Show the standings",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "window",
							Description: "Period to rank",
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "All time", Value: string(stats.WindowAll)},
								{Name: "This month", Value: string(stats.WindowMonth)},
								{Name: "This week", Value: string(stats.WindowWeek)},
							},
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "camp",
					Description: "Show your camp lives and streak",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
					Name:        "project",
					Description: "Manage your projects",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "add",
							Description: "Add a project, or a sub-project when parent is set",
							Options: []*discordgo.ApplicationCommandOption{
								{Type: discordgo.ApplicationCommandOptionString, Name: "name", Description: "Name", Required: true},
								{Type: discordgo.ApplicationCommandOptionString, Name: "parent", Description: "Parent project name or id"},
							},
						},
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "list",
							Description: "List your projects",
						},
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "status",
							Description: "Change a project's status",
							Options: []*discordgo.ApplicationCommandOption{
								{Type: discordgo.ApplicationCommandOptionString, Name: "project", Description: "Project name or id", Required: true},
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "status",
									Description: "New status",
									Required:    true,
									Choices: []*discordgo.ApplicationCommandOptionChoice{
										{Name: "Active", Value: string(models.ProjectStatusActive)},
										{Name: "Completed", Value: string(models.ProjectStatusCompleted)},
										{Name: "Deferred", Value: string(models.ProjectStatusDeferred)},
									},
								},
								{Type: discordgo.ApplicationCommandOptionString, Name: "subproject", Description: "Sub-project name or id"},
							},
						},
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "delete",
							Description: "Delete a project; its sessions are kept as unassigned",
							Options: []*discordgo.ApplicationCommandOption{
								{Type: discordgo.ApplicationCommandOptionString, Name: "project", Description: "Project name or id", Required: true},
							},
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
					Name:        "season",
					Description: "Camp seasons",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "list",
							Description: "List seasons",
						},
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "create",
							Description: "Create a season (admins)",
							Options: []*discordgo.ApplicationCommandOption{
								{Type: discordgo.ApplicationCommandOptionString, Name: "name", Description: "Season name", Required: true},
								{Type: discordgo.ApplicationCommandOptionString, Name: "start", Description: "First day, YYYY-MM-DD", Required: true},
								{Type: discordgo.ApplicationCommandOptionString, Name: "end", Description: "Last day, YYYY-MM-DD", Required: true},
								{Type: discordgo.ApplicationCommandOptionBoolean, Name: "draft", Description: "Keep as a draft"},
							},
						},
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "archive",
							Description: "Settle finished seasons now (admins)",
						},
					},
				},
			},
		},
		tracker:  cfg.Tracker,
		stats:    cfg.Stats,
		camp:     cfg.Camp,
		seasons:  cfg.Seasons,
		messages: cfg.Messages,
		admins:   admins,
	}
}

// Handle processes a Discord interaction for the sabeel command
func (c *SabeelCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	userID, username := interactionUser(i)
	if userID == "" {
		return RespondWithError(s, i, "Could not identify you.")
	}

	ctx := context.Background()
	if _, err := c.tracker.RegisterUser(ctx, &tracker.RegisterUserInput{
		UserID: userID,
		Name:   username,
	}); err != nil {
		log.Printf("Error registering user %s: %v", userID, err)
		return RespondWithError(s, i, describeError(err))
	}

	embed, buttons, public, err := c.dispatch(ctx, userID, data.Options[0])
	if err != nil {
		log.Printf("Error handling /sabeel %s for %s: %v", data.Options[0].Name, userID, err)
		return RespondWithError(s, i, describeError(err))
	}

	switch {
	case len(buttons) > 0:
		return RespondWithEmbedAndButtons(s, i, embed, buttons)
	case public:
		return RespondWithEmbed(s, i, embed)
	default:
		return RespondWithEphemeralEmbed(s, i, embed)
	}
}

// HandleComponent processes button clicks on messages the command produced
func (c *SabeelCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID
	userID, _ := interactionUser(i)
	ctx := context.Background()

	var (
		embed   *discordgo.MessageEmbed
		buttons []discordgo.MessageComponent
		err     error
	)
	switch {
	case strings.HasPrefix(customID, ButtonLeaderboardPrefix):
		embed, buttons, err = c.leaderboard(ctx, stats.Window(strings.TrimPrefix(customID, ButtonLeaderboardPrefix)))
	case customID == ButtonCampBoard:
		embed, buttons, err = c.campBoard(ctx)
	case customID == ButtonCampMine:
		embed, buttons, err = c.campStatus(ctx, userID)
		if err == nil {
			return RespondWithEphemeralEmbed(s, i, embed)
		}
	default:
		return RespondWithError(s, i, fmt.Sprintf("Unknown button: %s", customID))
	}
	if err != nil {
		log.Printf("Error handling component %s: %v", customID, err)
		return RespondWithError(s, i, describeError(err))
	}
	return UpdateWithEmbedAndButtons(s, i, embed, buttons)
}

// dispatch runs one subcommand. public marks results the whole channel should see.
func (c *SabeelCommand) dispatch(ctx context.Context, userID string, sub *discordgo.ApplicationCommandInteractionDataOption) (embed *discordgo.MessageEmbed, buttons []discordgo.MessageComponent, public bool, err error) {
	opts := optionMap(sub.Options)

	switch sub.Name {
	case "log":
		embed, err = c.logSession(ctx, userID, opts)
	case "unlog":
		embed, err = c.deleteSession(ctx, userID, opts)
	case "stats":
		embed, err = c.userStats(ctx, userID)
	case "target":
		embed, err = c.setTarget(ctx, userID, opts)
	case "leaderboard":
		window := stats.WindowAll
		if o, ok := opts["window"]; ok {
			window = stats.Window(o.StringValue())
		}
		embed, buttons, err = c.leaderboard(ctx, window)
		public = true
	case "camp":
		embed, buttons, err = c.campStatus(ctx, userID)
	case "project":
		if len(sub.Options) == 0 {
			return nil, nil, false, fmt.Errorf("missing project subcommand")
		}
		embed, err = c.dispatchProject(ctx, userID, sub.Options[0])
	case "season":
		if len(sub.Options) == 0 {
			return nil, nil, false, fmt.Errorf("missing season subcommand")
		}
		embed, public, err = c.dispatchSeason(ctx, userID, sub.Options[0])
	default:
		err = fmt.Errorf("unknown subcommand %q", sub.Name)
	}
	return embed, buttons, public, err
}

func (c *SabeelCommand) dispatchProject(ctx context.Context, userID string, sub *discordgo.ApplicationCommandInteractionDataOption) (*discordgo.MessageEmbed, error) {
	opts := optionMap(sub.Options)
	switch sub.Name {
	case "add":
		return c.addProject(ctx, userID, opts)
	case "list":
		return c.listProjects(ctx, userID)
	case "status":
		return c.setProjectStatus(ctx, userID, opts)
	case "delete":
		return c.deleteProject(ctx, userID, opts)
	}
	return nil, fmt.Errorf("unknown project subcommand %q", sub.Name)
}

func (c *SabeelCommand) dispatchSeason(ctx context.Context, userID string, sub *discordgo.ApplicationCommandInteractionDataOption) (*discordgo.MessageEmbed, bool, error) {
	opts := optionMap(sub.Options)
	switch sub.Name {
	case "list":
		embed, err := c.listSeasons(ctx)
		return embed, true, err
	case "create":
		if !c.admins[userID] {
			return nil, false, errAdminOnly
		}
		embed, err := c.createSeason(ctx, opts)
		return embed, true, err
	case "archive":
		if !c.admins[userID] {
			return nil, false, errAdminOnly
		}
		embed, err := c.archiveSeasons(ctx)
		return embed, true, err
	}
	return nil, false, fmt.Errorf("unknown season subcommand %q", sub.Name)
}

func (c *SabeelCommand) logSession(ctx context.Context, userID string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (*discordgo.MessageEmbed, error) {
	input := &tracker.LogSessionInput{
		UserID:  userID,
		Hours:   models.DurationComponent(intOption(opts, "hours")),
		Minutes: models.DurationComponent(intOption(opts, "minutes")),
		Date:    stringOption(opts, "date"),
		Notes:   stringOption(opts, "notes"),
	}

	var projectName string
	if ref := stringOption(opts, "project"); ref != "" {
		tree, err := c.findProject(ctx, userID, ref)
		if err != nil {
			return nil, err
		}
		input.ProjectID = tree.Project.ID
		projectName = tree.Project.Name

		if subRef := stringOption(opts, "subproject"); subRef != "" {
			sub := findSubProject(tree, subRef)
			if sub == nil {
				return nil, tracker.ErrSubProjectNotFound
			}
			input.SubProjectID = sub.ID
			projectName += " / " + sub.Name
		}
	}

	out, err := c.tracker.LogSession(ctx, input)
	if err != nil {
		return nil, err
	}
	embed := renderSessionLogged(out.Session, projectName)
	embed.Description = c.sessionLoggedMessage(ctx, userID)
	return embed, nil
}

func (c *SabeelCommand) deleteSession(ctx context.Context, userID string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (*discordgo.MessageEmbed, error) {
	id := stringOption(opts, "id")
	if _, err := c.tracker.DeleteSession(ctx, &tracker.DeleteSessionInput{
		SessionID: id,
		UserID:    userID,
	}); err != nil {
		return nil, err
	}
	return &discordgo.MessageEmbed{
		Title:       "Session deleted",
		Description: fmt.Sprintf("Session `%s` was removed.", id),
		Color:       ColorInfo,
	}, nil
}

func (c *SabeelCommand) userStats(ctx context.Context, userID string) (*discordgo.MessageEmbed, error) {
	out, err := c.stats.GetUserStats(ctx, &stats.GetUserStatsInput{UserID: userID})
	if err != nil {
		return nil, err
	}
	return renderStats(out), nil
}

func (c *SabeelCommand) setTarget(ctx context.Context, userID string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (*discordgo.MessageEmbed, error) {
	out, err := c.tracker.SetDailyTarget(ctx, &tracker.SetDailyTargetInput{
		UserID:  userID,
		Minutes: intOption(opts, "minutes"),
	})
	if err != nil {
		return nil, err
	}
	return &discordgo.MessageEmbed{
		Title:       "Daily target updated",
		Description: fmt.Sprintf("Your target is now %d minutes a day.", out.User.DailyTarget),
		Color:       ColorInfo,
	}, nil
}

func (c *SabeelCommand) leaderboard(ctx context.Context, window stats.Window) (*discordgo.MessageEmbed, []discordgo.MessageComponent, error) {
	out, err := c.stats.GetLeaderboard(ctx, &stats.GetLeaderboardInput{Window: window})
	if err != nil {
		return nil, nil, err
	}
	embed := renderLeaderboard(out)
	if line := c.leaderboardMessage(ctx, out); line != "" {
		embed.Description = "*" + line + "*\n\n" + embed.Description
	}
	return embed, leaderboardButtons(stats.Window(out.Leaderboard.Window)), nil
}

func (c *SabeelCommand) campStatus(ctx context.Context, userID string) (*discordgo.MessageEmbed, []discordgo.MessageComponent, error) {
	out, err := c.camp.GetUserStatus(ctx, &camp.GetUserStatusInput{UserID: userID})
	if err != nil {
		return nil, nil, err
	}
	embed := renderCampStatus(out)
	embed.Description = c.campMessage(ctx, out)
	return embed, campButtons(), nil
}

func (c *SabeelCommand) campBoard(ctx context.Context) (*discordgo.MessageEmbed, []discordgo.MessageComponent, error) {
	out, err := c.camp.EvaluateCamp(ctx, &camp.EvaluateCampInput{})
	if err != nil {
		return nil, nil, err
	}
	return renderCampBoard(out), campButtons(), nil
}

func (c *SabeelCommand) addProject(ctx context.Context, userID string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (*discordgo.MessageEmbed, error) {
	name := stringOption(opts, "name")

	if parentRef := stringOption(opts, "parent"); parentRef != "" {
		tree, err := c.findProject(ctx, userID, parentRef)
		if err != nil {
			return nil, err
		}
		out, err := c.tracker.AddSubProject(ctx, &tracker.AddSubProjectInput{
			UserID:    userID,
			ProjectID: tree.Project.ID,
			Name:      name,
		})
		if err != nil {
			return nil, err
		}
		return &discordgo.MessageEmbed{
			Title:       "Sub-project added",
			Description: fmt.Sprintf("**%s** under **%s** (`%s`)", out.SubProject.Name, tree.Project.Name, out.SubProject.ID),
			Color:       ColorInfo,
		}, nil
	}

	out, err := c.tracker.CreateProject(ctx, &tracker.CreateProjectInput{
		UserID: userID,
		Name:   name,
	})
	if err != nil {
		return nil, err
	}
	return &discordgo.MessageEmbed{
		Title:       "Project added",
		Description: fmt.Sprintf("**%s** (`%s`)", out.Project.Name, out.Project.ID),
		Color:       ColorInfo,
	}, nil
}

func (c *SabeelCommand) listProjects(ctx context.Context, userID string) (*discordgo.MessageEmbed, error) {
	out, err := c.tracker.ListProjects(ctx, &tracker.ListProjectsInput{UserID: userID})
	if err != nil {
		return nil, err
	}
	return renderProjects(out.Projects), nil
}

func (c *SabeelCommand) setProjectStatus(ctx context.Context, userID string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (*discordgo.MessageEmbed, error) {
	tree, err := c.findProject(ctx, userID, stringOption(opts, "project"))
	if err != nil {
		return nil, err
	}

	input := &tracker.SetProjectStatusInput{
		UserID:    userID,
		ProjectID: tree.Project.ID,
		Status:    models.ProjectStatus(stringOption(opts, "status")),
	}
	target := tree.Project.Name
	if subRef := stringOption(opts, "subproject"); subRef != "" {
		sub := findSubProject(tree, subRef)
		if sub == nil {
			return nil, tracker.ErrSubProjectNotFound
		}
		input.SubProjectID = sub.ID
		target += " / " + sub.Name
	}

	out, err := c.tracker.SetProjectStatus(ctx, input)
	if err != nil {
		return nil, err
	}
	return &discordgo.MessageEmbed{
		Title:       "Status updated",
		Description: fmt.Sprintf("**%s** is now %s.", target, out.Status),
		Color:       ColorInfo,
	}, nil
}

func (c *SabeelCommand) deleteProject(ctx context.Context, userID string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (*discordgo.MessageEmbed, error) {
	tree, err := c.findProject(ctx, userID, stringOption(opts, "project"))
	if err != nil {
		return nil, err
	}
	out, err := c.tracker.DeleteProject(ctx, &tracker.DeleteProjectInput{
		UserID:    userID,
		ProjectID: tree.Project.ID,
	})
	if err != nil {
		return nil, err
	}
	return &discordgo.MessageEmbed{
		Title: "Project deleted",
		Description: fmt.Sprintf("**%s** and %d sub-projects removed. %d sessions are now unassigned.",
			tree.Project.Name, len(out.DeletedSubProjectIDs), len(out.OrphanedSessionIDs)),
		Color: ColorWarning,
	}, nil
}

func (c *SabeelCommand) listSeasons(ctx context.Context) (*discordgo.MessageEmbed, error) {
	current, err := c.seasons.CurrentSeason(ctx, &season.CurrentSeasonInput{})
	if err != nil {
		return nil, err
	}
	out, err := c.seasons.ListSeasons(ctx, &season.ListSeasonsInput{IncludeDrafts: true})
	if err != nil {
		return nil, err
	}
	return renderSeasons(out.Seasons, current.Today), nil
}

func (c *SabeelCommand) createSeason(ctx context.Context, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (*discordgo.MessageEmbed, error) {
	draft := false
	if o, ok := opts["draft"]; ok {
		draft = o.BoolValue()
	}
	out, err := c.seasons.CreateSeason(ctx, &season.CreateSeasonInput{
		Name:      stringOption(opts, "name"),
		StartDate: stringOption(opts, "start"),
		EndDate:   stringOption(opts, "end"),
		Draft:     draft,
	})
	if err != nil {
		return nil, err
	}
	state := "scheduled"
	if out.Season.Draft {
		state = "saved as draft"
	}
	return &discordgo.MessageEmbed{
		Title:       "Season " + state,
		Description: fmt.Sprintf("**%s** runs %s to %s.", out.Season.Name, out.Season.StartDate, out.Season.EndDate),
		Color:       ColorGold,
	}, nil
}

func (c *SabeelCommand) archiveSeasons(ctx context.Context) (*discordgo.MessageEmbed, error) {
	out, err := c.seasons.ArchiveFinishedSeasons(ctx, &season.ArchiveFinishedSeasonsInput{})
	if err != nil {
		return nil, err
	}
	return renderArchive(out), nil
}

// sessionLoggedMessage returns "" when no messaging service is configured.
// Flavor text failures are logged and never fail the command.
func (c *SabeelCommand) sessionLoggedMessage(ctx context.Context, userID string) string {
	if c.messages == nil {
		return ""
	}
	userStats, err := c.stats.GetUserStats(ctx, &stats.GetUserStatsInput{UserID: userID})
	if err != nil {
		log.Printf("Error loading stats for message: %v", err)
		return ""
	}
	out, err := c.messages.GetSessionLoggedMessage(ctx, &messaging.GetSessionLoggedMessageInput{
		Name:         userStats.User.Name,
		TodayMinutes: userStats.TodayMinutes,
		DailyTarget:  userStats.User.DailyTarget,
	})
	if err != nil {
		log.Printf("Error getting session logged message: %v", err)
		return ""
	}
	return out.Message
}

func (c *SabeelCommand) campMessage(ctx context.Context, status *camp.GetUserStatusOutput) string {
	if c.messages == nil {
		return ""
	}
	out, err := c.messages.GetCampStatusMessage(ctx, &messaging.GetCampStatusMessageInput{Status: status.Status})
	if err != nil {
		log.Printf("Error getting camp message: %v", err)
		return ""
	}
	return out.Message
}

func (c *SabeelCommand) leaderboardMessage(ctx context.Context, board *stats.GetLeaderboardOutput) string {
	if c.messages == nil || len(board.Leaderboard.Entries) == 0 {
		return ""
	}
	out, err := c.messages.GetLeaderboardMessage(ctx, &messaging.GetLeaderboardMessageInput{Leaderboard: board.Leaderboard})
	if err != nil {
		log.Printf("Error getting leaderboard message: %v", err)
		return ""
	}
	return out.Message
}

// findProject resolves a project by id or case-insensitive name
func (c *SabeelCommand) findProject(ctx context.Context, userID, ref string) (*tracker.ProjectTree, error) {
	out, err := c.tracker.ListProjects(ctx, &tracker.ListProjectsInput{UserID: userID})
	if err != nil {
		return nil, err
	}
	ref = strings.TrimSpace(ref)
	for _, tree := range out.Projects {
		if tree.Project.ID == ref {
			return tree, nil
		}
	}
	for _, tree := range out.Projects {
		if strings.EqualFold(tree.Project.Name, ref) {
			return tree, nil
		}
	}
	return nil, tracker.ErrProjectNotFound
}

func findSubProject(tree *tracker.ProjectTree, ref string) *models.SubProject {
	ref = strings.TrimSpace(ref)
	for _, sp := range tree.SubProjects {
		if sp.ID == ref || strings.EqualFold(sp.Name, ref) {
			return sp
		}
	}
	return nil
}

func leaderboardButtons(active stats.Window) []discordgo.MessageComponent {
	windows := []struct {
		window stats.Window
		label  string
	}{
		{stats.WindowWeek, "Week"},
		{stats.WindowMonth, "Month"},
		{stats.WindowAll, "All time"},
	}
	buttons := make([]discordgo.MessageComponent, 0, len(windows))
	for _, w := range windows {
		style := discordgo.SecondaryButton
		if w.window == active {
			style = discordgo.PrimaryButton
		}
		buttons = append(buttons, discordgo.Button{
			Label:    w.label,
			Style:    style,
			CustomID: ButtonLeaderboardPrefix + string(w.window),
			Disabled: w.window == active,
		})
	}
	return buttons
}

func campButtons() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.Button{Label: "My status", Style: discordgo.SecondaryButton, CustomID: ButtonCampMine},
		discordgo.Button{Label: "Camp board", Style: discordgo.PrimaryButton, CustomID: ButtonCampBoard},
	}
}

func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, o := range options {
		m[o.Name] = o
	}
	return m
}

func stringOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	if o, ok := opts[name]; ok {
		return o.StringValue()
	}
	return ""
}

func intOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) int {
	if o, ok := opts[name]; ok {
		return int(o.IntValue())
	}
	return 0
}

// describeError turns a service error into a message safe to show users.
// Anything unrecognized is hidden behind a generic reply and only logged.
func describeError(err error) string {
	var (
		conflict   *seasonRules.ConflictError
		trackerErr tracker.TrackerError
		campErr    camp.CampError
		seasonErr  season.SeasonError
		statsErr   stats.StatsError
	)
	switch {
	case validate.IsValidationError(err):
		return err.Error()
	case errors.As(err, &conflict):
		return "That " + conflict.Error()
	case errors.Is(err, errAdminOnly):
		return "Only admins can manage seasons."
	case errors.As(err, &trackerErr):
		return capitalize(trackerErr.Error())
	case errors.As(err, &campErr):
		return capitalize(campErr.Error())
	case errors.As(err, &seasonErr):
		return capitalize(seasonErr.Error())
	case errors.As(err, &statsErr):
		return capitalize(statsErr.Error())
	}
	return genericFailure
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:] + "."
}
