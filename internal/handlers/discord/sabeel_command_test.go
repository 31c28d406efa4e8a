package discord

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/assabeel/internal/models"
	seasonRules "github.com/KirkDiggler/assabeel/internal/season"
	"github.com/KirkDiggler/assabeel/internal/services/camp"
	campMocks "github.com/KirkDiggler/assabeel/internal/services/camp/mocks"
	"github.com/KirkDiggler/assabeel/internal/services/messaging"
	messagingMocks "github.com/KirkDiggler/assabeel/internal/services/messaging/mocks"
	"github.com/KirkDiggler/assabeel/internal/services/season"
	seasonMocks "github.com/KirkDiggler/assabeel/internal/services/season/mocks"
	"github.com/KirkDiggler/assabeel/internal/services/stats"
	statsMocks "github.com/KirkDiggler/assabeel/internal/services/stats/mocks"
	"github.com/KirkDiggler/assabeel/internal/services/tracker"
	trackerMocks "github.com/KirkDiggler/assabeel/internal/services/tracker/mocks"
	"github.com/KirkDiggler/assabeel/internal/services/validate"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SabeelCommandTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockTracker *trackerMocks.MockService
	mockStats   *statsMocks.MockService
	mockCamp    *campMocks.MockService
	mockSeasons *seasonMocks.MockService
	cmd         *SabeelCommand
	ctx         context.Context
}

func (s *SabeelCommandTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockTracker = trackerMocks.NewMockService(s.mockCtrl)
	s.mockStats = statsMocks.NewMockService(s.mockCtrl)
	s.mockCamp = campMocks.NewMockService(s.mockCtrl)
	s.mockSeasons = seasonMocks.NewMockService(s.mockCtrl)
	s.ctx = context.Background()

	s.cmd = NewSabeelCommand(&SabeelCommandConfig{
		Tracker: s.mockTracker,
		Stats:   s.mockStats,
		Camp:    s.mockCamp,
		Seasons: s.mockSeasons,
		Admins:  map[string]bool{"admin": true},
	})
}

func (s *SabeelCommandTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func subcommand(name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:    name,
		Type:    discordgo.ApplicationCommandOptionSubCommand,
		Options: opts,
	}
}

func group(name string, sub *discordgo.ApplicationCommandInteractionDataOption) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:    name,
		Type:    discordgo.ApplicationCommandOptionSubCommandGroup,
		Options: []*discordgo.ApplicationCommandInteractionDataOption{sub},
	}
}

func intOpt(name string, v int) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionInteger, Value: float64(v)}
}

func strOpt(name, v string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionString, Value: v}
}

func boolOpt(name string, v bool) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionBoolean, Value: v}
}

func (s *SabeelCommandTestSuite) projects() *tracker.ListProjectsOutput {
	return &tracker.ListProjectsOutput{
		Projects: []*tracker.ProjectTree{
			{
				Project: &models.Project{ID: "p1", UserID: "u1", Name: "Quran", Status: models.ProjectStatusActive},
				SubProjects: []*models.SubProject{
					{ID: "sp1", ProjectID: "p1", Name: "Juz 1", Status: models.ProjectStatusActive},
				},
			},
		},
	}
}

func (s *SabeelCommandTestSuite) TestLogSessionResolvesProjectByName() {
	s.mockTracker.EXPECT().
		ListProjects(s.ctx, &tracker.ListProjectsInput{UserID: "u1"}).
		Return(s.projects(), nil)
	s.mockTracker.EXPECT().
		LogSession(s.ctx, &tracker.LogSessionInput{
			UserID:       "u1",
			ProjectID:    "p1",
			SubProjectID: "sp1",
			Hours:        2,
			Minutes:      15,
			Notes:        "morning",
		}).
		Return(&tracker.LogSessionOutput{Session: &models.Session{
			ID: "s1", UserID: "u1", ProjectID: "p1", SubProjectID: "sp1", Date: "2025-02-10", Hours: 2, Minutes: 15, Notes: "morning",
		}}, nil)

	embed, buttons, public, err := s.cmd.dispatch(s.ctx, "u1", subcommand("log",
		intOpt("hours", 2),
		intOpt("minutes", 15),
		strOpt("project", "quran"),
		strOpt("subproject", "JUZ 1"),
		strOpt("notes", "morning"),
	))

	s.Require().NoError(err)
	s.False(public)
	s.Empty(buttons)
	s.Equal("Session logged", embed.Title)
	s.Equal("2:15", embed.Fields[1].Value)
	s.Equal("Quran / Juz 1", embed.Fields[2].Value)
}

func (s *SabeelCommandTestSuite) TestLogSessionUnknownProject() {
	s.mockTracker.EXPECT().
		ListProjects(s.ctx, gomock.Any()).
		Return(s.projects(), nil)

	_, _, _, err := s.cmd.dispatch(s.ctx, "u1", subcommand("log",
		intOpt("hours", 1),
		strOpt("project", "Hadith"),
	))

	s.ErrorIs(err, tracker.ErrProjectNotFound)
	s.Equal("Project not found.", describeError(err))
}

func (s *SabeelCommandTestSuite) TestLogSessionWithoutProject() {
	s.mockTracker.EXPECT().
		LogSession(s.ctx, &tracker.LogSessionInput{UserID: "u1", Hours: 1, Date: "2025-02-09"}).
		Return(&tracker.LogSessionOutput{Session: &models.Session{ID: "s2", UserID: "u1", Date: "2025-02-09", Hours: 1}}, nil)

	embed, _, _, err := s.cmd.dispatch(s.ctx, "u1", subcommand("log",
		intOpt("hours", 1),
		strOpt("date", "2025-02-09"),
	))

	s.Require().NoError(err)
	s.Len(embed.Fields, 2)
}

func (s *SabeelCommandTestSuite) TestLogSessionAddsEncouragement() {
	mockMessages := messagingMocks.NewMockService(s.mockCtrl)
	cmd := NewSabeelCommand(&SabeelCommandConfig{
		Tracker:  s.mockTracker,
		Stats:    s.mockStats,
		Camp:     s.mockCamp,
		Seasons:  s.mockSeasons,
		Messages: mockMessages,
	})

	s.mockTracker.EXPECT().
		LogSession(s.ctx, gomock.Any()).
		Return(&tracker.LogSessionOutput{Session: &models.Session{ID: "s3", UserID: "u1", Date: "2025-02-10", Hours: 4}}, nil)
	s.mockStats.EXPECT().
		GetUserStats(s.ctx, &stats.GetUserStatsInput{UserID: "u1"}).
		Return(&stats.GetUserStatsOutput{
			User:         &models.User{ID: "u1", Name: "Amina", DailyTarget: 240},
			TodayMinutes: 240,
		}, nil)
	mockMessages.EXPECT().
		GetSessionLoggedMessage(s.ctx, &messaging.GetSessionLoggedMessageInput{
			Name:         "Amina",
			TodayMinutes: 240,
			DailyTarget:  240,
		}).
		Return(&messaging.GetSessionLoggedMessageOutput{Message: "Daily target reached, Amina!", Tone: messaging.ToneCelebration}, nil)

	embed, _, _, err := cmd.dispatch(s.ctx, "u1", subcommand("log", intOpt("hours", 4)))

	s.Require().NoError(err)
	s.Equal("Daily target reached, Amina!", embed.Description)
}

func (s *SabeelCommandTestSuite) TestLeaderboardIsPublicWithWindowButtons() {
	s.mockStats.EXPECT().
		GetLeaderboard(s.ctx, &stats.GetLeaderboardInput{Window: stats.WindowWeek}).
		Return(&stats.GetLeaderboardOutput{
			Leaderboard: &models.Leaderboard{
				Window: string(stats.WindowWeek),
				Entries: []*models.LeaderboardEntry{
					{Position: 1, UserID: "u1", Name: "Amina", TotalMinutes: 600, Rank: "Beginner"},
				},
			},
			From: "2025-02-08",
			To:   "2025-02-14",
		}, nil)

	embed, buttons, public, err := s.cmd.dispatch(s.ctx, "u1", subcommand("leaderboard", strOpt("window", "week")))

	s.Require().NoError(err)
	s.True(public)
	s.Equal("Leaderboard: this week", embed.Title)
	s.Require().Len(buttons, 3)
	week := buttons[0].(discordgo.Button)
	s.True(week.Disabled)
	s.Equal(ButtonLeaderboardPrefix+"week", week.CustomID)
}

func (s *SabeelCommandTestSuite) TestCampStatus() {
	s.mockCamp.EXPECT().
		GetUserStatus(s.ctx, &camp.GetUserStatusInput{UserID: "u1"}).
		Return(&camp.GetUserStatusOutput{
			Status: &models.CampUserStatus{
				UserID: "u1", Name: "Amina", Lives: 2, Failures: 1, CurrentStreak: 3,
			},
			Position:     1,
			Participants: 4,
			StartDate:    "2025-02-01",
			Today:        "2025-02-10",
		}, nil)

	embed, buttons, _, err := s.cmd.dispatch(s.ctx, "u1", subcommand("camp"))

	s.Require().NoError(err)
	s.Equal("Camp: Amina", embed.Title)
	s.Equal(ColorWarning, embed.Color)
	s.Equal("1 of 4", embed.Fields[2].Value)
	s.Len(buttons, 2)
}

func (s *SabeelCommandTestSuite) TestAddSubProjectUnderParent() {
	s.mockTracker.EXPECT().
		ListProjects(s.ctx, gomock.Any()).
		Return(s.projects(), nil)
	s.mockTracker.EXPECT().
		AddSubProject(s.ctx, &tracker.AddSubProjectInput{UserID: "u1", ProjectID: "p1", Name: "Juz 2"}).
		Return(&tracker.AddSubProjectOutput{SubProject: &models.SubProject{ID: "sp2", ProjectID: "p1", Name: "Juz 2"}}, nil)

	embed, _, _, err := s.cmd.dispatch(s.ctx, "u1", group("project", subcommand("add",
		strOpt("name", "Juz 2"),
		strOpt("parent", "p1"),
	)))

	s.Require().NoError(err)
	s.Equal("Sub-project added", embed.Title)
}

func (s *SabeelCommandTestSuite) TestDeleteProjectReportsOrphans() {
	s.mockTracker.EXPECT().
		ListProjects(s.ctx, gomock.Any()).
		Return(s.projects(), nil)
	s.mockTracker.EXPECT().
		DeleteProject(s.ctx, &tracker.DeleteProjectInput{UserID: "u1", ProjectID: "p1"}).
		Return(&tracker.DeleteProjectOutput{
			DeletedSubProjectIDs: []string{"sp1"},
			OrphanedSessionIDs:   []string{"s1", "s2"},
		}, nil)

	embed, _, _, err := s.cmd.dispatch(s.ctx, "u1", group("project", subcommand("delete", strOpt("project", "Quran"))))

	s.Require().NoError(err)
	s.Contains(embed.Description, "1 sub-projects removed")
	s.Contains(embed.Description, "2 sessions are now unassigned")
}

func (s *SabeelCommandTestSuite) TestSeasonCreateRequiresAdmin() {
	_, _, _, err := s.cmd.dispatch(s.ctx, "u1", group("season", subcommand("create",
		strOpt("name", "Ramadan"),
		strOpt("start", "2025-03-01"),
		strOpt("end", "2025-03-30"),
	)))

	s.ErrorIs(err, errAdminOnly)
	s.Equal("Only admins can manage seasons.", describeError(err))
}

func (s *SabeelCommandTestSuite) TestSeasonCreateByAdmin() {
	s.mockSeasons.EXPECT().
		CreateSeason(s.ctx, &season.CreateSeasonInput{
			Name:      "Ramadan",
			StartDate: "2025-03-01",
			EndDate:   "2025-03-30",
			Draft:     true,
		}).
		Return(&season.CreateSeasonOutput{Season: &models.Season{
			ID: "se1", Name: "Ramadan", StartDate: "2025-03-01", EndDate: "2025-03-30", Draft: true,
		}}, nil)

	embed, _, public, err := s.cmd.dispatch(s.ctx, "admin", group("season", subcommand("create",
		strOpt("name", "Ramadan"),
		strOpt("start", "2025-03-01"),
		strOpt("end", "2025-03-30"),
		boolOpt("draft", true),
	)))

	s.Require().NoError(err)
	s.True(public)
	s.Equal("Season saved as draft", embed.Title)
}

func (s *SabeelCommandTestSuite) TestSeasonArchiveByAdmin() {
	s.mockSeasons.EXPECT().
		ArchiveFinishedSeasons(s.ctx, gomock.Any()).
		Return(&season.ArchiveFinishedSeasonsOutput{
			ArchivedCount: 1,
			DeletedCount:  1,
			Outcomes: []*season.SeasonOutcome{
				{SeasonID: "a", Name: "Winter", Champion: "u1", Survivors: []string{"u2"}},
				{SeasonID: "b", Name: "Spring", Deleted: true},
			},
		}, nil)

	embed, _, _, err := s.cmd.dispatch(s.ctx, "admin", group("season", subcommand("archive")))

	s.Require().NoError(err)
	s.Equal("1 archived, 1 deleted", embed.Description)
	s.Require().Len(embed.Fields, 2)
	s.Equal("champion <@u1>\nsurvivors <@u2>", embed.Fields[0].Value)
	s.Equal("no survivors, season removed", embed.Fields[1].Value)
}

func (s *SabeelCommandTestSuite) TestSeasonList() {
	s.mockSeasons.EXPECT().
		CurrentSeason(s.ctx, gomock.Any()).
		Return(&season.CurrentSeasonOutput{Today: "2025-03-10"}, nil)
	s.mockSeasons.EXPECT().
		ListSeasons(s.ctx, &season.ListSeasonsInput{IncludeDrafts: true}).
		Return(&season.ListSeasonsOutput{Seasons: []*models.Season{
			{ID: "b", Name: "Ramadan", StartDate: "2025-03-01", EndDate: "2025-03-30"},
			{ID: "a", Name: "Winter", StartDate: "2025-01-01", EndDate: "2025-01-30", Champion: "u1"},
		}}, nil)

	embed, _, _, err := s.cmd.dispatch(s.ctx, "u1", group("season", subcommand("list")))

	s.Require().NoError(err)
	s.Require().Len(embed.Fields, 2)
	s.Contains(embed.Fields[0].Value, "running")
	s.Contains(embed.Fields[1].Value, "champion <@u1>")
}

func (s *SabeelCommandTestSuite) TestServiceErrorsPropagate() {
	s.mockStats.EXPECT().
		GetUserStats(s.ctx, gomock.Any()).
		Return(nil, errors.New("redis down"))

	_, _, _, err := s.cmd.dispatch(s.ctx, "u1", subcommand("stats"))

	s.Error(err)
	s.Equal(genericFailure, describeError(err))
}

func (s *SabeelCommandTestSuite) TestDescribeError() {
	s.Equal("That season overlaps \"Winter\" (2025-01-01 to 2025-01-30)", describeError(&seasonRules.ConflictError{
		SeasonID: "a", Name: "Winter", StartDate: "2025-01-01", EndDate: "2025-01-30",
	}))
	s.Equal("No camp start date configured and no season running.", describeError(camp.ErrNoActiveCamp))
	s.Equal("invalid input: name: name is required", describeError(validate.NewValidationError(validate.ErrInvalidInput, validate.FieldError{
		Field: "name",
		Error: "name is required",
	})))
}

func TestSabeelCommandSuite(t *testing.T) {
	suite.Run(t, new(SabeelCommandTestSuite))
}
