package messaging

import (
	"context"
	"math/rand"
	"testing"

	"github.com/KirkDiggler/assabeel/internal/models"
	"github.com/stretchr/testify/suite"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	service Service
	ctx     context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	svc, err := NewService(&ServiceConfig{Rand: rand.New(rand.NewSource(42))})
	s.Require().NoError(err)
	s.service = svc
	s.ctx = context.Background()
}

func (s *MessagingServiceTestSuite) TestNewServiceRequiresConfig() {
	_, err := NewService(nil)
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestSessionLoggedTiers() {
	tests := []struct {
		name  string
		today int
		tone  MessageTone
	}{
		{name: "just started", today: 30, tone: ToneNeutral},
		{name: "halfway", today: 120, tone: ToneEncouraging},
		{name: "target met", today: 240, tone: ToneCelebration},
		{name: "over target", today: 400, tone: ToneCelebration},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			out, err := s.service.GetSessionLoggedMessage(s.ctx, &GetSessionLoggedMessageInput{
				Name:         "Amina",
				TodayMinutes: tt.today,
				DailyTarget:  240,
			})
			s.Require().NoError(err)
			s.Equal(tt.tone, out.Tone)
			s.Contains(out.Message, "Amina")
		})
	}
}

func (s *MessagingServiceTestSuite) TestSessionLoggedWithoutTarget() {
	out, err := s.service.GetSessionLoggedMessage(s.ctx, &GetSessionLoggedMessageInput{Name: "Amina", TodayMinutes: 60})

	s.Require().NoError(err)
	s.Equal(ToneNeutral, out.Tone)
}

func (s *MessagingServiceTestSuite) TestCampStatusTones() {
	tests := []struct {
		name   string
		status *models.CampUserStatus
		tone   MessageTone
	}{
		{name: "eliminated", status: &models.CampUserStatus{Lives: 0, Failures: 4, IsEliminated: true}, tone: ToneNeutral},
		{name: "last chance", status: &models.CampUserStatus{Lives: 0, Failures: 3}, tone: ToneWarning},
		{name: "long streak", status: &models.CampUserStatus{Lives: 2, Failures: 1, CurrentStreak: 9}, tone: ToneCelebration},
		{name: "lost a life", status: &models.CampUserStatus{Lives: 2, Failures: 1, CurrentStreak: 2}, tone: ToneWarning},
		{name: "clean", status: &models.CampUserStatus{Lives: 3, CurrentStreak: 2}, tone: ToneEncouraging},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			out, err := s.service.GetCampStatusMessage(s.ctx, &GetCampStatusMessageInput{Status: tt.status})
			s.Require().NoError(err)
			s.Equal(tt.tone, out.Tone)
			s.NotEmpty(out.Message)
		})
	}
}

func (s *MessagingServiceTestSuite) TestCampStatusRequiresStatus() {
	_, err := s.service.GetCampStatusMessage(s.ctx, &GetCampStatusMessageInput{})
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestLeaderboardMessages() {
	out, err := s.service.GetLeaderboardMessage(s.ctx, &GetLeaderboardMessageInput{
		Leaderboard: &models.Leaderboard{},
	})
	s.Require().NoError(err)
	s.Equal(ToneEncouraging, out.Tone)

	out, err = s.service.GetLeaderboardMessage(s.ctx, &GetLeaderboardMessageInput{
		Leaderboard: &models.Leaderboard{Entries: []*models.LeaderboardEntry{
			{Position: 1, Name: "Amina", TotalMinutes: 300},
			{Position: 2, Name: "Bilal", TotalMinutes: 300},
		}},
	})
	s.Require().NoError(err)
	s.Equal("Amina and Bilal are tied at the top!", out.Message)

	out, err = s.service.GetLeaderboardMessage(s.ctx, &GetLeaderboardMessageInput{
		Leaderboard: &models.Leaderboard{Entries: []*models.LeaderboardEntry{
			{Position: 1, Name: "Amina", TotalMinutes: 400},
			{Position: 2, Name: "Bilal", TotalMinutes: 300},
		}},
	})
	s.Require().NoError(err)
	s.Contains(out.Message, "Amina")
}

func TestMessagingServiceSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}
