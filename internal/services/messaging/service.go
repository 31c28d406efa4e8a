package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/assabeel/internal/camp"
)

// streakCelebration is the streak length that earns a celebration line
const streakCelebration = 7

// service implements the Service interface
type service struct {
	// rand.Rand is not safe for concurrent use
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	if config == nil {
		return nil, errors.New("config cannot be nil")
	}

	r := config.Rand
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &service{rand: r}, nil
}

// GetSessionLoggedMessage reacts to progress towards the daily target
func (s *service) GetSessionLoggedMessage(ctx context.Context, input *GetSessionLoggedMessageInput) (*GetSessionLoggedMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var (
		messages []string
		tone     MessageTone
	)
	percent := 0
	if input.DailyTarget > 0 {
		percent = input.TodayMinutes * 100 / input.DailyTarget
	}

	switch {
	case percent >= 100:
		tone = ToneCelebration
		messages = []string{
			"Daily target reached, %s! May it be accepted.",
			"That's the day's goal done, %s. Anything more is a bonus.",
			"%s hit the daily target. Keep the chain going tomorrow.",
		}
	case percent >= 50:
		tone = ToneEncouraging
		messages = []string{
			"Past the halfway mark, %s. Keep going!",
			"More than half of today's target is in, %s.",
			"Good pace, %s. The finish line for today is in sight.",
		}
	default:
		tone = ToneNeutral
		messages = []string{
			"Logged, %s. Every minute counts.",
			"A good start, %s. Small steps add up.",
			"Noted, %s. Come back and add more later today.",
		}
	}

	return &GetSessionLoggedMessageOutput{
		Message: fmt.Sprintf(s.pick(messages), input.Name),
		Tone:    tone,
	}, nil
}

// GetCampStatusMessage describes how safe a user is in the camp
func (s *service) GetCampStatusMessage(ctx context.Context, input *GetCampStatusMessageInput) (*GetCampStatusMessageOutput, error) {
	if input == nil || input.Status == nil {
		return nil, errors.New("status cannot be nil")
	}
	status := input.Status

	var (
		messages []string
		tone     MessageTone
	)
	switch {
	case status.IsEliminated:
		tone = ToneNeutral
		messages = []string{
			"Out of this camp, but the habit stays. Join the next season.",
			"Eliminated this time. The leaderboard still counts every hour.",
		}
	case status.Lives == 0:
		tone = ToneWarning
		messages = []string{
			"No lives left. One more missed day ends the camp for you.",
			"You are on your last chance. Don't miss a single day.",
		}
	case status.CurrentStreak >= streakCelebration:
		tone = ToneCelebration
		messages = []string{
			fmt.Sprintf("%d days in a row. Outstanding consistency!", status.CurrentStreak),
			fmt.Sprintf("A %d day streak. Keep it alive!", status.CurrentStreak),
		}
	case status.Lives < camp.StartingLives:
		tone = ToneWarning
		messages = []string{
			fmt.Sprintf("%d lives left. Protect them.", status.Lives),
			fmt.Sprintf("Down to %d lives. Meet today's goal to stay safe.", status.Lives),
		}
	default:
		tone = ToneEncouraging
		messages = []string{
			"All lives intact. Keep showing up.",
			"A clean record so far. Stay on it.",
		}
	}

	return &GetCampStatusMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetLeaderboardMessage names the leader, if any
func (s *service) GetLeaderboardMessage(ctx context.Context, input *GetLeaderboardMessageInput) (*GetLeaderboardMessageOutput, error) {
	if input == nil || input.Leaderboard == nil {
		return nil, errors.New("leaderboard cannot be nil")
	}

	entries := input.Leaderboard.Entries
	if len(entries) == 0 || entries[0].TotalMinutes == 0 {
		return &GetLeaderboardMessageOutput{
			Message: s.pick([]string{
				"The board is empty. Be the first to log some time!",
				"Nobody on the board yet. The top spot is up for grabs.",
			}),
			Tone: ToneEncouraging,
		}, nil
	}

	leader := entries[0].Name
	if len(entries) > 1 && entries[1].TotalMinutes == entries[0].TotalMinutes {
		return &GetLeaderboardMessageOutput{
			Message: fmt.Sprintf("%s and %s are tied at the top!", leader, entries[1].Name),
			Tone:    ToneCelebration,
		}, nil
	}

	return &GetLeaderboardMessageOutput{
		Message: fmt.Sprintf(s.pick([]string{
			"%s leads the way.",
			"%s holds the top spot. Who will catch up?",
			"All eyes on %s at number one.",
		}), leader),
		Tone: ToneCelebration,
	}, nil
}

func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return messages[s.rand.Intn(len(messages))]
}
