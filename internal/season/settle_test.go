package season

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/assabeel/internal/ledger"
	"github.com/KirkDiggler/assabeel/internal/models"
)

// tenDays spans 2025-01-01 .. 2025-01-10
var tenDays = &models.Season{ID: "s1", Name: "Winter", StartDate: "2025-01-01", EndDate: "2025-01-10"}

// userMeetingGoal logs minutesPerDay on the first n days of the season
func userMeetingGoal(t *testing.T, id string, n, minutesPerDay int) *models.UserWithSessions {
	t.Helper()
	u := &models.UserWithSessions{User: &models.User{ID: id, Name: id}}
	for i := 0; i < n; i++ {
		d, err := ledger.AddDays(tenDays.StartDate, i)
		require.NoError(t, err)
		u.Sessions = append(u.Sessions, &models.Session{UserID: id, Date: d, Minutes: models.DurationComponent(minutesPerDay)})
	}
	return u
}

func TestSettleElectsChampionAmongSurvivors(t *testing.T) {
	eight := userMeetingGoal(t, "eight", 8, 300)
	six := userMeetingGoal(t, "six", 6, 600)

	res, err := Settle(tenDays, []*models.UserWithSessions{six, eight}, DailyGoalMinutes)
	require.NoError(t, err)

	require.Len(t, res.Tallies, 2)
	assert.Equal(t, 4, res.Tallies[0].LivesLost)
	assert.False(t, res.Tallies[0].Survivor)
	assert.Equal(t, 2, res.Tallies[1].LivesLost)
	assert.True(t, res.Tallies[1].Survivor)

	assert.Equal(t, "eight", res.Champion)
	assert.Empty(t, res.Survivors)
	assert.False(t, res.NoSurvivors())
}

func TestSettleExcludesChampionFromSurvivors(t *testing.T) {
	a := userMeetingGoal(t, "a", 10, 240)
	b := userMeetingGoal(t, "b", 10, 300)
	c := userMeetingGoal(t, "c", 9, 250)

	res, err := Settle(tenDays, []*models.UserWithSessions{a, b, c}, DailyGoalMinutes)
	require.NoError(t, err)

	assert.Equal(t, "b", res.Champion)
	assert.Equal(t, []string{"a", "c"}, res.Survivors)
}

func TestSettleTieGoesToFirstEncountered(t *testing.T) {
	first := userMeetingGoal(t, "first", 10, 240)
	second := userMeetingGoal(t, "second", 10, 240)

	res, err := Settle(tenDays, []*models.UserWithSessions{first, second}, DailyGoalMinutes)
	require.NoError(t, err)

	assert.Equal(t, "first", res.Champion)
	assert.Equal(t, []string{"second"}, res.Survivors)
}

func TestSettleThreeLivesLostIsNotSurvivor(t *testing.T) {
	seven := userMeetingGoal(t, "seven", 7, 240)

	res, err := Settle(tenDays, []*models.UserWithSessions{seven}, DailyGoalMinutes)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Tallies[0].LivesLost)
	assert.False(t, res.Tallies[0].Survivor)
	assert.True(t, res.NoSurvivors())
	assert.Empty(t, res.Champion)
}

func TestSettleIgnoresSessionsOutsideRange(t *testing.T) {
	u := userMeetingGoal(t, "u", 10, 240)
	u.Sessions = append(u.Sessions,
		&models.Session{Date: "2024-12-31", Hours: 50},
		&models.Session{Date: "2025-01-11", Hours: 50},
	)

	res, err := Settle(tenDays, []*models.UserWithSessions{u}, DailyGoalMinutes)
	require.NoError(t, err)

	assert.Equal(t, 2400, res.Tallies[0].TotalMinutes)
	assert.Equal(t, 0, res.Tallies[0].LivesLost)
}

func TestSettleNoUsers(t *testing.T) {
	res, err := Settle(tenDays, nil, DailyGoalMinutes)
	require.NoError(t, err)
	assert.True(t, res.NoSurvivors())
}

func TestSettleInvalidRange(t *testing.T) {
	_, err := Settle(&models.Season{StartDate: "x", EndDate: "2025-01-01"}, nil, DailyGoalMinutes)
	assert.Error(t, err)
}
