package models

// LeaderboardEntry is one user's standing
type LeaderboardEntry struct {
	// Position is the 1-based place
	Position int `json:"position"`

	// UserID and Name identify the user
	UserID string `json:"userId"`
	Name   string `json:"name"`

	// TotalMinutes is the minutes logged inside the requested window
	TotalMinutes int `json:"totalMinutes"`

	// Rank is the title earned by the user's all-time minutes
	Rank string `json:"rank"`
}

// Leaderboard is the ordered standings for a window
type Leaderboard struct {
	// Window names the period covered (all, month, week)
	Window string `json:"window"`

	// Entries are ordered by TotalMinutes descending
	Entries []*LeaderboardEntry `json:"entries"`
}

// Podium returns the first three entries
func (l *Leaderboard) Podium() []*LeaderboardEntry {
	if len(l.Entries) <= 3 {
		return l.Entries
	}
	return l.Entries[:3]
}
