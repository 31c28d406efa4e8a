package models

// DayStatus is the outcome of one challenge day
type DayStatus string

const (
	// DayStatusPending is a day that has not been reached yet
	DayStatusPending DayStatus = "pending"

	// DayStatusSuccess is a day where the daily goal was met
	DayStatusSuccess DayStatus = "success"

	// DayStatusFail is a reached day where the daily goal was missed
	DayStatusFail DayStatus = "fail"
)

// DayProgress is one day of a user's camp progress
type DayProgress struct {
	// Day is the 1-based index in the challenge
	Day int `json:"day"`

	// Date is the calendar date of the day
	Date string `json:"date"`

	// Minutes is the total logged on Date
	Minutes int `json:"minutes"`

	// Status is the day outcome
	Status DayStatus `json:"status"`
}

// CampUserStatus is a user's derived camp state
type CampUserStatus struct {
	UserID        string        `json:"userId"`
	Name          string        `json:"name"`
	Lives         int           `json:"lives"`
	Failures      int           `json:"failures"`
	IsEliminated  bool          `json:"isEliminated"`
	Progress      []DayProgress `json:"progress"`
	CurrentStreak int           `json:"currentStreak"`
}
