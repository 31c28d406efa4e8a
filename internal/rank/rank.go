// Package rank maps a user's all-time logged minutes to a rank title.
//
// Ranks are fixed hour thresholds checked from the top down, so the mapping is
// monotonic: more minutes never yield a lower rank. Nothing here is stored;
// callers recompute the rank from current totals.
package rank

// Label is a rank title
type Label string

const (
	CommanderOfTheFaithful Label = "Commander of the Faithful"
	Commander              Label = "Commander"
	Leader                 Label = "Leader"
	Knight                 Label = "Knight"
	Diligent               Label = "Diligent"
	Beginner               Label = "Beginner"
)

// Threshold is the minimum number of hours needed for a label
type Threshold struct {
	Hours float64
	Label Label
}

// Thresholds is ordered from the highest rank down
var Thresholds = []Threshold{
	{Hours: 1000, Label: CommanderOfTheFaithful},
	{Hours: 500, Label: Commander},
	{Hours: 300, Label: Leader},
	{Hours: 150, Label: Knight},
	{Hours: 50, Label: Diligent},
}

// For returns the highest rank whose threshold totalMinutes meets
func For(totalMinutes int) Label {
	hours := float64(totalMinutes) / 60
	for _, t := range Thresholds {
		if hours >= t.Hours {
			return t.Label
		}
	}
	return Beginner
}

// Level returns the position of a label counted from Beginner (0) upwards
func Level(l Label) int {
	for i, t := range Thresholds {
		if t.Label == l {
			return len(Thresholds) - i
		}
	}
	return 0
}

// Next returns the next rank above totalMinutes and the minutes still missing.
// ok is false once the top rank is reached.
func Next(totalMinutes int) (label Label, missingMinutes int, ok bool) {
	for i := len(Thresholds) - 1; i >= 0; i-- {
		need := int(Thresholds[i].Hours * 60)
		if totalMinutes < need {
			return Thresholds[i].Label, need - totalMinutes, true
		}
	}
	return "", 0, false
}
