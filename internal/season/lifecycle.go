package season

import (
	"errors"
	"fmt"

	"github.com/KirkDiggler/assabeel/internal/ledger"
	"github.com/KirkDiggler/assabeel/internal/models"
)

// ErrInvalidRange is returned for unparseable dates or an end before the start
var ErrInvalidRange = errors.New("invalid season range")

// Range is an inclusive calendar date range
type Range struct {
	Start string
	End   string
}

// Validate checks both dates parse and Start <= End
func (r Range) Validate() error {
	if _, err := ledger.ParseDate(r.Start); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}
	if _, err := ledger.ParseDate(r.End); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}
	if r.End < r.Start {
		return fmt.Errorf("%w: end %s is before start %s", ErrInvalidRange, r.End, r.Start)
	}
	return nil
}

// Overlaps reports whether two inclusive ranges share at least one day
func Overlaps(existing, candidate Range) bool {
	return existing.Start <= candidate.End && existing.End >= candidate.Start
}

// ConflictError identifies the existing season a new range collides with
type ConflictError struct {
	SeasonID  string `json:"seasonId"`
	Name      string `json:"name"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("season overlaps %q (%s to %s)", e.Name, e.StartDate, e.EndDate)
}

// ValidateNew checks a candidate range against existing seasons and reports
// the first non-draft season it overlaps.
func ValidateNew(candidate Range, existing []*models.Season) error {
	if err := candidate.Validate(); err != nil {
		return err
	}
	for _, s := range existing {
		if s == nil || s.Draft {
			continue
		}
		if Overlaps(Range{Start: s.StartDate, End: s.EndDate}, candidate) {
			return &ConflictError{
				SeasonID:  s.ID,
				Name:      s.Name,
				StartDate: s.StartDate,
				EndDate:   s.EndDate,
			}
		}
	}
	return nil
}
