package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// DurationComponent is an hours or minutes field of a logged session.
// It decodes permissively: numbers, numeric strings, null and garbage are all
// accepted, with anything unparseable becoming zero.
type DurationComponent int

// MaxDurationComponent caps a single hours or minutes value so that
// hours*60+minutes always fits an int.
const MaxDurationComponent = 1440

// Value returns the component clamped to [0, MaxDurationComponent]
func (d DurationComponent) Value() int {
	return clampComponent(int(d))
}

// UnmarshalJSON implements json.Unmarshaler using ParseDurationComponent.
func (d *DurationComponent) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		*d = 0
		return nil
	}
	*d = DurationComponent(ParseDurationComponent(raw))
	return nil
}

// ParseDurationComponent coerces a raw hours/minutes value to an int in
// [0, MaxDurationComponent]. Absent, non-numeric and negative values are zero,
// oversized values are capped and fractions are truncated.
func ParseDurationComponent(v interface{}) int {
	switch val := v.(type) {
	case nil:
		return 0
	case int:
		return clampComponent(val)
	case int64:
		return clampFloat(float64(val))
	case float64:
		return clampFloat(val)
	case DurationComponent:
		return val.Value()
	case json.Number:
		return parseNumericString(val.String())
	case string:
		return parseNumericString(val)
	default:
		return 0
	}
}

func parseNumericString(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return clampComponent(n)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return clampFloat(f)
	}
	return 0
}

func clampComponent(n int) int {
	if n < 0 {
		return 0
	}
	if n > MaxDurationComponent {
		return MaxDurationComponent
	}
	return n
}

// clampFloat bounds f before converting, since out of range float to int
// conversions are implementation defined
func clampFloat(f float64) int {
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	if f > MaxDurationComponent {
		return MaxDurationComponent
	}
	return int(f)
}
