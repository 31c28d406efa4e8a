package stats

// StatsError is a custom error type for stats errors
type StatsError string

// Error implements the error interface
func (e StatsError) Error() string {
	return string(e)
}

// Error constants
const (
	ErrUserNotFound   StatsError = "user not found"
	ErrNilConfig      StatsError = "config cannot be nil"
	ErrNilUserRepo    StatsError = "user repository cannot be nil"
	ErrNilSessionRepo StatsError = "session repository cannot be nil"
	ErrNilProjectRepo StatsError = "project repository cannot be nil"
	ErrNilClock       StatsError = "clock cannot be nil"
)
