package tracker

// TrackerError is a custom error type for tracker errors
type TrackerError string

// Error implements the error interface
func (e TrackerError) Error() string {
	return string(e)
}

// Error constants
const (
	ErrUserNotFound       TrackerError = "user not found"
	ErrSessionNotFound    TrackerError = "session not found"
	ErrProjectNotFound    TrackerError = "project not found"
	ErrSubProjectNotFound TrackerError = "sub-project not found"
	ErrNilConfig          TrackerError = "config cannot be nil"
	ErrNilUserRepo        TrackerError = "user repository cannot be nil"
	ErrNilSessionRepo     TrackerError = "session repository cannot be nil"
	ErrNilProjectRepo     TrackerError = "project repository cannot be nil"
	ErrNilClock           TrackerError = "clock cannot be nil"
	ErrNilUUIDGenerator   TrackerError = "UUID generator cannot be nil"
)
