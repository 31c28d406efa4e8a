package camp

// CampError is a custom error type for camp errors
type CampError string

// Error implements the error interface
func (e CampError) Error() string {
	return string(e)
}

// Error constants
const (
	ErrNoActiveCamp   CampError = "no camp start date configured and no season running"
	ErrUserNotInCamp  CampError = "user not found in camp"
	ErrNilConfig      CampError = "config cannot be nil"
	ErrNilUserRepo    CampError = "user repository cannot be nil"
	ErrNilSessionRepo CampError = "session repository cannot be nil"
	ErrNilSeasonRepo  CampError = "season repository cannot be nil"
	ErrNilClock       CampError = "clock cannot be nil"
)
