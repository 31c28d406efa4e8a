package season

// SeasonError is a custom error type for season errors
type SeasonError string

// Error implements the error interface
func (e SeasonError) Error() string {
	return string(e)
}

// Error constants
const (
	ErrSeasonNotFound   SeasonError = "season not found"
	ErrSeasonArchived   SeasonError = "season is already archived"
	ErrNilConfig        SeasonError = "config cannot be nil"
	ErrNilSeasonRepo    SeasonError = "season repository cannot be nil"
	ErrNilUserRepo      SeasonError = "user repository cannot be nil"
	ErrNilSessionRepo   SeasonError = "session repository cannot be nil"
	ErrNilClock         SeasonError = "clock cannot be nil"
	ErrNilUUIDGenerator SeasonError = "UUID generator cannot be nil"
)
