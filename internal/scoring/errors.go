package scoring

// ScoringError is a sentinel error type for the scoring engine
type ScoringError string

// Error implements the error interface
func (e ScoringError) Error() string {
	return string(e)
}

const (
	// ErrInvalidHand is returned when dice are not exactly five values in [1,6]
	ErrInvalidHand ScoringError = "invalid hand"

	// ErrInvalidCategory is returned for identifiers outside the 13 categories
	ErrInvalidCategory ScoringError = "invalid category"
)
