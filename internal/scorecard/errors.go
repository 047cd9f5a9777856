package scorecard

// ScorecardError is a sentinel error type for scorecard mutations
type ScorecardError string

// Error implements the error interface
func (e ScorecardError) Error() string {
	return string(e)
}

const (
	// ErrAlreadyScored is returned when committing into a used category
	// outside the bonus Yahtzee path
	ErrAlreadyScored ScorecardError = "category already scored"

	// ErrNotScored is returned when clearing a category with no value
	ErrNotScored ScorecardError = "category not scored"
)
