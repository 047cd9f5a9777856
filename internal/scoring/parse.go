package scoring

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// ParseDice reads dice typed as "3 3 3 2 2", "3,3,3,2,2" or "33322".
// It only converts text to numbers; NewHand does the range and length checks.
func ParseDice(raw string) ([]int, error) {
	fields := strings.FieldsFunc(strings.TrimSpace(raw), func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, nil
	}

	// a single run of digits is one die per character
	if len(fields) == 1 && len(fields[0]) > 1 {
		fields = strings.Split(fields[0], "")
	}

	dice := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidHand, "%q is not a die", f)
		}
		dice = append(dice, v)
	}
	return dice, nil
}
