package game

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateInput checks struct tags and reports failures as ErrInvalidInput
func validateInput(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(ErrInvalidInput, err.Error())
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			problems = append(problems, fe.Field()+" failed "+fe.Tag()+"="+fe.Param())
			continue
		}
		problems = append(problems, fe.Field()+" failed "+fe.Tag())
	}
	return errors.Wrap(ErrInvalidInput, strings.Join(problems, "; "))
}
