package viewmodel

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/xw1nchester/foodfinds-backend/internal/branch"
)

var ErrInvalidAggregate = errors.New("invalid branch aggregate")

var validate = validator.New()

// Validate reports aggregates that would produce a misleading card. Derive
// does not call it; callers decide what to do with a rejected aggregate.
func Validate(a branch.Aggregate) error {
	err := validate.Struct(a)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidAggregate, err)
	}

	fields := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, fmt.Sprintf("%s failed on %s", fe.Namespace(), fe.ActualTag()))
	}

	return fmt.Errorf("%w (branch %d): %s", ErrInvalidAggregate, a.BranchID, strings.Join(fields, ", "))
}
