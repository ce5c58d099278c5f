package calculator

import (
	"errors"
	"fmt"
)

// ValidationError reports invalid caller input: an empty participant set,
// percentages that do not sum to 100, exact amounts that do not sum to the
// total, and so on. It is always recoverable; the caller decides how to
// surface the reason.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}
