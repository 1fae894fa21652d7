package quiz

import (
	"errors"
	"fmt"
)

var (
	ErrQuizNotFound   = errors.New("quiz not found")
	ErrInvalidID      = errors.New("invalid id format")
	ErrAggregateWrite = errors.New("quiz aggregate write failed")
)

// ValidationError covers authoring input faults. The caller must correct
// the request; retrying as-is will fail again.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
