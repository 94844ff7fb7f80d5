package mapping

import (
	"errors"
)

var ErrNotFound = errors.New("mapping not found")

// ValidationError names the first required field missing from a create.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return "Missing required field: " + e.Field
}
