package records

import "errors"

var ErrEmployeeNotFound = errors.New("employee not found")

// ValidationError reports the first field that violated an invariant. Message
// is the user-facing reason and is surfaced verbatim.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationFailed(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
