package repository

import "errors"

// ErrNotFound is returned when an id does not resolve to a stored expense.
var ErrNotFound = errors.New("expense not found")

// ValidationError rejects input that fails a field-level constraint. It is
// always raised before any write, so a failed validation never changes state.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
