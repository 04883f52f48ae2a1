package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an appointment id does not match any record.
var ErrNotFound = errors.New("appointment not found")

// ValidationError reports a create payload that cannot be accepted. The
// store stays untouched when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid appointment: %s %s", e.Field, e.Reason)
}

// ConflictError reports a double-booking attempt. It names the doctor and
// the start time of the appointment already holding the slot.
type ConflictError struct {
	DoctorName string
	Date       string
	Time       string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("time conflict with existing appointment for %s at %s on %s", e.DoctorName, e.Time, e.Date)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
