package store

import "errors"

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrRegistrationNotFound = errors.New("registration not found")

	// ErrRegistrationsClosed is returned when the target event is not in
	// the scheduled state.
	ErrRegistrationsClosed = errors.New("event is not accepting registrations")

	// ErrAlreadyRegistered is returned when a (event, user) pair already
	// has a registration, whether caught by the pre-check or by the
	// composite primary key on insert.
	ErrAlreadyRegistered = errors.New("already registered for this event")
)
