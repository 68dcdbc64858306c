package services

import (
	"errors"
	"fmt"
)

var (
	ErrBookingNotFound = errors.New("booking_not_found")
	ErrRoomNotFound    = errors.New("room_not_found")
	ErrGuestNotFound   = errors.New("guest_not_found")
)

// UnknownTransitionError reports a requested value that is not a member of the
// field's enum. No writes occur when it is returned.
type UnknownTransitionError struct {
	Field string
	Value string
}

func (e *UnknownTransitionError) Error() string {
	return fmt.Sprintf("unknown %s value %q", e.Field, e.Value)
}

// InvalidTransitionError reports a recognized value that the state machine
// does not allow from the current state.
type InvalidTransitionError struct {
	Field string
	From  string
	To    string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid %s transition %q -> %q", e.Field, e.From, e.To)
}

// PersistenceError wraps a failed transactional commit. It guarantees the
// caller that no partial writes are visible.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
