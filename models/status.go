package models

import "fmt"

// RoomStatus is the occupancy state of a room.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
)

func (s RoomStatus) IsValid() bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomMaintenance:
		return true
	}
	return false
}

func (s RoomStatus) String() string { return string(s) }

// ParseRoomStatus converts a string to a RoomStatus, rejecting unknown values.
func ParseRoomStatus(s string) (RoomStatus, error) {
	status := RoomStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid room status: %q", s)
	}
	return status, nil
}

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingCheckedIn  BookingStatus = "checked_in"
	BookingCheckedOut BookingStatus = "checked_out"
	BookingCancelled  BookingStatus = "cancelled"
)

// bookingTransitions defines the booking lifecycle state machine. The key is
// the current status, the value the set of statuses reachable from it.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:    {BookingConfirmed, BookingCancelled},
	BookingConfirmed:  {BookingCheckedIn, BookingCancelled},
	BookingCheckedIn:  {BookingCheckedOut, BookingCancelled},
	BookingCheckedOut: {},
	BookingCancelled:  {},
}

func (s BookingStatus) IsValid() bool {
	_, ok := bookingTransitions[s]
	return ok
}

// CanTransitionTo reports whether the lifecycle allows moving from s to target.
// The empty status is the creation entry point: a booking arrives from the
// booking-creation flow already pending or confirmed.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	if s == "" {
		return target == BookingPending || target == BookingConfirmed
	}
	for _, t := range bookingTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are possible.
func (s BookingStatus) IsTerminal() bool {
	allowed, ok := bookingTransitions[s]
	if !ok {
		return true
	}
	return len(allowed) == 0
}

func (s BookingStatus) String() string { return string(s) }

// ParseBookingStatus converts a string to a BookingStatus, rejecting unknown values.
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid booking status: %q", s)
	}
	return status, nil
}

// PaymentStatus is the payment state of a booking.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// paymentTransitions: paid is terminal; a failed payment may be re-attempted,
// which moves the status back to pending (or straight to paid).
var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending: {PaymentPaid, PaymentFailed},
	PaymentPaid:    {},
	PaymentFailed:  {PaymentPending, PaymentPaid},
}

func (s PaymentStatus) IsValid() bool {
	_, ok := paymentTransitions[s]
	return ok
}

func (s PaymentStatus) CanTransitionTo(target PaymentStatus) bool {
	for _, t := range paymentTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

func (s PaymentStatus) String() string { return string(s) }

// ParsePaymentStatus converts a string to a PaymentStatus, rejecting unknown values.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	status := PaymentStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid payment status: %q", s)
	}
	return status, nil
}
