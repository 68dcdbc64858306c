package services

import (
	"lodging-backend/models"
)

// PaymentMachine validates payment transitions. A payment transition may
// cascade a booking-status transition through the booking machine, never the
// reverse; both machines are composed through the one orchestrator so the
// room is read and written at most once per call.
type PaymentMachine struct {
	Booking *BookingMachine
}

func NewPaymentMachine(booking *BookingMachine) *PaymentMachine {
	return &PaymentMachine{Booking: booking}
}

// Plan validates old -> target and returns the full merged write-set,
// including any cascaded booking-status change.
func (m *PaymentMachine) Plan(bookingStatus models.BookingStatus, old, target models.PaymentStatus) (TransitionPlan, error) {
	if !target.IsValid() {
		return TransitionPlan{}, &UnknownTransitionError{Field: "payment status", Value: string(target)}
	}
	if !old.IsValid() {
		return TransitionPlan{}, &UnknownTransitionError{Field: "payment status", Value: string(old)}
	}
	if !old.CanTransitionTo(target) {
		return TransitionPlan{}, &InvalidTransitionError{Field: "payment status", From: string(old), To: string(target)}
	}

	plan := TransitionPlan{PaymentStatus: &target}
	switch target {
	case models.PaymentPending:
		// Re-opened payment attempt, no cascading effect.
	case models.PaymentPaid:
		if bookingStatus == models.BookingPending {
			cascade, err := m.Booking.Plan(bookingStatus, models.BookingConfirmed)
			if err != nil {
				return TransitionPlan{}, err
			}
			plan.merge(cascade)
		}
		// An active paid booking holds its room regardless of the
		// pending-hold policy. A payment settling late against a cancelled
		// or checked-out booking must not re-occupy a room no booking is on.
		switch bookingStatus {
		case models.BookingPending, models.BookingConfirmed, models.BookingCheckedIn:
			plan.RoomStatus = roomStatusPtr(models.RoomOccupied)
		}
		plan.Notifications = append(plan.Notifications, NotifyPaymentReceived)
	case models.PaymentFailed:
		// The cascade frees the room via the booking machine's cancellation
		// row. An already-cancelled booking is at the target state, so only
		// the payment status is recorded; a checked-out booking cannot be
		// cancelled, so the whole transition is rejected there.
		if bookingStatus != models.BookingCancelled {
			cascade, err := m.Booking.Plan(bookingStatus, models.BookingCancelled)
			if err != nil {
				return TransitionPlan{}, err
			}
			plan.merge(cascade)
		}
		plan.Notifications = append(plan.Notifications, NotifyPaymentFailed)
	}
	return plan, nil
}
