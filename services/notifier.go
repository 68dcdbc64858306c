package services

import (
	"log"

	"lodging-backend/models"
	"lodging-backend/utils"
)

// NotificationKind identifies a guest-facing message.
type NotificationKind string

const (
	NotifyBookingConfirmed  NotificationKind = "booking-confirmed"
	NotifyBookingCheckedOut NotificationKind = "booking-checked-out"
	NotifyBookingCancelled  NotificationKind = "booking-cancelled"
	NotifyPaymentReceived   NotificationKind = "payment-received"
	NotifyPaymentFailed     NotificationKind = "payment-failed"
)

// Notifier delivers guest-facing messages. Delivery is best-effort: a failed
// or panicking Send never affects committed state.
type Notifier interface {
	Send(kind NotificationKind, booking models.Booking) error
}

// ConsoleNotifier logs notifications to stdout. Used in development and as a
// fallback when SMTP is not configured.
type ConsoleNotifier struct{}

func NewConsoleNotifier() *ConsoleNotifier {
	return &ConsoleNotifier{}
}

func (c *ConsoleNotifier) Send(kind NotificationKind, booking models.Booking) error {
	log.Printf("[notify] %s :: booking=%d ref=%s guest=%s", kind, booking.ID, booking.ReferenceCode, booking.Guest.Email)
	return nil
}

// EmailNotifier sends guest emails over SMTP. The guest relation must be
// preloaded on the booking; without an email address the send is skipped.
type EmailNotifier struct{}

func NewEmailNotifier() *EmailNotifier {
	return &EmailNotifier{}
}

func (n *EmailNotifier) Send(kind NotificationKind, booking models.Booking) error {
	if booking.Guest.Email == "" {
		log.Printf("EmailNotifier: booking %d has no guest email, skipping %s", booking.ID, kind)
		return nil
	}
	return utils.SendBookingEmail(
		string(kind),
		booking.Guest.Email,
		booking.Guest.FullName,
		booking.ReferenceCode,
		booking.Room.RoomNumber,
	)
}
