package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
)

// bookingEmailContent maps a notification kind to subject and body template.
// The body receives (guest name, reference code, room number).
var bookingEmailContent = map[string]struct {
	Subject string
	Body    string
}{
	"booking-confirmed": {
		Subject: "Your booking is confirmed",
		Body:    "Hi %s,\n\nYour booking %s is confirmed. Room %s is being held for you.\n\nWe look forward to your stay.\n",
	},
	"booking-checked-out": {
		Subject: "Thanks for staying with us",
		Body:    "Hi %s,\n\nYou have been checked out of booking %s (room %s).\n\nSafe travels, and see you next time.\n",
	},
	"booking-cancelled": {
		Subject: "Your booking was cancelled",
		Body:    "Hi %s,\n\nBooking %s (room %s) has been cancelled.\n\nIf this was unexpected, please contact the front desk.\n",
	},
	"payment-received": {
		Subject: "Payment received",
		Body:    "Hi %s,\n\nWe received your payment for booking %s (room %s). Thank you.\n",
	},
	"payment-failed": {
		Subject: "Payment failed",
		Body:    "Hi %s,\n\nThe payment for booking %s (room %s) did not go through and the booking was cancelled.\n\nPlease contact the front desk to rebook.\n",
	},
}

// SendBookingEmail sends one guest-facing lifecycle email. When SMTP env is
// not configured it logs the message instead of failing, so development
// environments behave like a delivered send.
func SendBookingEmail(kind, recipientEmail, guestName, referenceCode, roomNumber string) error {
	content, ok := bookingEmailContent[kind]
	if !ok {
		return fmt.Errorf("no email template for notification kind %q", kind)
	}

	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USERNAME")
	smtpPass := os.Getenv("SMTP_PASSWORD")
	fromName := EnvOrDefault("SMTP_FROM_NAME", "Front Desk")

	if smtpUser == "" || smtpPass == "" || smtpHost == "" || smtpPort == "" {
		log.Printf("[MOCK EMAIL] kind:%s to:%s ref:%s room:%s", kind, recipientEmail, referenceCode, roomNumber)
		return nil
	}

	safe := func(s string) string {
		return strings.ReplaceAll(strings.TrimSpace(s), "\r\n", " ")
	}
	guestName = safe(guestName)
	referenceCode = safe(referenceCode)
	roomNumber = safe(roomNumber)
	if roomNumber == "" {
		roomNumber = "-"
	}

	from := fmt.Sprintf("%s <%s>", fromName, smtpUser)
	to := []string{recipientEmail}
	auth := smtp.PlainAuth("", smtpUser, smtpPass, smtpHost)
	addr := fmt.Sprintf("%s:%s", smtpHost, smtpPort)

	body := fmt.Sprintf(content.Body, guestName, referenceCode, roomNumber)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", recipientEmail))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", content.Subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(body)

	if err := smtp.SendMail(addr, auth, smtpUser, to, []byte(sb.String())); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}
	return nil
}
