package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lodging-backend/models"
)

func newPaymentMachine() *PaymentMachine {
	return NewPaymentMachine(NewBookingMachine(true))
}

func TestPaymentPaidCascadesConfirmation(t *testing.T) {
	m := newPaymentMachine()

	plan, err := m.Plan(models.BookingPending, models.PaymentPending, models.PaymentPaid)
	require.NoError(t, err)

	require.NotNil(t, plan.PaymentStatus)
	assert.Equal(t, models.PaymentPaid, *plan.PaymentStatus)
	require.NotNil(t, plan.BookingStatus, "a paid pending booking auto-confirms")
	assert.Equal(t, models.BookingConfirmed, *plan.BookingStatus)
	require.NotNil(t, plan.RoomStatus)
	assert.Equal(t, models.RoomOccupied, *plan.RoomStatus)
	assert.Equal(t, []NotificationKind{NotifyBookingConfirmed, NotifyPaymentReceived}, plan.Notifications)
}

func TestPaymentPaidOnConfirmedBookingDoesNotCascade(t *testing.T) {
	m := newPaymentMachine()

	plan, err := m.Plan(models.BookingConfirmed, models.PaymentPending, models.PaymentPaid)
	require.NoError(t, err)

	assert.Nil(t, plan.BookingStatus, "status already confirmed, nothing to cascade")
	require.NotNil(t, plan.RoomStatus, "paid always ensures the room is held")
	assert.Equal(t, models.RoomOccupied, *plan.RoomStatus)
	assert.Equal(t, []NotificationKind{NotifyPaymentReceived}, plan.Notifications)
}

func TestPaymentFailedCascadesCancellation(t *testing.T) {
	m := newPaymentMachine()

	for _, status := range []models.BookingStatus{models.BookingPending, models.BookingConfirmed, models.BookingCheckedIn} {
		plan, err := m.Plan(status, models.PaymentPending, models.PaymentFailed)
		require.NoError(t, err, "from booking status %s", status)

		require.NotNil(t, plan.BookingStatus)
		assert.Equal(t, models.BookingCancelled, *plan.BookingStatus)
		require.NotNil(t, plan.RoomStatus)
		assert.Equal(t, models.RoomAvailable, *plan.RoomStatus, "the cancellation cascade frees the room")
		assert.Equal(t, []NotificationKind{NotifyBookingCancelled, NotifyPaymentFailed}, plan.Notifications)
	}
}

func TestPaymentFailedOnCancelledBookingRecordsFailure(t *testing.T) {
	m := newPaymentMachine()

	// cancel first, then the still-pending payment fails: the booking is
	// already at the cascade target, so only the payment status changes
	plan, err := m.Plan(models.BookingCancelled, models.PaymentPending, models.PaymentFailed)
	require.NoError(t, err)

	require.NotNil(t, plan.PaymentStatus)
	assert.Equal(t, models.PaymentFailed, *plan.PaymentStatus)
	assert.Nil(t, plan.BookingStatus, "no cascade onto an already-cancelled booking")
	assert.Nil(t, plan.RoomStatus, "the room was already released by the cancellation")
	assert.Equal(t, []NotificationKind{NotifyPaymentFailed}, plan.Notifications)
}

func TestPaymentPaidOnInactiveBookingLeavesRoomUntouched(t *testing.T) {
	m := newPaymentMachine()

	// a payment settling late must not re-occupy a room with no active
	// booking on it
	for _, status := range []models.BookingStatus{models.BookingCancelled, models.BookingCheckedOut} {
		plan, err := m.Plan(status, models.PaymentPending, models.PaymentPaid)
		require.NoError(t, err, "from booking status %s", status)

		require.NotNil(t, plan.PaymentStatus)
		assert.Equal(t, models.PaymentPaid, *plan.PaymentStatus)
		assert.Nil(t, plan.BookingStatus)
		assert.Nil(t, plan.RoomStatus, "room must stay as-is for booking status %s", status)
		assert.Equal(t, []NotificationKind{NotifyPaymentReceived}, plan.Notifications)
	}
}

func TestPaymentFailedOnCheckedOutBookingRejected(t *testing.T) {
	m := newPaymentMachine()

	_, err := m.Plan(models.BookingCheckedOut, models.PaymentPending, models.PaymentFailed)
	var invalid *InvalidTransitionError
	require.ErrorAs(t, err, &invalid, "cancelled is never reachable from checked_out")
}

func TestPaymentReattemptHasNoCascade(t *testing.T) {
	m := newPaymentMachine()

	plan, err := m.Plan(models.BookingPending, models.PaymentFailed, models.PaymentPending)
	require.NoError(t, err)
	assert.Nil(t, plan.BookingStatus)
	assert.Nil(t, plan.RoomStatus)
	assert.Empty(t, plan.Notifications)
}

func TestPaymentMachineRejectsUnknownValues(t *testing.T) {
	m := newPaymentMachine()

	var unknown *UnknownTransitionError

	_, err := m.Plan(models.BookingPending, models.PaymentPending, models.PaymentStatus("refunded"))
	require.ErrorAs(t, err, &unknown)

	_, err = m.Plan(models.BookingPending, models.PaymentStatus("???"), models.PaymentPaid)
	require.ErrorAs(t, err, &unknown)
}

func TestPaymentPaidIsTerminal(t *testing.T) {
	m := newPaymentMachine()

	_, err := m.Plan(models.BookingConfirmed, models.PaymentPaid, models.PaymentFailed)
	var invalid *InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
}
