package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBookingStatus(t *testing.T) {
	for _, valid := range []string{"pending", "confirmed", "checked_in", "checked_out", "cancelled"} {
		got, err := ParseBookingStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, got.String())
	}

	for _, bad := range []string{"", "Pending", "checkedout", "done"} {
		_, err := ParseBookingStatus(bad)
		assert.Error(t, err, "%q must be rejected", bad)
	}
}

func TestBookingStatusLifecycle(t *testing.T) {
	// checked_in and checked_out are reachable only via confirmed
	assert.True(t, BookingConfirmed.CanTransitionTo(BookingCheckedIn))
	assert.False(t, BookingPending.CanTransitionTo(BookingCheckedIn))
	assert.True(t, BookingCheckedIn.CanTransitionTo(BookingCheckedOut))
	assert.False(t, BookingConfirmed.CanTransitionTo(BookingCheckedOut))

	// cancelled from pending/confirmed/checked_in, never from checked_out
	assert.True(t, BookingPending.CanTransitionTo(BookingCancelled))
	assert.True(t, BookingConfirmed.CanTransitionTo(BookingCancelled))
	assert.True(t, BookingCheckedIn.CanTransitionTo(BookingCancelled))
	assert.False(t, BookingCheckedOut.CanTransitionTo(BookingCancelled))

	assert.True(t, BookingCheckedOut.IsTerminal())
	assert.True(t, BookingCancelled.IsTerminal())
	assert.False(t, BookingConfirmed.IsTerminal())
}

func TestBookingStatusCreationEntry(t *testing.T) {
	none := BookingStatus("")
	assert.True(t, none.CanTransitionTo(BookingPending))
	assert.True(t, none.CanTransitionTo(BookingConfirmed))
	assert.False(t, none.CanTransitionTo(BookingCheckedIn))
	assert.False(t, none.IsValid())
}

func TestPaymentStatusTransitions(t *testing.T) {
	assert.True(t, PaymentPending.CanTransitionTo(PaymentPaid))
	assert.True(t, PaymentPending.CanTransitionTo(PaymentFailed))
	assert.True(t, PaymentFailed.CanTransitionTo(PaymentPending))
	assert.True(t, PaymentFailed.CanTransitionTo(PaymentPaid))
	assert.False(t, PaymentPaid.CanTransitionTo(PaymentFailed), "paid is terminal")
	assert.False(t, PaymentPaid.CanTransitionTo(PaymentPending))

	_, err := ParsePaymentStatus("refunded")
	assert.Error(t, err)
}

func TestParseRoomStatus(t *testing.T) {
	got, err := ParseRoomStatus("maintenance")
	require.NoError(t, err)
	assert.Equal(t, RoomMaintenance, got)

	_, err = ParseRoomStatus("dirty")
	assert.Error(t, err)
}
