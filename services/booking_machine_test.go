package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lodging-backend/models"
)

func TestBookingMachinePlanSideEffects(t *testing.T) {
	m := NewBookingMachine(true)

	tests := []struct {
		name       string
		old        models.BookingStatus
		target     models.BookingStatus
		wantRoom   *models.RoomStatus
		wantNotify []NotificationKind
	}{
		{
			name:     "creation entry to pending holds the room",
			old:      "",
			target:   models.BookingPending,
			wantRoom: roomStatusPtr(models.RoomOccupied),
		},
		{
			name:       "pending to confirmed occupies and notifies",
			old:        models.BookingPending,
			target:     models.BookingConfirmed,
			wantRoom:   roomStatusPtr(models.RoomOccupied),
			wantNotify: []NotificationKind{NotifyBookingConfirmed},
		},
		{
			name:   "confirmed to checked_in touches nothing",
			old:    models.BookingConfirmed,
			target: models.BookingCheckedIn,
		},
		{
			name:       "checked_in to checked_out frees the room",
			old:        models.BookingCheckedIn,
			target:     models.BookingCheckedOut,
			wantRoom:   roomStatusPtr(models.RoomAvailable),
			wantNotify: []NotificationKind{NotifyBookingCheckedOut},
		},
		{
			name:       "pending to cancelled frees the room",
			old:        models.BookingPending,
			target:     models.BookingCancelled,
			wantRoom:   roomStatusPtr(models.RoomAvailable),
			wantNotify: []NotificationKind{NotifyBookingCancelled},
		},
		{
			name:       "confirmed to cancelled frees the room",
			old:        models.BookingConfirmed,
			target:     models.BookingCancelled,
			wantRoom:   roomStatusPtr(models.RoomAvailable),
			wantNotify: []NotificationKind{NotifyBookingCancelled},
		},
		{
			name:       "checked_in to cancelled frees the room",
			old:        models.BookingCheckedIn,
			target:     models.BookingCancelled,
			wantRoom:   roomStatusPtr(models.RoomAvailable),
			wantNotify: []NotificationKind{NotifyBookingCancelled},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := m.Plan(tt.old, tt.target)
			require.NoError(t, err)
			require.NotNil(t, plan.BookingStatus)
			assert.Equal(t, tt.target, *plan.BookingStatus)
			if tt.wantRoom == nil {
				assert.Nil(t, plan.RoomStatus)
			} else {
				require.NotNil(t, plan.RoomStatus)
				assert.Equal(t, *tt.wantRoom, *plan.RoomStatus)
			}
			assert.Equal(t, tt.wantNotify, plan.Notifications)
		})
	}
}

func TestBookingMachinePendingWithoutHoldPolicy(t *testing.T) {
	m := NewBookingMachine(false)

	plan, err := m.Plan("", models.BookingPending)
	require.NoError(t, err)
	assert.Nil(t, plan.RoomStatus, "pending must not hold the room when the policy is off")

	// confirmation still occupies regardless of the policy
	plan, err = m.Plan(models.BookingPending, models.BookingConfirmed)
	require.NoError(t, err)
	require.NotNil(t, plan.RoomStatus)
	assert.Equal(t, models.RoomOccupied, *plan.RoomStatus)
}

func TestBookingMachineRejectsGuardedTransitions(t *testing.T) {
	m := NewBookingMachine(true)

	invalid := []struct {
		old    models.BookingStatus
		target models.BookingStatus
	}{
		{models.BookingCheckedOut, models.BookingCancelled},
		{models.BookingCheckedOut, models.BookingCheckedIn},
		{models.BookingPending, models.BookingCheckedIn},
		{models.BookingPending, models.BookingCheckedOut},
		{models.BookingCancelled, models.BookingConfirmed},
		{models.BookingConfirmed, models.BookingPending},
	}

	for _, tt := range invalid {
		plan, err := m.Plan(tt.old, tt.target)
		var invalidErr *InvalidTransitionError
		require.ErrorAs(t, err, &invalidErr, "%s -> %s must be rejected", tt.old, tt.target)
		assert.Nil(t, plan.BookingStatus, "a rejected transition returns no partial plan")
	}
}

func TestBookingMachineRejectsUnknownTarget(t *testing.T) {
	m := NewBookingMachine(true)

	_, err := m.Plan(models.BookingPending, models.BookingStatus("hibernating"))
	var unknown *UnknownTransitionError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "status", unknown.Field)
	assert.Equal(t, "hibernating", unknown.Value)
}
