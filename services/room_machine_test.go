package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lodging-backend/models"
)

func TestRoomStatusAllStatesMutuallyReachable(t *testing.T) {
	states := []models.RoomStatus{models.RoomAvailable, models.RoomOccupied, models.RoomMaintenance}
	for _, from := range states {
		for _, to := range states {
			got, err := TransitionRoomStatus(from, to)
			require.NoError(t, err, "%s -> %s", from, to)
			assert.Equal(t, to, got)
		}
	}
}

func TestRoomStatusRejectsUnknownValues(t *testing.T) {
	var unknown *UnknownTransitionError

	_, err := TransitionRoomStatus(models.RoomAvailable, models.RoomStatus("flooded"))
	require.ErrorAs(t, err, &unknown)

	_, err = TransitionRoomStatus(models.RoomStatus(""), models.RoomOccupied)
	require.ErrorAs(t, err, &unknown)
}
