package services

import (
	"lodging-backend/models"
)

// TransitionRoomStatus validates a requested room-status change and returns
// the status to write. All three states are currently mutually reachable;
// this is the single point where future guards (e.g. refusing
// available -> occupied without an active booking) get added without touching
// callers. Logging and persistence stay with the caller.
func TransitionRoomStatus(current, requested models.RoomStatus) (models.RoomStatus, error) {
	if !requested.IsValid() {
		return "", &UnknownTransitionError{Field: "room status", Value: string(requested)}
	}
	if !current.IsValid() {
		return "", &UnknownTransitionError{Field: "room status", Value: string(current)}
	}
	switch requested {
	case models.RoomAvailable, models.RoomOccupied, models.RoomMaintenance:
		return requested, nil
	}
	return "", &InvalidTransitionError{Field: "room status", From: string(current), To: string(requested)}
}
