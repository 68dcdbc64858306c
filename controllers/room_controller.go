package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lodging-backend/models"
	"lodging-backend/services"
	"lodging-backend/utils"
)

type RoomController struct {
	RoomSvc     *services.RoomService
	Transitions *services.TransitionService
}

func NewRoomController(svc *services.RoomService, transitions *services.TransitionService) *RoomController {
	return &RoomController{RoomSvc: svc, Transitions: transitions}
}

func roomIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidRoomId", "room id must be a positive number")
		return 0, false
	}
	return uint(id), true
}

func (ctrl *RoomController) GetRooms(c *gin.Context) {
	rooms, err := ctrl.RoomSvc.GetAll()
	if err != nil {
		log.Printf("GetRooms error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.fetchRooms", "could not list rooms")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func (ctrl *RoomController) GetRoom(c *gin.Context) {
	id, ok := roomIDParam(c)
	if !ok {
		return
	}
	room, err := ctrl.RoomSvc.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.JSONError(c, http.StatusNotFound, "error.roomNotFound", "room not found")
			return
		}
		log.Printf("GetRoom error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.fetchRoom", "could not load room")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}
	created, err := ctrl.RoomSvc.Create(room)
	if err != nil {
		log.Printf("CreateRoom error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.createRoom", "failed to create room")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

// UpdateRoom writes descriptive fields; status changes must go through
// UpdateRoomStatus.
func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := roomIDParam(c)
	if !ok {
		return
	}
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}
	room.ID = id
	if err := ctrl.RoomSvc.Update(room); err != nil {
		log.Printf("UpdateRoom error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.updateRoom", "failed to update room")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": id})
}

// UpdateRoomStatus handles PATCH /rooms/:id/status, e.g. taking a room into
// maintenance. It routes through the orchestrator like every status write.
func (ctrl *RoomController) UpdateRoomStatus(c *gin.Context) {
	id, ok := roomIDParam(c)
	if !ok {
		return
	}
	var payload StatusChangeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}

	result, err := ctrl.Transitions.Handle(c.Request.Context(), services.TransitionEvent{
		Entity:   services.EntityRoom,
		ID:       id,
		Field:    services.FieldStatus,
		OldValue: payload.OldStatus,
		NewValue: payload.NewStatus,
	})
	if err != nil {
		respondTransitionError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, result.Room)
}

func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := roomIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.RoomSvc.Delete(id); err != nil {
		log.Printf("DeleteRoom error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.deleteRoom", "failed to delete room")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": id})
}
