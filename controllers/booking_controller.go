// controllers/booking_controller.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	mysql "github.com/go-sql-driver/mysql"

	"lodging-backend/models"
	"lodging-backend/services"
	"lodging-backend/utils"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type CreateBookingRequest struct {
	GuestID    uint                     `json:"guest_id" binding:"required"`
	RoomID     uint                     `json:"room_id" binding:"required"`
	CheckIn    string                   `json:"check_in" binding:"required"`
	CheckOut   string                   `json:"check_out" binding:"required"`
	Adults     int                      `json:"adults"`
	Children   int                      `json:"children"`
	TotalPrice float64                  `json:"total_price"`
	GuestList  []map[string]interface{} `json:"guest_list,omitempty"`

	// "pending" (default) or "confirmed"
	Status string `json:"status,omitempty"`
}

type StatusChangeRequest struct {
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status" binding:"required"`
}

// ---------------------------
// Controller
// ---------------------------

type BookingController struct {
	BookingSvc  *services.BookingService
	Transitions *services.TransitionService
}

func NewBookingController(svc *services.BookingService, transitions *services.TransitionService) *BookingController {
	return &BookingController{BookingSvc: svc, Transitions: transitions}
}

func bookingIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidBookingId", "booking id must be a positive number")
		return 0, false
	}
	return uint(id), true
}

// respondTransitionError maps the transition error taxonomy to HTTP statuses.
func respondTransitionError(c *gin.Context, err error) {
	var unknown *services.UnknownTransitionError
	var invalid *services.InvalidTransitionError
	var persistence *services.PersistenceError

	switch {
	case errors.As(err, &unknown):
		utils.JSONError(c, http.StatusBadRequest, "error.unknownTransition", unknown.Error())
	case errors.As(err, &invalid):
		utils.JSONError(c, http.StatusConflict, "error.invalidTransition", invalid.Error())
	case errors.Is(err, services.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, "error.bookingNotFound", "booking not found")
	case errors.Is(err, services.ErrRoomNotFound):
		utils.JSONError(c, http.StatusNotFound, "error.roomNotFound", "room not found")
	case errors.As(err, &persistence):
		log.Printf("transition persistence failure: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.persistence", "could not commit the transition")
	default:
		log.Printf("transition error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "internal error")
	}
}

// ---------------------------
// CRUD-lite
// ---------------------------

func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var payload CreateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}

	initial := models.BookingPending
	if payload.Status != "" {
		parsed, err := models.ParseBookingStatus(payload.Status)
		if err != nil || (parsed != models.BookingPending && parsed != models.BookingConfirmed) {
			utils.JSONError(c, http.StatusBadRequest, "error.invalidStatus", "status must be pending or confirmed")
			return
		}
		initial = parsed
	}

	booking, err := ctrl.BookingSvc.CreateBooking(services.CreateBookingParams{
		GuestID:       payload.GuestID,
		RoomID:        payload.RoomID,
		CheckIn:       payload.CheckIn,
		CheckOut:      payload.CheckOut,
		Adults:        payload.Adults,
		Children:      payload.Children,
		TotalPrice:    payload.TotalPrice,
		GuestList:     payload.GuestList,
		InitialStatus: initial,
	})
	if err != nil {
		log.Printf("CreateBooking error: %v", err)
		switch {
		case errors.Is(err, services.ErrGuestNotFound):
			utils.JSONError(c, http.StatusBadRequest, "error.guestNotFound", "guest_id not found")
		case errors.Is(err, services.ErrRoomNotFound):
			utils.JSONError(c, http.StatusBadRequest, "error.roomNotFound", "room_id not found")
		case strings.Contains(err.Error(), "validation"):
			utils.JSONError(c, http.StatusBadRequest, "error.validation", err.Error())
		case isForeignKeyError(err):
			utils.JSONError(c, http.StatusBadRequest, "error.foreignKey", err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "error.createBooking", "failed to create booking")
		}
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, booking)
}

func (ctrl *BookingController) GetBookings(c *gin.Context) {
	bookings, err := ctrl.BookingSvc.GetAllWithRelations()
	if err != nil {
		log.Printf("GetBookings error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.fetchBookings", "could not list bookings")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

func (ctrl *BookingController) GetBookingDetails(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	booking, err := ctrl.BookingSvc.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.JSONError(c, http.StatusNotFound, "error.bookingNotFound", "booking not found")
			return
		}
		log.Printf("GetBookingDetails error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.fetchBooking", "could not load booking")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// ---------------------------
// Transitions
// ---------------------------

// UpdateStatus handles PATCH /bookings/:id/status.
func (ctrl *BookingController) UpdateStatus(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	var payload StatusChangeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}

	result, err := ctrl.Transitions.Handle(c.Request.Context(), services.TransitionEvent{
		Entity:   services.EntityBooking,
		ID:       id,
		Field:    services.FieldStatus,
		OldValue: payload.OldStatus,
		NewValue: payload.NewStatus,
	})
	if err != nil {
		respondTransitionError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"booking": result.Booking, "room": result.Room})
}

// UpdatePaymentStatus handles PATCH /bookings/:id/payment-status.
func (ctrl *BookingController) UpdatePaymentStatus(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	var payload StatusChangeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}

	result, err := ctrl.Transitions.Handle(c.Request.Context(), services.TransitionEvent{
		Entity:   services.EntityBooking,
		ID:       id,
		Field:    services.FieldPaymentStatus,
		OldValue: payload.OldStatus,
		NewValue: payload.NewStatus,
	})
	if err != nil {
		respondTransitionError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"booking": result.Booking, "room": result.Room})
}

// CheckinBooking is a front-desk shortcut for confirmed -> checked_in.
func (ctrl *BookingController) CheckinBooking(c *gin.Context) {
	ctrl.shortcutStatus(c, models.BookingConfirmed, models.BookingCheckedIn)
}

// CheckoutBooking is a front-desk shortcut for checked_in -> checked_out.
func (ctrl *BookingController) CheckoutBooking(c *gin.Context) {
	ctrl.shortcutStatus(c, models.BookingCheckedIn, models.BookingCheckedOut)
}

func (ctrl *BookingController) shortcutStatus(c *gin.Context, from, to models.BookingStatus) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	result, err := ctrl.Transitions.Handle(c.Request.Context(), services.TransitionEvent{
		Entity:   services.EntityBooking,
		ID:       id,
		Field:    services.FieldStatus,
		OldValue: string(from),
		NewValue: string(to),
	})
	if err != nil {
		respondTransitionError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"booking": result.Booking, "room": result.Room})
}

// ---------------------------
// Helper: detect MySQL FK error
// ---------------------------

func isForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		return merr.Number == 1452
	}
	lower := strings.ToLower(err.Error())
	return strings.Contains(lower, "foreign key") || strings.Contains(lower, "1452")
}
