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

type GuestController struct {
	GuestSvc *services.GuestService
}

func NewGuestController(svc *services.GuestService) *GuestController {
	return &GuestController{GuestSvc: svc}
}

func (ctrl *GuestController) GetGuests(c *gin.Context) {
	guests, err := ctrl.GuestSvc.GetAll()
	if err != nil {
		log.Printf("GetGuests error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.fetchGuests", "could not list guests")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guests)
}

func (ctrl *GuestController) GetGuestByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidGuestId", "guest id must be a positive number")
		return
	}
	guest, err := ctrl.GuestSvc.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrGuestNotFound) {
			utils.JSONError(c, http.StatusNotFound, "error.guestNotFound", "guest not found")
			return
		}
		log.Printf("GetGuestByID error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.fetchGuest", "could not load guest")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guest)
}

func (ctrl *GuestController) CreateGuest(c *gin.Context) {
	var guest models.Guest
	if err := c.ShouldBindJSON(&guest); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}
	created, err := ctrl.GuestSvc.Create(guest)
	if err != nil {
		log.Printf("CreateGuest error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.createGuest", "failed to create guest")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

func (ctrl *GuestController) UpdateGuest(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidGuestId", "guest id must be a positive number")
		return
	}
	var guest models.Guest
	if err := c.ShouldBindJSON(&guest); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}
	guest.ID = uint(id)
	if err := ctrl.GuestSvc.Update(guest); err != nil {
		log.Printf("UpdateGuest error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.updateGuest", "failed to update guest")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": id})
}

func (ctrl *GuestController) DeleteGuest(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidGuestId", "guest id must be a positive number")
		return
	}
	if err := ctrl.GuestSvc.Delete(uint(id)); err != nil {
		log.Printf("DeleteGuest error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.deleteGuest", "failed to delete guest")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": id})
}
