package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lodging-backend/models"
	"lodging-backend/services"
	"lodging-backend/utils"
)

type RoomTypeController struct {
	RoomTypeSvc *services.RoomTypeService
}

func NewRoomTypeController(svc *services.RoomTypeService) *RoomTypeController {
	return &RoomTypeController{RoomTypeSvc: svc}
}

func (ctrl *RoomTypeController) GetRoomTypes(c *gin.Context) {
	types, err := ctrl.RoomTypeSvc.GetAll()
	if err != nil {
		log.Printf("GetRoomTypes error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.fetchRoomTypes", "could not list room types")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, types)
}

func (ctrl *RoomTypeController) CreateRoomType(c *gin.Context) {
	var rt models.RoomType
	if err := c.ShouldBindJSON(&rt); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}
	created, err := ctrl.RoomTypeSvc.Create(rt)
	if err != nil {
		log.Printf("CreateRoomType error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.createRoomType", "failed to create room type")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

func (ctrl *RoomTypeController) DeleteRoomType(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidRoomTypeId", "room type id must be a positive number")
		return
	}
	if err := ctrl.RoomTypeSvc.Delete(uint(id)); err != nil {
		log.Printf("DeleteRoomType error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.deleteRoomType", "failed to delete room type")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": id})
}
