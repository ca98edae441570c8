package controllers

import (
	"net/http"
	"strconv"

	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(roomSvc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: roomSvc}
}

type registerRoomPayload struct {
	RoomNumber int     `json:"roomNumber"`
	Price      float64 `json:"price"`
	Capacity   int     `json:"capacity"`
}

func parseRoomID(c *gin.Context) (uint, bool) {
	roomID, err := strconv.ParseUint(c.Param("roomId"), 10, 64)
	if err != nil {
		utils.JSONError(c, utils.NewAPIError(http.StatusBadRequest, "Invalid roomId"))
		return 0, false
	}
	return uint(roomID), true
}

// ----------------------------------------------------
// Register (POST /api/v1/room/registerroom)
// ----------------------------------------------------

func (ctrl *RoomController) Register(c *gin.Context) {
	var payload registerRoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, utils.NewAPIError(http.StatusBadRequest, "Invalid request payload"))
		return
	}

	admin := currentAdmin(c)
	room, err := ctrl.RoomSvc.Register(payload.RoomNumber, payload.Price, payload.Capacity, admin.ID)
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, room, "Room registered successfully")
}

// ----------------------------------------------------
// Update (PATCH /api/v1/room/:roomId)
// ----------------------------------------------------

func (ctrl *RoomController) Update(c *gin.Context) {
	roomID, ok := parseRoomID(c)
	if !ok {
		return
	}

	var upd services.RoomUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.JSONError(c, utils.NewAPIError(http.StatusBadRequest, "Invalid request payload"))
		return
	}

	room, err := ctrl.RoomSvc.Update(roomID, upd)
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, room, "Room details updated successfully")
}

// ----------------------------------------------------
// Delete (DELETE /api/v1/room/:roomId)
// ----------------------------------------------------

func (ctrl *RoomController) Delete(c *gin.Context) {
	roomID, ok := parseRoomID(c)
	if !ok {
		return
	}

	if err := ctrl.RoomSvc.Delete(roomID); err != nil {
		utils.JSONError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{}, "Room deleted successfully")
}

// ----------------------------------------------------
// Available rooms (GET /api/v1/room/available-rooms)
// ----------------------------------------------------

func (ctrl *RoomController) Available(c *gin.Context) {
	rooms, err := ctrl.RoomSvc.Available()
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, rooms, "Successfully retrieved available rooms")
}

// ----------------------------------------------------
// Room availability (GET /api/v1/room/room-availability/:roomId)
// ----------------------------------------------------

func (ctrl *RoomController) CheckAvailability(c *gin.Context) {
	roomID, ok := parseRoomID(c)
	if !ok {
		return
	}

	room, err := ctrl.RoomSvc.CheckAvailability(roomID)
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, room, "Room is available for booking")
}
