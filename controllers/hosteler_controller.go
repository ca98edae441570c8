package controllers

import (
	"net/http"
	"strconv"

	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

type HostelerController struct {
	HostelerSvc *services.HostelerService
}

func NewHostelerController(hostelerSvc *services.HostelerService) *HostelerController {
	return &HostelerController{HostelerSvc: hostelerSvc}
}

type registerHostelerPayload struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	// RoomAllocated is the room number, not a room ID.
	RoomAllocated int `json:"roomAllocated"`
}

type updateHostelerPayload struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
}

type paidPayload struct {
	PaymentType string `json:"paymentType"`
}

func parseHostelerID(c *gin.Context) (uint, bool) {
	hostelerID, err := strconv.ParseUint(c.Param("hostelerId"), 10, 64)
	if err != nil {
		utils.JSONError(c, utils.NewAPIError(http.StatusBadRequest, "Invalid hostelerId"))
		return 0, false
	}
	return uint(hostelerID), true
}

// ----------------------------------------------------
// Register (POST /api/v1/hosteler/register)
// ----------------------------------------------------

func (ctrl *HostelerController) Register(c *gin.Context) {
	var payload registerHostelerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, utils.NewAPIError(http.StatusBadRequest, "Invalid request payload"))
		return
	}

	hosteler, err := ctrl.HostelerSvc.Register(payload.Name, payload.PhoneNumber, payload.RoomAllocated)
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, hosteler, "Hosteler registered successfully")
}

// ----------------------------------------------------
// Update details (PATCH /api/v1/hosteler/updateDetails/:hostelerId)
// ----------------------------------------------------

func (ctrl *HostelerController) Update(c *gin.Context) {
	hostelerID, ok := parseHostelerID(c)
	if !ok {
		return
	}

	var payload updateHostelerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, utils.NewAPIError(http.StatusBadRequest, "Invalid request payload"))
		return
	}

	hosteler, err := ctrl.HostelerSvc.Update(hostelerID, payload.Name, payload.PhoneNumber)
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, hosteler, "Updated details successfully")
}

// ----------------------------------------------------
// Delete (DELETE /api/v1/hosteler/:hostelerId)
// ----------------------------------------------------

func (ctrl *HostelerController) Delete(c *gin.Context) {
	hostelerID, ok := parseHostelerID(c)
	if !ok {
		return
	}

	if err := ctrl.HostelerSvc.Delete(hostelerID); err != nil {
		utils.JSONError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{}, "Hosteler deleted successfully")
}

// ----------------------------------------------------
// Detail (GET /api/v1/hosteler/:hostelerId)
// ----------------------------------------------------

func (ctrl *HostelerController) Details(c *gin.Context) {
	hostelerID, ok := parseHostelerID(c)
	if !ok {
		return
	}

	details, err := ctrl.HostelerSvc.Details(hostelerID)
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, details, "Hosteler details retrieved successfully")
}

// ----------------------------------------------------
// All hostelers (GET /api/v1/hosteler/all)
// ----------------------------------------------------

func (ctrl *HostelerController) All(c *gin.Context) {
	details, err := ctrl.HostelerSvc.AllDetails()
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, details, "All hosteler details retrieved successfully")
}

// ----------------------------------------------------
// Mark paid (PATCH /api/v1/hosteler/paid/:hostelerId)
// ----------------------------------------------------

func (ctrl *HostelerController) MarkPaid(c *gin.Context) {
	hostelerID, ok := parseHostelerID(c)
	if !ok {
		return
	}

	var payload paidPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, utils.NewAPIError(http.StatusBadRequest, "Invalid request payload"))
		return
	}

	details, err := ctrl.HostelerSvc.MarkPaid(hostelerID, payload.PaymentType)
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, details, "Hosteler paid the amount")
}

// ----------------------------------------------------
// Paid hostelers (GET /api/v1/hosteler/paid-hostelers/details)
// ----------------------------------------------------

func (ctrl *HostelerController) Paid(c *gin.Context) {
	hostelers, err := ctrl.HostelerSvc.Paid()
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, hostelers, "All paid hostelers details")
}

// ----------------------------------------------------
// Unpaid hostelers (GET /api/v1/hosteler/unpaid-hostelers/details)
// ----------------------------------------------------

func (ctrl *HostelerController) Unpaid(c *gin.Context) {
	details, err := ctrl.HostelerSvc.Unpaid()
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, details, "Details of unpaid hostelers")
}
