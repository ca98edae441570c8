package controllers

import (
	"net/http"
	"strconv"

	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	AdminSvc  *services.AdminService
	ExportSvc *services.ExportService
}

func NewAdminController(adminSvc *services.AdminService, exportSvc *services.ExportService) *AdminController {
	return &AdminController{AdminSvc: adminSvc, ExportSvc: exportSvc}
}

type registerAdminPayload struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type changePasswordPayload struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type updateAccountPayload struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// ----------------------------------------------------
// Register (POST /api/v1/admin/register)
// ----------------------------------------------------

func (ctrl *AdminController) Register(c *gin.Context) {
	var payload registerAdminPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, utils.NewAPIError(http.StatusBadRequest, "Invalid request payload"))
		return
	}

	admin, err := ctrl.AdminSvc.Register(payload.FullName, payload.Email, payload.Username, payload.Password)
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, admin, "Admin registered successfully")
}

// ----------------------------------------------------
// Change password (POST /api/v1/admin/change-password)
// ----------------------------------------------------

func (ctrl *AdminController) ChangePassword(c *gin.Context) {
	var payload changePasswordPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, utils.NewAPIError(http.StatusBadRequest, "Invalid request payload"))
		return
	}

	admin := currentAdmin(c)
	if err := ctrl.AdminSvc.ChangePassword(admin, payload.OldPassword, payload.NewPassword); err != nil {
		utils.JSONError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{}, "Password changed successfully")
}

// ----------------------------------------------------
// Update account (PATCH /api/v1/admin/update-account)
// ----------------------------------------------------

func (ctrl *AdminController) UpdateAccount(c *gin.Context) {
	var payload updateAccountPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, utils.NewAPIError(http.StatusBadRequest, "Invalid request payload"))
		return
	}

	admin := currentAdmin(c)
	updated, err := ctrl.AdminSvc.UpdateAccount(admin.ID, payload.FullName, payload.Email)
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, updated, "Account details updated successfully")
}

// ----------------------------------------------------
// Delete (DELETE /api/v1/admin/:adminId)
// ----------------------------------------------------

func (ctrl *AdminController) Delete(c *gin.Context) {
	adminID, err := strconv.ParseUint(c.Param("adminId"), 10, 64)
	if err != nil {
		utils.JSONError(c, utils.NewAPIError(http.StatusBadRequest, "Invalid adminId"))
		return
	}

	if err := ctrl.AdminSvc.Delete(uint(adminID)); err != nil {
		utils.JSONError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{}, "Admin deleted successfully")
}

// ----------------------------------------------------
// Excel export (GET /api/v1/admin/excel-download)
// ----------------------------------------------------

func (ctrl *AdminController) DownloadExcel(c *gin.Context) {
	buf, err := ctrl.ExportSvc.HostelersWorkbook()
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+services.ExportFileName)
	c.Data(http.StatusOK, services.ExcelMIMEType, buf.Bytes())
}
