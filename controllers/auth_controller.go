package controllers

import (
	"log"
	"net/http"
	"strings"

	"hostel-backend/config"
	"hostel-backend/middleware"
	"hostel-backend/models"
	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AdminSvc *services.AdminService
	TokenSvc *services.TokenService
	Cfg      *config.Config
}

func NewAuthController(adminSvc *services.AdminService, tokenSvc *services.TokenService, cfg *config.Config) *AuthController {
	return &AuthController{AdminSvc: adminSvc, TokenSvc: tokenSvc, Cfg: cfg}
}

type loginPayload struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// currentAdmin returns the admin resolved by the auth middleware.
func currentAdmin(c *gin.Context) *models.Admin {
	return c.MustGet(middleware.AdminContextKey).(*models.Admin)
}

// ----------------------------------------------------
// Login (POST /api/v1/admin/login)
// ----------------------------------------------------

func (ctrl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, utils.NewAPIError(http.StatusBadRequest, "Invalid request payload"))
		return
	}

	if strings.TrimSpace(payload.Username) == "" && strings.TrimSpace(payload.Email) == "" {
		utils.JSONError(c, utils.NewAPIError(http.StatusBadRequest, "username or email is required"))
		return
	}

	admin, err := ctrl.AdminSvc.Authenticate(payload.Username, payload.Email, payload.Password)
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	token, err := ctrl.TokenSvc.GenerateToken(admin)
	if err != nil {
		log.Printf("❌ token generation failed for admin %d: %v", admin.ID, err)
		utils.JSONError(c, utils.NewAPIError(http.StatusInternalServerError, "Something went wrong while generating the access token"))
		return
	}

	maxAge := int(ctrl.Cfg.TokenExpiry.Seconds())
	c.SetCookie(middleware.AccessTokenCookie, token, maxAge, "/", "", true, true)

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"user":        admin,
		"accessToken": token,
	}, "Admin logged in successfully")
}

// ----------------------------------------------------
// Logout (POST /api/v1/admin/logout)
// ----------------------------------------------------

// Logout clears the cookie; tokens are stateless and stay valid until they
// expire.
func (ctrl *AuthController) Logout(c *gin.Context) {
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", true, true)
	utils.JSONSuccess(c, http.StatusOK, gin.H{}, "Admin logged out")
}
