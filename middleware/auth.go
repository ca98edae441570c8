package middleware

import (
	"net/http"
	"strings"

	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

// AccessTokenCookie is the cookie the login endpoint sets.
const AccessTokenCookie = "accessToken"

// AdminContextKey is where the resolved admin is stored in the gin context.
const AdminContextKey = "admin"

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		if strings.HasPrefix(authHeader, "Bearer ") {
			return strings.TrimSpace(authHeader[7:])
		}
		return strings.TrimSpace(authHeader)
	}

	if cookie, err := c.Cookie(AccessTokenCookie); err == nil {
		return cookie
	}
	return ""
}

// VerifyJWT validates the access token from the Authorization header or the
// accessToken cookie and resolves it to a current admin record, which it
// stores in the request context.
func VerifyJWT(tokens *services.TokenService, admins *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			utils.JSONError(c, utils.NewAPIError(http.StatusUnauthorized, "Unauthorized request"))
			c.Abort()
			return
		}

		adminID, err := tokens.ValidateToken(tokenString)
		if err != nil {
			utils.JSONError(c, utils.NewAPIError(http.StatusUnauthorized, "Invalid access token"))
			c.Abort()
			return
		}

		admin, err := admins.GetByID(adminID)
		if err != nil {
			utils.JSONError(c, utils.NewAPIError(http.StatusUnauthorized, "Invalid access token"))
			c.Abort()
			return
		}

		c.Set(AdminContextKey, admin)
		c.Next()
	}
}
