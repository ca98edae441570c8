package services

import (
	"fmt"
	"time"

	"hostel-backend/config"
	"hostel-backend/models"

	"github.com/golang-jwt/jwt/v4"
)

// TokenService signs and validates the access tokens carried by admin
// requests. Tokens are stateless; logout only clears the cookie.
type TokenService struct {
	cfg *config.Config
}

func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{cfg: cfg}
}

// GenerateToken issues a signed token encoding the admin's identity.
func (s *TokenService) GenerateToken(admin *models.Admin) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"admin_id": admin.ID,
		"username": admin.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(s.cfg.TokenExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecretKey))
}

// ValidateToken parses the token, checks signature and expiry, and returns
// the encoded admin ID.
func (s *TokenService) ValidateToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecretKey), nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, fmt.Errorf("invalid token claims")
	}

	id, ok := claims["admin_id"].(float64)
	if !ok || id <= 0 {
		return 0, fmt.Errorf("token carries no admin identity")
	}
	return uint(id), nil
}
