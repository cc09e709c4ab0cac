package types

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/solucioning/fleetforms/models"
)

type Claims struct {
	UserID   uint            `json:"user_id"`
	Username string          `json:"username"`
	Role     models.UserRole `json:"role"`
	jwt.RegisteredClaims
}
