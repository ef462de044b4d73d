package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims identifica o apresentador autenticado que controla o simulador
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
