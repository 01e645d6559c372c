// AngelaMos | 2026
// dto.go

package auth

import (
	"time"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=128"`
}

// TokenResponse matches the original wire contract: a bare token field,
// sent back verbatim in the Authorization header on later requests.
type TokenResponse struct {
	Token string `json:"token"`
}

type MeResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
