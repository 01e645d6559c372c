// AngelaMos | 2026
// dto.go

package user

import (
	"time"
)

// Response is the externally visible identity record: everything except
// the password hash. Comment listings embed it when expanding authors.
type Response struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToResponse(u *User) Response {
	return Response{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
