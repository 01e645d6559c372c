// AngelaMos | 2026
// entity.go

package user

import (
	"time"
)

// User is a registered identity. Records are immutable after creation and
// never deleted; there is no profile-editing or account-removal surface.
type User struct {
	ID           string    `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
