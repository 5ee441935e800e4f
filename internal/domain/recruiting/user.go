package recruiting

import (
	"time"

	"github.com/hireloop/hireloop/internal/shared/authorization"
)

// User is a recruiter account. Email is the login name.
type User struct {
	ID           uint
	TenantID     uint
	Email        string
	FullName     string
	PasswordHash string
	Role         authorization.UserRole
	CreatedAt    time.Time
}

func (u *User) IsOwner() bool {
	return u.Role == authorization.RoleOwner
}
