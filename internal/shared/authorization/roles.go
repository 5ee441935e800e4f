package authorization

// UserRole is a recruiter's role inside their tenant.
type UserRole string

const (
	// RoleOwner created the tenant and manages billing.
	RoleOwner     UserRole = "owner"
	RoleRecruiter UserRole = "recruiter"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsValid() bool {
	return r == RoleOwner || r == RoleRecruiter
}

func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleRecruiter
}
