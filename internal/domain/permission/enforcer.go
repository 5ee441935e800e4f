package permission

// Enforcer decides whether a subject (a user role) may perform an action on a resource.
type Enforcer interface {
	Enforce(subject string, resource Resource, action Action) (bool, error)
	AddPolicy(role string, resource Resource, action Action) error
	RemovePolicy(role string, resource Resource, action Action) error
	// AddRoleInheritance grants role every permission of parent.
	AddRoleInheritance(role, parent string) error
	GetPermissionsForRole(role string) ([][]string, error)
	LoadPolicy() error
}
