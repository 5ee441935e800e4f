package permission

import (
	"github.com/hireloop/hireloop/internal/shared/authorization"
)

type Resource string

const (
	ResourceJob       Resource = "job"
	ResourceCandidate Resource = "candidate"
	ResourceBilling   Resource = "billing"
	ResourceAnalytics Resource = "analytics"
)

type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	// ActionManage covers plan, seat, cancellation and payment method changes.
	ActionManage Action = "manage"
	ActionExport Action = "export"
)

func (r Resource) String() string { return string(r) }
func (a Action) String() string   { return string(a) }

// Policy is one (role, resource, action) grant.
type Policy struct {
	Role     authorization.UserRole
	Resource Resource
	Action   Action
}

// DefaultPolicies are the recruiter grants. Owners inherit all of them and add billing
// management.
func DefaultPolicies() []Policy {
	recruiter := authorization.RoleRecruiter
	return []Policy{
		{recruiter, ResourceJob, ActionCreate},
		{recruiter, ResourceJob, ActionRead},
		{recruiter, ResourceJob, ActionUpdate},
		{recruiter, ResourceJob, ActionDelete},
		{recruiter, ResourceCandidate, ActionRead},
		{recruiter, ResourceCandidate, ActionDelete},
		{recruiter, ResourceBilling, ActionRead},
		{recruiter, ResourceAnalytics, ActionRead},
		{recruiter, ResourceAnalytics, ActionExport},
		{authorization.RoleOwner, ResourceBilling, ActionManage},
	}
}
