package permission

import (
	"fmt"

	"github.com/hireloop/hireloop/internal/domain/permission"
	"github.com/hireloop/hireloop/internal/shared/authorization"
	"github.com/hireloop/hireloop/internal/shared/logger"
)

// InitRecruitingPermissions seeds the default grants and makes owners inherit the
// recruiter role. Existing rows are left untouched.
func InitRecruitingPermissions(e permission.Enforcer, log logger.Interface) error {
	for _, p := range permission.DefaultPolicies() {
		if err := e.AddPolicy(p.Role.String(), p.Resource, p.Action); err != nil {
			log.Errorw("failed to add recruiting permission policy",
				"error", err,
				"role", p.Role,
				"resource", p.Resource,
				"action", p.Action)
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w", p.Role, p.Resource, p.Action, err)
		}
	}

	if err := e.AddRoleInheritance(authorization.RoleOwner.String(), authorization.RoleRecruiter.String()); err != nil {
		return err
	}

	log.Info("recruiting permissions initialized successfully")
	return nil
}
