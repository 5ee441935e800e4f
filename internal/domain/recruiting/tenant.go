package recruiting

import (
	"strings"
	"time"
)

const maxSlugLength = 20

// Tenant is an isolated customer organization.
type Tenant struct {
	ID          uint
	Slug        string
	DisplayName string
	CreatedAt   time.Time
}

// BaseTenantSlug derives the slug candidate from a company name: lowercased, spaces
// replaced by hyphens, dots dropped, at most 20 characters.
func BaseTenantSlug(companyName string) string {
	s := strings.ToLower(strings.TrimSpace(companyName))
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, ".", "")
	if len(s) > maxSlugLength {
		s = s[:maxSlugLength]
	}
	return strings.Trim(s, "-")
}
