package recruiting

import "context"

type TenantRepository interface {
	Create(ctx context.Context, tenant *Tenant) error
	GetByID(ctx context.Context, id uint) (*Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*Tenant, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id uint) (*User, error)
	GetOwner(ctx context.Context, tenantID uint) (*User, error)
	CountByTenant(ctx context.Context, tenantID uint) (int64, error)
}

type JobRepository interface {
	Create(ctx context.Context, job *JobDescription) error
	Update(ctx context.Context, job *JobDescription) error
	Delete(ctx context.Context, tenantID uint, code string) error
	GetByCode(ctx context.Context, tenantID uint, code string) (*JobDescription, error)
	GetBySlug(ctx context.Context, slug string) (*JobDescription, error)
	ListByTenant(ctx context.Context, tenantID uint) ([]*JobDescription, error)
	CountActiveByTenant(ctx context.Context, tenantID uint) (int64, error)
	CodeExists(ctx context.Context, code string) (bool, error)
}

type CandidateFilter struct {
	TenantID uint
	JDCode   string
	Offset   int
	Limit    int
}

type CandidateRepository interface {
	Create(ctx context.Context, candidate *Candidate) error
	Update(ctx context.Context, candidate *Candidate) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*Candidate, error)
	List(ctx context.Context, filter CandidateFilter) ([]*Candidate, int64, error)
	ListByJobCodes(ctx context.Context, codes []string) ([]*Candidate, error)
}
