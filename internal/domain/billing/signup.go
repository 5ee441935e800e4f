package billing

import (
	"strings"
	"time"
)

// PendingSignupTTL bounds how long a signup waits for payment confirmation.
const PendingSignupTTL = 24 * time.Hour

// PendingSignup holds a signup form until the payment webhook creates the account.
// There is at most one per email; a new submission overwrites the previous one.
type PendingSignup struct {
	ID           uint
	Email        string
	Tier         Tier
	Cycle        BillingCycle
	CompanyName  string
	FullName     string
	PasswordHash string
	CreatedAt    time.Time
	ExpiresAt    time.Time
	Processed    bool
}

func NewPendingSignup(email string, tier Tier, cycle BillingCycle, companyName, fullName, passwordHash string, now time.Time) *PendingSignup {
	p := &PendingSignup{Email: NormalizeEmail(email)}
	p.Refresh(tier, cycle, companyName, fullName, passwordHash, now)
	return p
}

// Refresh overwrites the form fields and restarts the expiry window.
func (p *PendingSignup) Refresh(tier Tier, cycle BillingCycle, companyName, fullName, passwordHash string, now time.Time) {
	p.Tier = tier
	p.Cycle = cycle
	p.CompanyName = strings.TrimSpace(companyName)
	p.FullName = strings.TrimSpace(fullName)
	p.PasswordHash = passwordHash
	p.CreatedAt = now
	p.ExpiresAt = now.Add(PendingSignupTTL)
	p.Processed = false
}

func (p *PendingSignup) IsExpired(now time.Time) bool {
	return !now.Before(p.ExpiresAt)
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
