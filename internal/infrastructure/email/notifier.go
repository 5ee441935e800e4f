package email

import (
	"errors"

	"github.com/hireloop/hireloop/internal/shared/logger"
	"github.com/hireloop/hireloop/internal/shared/utils"
)

var ErrEmailServiceNotConfigured = errors.New("email service not configured")

// BillingNotifier sends billing mail when SMTP is configured and only logs otherwise.
type BillingNotifier struct {
	service *SMTPEmailService
	logger  logger.Interface
}

// NewBillingNotifier accepts a nil service.
func NewBillingNotifier(service *SMTPEmailService, logger logger.Interface) *BillingNotifier {
	return &BillingNotifier{service: service, logger: logger}
}

func (n *BillingNotifier) SendWelcome(to, fullName, companyName, tenantSlug string) error {
	if n.service == nil {
		n.logger.Warnw("email service not configured, skipping welcome email", "tenant", tenantSlug, "to", utils.MaskEmail(to))
		return ErrEmailServiceNotConfigured
	}
	return n.service.SendWelcomeEmail(to, fullName, companyName, tenantSlug)
}

func (n *BillingNotifier) SendPaymentFailed(to, amount, invoice string) error {
	if n.service == nil {
		n.logger.Warnw("email service not configured, skipping payment failed email", "invoice", invoice, "to", utils.MaskEmail(to))
		return ErrEmailServiceNotConfigured
	}
	return n.service.SendPaymentFailedEmail(to, amount, invoice)
}
