package mappers

import (
	"fmt"

	"gorm.io/datatypes"

	"github.com/hireloop/hireloop/internal/domain/billing"
	"github.com/hireloop/hireloop/internal/infrastructure/persistence/models"
)

func SubscriptionToModel(s *billing.TenantSubscription) *models.TenantSubscriptionModel {
	model := &models.TenantSubscriptionModel{
		ID:                    s.ID(),
		TenantID:              s.TenantID(),
		PlanTier:              s.Tier().String(),
		BillingCycle:          string(s.Cycle()),
		Status:                string(s.Status()),
		CurrentPeriodStart:    s.CurrentPeriodStart(),
		CurrentPeriodEnd:      s.CurrentPeriodEnd(),
		CanceledAt:            s.CanceledAt(),
		ExtraSeats:            s.ExtraSeats(),
		GatewayCustomerID:     optionalString(s.GatewayCustomerID()),
		GatewaySubscriptionID: optionalString(s.GatewaySubscriptionID()),
		CreatedAt:             s.CreatedAt(),
		UpdatedAt:             s.UpdatedAt(),
	}

	if pm := s.PaymentMethod(); pm != nil {
		model.PaymentMethod = datatypes.NewJSONType(models.PaymentMethodData{
			Last4:    pm.Last4,
			Brand:    pm.Brand,
			ExpMonth: pm.ExpMonth,
			ExpYear:  pm.ExpYear,
		})
	}

	return model
}

func SubscriptionToDomain(m *models.TenantSubscriptionModel) (*billing.TenantSubscription, error) {
	var pm *billing.PaymentMethod
	if data := m.PaymentMethod.Data(); data.Last4 != "" {
		pm = &billing.PaymentMethod{
			Last4:    data.Last4,
			Brand:    data.Brand,
			ExpMonth: data.ExpMonth,
			ExpYear:  data.ExpYear,
		}
	}

	sub, err := billing.ReconstructTenantSubscription(
		m.ID, m.TenantID,
		billing.ParseTier(m.PlanTier),
		billing.BillingCycle(m.BillingCycle),
		billing.Status(m.Status),
		m.CurrentPeriodStart,
		m.CurrentPeriodEnd, m.CanceledAt,
		m.ExtraSeats,
		derefString(m.GatewayCustomerID), derefString(m.GatewaySubscriptionID),
		pm,
		m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct subscription %d: %w", m.ID, err)
	}
	return sub, nil
}

func UsageToModel(u *billing.TenantUsage) *models.TenantUsageModel {
	return &models.TenantUsageModel{
		ID:              u.ID,
		TenantID:        u.TenantID,
		PeriodStart:     u.PeriodStart,
		PeriodEnd:       u.PeriodEnd,
		ResumesReviewed: u.ResumesReviewed,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func UsageToDomain(m *models.TenantUsageModel) *billing.TenantUsage {
	return &billing.TenantUsage{
		ID:              m.ID,
		TenantID:        m.TenantID,
		PeriodStart:     m.PeriodStart,
		PeriodEnd:       m.PeriodEnd,
		ResumesReviewed: m.ResumesReviewed,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func PendingSignupToModel(p *billing.PendingSignup) *models.PendingSignupModel {
	return &models.PendingSignupModel{
		ID:           p.ID,
		Email:        p.Email,
		PlanTier:     p.Tier.String(),
		BillingCycle: string(p.Cycle),
		CompanyName:  p.CompanyName,
		FullName:     p.FullName,
		PasswordHash: p.PasswordHash,
		ExpiresAt:    p.ExpiresAt,
		Processed:    p.Processed,
		CreatedAt:    p.CreatedAt,
	}
}

func PendingSignupToDomain(m *models.PendingSignupModel) *billing.PendingSignup {
	return &billing.PendingSignup{
		ID:           m.ID,
		Email:        m.Email,
		Tier:         billing.ParseTier(m.PlanTier),
		Cycle:        billing.BillingCycle(m.BillingCycle),
		CompanyName:  m.CompanyName,
		FullName:     m.FullName,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		ExpiresAt:    m.ExpiresAt,
		Processed:    m.Processed,
	}
}

func PaymentToModel(p *billing.PaymentHistory) *models.PaymentHistoryModel {
	return &models.PaymentHistoryModel{
		ID:               p.ID,
		TenantID:         p.TenantID,
		Amount:           p.Amount,
		Currency:         p.Currency,
		Description:      p.Description,
		Status:           string(p.Status),
		PlanTier:         p.Tier.String(),
		BillingCycle:     string(p.Cycle),
		ExtraSeats:       p.ExtraSeats,
		GatewayPaymentID: optionalString(p.GatewayPaymentID),
		GatewayInvoiceID: optionalString(p.GatewayInvoiceID),
		CardLast4:        p.CardLast4,
		CardBrand:        p.CardBrand,
		CreatedAt:        p.CreatedAt,
	}
}

func PaymentToDomain(m *models.PaymentHistoryModel) *billing.PaymentHistory {
	return &billing.PaymentHistory{
		ID:               m.ID,
		TenantID:         m.TenantID,
		Amount:           m.Amount,
		Currency:         m.Currency,
		Description:      m.Description,
		Status:           billing.PaymentStatus(m.Status),
		Tier:             billing.Tier(m.PlanTier),
		Cycle:            billing.BillingCycle(m.BillingCycle),
		ExtraSeats:       m.ExtraSeats,
		GatewayPaymentID: derefString(m.GatewayPaymentID),
		GatewayInvoiceID: derefString(m.GatewayInvoiceID),
		CardLast4:        m.CardLast4,
		CardBrand:        m.CardBrand,
		CreatedAt:        m.CreatedAt,
	}
}
