package dto

import "github.com/hireloop/hireloop/internal/domain/billing"

func ToLimitStatusDTO(check billing.LimitCheck) *LimitStatusDTO {
	d := &LimitStatusDTO{
		Resource:     check.Resource,
		LimitReached: !check.Allowed,
		Current:      check.Current,
		Limit:        check.Limit,
		Remaining:    check.Remaining,
		Unlimited:    check.Unlimited,
	}
	if check.Decision.Denied != nil {
		n := check.Decision.Denied.Notification
		d.Notification = &n
	}
	return d
}

func ToFeatureStatusDTO(check billing.FeatureCheck) *FeatureStatusDTO {
	d := &FeatureStatusDTO{Feature: check.Feature, HasAccess: check.Allowed}
	if check.Decision.Denied != nil {
		n := check.Decision.Denied.Notification
		d.Notification = &n
	}
	return d
}

func ToPlanCatalogDTO(catalog *billing.Catalog) *PlanCatalogDTO {
	return &PlanCatalogDTO{
		Plans:                 catalog.Plans(),
		ExtraSeatPriceMonthly: catalog.ExtraSeatPriceMonthly,
		YearlyDiscountPercent: catalog.YearlyDiscountPercent,
		EnterpriseContact:     catalog.EnterpriseContact,
	}
}

func ToPaymentDTO(p *billing.PaymentHistory) *PaymentDTO {
	return &PaymentDTO{
		ID:          p.ID,
		Amount:      p.Amount,
		Currency:    p.Currency,
		Description: p.Description,
		Status:      p.Status,
		PlanTier:    p.Tier,
		ExtraSeats:  p.ExtraSeats,
		CardLast4:   p.CardLast4,
		CardBrand:   p.CardBrand,
		CreatedAt:   p.CreatedAt,
	}
}

func ToPaymentDTOList(payments []*billing.PaymentHistory) []*PaymentDTO {
	out := make([]*PaymentDTO, 0, len(payments))
	for _, p := range payments {
		out = append(out, ToPaymentDTO(p))
	}
	return out
}
