package billing

import "fmt"

// Action is the call to action attached to a denial.
type Action string

const (
	ActionSeePlans     Action = "see_plans"
	ActionContactSales Action = "contact_sales"
	ActionAddSeat      Action = "add_seat"
)

func (a Action) Label() string {
	switch a {
	case ActionContactSales:
		return "Contact Sales"
	case ActionAddSeat:
		return "Add Seat"
	default:
		return "See Plans"
	}
}

// Notification is the user-facing explanation of a denial.
type Notification struct {
	Title     string `json:"title"`
	Message   string `json:"message"`
	CTAText   string `json:"cta_text"`
	CTAAction Action `json:"cta_action"`
}

// Denial explains why a capability is not available.
type Denial struct {
	Reason          string       `json:"reason"`
	SuggestedAction Action       `json:"suggested_action"`
	Notification    Notification `json:"notification"`
}

// Decision is Allowed when Denied is nil.
type Decision struct {
	Denied *Denial `json:"denied,omitempty"`
}

func (d Decision) Allowed() bool { return d.Denied == nil }

func allow() Decision { return Decision{} }

func deny(n Notification) Decision {
	return Decision{Denied: &Denial{Reason: n.Message, SuggestedAction: n.CTAAction, Notification: n}}
}

// LimitCheck is the outcome of comparing current usage with a tier limit.
type LimitCheck struct {
	Resource  Resource `json:"resource"`
	Decision  Decision `json:"decision"`
	Allowed   bool     `json:"allowed"`
	Current   int      `json:"current"`
	Limit     int      `json:"limit"`
	Remaining int      `json:"remaining"`
	Unlimited bool     `json:"unlimited"`
}

type FeatureCheck struct {
	Feature  Feature  `json:"feature"`
	Decision Decision `json:"decision"`
	Allowed  bool     `json:"allowed"`
}

// Gate evaluates limits and features against the plan catalog. The checks only read;
// callers that write afterwards can overshoot a limit under concurrency.
type Gate struct {
	catalog *Catalog
}

func NewGate(catalog *Catalog) *Gate {
	return &Gate{catalog: catalog}
}

func (g *Gate) Catalog() *Catalog { return g.catalog }

// CheckLimit allows one more unit of resource when current is below the limit. A nil or
// grandfathered subscription is unlimited.
func (g *Gate) CheckLimit(sub *TenantSubscription, resource Resource, current int) LimitCheck {
	if sub == nil || sub.IsGrandfathered() {
		return LimitCheck{
			Resource:  resource,
			Decision:  allow(),
			Allowed:   true,
			Current:   current,
			Limit:     UnlimitedSentinel,
			Remaining: nonNegative(UnlimitedSentinel - current),
			Unlimited: true,
		}
	}

	limit := g.catalog.Limit(sub.Tier(), resource)
	if resource == ResourceSeats {
		limit = sub.TotalSeats(g.catalog)
	}

	decision := allow()
	if current >= limit {
		decision = deny(g.limitNotification(sub.Tier(), resource))
	}
	return LimitCheck{
		Resource:  resource,
		Decision:  decision,
		Allowed:   decision.Allowed(),
		Current:   current,
		Limit:     limit,
		Remaining: nonNegative(limit - current),
	}
}

// CheckFeature reports whether the subscription's tier includes f. A nil or
// grandfathered subscription has every feature.
func (g *Gate) CheckFeature(sub *TenantSubscription, f Feature) FeatureCheck {
	if sub == nil || sub.IsGrandfathered() || g.catalog.HasFeature(sub.Tier(), f) {
		return FeatureCheck{Feature: f, Decision: allow(), Allowed: true}
	}
	return FeatureCheck{Feature: f, Decision: deny(g.featureNotification(f))}
}

func (g *Gate) limitNotification(tier Tier, resource Resource) Notification {
	plan := g.catalog.Plan(tier)
	limits := plan.Limits
	upsell := ActionSeePlans
	if tier == TierUltra {
		upsell = ActionContactSales
	}

	switch resource {
	case ResourceSeats:
		plural := ""
		if limits.SeatsIncluded > 1 {
			plural = "s"
		}
		return Notification{
			Title: "Seat limit reached",
			Message: fmt.Sprintf("The %s plan includes %d seat%s. Additional seats are available for $%s/month each.",
				plan.DisplayName, limits.SeatsIncluded, plural, g.catalog.ExtraSeatPriceMonthly.String()),
			CTAText:   ActionAddSeat.Label(),
			CTAAction: ActionAddSeat,
		}
	case ResourceActiveJobs:
		title := "Monthly job post limit reached"
		if tier == TierFree {
			title = "No active job posts left"
		}
		return Notification{Title: title, Message: jobsMessage(tier, limits), CTAText: upsell.Label(), CTAAction: upsell}
	case ResourceMonthlyResumes:
		return Notification{
			Title:     "Monthly resume limit reached",
			Message:   resumesMessage(tier, limits),
			CTAText:   upsell.Label(),
			CTAAction: upsell,
		}
	}
	return Notification{
		Title:     "Limit reached",
		Message:   "You've reached your plan limit.",
		CTAText:   ActionSeePlans.Label(),
		CTAAction: ActionSeePlans,
	}
}

func jobsMessage(tier Tier, l Limits) string {
	switch tier {
	case TierFree:
		return "You've used your 1 active job for this month. Upgrade to Starter to post more roles."
	case TierStarter:
		return fmt.Sprintf("You've posted all %d active jobs available on Starter this month. Upgrade to Pro for up to 10 active jobs.", l.ActiveJobs)
	case TierPro:
		return fmt.Sprintf("You've posted all %d active jobs available this month on Pro. Upgrade to Ultra for 20 active jobs per month.", l.ActiveJobs)
	case TierUltra:
		return fmt.Sprintf("You've hit your %d active jobs for this month. Contact us for Enterprise-level scaling.", l.ActiveJobs)
	}
	return "You've reached your job posting limit."
}

func resumesMessage(tier Tier, l Limits) string {
	switch tier {
	case TierFree:
		return fmt.Sprintf("You've reviewed all %d resumes allowed this month. Upgrade to Starter to continue screening candidates.", l.MonthlyResumes)
	case TierStarter:
		return fmt.Sprintf("You've reached your %d-resume monthly limit. Upgrade to Pro to review more candidates.", l.MonthlyResumes)
	case TierPro:
		return fmt.Sprintf("You've used all %d monthly resumes in your Pro plan. Upgrade to Ultra for unlimited monthly reviews.", l.MonthlyResumes)
	case TierUltra:
		return fmt.Sprintf("You've used all %d monthly resumes in your Ultra plan. Contact us for Enterprise-level scaling.", l.MonthlyResumes)
	}
	return "You've reached your resume review limit."
}

func (g *Gate) featureNotification(f Feature) Notification {
	n := Notification{Title: "Feature not available", CTAText: ActionSeePlans.Label(), CTAAction: ActionSeePlans}
	switch f {
	case FeatureFullAnalyticsEngine:
		n.Title = "Analytics not included"
		n.Message = "The full Analytics Engine is available only on Ultra and Enterprise plans."
	case FeatureClaimValidityScore:
		n.Message = "Claim Validity Scores are available on Pro and Ultra."
	default:
		upgradeTo := "a higher"
		if tier, ok := g.catalog.LowestTierWith(f); ok {
			upgradeTo = g.catalog.Plan(tier).DisplayName
		}
		n.Message = fmt.Sprintf("%s is available on %s and higher plans.", g.catalog.FeatureName(f), upgradeTo)
	}
	return n
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
