package billing

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed plans.yaml
var plansYAML []byte

type Limits struct {
	ActiveJobs     int `yaml:"active_jobs" json:"active_jobs"`
	MonthlyResumes int `yaml:"monthly_resumes" json:"monthly_resumes"`
	SeatsIncluded  int `yaml:"seats_included" json:"seats_included"`
}

// Plan is one purchasable tier.
type Plan struct {
	Tier         Tier            `json:"tier"`
	DisplayName  string          `json:"display_name"`
	Tagline      string          `json:"tagline"`
	MonthlyPrice decimal.Decimal `json:"monthly_price"`
	YearlyPrice  decimal.Decimal `json:"yearly_price"`
	Limits       Limits          `json:"limits"`
	Features     []FeatureInfo   `json:"features"`
}

type FeatureInfo struct {
	Key  Feature `json:"key"`
	Name string  `json:"name"`
}

// Catalog is the plan, price and feature table.
type Catalog struct {
	plans                 map[Tier]*Plan
	features              map[Feature]featureEntry
	featureOrder          []Feature
	ExtraSeatPriceMonthly decimal.Decimal
	YearlyDiscountPercent int
	EnterpriseContact     string
}

type featureEntry struct {
	name  string
	tiers map[Tier]bool
}

type catalogFile struct {
	ExtraSeatPriceMonthly string `yaml:"extra_seat_price_monthly"`
	YearlyDiscountPercent int    `yaml:"yearly_discount_percent"`
	EnterpriseContact     string `yaml:"enterprise_contact_email"`
	Plans                 []struct {
		Tier         string `yaml:"tier"`
		Tagline      string `yaml:"tagline"`
		MonthlyPrice string `yaml:"monthly_price"`
		YearlyPrice  string `yaml:"yearly_price"`
		Limits       Limits `yaml:"limits"`
	} `yaml:"plans"`
	Features []struct {
		Key   string   `yaml:"key"`
		Name  string   `yaml:"name"`
		Tiers []string `yaml:"tiers"`
	} `yaml:"features"`
}

var (
	defaultCatalog     *Catalog
	defaultCatalogErr  error
	defaultCatalogOnce sync.Once
)

// DefaultCatalog returns the embedded catalog. It panics if the embedded file is invalid.
func DefaultCatalog() *Catalog {
	defaultCatalogOnce.Do(func() {
		defaultCatalog, defaultCatalogErr = ParseCatalog(plansYAML)
	})
	if defaultCatalogErr != nil {
		panic(fmt.Sprintf("billing: invalid embedded plan catalog: %v", defaultCatalogErr))
	}
	return defaultCatalog
}

// ParseCatalog decodes a catalog document in the plans.yaml format.
func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode plan catalog: %w", err)
	}

	seatPrice, err := decimal.NewFromString(file.ExtraSeatPriceMonthly)
	if err != nil {
		return nil, fmt.Errorf("invalid extra seat price %q: %w", file.ExtraSeatPriceMonthly, err)
	}

	title := cases.Title(language.English)
	c := &Catalog{
		plans:                 make(map[Tier]*Plan, len(file.Plans)),
		features:              make(map[Feature]featureEntry, len(file.Features)),
		ExtraSeatPriceMonthly: seatPrice,
		YearlyDiscountPercent: file.YearlyDiscountPercent,
		EnterpriseContact:     file.EnterpriseContact,
	}

	for _, p := range file.Plans {
		tier := ParseTier(p.Tier)
		if !tier.IsValid() {
			return nil, fmt.Errorf("unknown tier %q in plan catalog", p.Tier)
		}
		monthly, err := decimal.NewFromString(p.MonthlyPrice)
		if err != nil {
			return nil, fmt.Errorf("invalid monthly price for %s: %w", tier, err)
		}
		yearly, err := decimal.NewFromString(p.YearlyPrice)
		if err != nil {
			return nil, fmt.Errorf("invalid yearly price for %s: %w", tier, err)
		}
		c.plans[tier] = &Plan{
			Tier:         tier,
			DisplayName:  title.String(string(tier)),
			Tagline:      p.Tagline,
			MonthlyPrice: monthly,
			YearlyPrice:  yearly,
			Limits:       p.Limits,
		}
	}
	for _, tier := range tierOrder {
		if _, ok := c.plans[tier]; !ok {
			return nil, fmt.Errorf("plan catalog is missing tier %s", tier)
		}
	}

	for _, f := range file.Features {
		entry := featureEntry{name: f.Name, tiers: make(map[Tier]bool, len(f.Tiers))}
		for _, t := range f.Tiers {
			entry.tiers[ParseTier(t)] = true
		}
		key := Feature(f.Key)
		c.features[key] = entry
		c.featureOrder = append(c.featureOrder, key)
	}
	for _, key := range c.featureOrder {
		for _, tier := range tierOrder {
			if c.features[key].tiers[tier] {
				c.plans[tier].Features = append(c.plans[tier].Features, FeatureInfo{Key: key, Name: c.features[key].name})
			}
		}
	}

	return c, nil
}

// Plan returns the plan for tier, falling back to free for unknown tiers.
func (c *Catalog) Plan(tier Tier) *Plan {
	if p, ok := c.plans[tier]; ok {
		return p
	}
	return c.plans[TierFree]
}

// Plans lists every plan in tier order.
func (c *Catalog) Plans() []*Plan {
	out := make([]*Plan, 0, len(tierOrder))
	for _, tier := range tierOrder {
		out = append(out, c.plans[tier])
	}
	return out
}

func (c *Catalog) Price(tier Tier, cycle BillingCycle) decimal.Decimal {
	p, ok := c.plans[tier]
	if !ok {
		return decimal.Zero
	}
	if cycle == CycleYearly {
		return p.YearlyPrice
	}
	return p.MonthlyPrice
}

// Limit is the tier's base allowance for resource. Seats exclude purchased extras.
func (c *Catalog) Limit(tier Tier, resource Resource) int {
	l := c.Plan(tier).Limits
	switch resource {
	case ResourceActiveJobs:
		return l.ActiveJobs
	case ResourceMonthlyResumes:
		return l.MonthlyResumes
	case ResourceSeats:
		return l.SeatsIncluded
	}
	return 0
}

func (c *Catalog) IsKnownFeature(f Feature) bool {
	_, ok := c.features[f]
	return ok
}

func (c *Catalog) HasFeature(tier Tier, f Feature) bool {
	return c.features[f].tiers[tier]
}

func (c *Catalog) FeatureName(f Feature) string {
	if e, ok := c.features[f]; ok && e.name != "" {
		return e.name
	}
	return string(f)
}

// LowestTierWith is the cheapest tier that includes f.
func (c *Catalog) LowestTierWith(f Feature) (Tier, bool) {
	for _, tier := range tierOrder {
		if c.HasFeature(tier, f) {
			return tier, true
		}
	}
	return "", false
}
