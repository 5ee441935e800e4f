package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog_Limits(t *testing.T) {
	c := DefaultCatalog()

	tests := []struct {
		tier                 Tier
		jobs, resumes, seats int
	}{
		{TierFree, 1, 25, 1},
		{TierStarter, 3, 100, 1},
		{TierPro, 10, 500, 3},
		{TierUltra, 20, 1000, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.jobs, c.Limit(tt.tier, ResourceActiveJobs), tt.tier)
		assert.Equal(t, tt.resumes, c.Limit(tt.tier, ResourceMonthlyResumes), tt.tier)
		assert.Equal(t, tt.seats, c.Limit(tt.tier, ResourceSeats), tt.tier)
	}
}

func TestDefaultCatalog_PricesAndNames(t *testing.T) {
	c := DefaultCatalog()

	assert.True(t, decimal.RequireFromString("382.20").Equal(c.Price(TierStarter, CycleYearly)))
	assert.True(t, decimal.NewFromInt(239).Equal(c.Price(TierUltra, CycleMonthly)))
	assert.True(t, decimal.Zero.Equal(c.Price("enterprise", CycleMonthly)))
	assert.True(t, decimal.NewFromInt(20).Equal(c.ExtraSeatPriceMonthly))

	plans := c.Plans()
	require.Len(t, plans, 4)
	assert.Equal(t, "Free", plans[0].DisplayName)
	assert.Equal(t, "Ultra", plans[3].DisplayName)
	assert.Len(t, plans[0].Features, 2)
	assert.Len(t, plans[3].Features, 6)
}

func TestCatalog_Features(t *testing.T) {
	c := DefaultCatalog()

	assert.True(t, c.HasFeature(TierFree, FeatureJobBoard))
	assert.False(t, c.HasFeature(TierStarter, FeatureClaimValidityScore))
	assert.True(t, c.HasFeature(TierPro, FeatureRedFlagDetection))
	assert.False(t, c.HasFeature(TierPro, FeatureFullAnalyticsEngine))
	assert.True(t, c.HasFeature(TierUltra, FeatureDedicatedSupport))
	assert.False(t, c.IsKnownFeature("teleportation"))

	tier, ok := c.LowestTierWith(FeatureRedFlagDetection)
	require.True(t, ok)
	assert.Equal(t, TierPro, tier)
}

func TestParseCatalog_RejectsBadInput(t *testing.T) {
	_, err := ParseCatalog([]byte("extra_seat_price_monthly: abc\n"))
	assert.Error(t, err)

	_, err = ParseCatalog([]byte("extra_seat_price_monthly: \"1\"\nplans:\n  - tier: gold\n    monthly_price: \"1\"\n    yearly_price: \"1\"\n"))
	assert.Error(t, err)
}

func TestTierOrdering(t *testing.T) {
	assert.True(t, TierPro.IsHigherThan(TierStarter))
	assert.False(t, TierFree.IsHigherThan(TierFree))
	assert.Equal(t, []Tier{TierPro, TierUltra}, UpgradeOptions(TierStarter))
	assert.Empty(t, UpgradeOptions(TierUltra))
	assert.Equal(t, TierPro, ParseTier(" PRO "))
	assert.False(t, ParseTier("gold").IsValid())
}

func TestStatusFromGateway(t *testing.T) {
	assert.Equal(t, StatusPastDue, StatusFromGateway("unpaid"))
	assert.Equal(t, StatusCanceled, StatusFromGateway("incomplete_expired"))
	assert.Equal(t, StatusTrialing, StatusFromGateway("trialing"))
	assert.Equal(t, StatusIncomplete, StatusFromGateway("incomplete"))
	assert.Equal(t, StatusActive, StatusFromGateway("grandfathered"))
	assert.Equal(t, StatusActive, StatusFromGateway("paused"))
}
