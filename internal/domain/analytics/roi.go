package analytics

const (
	ManualMinutesPerApplicant = 10
	AssistedMinutesPerDiamond = 5
	HourlyRateUSD             = 50
)

// computeROI estimates recruiter time saved by reviewing only diamonds instead of
// every applicant.
func computeROI(total, diamonds int) ROI {
	manual := total * ManualMinutesPerApplicant
	assisted := diamonds * AssistedMinutesPerDiamond

	savedMinutes := manual - assisted
	if savedMinutes < 0 {
		savedMinutes = 0
	}
	hours := float64(savedMinutes) / 60
	cost := hours * HourlyRateUSD

	var speed *float64
	if assisted > 0 {
		v := round1(float64(manual) / float64(assisted))
		speed = &v
	}

	return ROI{
		Variables: ROIVariables{
			TotalApplicants:          total,
			DiamondsCount:            diamonds,
			ManualTimePerApplicant:   ManualMinutesPerApplicant,
			AssistedTimePerApplicant: AssistedMinutesPerDiamond,
			HourlyRate:               HourlyRateUSD,
		},
		Calculated: ROICalculated{
			TimeSavedHours:       round2(hours),
			CostSaved:            round2(cost),
			SpeedImprovement:     speed,
			EfficiencyPercentage: percentage(diamonds, total),
		},
	}
}
