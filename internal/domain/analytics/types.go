package analytics

import "time"

// JobInfo identifies the job a report was built for.
type JobInfo struct {
	Code       string  `json:"code"`
	Title      string  `json:"title"`
	Status     string  `json:"status"`
	Department string  `json:"department"`
	Team       string  `json:"team"`
	Posted     *string `json:"posted"`
}

// JobSummary is one row of the per-tenant job overview.
type JobSummary struct {
	JDCode        string  `json:"jd_code"`
	JDTitle       string  `json:"jd_title"`
	Status        string  `json:"status"`
	Department    string  `json:"department"`
	Team          string  `json:"team"`
	Posted        *string `json:"posted"`
	Applicants    int     `json:"applicants"`
	DiamondsFound int     `json:"diamonds_found"`
}

type Totals struct {
	Applied       int     `json:"applied"`
	DiamondsFound int     `json:"diamonds_found"`
	CompletionPct float64 `json:"completion_pct"`
	Completed     int     `json:"completed"`
}

// Distributions count candidates per bucket; index i holds bucket i+1.
type Distributions struct {
	ClaimValidity [5]int `json:"claim_validity"`
	Relevancy     [5]int `json:"relevancy"`
}

type HeatmapAxes struct {
	Relevancy     []string `json:"relevancy"`
	ClaimValidity []string `json:"claim_validity"`
}

// Heatmap cross-tabulates buckets as Matrix[relevancy-1][claim-1].
type Heatmap struct {
	Matrix [5][5]int     `json:"matrix"`
	Axes   HeatmapAxes   `json:"axes"`
	Cells  []HeatmapCell `json:"cells"`
}

// HeatmapCell lists the members of one non-empty matrix cell.
type HeatmapCell struct {
	Relevancy  int            `json:"relevancy"`
	Claim      int            `json:"claim"`
	Candidates []CandidateRef `json:"candidates"`
}

// CandidateRef is a candidate as shown in the roster and heatmap cells.
type CandidateRef struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Initials           string  `json:"initials"`
	ClaimValidityScore float64 `json:"claim_validity_score"`
	RelevancyScore     float64 `json:"relevancy_score"`
	CombinedScore      float64 `json:"combined_score"`
}

type FunnelStage struct {
	Stage      string  `json:"stage"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Stats holds population statistics; all fields are nil when there are no values.
type Stats struct {
	Mean   *float64 `json:"mean"`
	Median *float64 `json:"median"`
	StdDev *float64 `json:"std_dev"`
}

type Statistics struct {
	ClaimValidity Stats `json:"claim_validity"`
	Relevancy     Stats `json:"relevancy"`
}

type ROIVariables struct {
	TotalApplicants          int `json:"total_applicants"`
	DiamondsCount            int `json:"diamonds_count"`
	ManualTimePerApplicant   int `json:"manual_time_per_applicant"`
	AssistedTimePerApplicant int `json:"assisted_time_per_applicant"`
	HourlyRate               int `json:"hourly_rate"`
}

type ROICalculated struct {
	TimeSavedHours       float64  `json:"time_saved_hours"`
	CostSaved            float64  `json:"cost_saved"`
	SpeedImprovement     *float64 `json:"speed_improvement"`
	EfficiencyPercentage float64  `json:"efficiency_percentage"`
}

type ROI struct {
	Variables  ROIVariables  `json:"variables"`
	Calculated ROICalculated `json:"calculated"`
}

type Summary struct {
	TotalCandidates int       `json:"total_candidates"`
	DiamondsFound   int       `json:"diamonds_found"`
	CompletionRate  float64   `json:"completion_rate"`
	LastUpdated     time.Time `json:"last_updated"`
}

// JobDetail is the full analytics payload for a single job.
type JobDetail struct {
	JD               JobInfo        `json:"jd"`
	Totals           Totals         `json:"totals"`
	Heatmap          Heatmap        `json:"heatmap"`
	Distributions    Distributions  `json:"distributions"`
	Summary          Summary        `json:"summary"`
	Diamonds         []CandidateRef `json:"diamonds"`
	CompletionFunnel []FunnelStage  `json:"completion_funnel"`
	ROI              ROI            `json:"roi"`
	Statistics       Statistics     `json:"statistics"`
}
