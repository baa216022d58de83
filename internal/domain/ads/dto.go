package ads

// EntityStatus is the serving status requested for a created campaign or
// ad group. Only the two states the gateway accepts; everything else is a
// validation error.
type EntityStatus string

const (
	StatusPaused  EntityStatus = "PAUSED"
	StatusEnabled EntityStatus = "ENABLED"
)

// CreateCampaignRequest is the simplified campaign-creation payload the
// gateway accepts. Amounts are decimal currency units; conversion to micros
// happens at the upstream boundary only.
type CreateCampaignRequest struct {
	CustomerID   string       `json:"customer_id"`
	CampaignName string       `json:"campaign_name"`
	BudgetAmount float64      `json:"budget_amount"`
	GeoTargets   []int64      `json:"geo_targets"`
	Status       EntityStatus `json:"status"`
}

// CreateAdGroupRequest creates an ad group plus its keyword criteria under
// an existing campaign, referenced by full resource name.
type CreateAdGroupRequest struct {
	CampaignID  string       `json:"campaign_id"`
	AdGroupName string       `json:"ad_group_name"`
	Keywords    []string     `json:"keywords"`
	MaxCPC      float64      `json:"max_cpc"`
	Status      EntityStatus `json:"status"`
}

// KeywordIdeasQuery carries the seed parameters for idea generation.
// Only the first upstream page is surfaced; Limit is passed through as the
// page size.
type KeywordIdeasQuery struct {
	CustomerID string
	Seeds      []string
	Geo        string
	Language   string
	Limit      int
}

// Idea is the read-only projection of one keyword-idea result.
type Idea struct {
	Text               string `json:"text"`
	AvgMonthlySearches int64  `json:"avg_monthly_searches"`
	Competition        string `json:"competition"`
	BidLowMicros       int64  `json:"bid_low_micros"`
	BidHighMicros      int64  `json:"bid_high_micros"`
}

// CampaignResponse reports the outcome of campaign creation.
type CampaignResponse struct {
	Success    bool   `json:"success"`
	CampaignID string `json:"campaign_id,omitempty"`
	Message    string `json:"message"`
}

// FailedKeyword pairs a rejected keyword with the error of the batch it
// travelled in.
type FailedKeyword struct {
	Keyword string `json:"keyword"`
	Error   string `json:"error"`
}

// AdGroupResponse reports ad-group creation plus per-keyword bookkeeping.
// KeywordsAdded + KeywordsFailed always equals TotalKeywords.
type AdGroupResponse struct {
	Success        bool            `json:"success"`
	AdGroupID      string          `json:"ad_group_id,omitempty"`
	Message        string          `json:"message"`
	KeywordsAdded  int             `json:"keywords_added"`
	KeywordsFailed int             `json:"keywords_failed"`
	FailedKeywords []FailedKeyword `json:"failed_keywords"`
	TotalKeywords  int             `json:"total_keywords"`
}

// CampaignPerformanceRow is one row of the last-N-days campaign report.
// Cost is converted back from micros to currency units.
type CampaignPerformanceRow struct {
	CampaignID   string  `json:"campaign_id"`
	CampaignName string  `json:"campaign_name"`
	Status       string  `json:"status"`
	Impressions  int64   `json:"impressions"`
	Clicks       int64   `json:"clicks"`
	Cost         float64 `json:"cost"`
	Conversions  float64 `json:"conversions"`
}

// AdPerformanceRow is one row of the last-N-days ad report.
type AdPerformanceRow struct {
	AdID         string  `json:"ad_id"`
	AdGroupID    string  `json:"ad_group_id"`
	CampaignName string  `json:"campaign_name"`
	Headline     string  `json:"headline,omitempty"`
	Impressions  int64   `json:"impressions"`
	Clicks       int64   `json:"clicks"`
	Cost         float64 `json:"cost"`
	Conversions  float64 `json:"conversions"`
}

// GAQLRequest forwards a raw GAQL query for the given customer.
type GAQLRequest struct {
	CustomerID string `json:"customer_id"`
	Query      string `json:"query"`
}
