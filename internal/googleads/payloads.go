package googleads

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// FlexInt64 decodes the upstream's int64 representation, which arrives as
// a JSON string for 64-bit fields but as a plain number in some metric
// payloads.
type FlexInt64 int64

func (f *FlexInt64) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return err
	}
	*f = FlexInt64(n)
	return nil
}

// CreateResult is the body of a successful single-resource create.
type CreateResult struct {
	ResourceName string `json:"resourceName"`
}

// CampaignBudget is the campaignBudgets create payload.
type CampaignBudget struct {
	Name           string `json:"name"`
	AmountMicros   int64  `json:"amountMicros"`
	DeliveryMethod string `json:"deliveryMethod"`
}

// Campaign is the campaigns create payload.
type Campaign struct {
	Name                   string            `json:"name"`
	Status                 string            `json:"status"`
	CampaignBudget         string            `json:"campaignBudget"`
	AdvertisingChannelType string            `json:"advertisingChannelType"`
	BiddingStrategyType    string            `json:"biddingStrategyType"`
	TargetingSetting       *TargetingSetting `json:"targetingSetting,omitempty"`
}

type TargetingSetting struct {
	TargetRestrictions TargetRestrictions `json:"targetRestrictions"`
}

type TargetRestrictions struct {
	GeoTargetType GeoTargetType `json:"geoTargetType"`
}

type GeoTargetType struct {
	PositiveGeoTargetType string `json:"positiveGeoTargetType"`
	NegativeGeoTargetType string `json:"negativeGeoTargetType"`
}

// CampaignCriterion attaches a location criterion to a campaign.
type CampaignCriterion struct {
	Campaign string        `json:"campaign"`
	Location *LocationInfo `json:"location,omitempty"`
}

type LocationInfo struct {
	GeoTargetConstant string `json:"geoTargetConstant"`
}

// AdGroup is the adGroups create payload.
type AdGroup struct {
	Name         string `json:"name"`
	Status       string `json:"status"`
	Campaign     string `json:"campaign"`
	Type         string `json:"type"`
	CPCBidMicros int64  `json:"cpcBidMicros"`
}

// AdGroupCriterionMutate batches keyword-criterion creates; the upstream
// caps a single mutate at 5000 operations.
type AdGroupCriterionMutate struct {
	Operations []AdGroupCriterionOperation `json:"operations"`
}

type AdGroupCriterionOperation struct {
	Create *AdGroupCriterion `json:"create"`
}

type AdGroupCriterion struct {
	AdGroup string       `json:"adGroup"`
	Status  string       `json:"status"`
	Keyword *KeywordInfo `json:"keyword,omitempty"`
}

type KeywordInfo struct {
	Text      string `json:"text"`
	MatchType string `json:"matchType"`
}

// MutateResponse is the body of a mutate call.
type MutateResponse struct {
	Results []CreateResult `json:"results"`
}

// KeywordIdeasRequest is the generateKeywordIdeas payload.
type KeywordIdeasRequest struct {
	CustomerID         string      `json:"customerId"`
	KeywordSeed        KeywordSeed `json:"keywordSeed"`
	Language           string      `json:"language"`
	GeoTargetConstants []string    `json:"geoTargetConstants"`
	PageSize           int         `json:"pageSize,omitempty"`
}

type KeywordSeed struct {
	Keywords []string `json:"keywords"`
}

type KeywordIdeasResponse struct {
	Results []KeywordIdeaResult `json:"results"`
}

type KeywordIdeaResult struct {
	Text               string              `json:"text"`
	KeywordIdeaMetrics *KeywordIdeaMetrics `json:"keywordIdeaMetrics,omitempty"`
}

type KeywordIdeaMetrics struct {
	AvgMonthlySearches     FlexInt64 `json:"avgMonthlySearches"`
	Competition            string    `json:"competition"`
	LowTopOfPageBidMicros  FlexInt64 `json:"lowTopOfPageBidMicros"`
	HighTopOfPageBidMicros FlexInt64 `json:"highTopOfPageBidMicros"`
}

// ListAccessibleCustomersResponse lists account resource names.
type ListAccessibleCustomersResponse struct {
	ResourceNames []string `json:"resourceNames"`
}

// SearchRequest is the googleAds:search GAQL payload.
type SearchRequest struct {
	Query    string `json:"query"`
	PageSize int    `json:"pageSize,omitempty"`
}

// SearchResponse carries typed rows for the gateway's own reports.
type SearchResponse struct {
	Results []SearchRow `json:"results"`
}

// RawSearchResponse carries unshaped rows for the GAQL passthrough.
type RawSearchResponse struct {
	Results []json.RawMessage `json:"results"`
}

type SearchRow struct {
	Campaign  *CampaignRow  `json:"campaign,omitempty"`
	AdGroup   *AdGroupRow   `json:"adGroup,omitempty"`
	AdGroupAd *AdGroupAdRow `json:"adGroupAd,omitempty"`
	Metrics   *MetricsRow   `json:"metrics,omitempty"`
}

type CampaignRow struct {
	ID     FlexInt64 `json:"id"`
	Name   string    `json:"name"`
	Status string    `json:"status"`
}

type AdGroupRow struct {
	ID   FlexInt64 `json:"id"`
	Name string    `json:"name"`
}

type AdGroupAdRow struct {
	Ad *AdRow `json:"ad,omitempty"`
}

type AdRow struct {
	ID             FlexInt64       `json:"id"`
	ResponsiveAd   *ResponsiveAd   `json:"responsiveSearchAd,omitempty"`
	ExpandedTextAd *ExpandedTextAd `json:"expandedTextAd,omitempty"`
}

type ResponsiveAd struct {
	Headlines []AdTextAsset `json:"headlines,omitempty"`
}

type ExpandedTextAd struct {
	HeadlinePart1 string `json:"headlinePart1,omitempty"`
}

type AdTextAsset struct {
	Text string `json:"text"`
}

type MetricsRow struct {
	Impressions FlexInt64 `json:"impressions"`
	Clicks      FlexInt64 `json:"clicks"`
	CostMicros  FlexInt64 `json:"costMicros"`
	Conversions float64   `json:"conversions"`
}
