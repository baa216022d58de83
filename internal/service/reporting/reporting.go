package reporting

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"adsgateway-service/internal/domain/ads"
	"adsgateway-service/internal/googleads"
)

const (
	defaultWindowDays = 30
	maxWindowDays     = 365
)

type ReportingService struct {
	client googleads.Caller
	logger *zap.Logger
	now    func() time.Time
}

func NewReportingService(client googleads.Caller, logger *zap.Logger) *ReportingService {
	return &ReportingService{client: client, logger: logger, now: time.Now}
}

func clampDays(days int) int {
	if days <= 0 {
		return defaultWindowDays
	}
	if days > maxWindowDays {
		return maxWindowDays
	}
	return days
}

func (s *ReportingService) dateWindow(days int) (string, string) {
	end := s.now().UTC()
	start := end.AddDate(0, 0, -clampDays(days))
	return start.Format("2006-01-02"), end.Format("2006-01-02")
}

// CampaignPerformance returns per-campaign metrics over the last N days
// (default 30, capped at 365). Cost is converted back from micros.
func (s *ReportingService) CampaignPerformance(ctx context.Context, customerID string, days int) ([]ads.CampaignPerformanceRow, error) {
	customerID = ads.NormalizeCustomerID(customerID)
	start, end := s.dateWindow(days)
	query := fmt.Sprintf(
		"SELECT campaign.id, campaign.name, campaign.status, metrics.impressions, metrics.clicks, metrics.cost_micros, metrics.conversions "+
			"FROM campaign WHERE segments.date BETWEEN '%s' AND '%s' ORDER BY metrics.cost_micros DESC", start, end)

	var out googleads.SearchResponse
	if err := s.client.Post(ctx, fmt.Sprintf("customers/%s/googleAds:search", customerID), &googleads.SearchRequest{Query: query}, &out); err != nil {
		s.logger.Error("campaign performance query failed",
			zap.String("customer_id", customerID),
			zap.Error(err),
		)
		return nil, err
	}

	rows := make([]ads.CampaignPerformanceRow, 0, len(out.Results))
	for _, r := range out.Results {
		if r.Campaign == nil {
			continue
		}
		row := ads.CampaignPerformanceRow{
			CampaignID:   strconv.FormatInt(int64(r.Campaign.ID), 10),
			CampaignName: r.Campaign.Name,
			Status:       r.Campaign.Status,
		}
		if r.Metrics != nil {
			row.Impressions = int64(r.Metrics.Impressions)
			row.Clicks = int64(r.Metrics.Clicks)
			row.Cost = ads.FromMicros(int64(r.Metrics.CostMicros))
			row.Conversions = r.Metrics.Conversions
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// AdPerformance returns per-ad metrics over the same window.
func (s *ReportingService) AdPerformance(ctx context.Context, customerID string, days int) ([]ads.AdPerformanceRow, error) {
	customerID = ads.NormalizeCustomerID(customerID)
	start, end := s.dateWindow(days)
	query := fmt.Sprintf(
		"SELECT ad_group_ad.ad.id, ad_group.id, campaign.name, ad_group_ad.ad.expanded_text_ad.headline_part1, "+
			"metrics.impressions, metrics.clicks, metrics.cost_micros, metrics.conversions "+
			"FROM ad_group_ad WHERE segments.date BETWEEN '%s' AND '%s' ORDER BY metrics.impressions DESC", start, end)

	var out googleads.SearchResponse
	if err := s.client.Post(ctx, fmt.Sprintf("customers/%s/googleAds:search", customerID), &googleads.SearchRequest{Query: query}, &out); err != nil {
		s.logger.Error("ad performance query failed",
			zap.String("customer_id", customerID),
			zap.Error(err),
		)
		return nil, err
	}

	rows := make([]ads.AdPerformanceRow, 0, len(out.Results))
	for _, r := range out.Results {
		row := ads.AdPerformanceRow{}
		if r.AdGroupAd != nil && r.AdGroupAd.Ad != nil {
			row.AdID = strconv.FormatInt(int64(r.AdGroupAd.Ad.ID), 10)
			if eta := r.AdGroupAd.Ad.ExpandedTextAd; eta != nil {
				row.Headline = eta.HeadlinePart1
			} else if rsa := r.AdGroupAd.Ad.ResponsiveAd; rsa != nil && len(rsa.Headlines) > 0 {
				row.Headline = rsa.Headlines[0].Text
			}
		}
		if r.AdGroup != nil {
			row.AdGroupID = strconv.FormatInt(int64(r.AdGroup.ID), 10)
		}
		if r.Campaign != nil {
			row.CampaignName = r.Campaign.Name
		}
		if r.Metrics != nil {
			row.Impressions = int64(r.Metrics.Impressions)
			row.Clicks = int64(r.Metrics.Clicks)
			row.Cost = ads.FromMicros(int64(r.Metrics.CostMicros))
			row.Conversions = r.Metrics.Conversions
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Search forwards a raw GAQL query and returns the unshaped result rows.
func (s *ReportingService) Search(ctx context.Context, req *ads.GAQLRequest) ([]json.RawMessage, error) {
	normalized, err := req.Normalize()
	if err != nil {
		return nil, err
	}
	customerID := ads.NormalizeCustomerID(normalized.CustomerID)

	var out googleads.RawSearchResponse
	if err := s.client.Post(ctx, fmt.Sprintf("customers/%s/googleAds:search", customerID), &googleads.SearchRequest{Query: normalized.Query}, &out); err != nil {
		s.logger.Error("GAQL query failed",
			zap.String("customer_id", customerID),
			zap.Error(err),
		)
		return nil, err
	}
	if out.Results == nil {
		return []json.RawMessage{}, nil
	}
	return out.Results, nil
}
