package keywordideas

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"adsgateway-service/internal/domain/ads"
	"adsgateway-service/internal/googleads"
)

type IdeasService struct {
	client googleads.Caller
	logger *zap.Logger
}

func NewIdeasService(client googleads.Caller, logger *zap.Logger) *IdeasService {
	return &IdeasService{client: client, logger: logger}
}

// GenerateIdeas forwards the seed keywords to generateKeywordIdeas and
// maps each result carrying metrics into an Idea. Only the first upstream
// page is surfaced; the limit is passed through as the page size.
func (s *IdeasService) GenerateIdeas(ctx context.Context, query *ads.KeywordIdeasQuery) ([]ads.Idea, error) {
	normalized, err := query.Normalize()
	if err != nil {
		return nil, err
	}
	customerID := ads.NormalizeCustomerID(normalized.CustomerID)

	payload := &googleads.KeywordIdeasRequest{
		CustomerID:         customerID,
		KeywordSeed:        googleads.KeywordSeed{Keywords: normalized.Seeds},
		Language:           "languageConstants/" + normalized.Language,
		GeoTargetConstants: []string{"geoTargetConstants/" + normalized.Geo},
		PageSize:           normalized.Limit,
	}

	var out googleads.KeywordIdeasResponse
	if err := s.client.Post(ctx, fmt.Sprintf("customers/%s:generateKeywordIdeas", customerID), payload, &out); err != nil {
		s.logger.Error("keyword idea generation failed",
			zap.String("customer_id", customerID),
			zap.Strings("seeds", normalized.Seeds),
			zap.Error(err),
		)
		return nil, err
	}

	ideas := make([]ads.Idea, 0, len(out.Results))
	for _, result := range out.Results {
		if result.KeywordIdeaMetrics == nil {
			continue
		}
		m := result.KeywordIdeaMetrics
		competition := m.Competition
		if competition == "" {
			competition = "UNSPECIFIED"
		}
		ideas = append(ideas, ads.Idea{
			Text:               result.Text,
			AvgMonthlySearches: int64(m.AvgMonthlySearches),
			Competition:        competition,
			BidLowMicros:       int64(m.LowTopOfPageBidMicros),
			BidHighMicros:      int64(m.HighTopOfPageBidMicros),
		})
	}
	return ideas, nil
}
