package adgroup

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"adsgateway-service/internal/domain/ads"
	"adsgateway-service/internal/googleads"
	"adsgateway-service/internal/pkg/apierror"
)

// keywordBatchSize is the upstream's own per-mutate operation limit.
const keywordBatchSize = 5000

type AdGroupService struct {
	client googleads.Caller
	logger *zap.Logger
}

func NewAdGroupService(client googleads.Caller, logger *zap.Logger) *AdGroupService {
	return &AdGroupService{client: client, logger: logger}
}

// CreateAdGroup creates an ad group under the referenced campaign and
// attaches its keywords in batches. Batch outcomes are independent and
// reported in-band; the response always satisfies
// KeywordsAdded + KeywordsFailed == TotalKeywords.
func (s *AdGroupService) CreateAdGroup(ctx context.Context, req *ads.CreateAdGroupRequest) (*ads.AdGroupResponse, error) {
	normalized, err := req.Normalize()
	if err != nil {
		return nil, err
	}
	customerID, campaignID, err := ads.ParseCampaignResource(normalized.CampaignID)
	if err != nil {
		return nil, apierror.Validation("campaign_id", err.Error())
	}
	customerID = ads.NormalizeCustomerID(customerID)

	if err := s.checkCampaign(ctx, customerID, campaignID); err != nil {
		return nil, err
	}

	adGroupPayload := &googleads.AdGroup{
		Name:         normalized.AdGroupName,
		Status:       string(normalized.Status),
		Campaign:     ads.CampaignResource(customerID, campaignID),
		Type:         "SEARCH_STANDARD",
		CPCBidMicros: ads.Micros(normalized.MaxCPC),
	}
	var adGroupRes googleads.CreateResult
	if err := s.client.Post(ctx, fmt.Sprintf("customers/%s/adGroups", customerID), adGroupPayload, &adGroupRes); err != nil {
		s.logger.Error("ad group creation failed",
			zap.String("customer_id", customerID),
			zap.String("campaign_id", campaignID),
			zap.Error(err),
		)
		return nil, err
	}
	adGroupID := ads.LastPathSegment(adGroupRes.ResourceName)

	added, failed := s.addKeywords(ctx, customerID, adGroupRes.ResourceName, string(normalized.Status), normalized.Keywords)

	s.logger.Info("ad group created",
		zap.String("customer_id", customerID),
		zap.String("ad_group_id", adGroupID),
		zap.Int("keywords_added", added),
		zap.Int("keywords_failed", len(failed)),
	)
	return &ads.AdGroupResponse{
		Success:   true,
		AdGroupID: adGroupID,
		Message: fmt.Sprintf("Ad group '%s' created successfully with ID: %s. Keywords added: %d/%d",
			normalized.AdGroupName, adGroupID, added, len(normalized.Keywords)),
		KeywordsAdded:  added,
		KeywordsFailed: len(failed),
		FailedKeywords: failed,
		TotalKeywords:  len(normalized.Keywords),
	}, nil
}

// checkCampaign verifies the referenced campaign exists and is not
// removed. The lookup itself is best-effort: a failed search is logged
// and ignored, but a search that definitively reports the campaign absent
// or REMOVED fails the request.
func (s *AdGroupService) checkCampaign(ctx context.Context, customerID, campaignID string) error {
	query := fmt.Sprintf("SELECT campaign.id, campaign.status FROM campaign WHERE campaign.id = %s", campaignID)
	var out googleads.SearchResponse
	if err := s.client.Post(ctx, fmt.Sprintf("customers/%s/googleAds:search", customerID), &googleads.SearchRequest{Query: query}, &out); err != nil {
		s.logger.Warn("campaign existence check failed, continuing",
			zap.String("customer_id", customerID),
			zap.String("campaign_id", campaignID),
			zap.Error(err),
		)
		return nil
	}
	if len(out.Results) == 0 {
		return apierror.Newf(apierror.KindNotFound, "campaign %s not found under customer %s", campaignID, customerID)
	}
	if c := out.Results[0].Campaign; c != nil && c.Status == "REMOVED" {
		return apierror.Newf(apierror.KindNotFound, "campaign %s has been removed", campaignID)
	}
	return nil
}

// addKeywords partitions keywords into mutate batches of at most 5000 and
// issues one call per batch. A failed batch marks every keyword in it
// failed with the batch's error; a succeeded batch counts all of its
// keywords added.
func (s *AdGroupService) addKeywords(ctx context.Context, customerID, adGroupResource, status string, keywords []string) (int, []ads.FailedKeyword) {
	added := 0
	failed := make([]ads.FailedKeyword, 0)

	for start := 0; start < len(keywords); start += keywordBatchSize {
		batch := keywords[start:min(start+keywordBatchSize, len(keywords))]
		ops := make([]googleads.AdGroupCriterionOperation, len(batch))
		for i, kw := range batch {
			ops[i] = googleads.AdGroupCriterionOperation{
				Create: &googleads.AdGroupCriterion{
					AdGroup: adGroupResource,
					Status:  status,
					Keyword: &googleads.KeywordInfo{Text: kw, MatchType: "PHRASE"},
				},
			}
		}

		var res googleads.MutateResponse
		err := s.client.Post(ctx, fmt.Sprintf("customers/%s/adGroupCriteria:mutate", customerID),
			&googleads.AdGroupCriterionMutate{Operations: ops}, &res)
		if err != nil {
			msg := apierror.As(err).Message
			s.logger.Warn("keyword batch failed",
				zap.String("ad_group", adGroupResource),
				zap.Int("batch_size", len(batch)),
				zap.Error(err),
			)
			for _, kw := range batch {
				failed = append(failed, ads.FailedKeyword{Keyword: kw, Error: msg})
			}
			continue
		}
		added += len(batch)
	}
	return added, failed
}
