package campaign

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"adsgateway-service/internal/domain/ads"
	"adsgateway-service/internal/googleads"
)

type CampaignService struct {
	client googleads.Caller
	logger *zap.Logger
}

func NewCampaignService(client googleads.Caller, logger *zap.Logger) *CampaignService {
	return &CampaignService{client: client, logger: logger}
}

// CreateCampaign runs the three-step creation sequence: budget, campaign,
// then one location criterion per geo target. The sequence is not atomic
// and there is no rollback; a budget or campaign failure aborts, while
// geo-criterion failures are logged and skipped so the campaign itself
// still succeeds.
func (s *CampaignService) CreateCampaign(ctx context.Context, req *ads.CreateCampaignRequest) (*ads.CampaignResponse, error) {
	normalized, err := req.Normalize()
	if err != nil {
		return nil, err
	}
	customerID := ads.NormalizeCustomerID(normalized.CustomerID)

	budget := &googleads.CampaignBudget{
		Name:           normalized.CampaignName + " Budget",
		AmountMicros:   ads.Micros(normalized.BudgetAmount),
		DeliveryMethod: "STANDARD",
	}
	var budgetRes googleads.CreateResult
	if err := s.client.Post(ctx, fmt.Sprintf("customers/%s/campaignBudgets", customerID), budget, &budgetRes); err != nil {
		s.logger.Error("campaign budget creation failed",
			zap.String("customer_id", customerID),
			zap.Error(err),
		)
		return nil, err
	}

	campaignPayload := &googleads.Campaign{
		Name:                   normalized.CampaignName,
		Status:                 string(normalized.Status),
		CampaignBudget:         budgetRes.ResourceName,
		AdvertisingChannelType: "SEARCH",
		BiddingStrategyType:    "MAXIMIZE_CONVERSIONS",
		TargetingSetting: &googleads.TargetingSetting{
			TargetRestrictions: googleads.TargetRestrictions{
				GeoTargetType: googleads.GeoTargetType{
					PositiveGeoTargetType: "PRESENCE_OR_INTEREST",
					NegativeGeoTargetType: "PRESENCE",
				},
			},
		},
	}
	var campaignRes googleads.CreateResult
	if err := s.client.Post(ctx, fmt.Sprintf("customers/%s/campaigns", customerID), campaignPayload, &campaignRes); err != nil {
		s.logger.Error("campaign creation failed",
			zap.String("customer_id", customerID),
			zap.String("campaign_name", normalized.CampaignName),
			zap.Error(err),
		)
		return nil, err
	}
	campaignID := ads.LastPathSegment(campaignRes.ResourceName)

	// Geo targeting is best-effort: a failed criterion never fails the
	// request.
	for _, geo := range normalized.GeoTargets {
		criterion := &googleads.CampaignCriterion{
			Campaign: campaignRes.ResourceName,
			Location: &googleads.LocationInfo{
				GeoTargetConstant: fmt.Sprintf("geoTargetConstants/%d", geo),
			},
		}
		if err := s.client.Post(ctx, fmt.Sprintf("customers/%s/campaignCriteria", customerID), criterion, nil); err != nil {
			s.logger.Warn("failed to attach geo target",
				zap.String("campaign", campaignRes.ResourceName),
				zap.Int64("geo_target", geo),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("campaign created",
		zap.String("customer_id", customerID),
		zap.String("campaign_id", campaignID),
		zap.String("campaign_name", normalized.CampaignName),
	)
	return &ads.CampaignResponse{
		Success:    true,
		CampaignID: campaignID,
		Message:    fmt.Sprintf("Campaign '%s' created successfully with ID: %s", normalized.CampaignName, campaignID),
	}, nil
}
