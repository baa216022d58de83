package campaign

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"adsgateway-service/internal/domain/ads"
	"adsgateway-service/internal/googleads"
	"adsgateway-service/internal/pkg/apierror"
)

type recordedCall struct {
	method string
	path   string
	body   any
}

// fakeCaller records outbound calls and answers them via respond.
type fakeCaller struct {
	calls   []recordedCall
	respond func(call recordedCall, out any) error
}

func (f *fakeCaller) Get(ctx context.Context, path string, out any) error {
	call := recordedCall{method: "GET", path: path}
	f.calls = append(f.calls, call)
	return f.respond(call, out)
}

func (f *fakeCaller) Post(ctx context.Context, path string, body any, out any) error {
	call := recordedCall{method: "POST", path: path, body: body}
	f.calls = append(f.calls, call)
	return f.respond(call, out)
}

func validRequest() *ads.CreateCampaignRequest {
	return &ads.CreateCampaignRequest{
		CustomerID:   "987-318-6703",
		CampaignName: "Summer Sale",
		BudgetAmount: 50,
		GeoTargets:   []int64{2484, 2840},
		Status:       ads.StatusPaused,
	}
}

func TestCreateCampaign(t *testing.T) {
	fake := &fakeCaller{respond: func(call recordedCall, out any) error {
		switch call.path {
		case "customers/9873186703/campaignBudgets":
			out.(*googleads.CreateResult).ResourceName = "customers/9873186703/campaignBudgets/111"
		case "customers/9873186703/campaigns":
			out.(*googleads.CreateResult).ResourceName = "customers/9873186703/campaigns/222"
		}
		return nil
	}}
	svc := NewCampaignService(fake, zap.NewNop())

	res, err := svc.CreateCampaign(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, "222", res.CampaignID)
	assert.Equal(t, "Campaign 'Summer Sale' created successfully with ID: 222", res.Message)

	require.Len(t, fake.calls, 4)

	budget := fake.calls[0].body.(*googleads.CampaignBudget)
	assert.Equal(t, "Summer Sale Budget", budget.Name)
	assert.Equal(t, int64(50_000_000), budget.AmountMicros)
	assert.Equal(t, "STANDARD", budget.DeliveryMethod)

	campaign := fake.calls[1].body.(*googleads.Campaign)
	assert.Equal(t, "Summer Sale", campaign.Name)
	assert.Equal(t, "PAUSED", campaign.Status)
	assert.Equal(t, "customers/9873186703/campaignBudgets/111", campaign.CampaignBudget)
	assert.Equal(t, "SEARCH", campaign.AdvertisingChannelType)
	assert.Equal(t, "MAXIMIZE_CONVERSIONS", campaign.BiddingStrategyType)
	require.NotNil(t, campaign.TargetingSetting)
	assert.Equal(t, "PRESENCE_OR_INTEREST", campaign.TargetingSetting.TargetRestrictions.GeoTargetType.PositiveGeoTargetType)

	first := fake.calls[2].body.(*googleads.CampaignCriterion)
	assert.Equal(t, "customers/9873186703/campaigns/222", first.Campaign)
	assert.Equal(t, "geoTargetConstants/2484", first.Location.GeoTargetConstant)
	second := fake.calls[3].body.(*googleads.CampaignCriterion)
	assert.Equal(t, "geoTargetConstants/2840", second.Location.GeoTargetConstant)
}

func TestCreateCampaignInvalidRequestMakesNoCalls(t *testing.T) {
	fake := &fakeCaller{respond: func(recordedCall, any) error { return nil }}
	svc := NewCampaignService(fake, zap.NewNop())

	req := validRequest()
	req.BudgetAmount = -1
	_, err := svc.CreateCampaign(context.Background(), req)

	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindValidation))
	assert.Empty(t, fake.calls)
}

func TestCreateCampaignBudgetFailureAborts(t *testing.T) {
	upstream := apierror.New(apierror.KindRateLimit, "API quota exceeded, try again later")
	fake := &fakeCaller{respond: func(recordedCall, any) error { return upstream }}
	svc := NewCampaignService(fake, zap.NewNop())

	_, err := svc.CreateCampaign(context.Background(), validRequest())

	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindRateLimit))
	assert.Len(t, fake.calls, 1)
}

func TestCreateCampaignCampaignFailureAborts(t *testing.T) {
	fake := &fakeCaller{}
	fake.respond = func(call recordedCall, out any) error {
		if len(fake.calls) == 1 {
			out.(*googleads.CreateResult).ResourceName = "customers/9873186703/campaignBudgets/111"
			return nil
		}
		return apierror.New(apierror.KindUpstream, "campaign rejected")
	}
	svc := NewCampaignService(fake, zap.NewNop())

	_, err := svc.CreateCampaign(context.Background(), validRequest())

	require.Error(t, err)
	assert.Len(t, fake.calls, 2)
}

func TestCreateCampaignGeoFailureIsSwallowed(t *testing.T) {
	fake := &fakeCaller{}
	fake.respond = func(call recordedCall, out any) error {
		switch call.path {
		case "customers/9873186703/campaignBudgets":
			out.(*googleads.CreateResult).ResourceName = "customers/9873186703/campaignBudgets/111"
		case "customers/9873186703/campaigns":
			out.(*googleads.CreateResult).ResourceName = "customers/9873186703/campaigns/222"
		case "customers/9873186703/campaignCriteria":
			return apierror.New(apierror.KindUpstream, "criterion rejected")
		}
		return nil
	}
	svc := NewCampaignService(fake, zap.NewNop())

	res, err := svc.CreateCampaign(context.Background(), validRequest())

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "222", res.CampaignID)
	// Both criteria were still attempted.
	assert.Len(t, fake.calls, 4)
}
