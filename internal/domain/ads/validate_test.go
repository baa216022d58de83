package ads

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adsgateway-service/internal/pkg/apierror"
)

func validCampaignRequest() CreateCampaignRequest {
	return CreateCampaignRequest{
		CustomerID:   "987-318-6703",
		CampaignName: "Summer Sale",
		BudgetAmount: 100,
		GeoTargets:   []int64{2484},
		Status:       StatusPaused,
	}
}

func TestCreateCampaignRequestNormalize(t *testing.T) {
	t.Run("valid request canonicalized", func(t *testing.T) {
		req := validCampaignRequest()
		req.CampaignName = "  Summer Sale  "
		req.BudgetAmount = 99.999

		out, err := req.Normalize()
		require.NoError(t, err)
		assert.Equal(t, "9873186703", out.CustomerID)
		assert.Equal(t, "Summer Sale", out.CampaignName)
		assert.Equal(t, 100.0, out.BudgetAmount)
	})

	t.Run("rejections", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*CreateCampaignRequest)
		}{
			{"short customer id", func(r *CreateCampaignRequest) { r.CustomerID = "12345" }},
			{"non-numeric customer id", func(r *CreateCampaignRequest) { r.CustomerID = "98731867ab" }},
			{"empty name", func(r *CreateCampaignRequest) { r.CampaignName = "   " }},
			{"name too long", func(r *CreateCampaignRequest) { r.CampaignName = strings.Repeat("x", 256) }},
			{"angle bracket in name", func(r *CreateCampaignRequest) { r.CampaignName = "Sale <script>" }},
			{"quote in name", func(r *CreateCampaignRequest) { r.CampaignName = `Bob's "Deals"` }},
			{"zero budget", func(r *CreateCampaignRequest) { r.BudgetAmount = 0 }},
			{"negative budget", func(r *CreateCampaignRequest) { r.BudgetAmount = -5 }},
			{"budget over cap", func(r *CreateCampaignRequest) { r.BudgetAmount = 10000.01 }},
			{"no geo targets", func(r *CreateCampaignRequest) { r.GeoTargets = nil }},
			{"zero geo target", func(r *CreateCampaignRequest) { r.GeoTargets = []int64{0} }},
			{"negative geo target", func(r *CreateCampaignRequest) { r.GeoTargets = []int64{-1} }},
			{"empty status", func(r *CreateCampaignRequest) { r.Status = "" }},
			{"unknown status", func(r *CreateCampaignRequest) { r.Status = "RUNNING" }},
			{"lowercase status", func(r *CreateCampaignRequest) { r.Status = "paused" }},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := validCampaignRequest()
				tt.mutate(&req)
				_, err := req.Normalize()
				require.Error(t, err)
				assert.True(t, apierror.IsKind(err, apierror.KindValidation))
			})
		}
	})

	t.Run("budget rounds up to cap", func(t *testing.T) {
		req := validCampaignRequest()
		req.BudgetAmount = 9999.999
		out, err := req.Normalize()
		require.NoError(t, err)
		assert.Equal(t, 10000.0, out.BudgetAmount)
	})
}

func validAdGroupRequest() CreateAdGroupRequest {
	return CreateAdGroupRequest{
		CampaignID:  "customers/9873186703/campaigns/456",
		AdGroupName: "Brand Keywords",
		Keywords:    []string{"running shoes", "trail shoes"},
		MaxCPC:      1.50,
		Status:      StatusEnabled,
	}
}

func TestCreateAdGroupRequestNormalize(t *testing.T) {
	t.Run("valid request canonicalized", func(t *testing.T) {
		req := validAdGroupRequest()
		req.Keywords = []string{"  running shoes  ", "trail shoes"}
		req.MaxCPC = 1.499

		out, err := req.Normalize()
		require.NoError(t, err)
		assert.Equal(t, []string{"running shoes", "trail shoes"}, out.Keywords)
		assert.Equal(t, 1.5, out.MaxCPC)
	})

	t.Run("rejections", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*CreateAdGroupRequest)
		}{
			{"malformed campaign id", func(r *CreateAdGroupRequest) { r.CampaignID = "campaigns/456" }},
			{"short customer in campaign id", func(r *CreateAdGroupRequest) { r.CampaignID = "customers/123/campaigns/456" }},
			{"padded ad group name", func(r *CreateAdGroupRequest) { r.AdGroupName = " Brand " }},
			{"forbidden char in name", func(r *CreateAdGroupRequest) { r.AdGroupName = "Brand & Co" }},
			{"no keywords", func(r *CreateAdGroupRequest) { r.Keywords = nil }},
			{"too many keywords", func(r *CreateAdGroupRequest) {
				kws := make([]string, 101)
				for i := range kws {
					kws[i] = fmt.Sprintf("keyword %d", i)
				}
				r.Keywords = kws
			}},
			{"blank keyword", func(r *CreateAdGroupRequest) { r.Keywords = []string{"shoes", "   "} }},
			{"keyword too long", func(r *CreateAdGroupRequest) { r.Keywords = []string{strings.Repeat("k", 81)} }},
			{"forbidden char in keyword", func(r *CreateAdGroupRequest) { r.Keywords = []string{`"shoes"`} }},
			{"exact duplicate keyword", func(r *CreateAdGroupRequest) { r.Keywords = []string{"shoes", "shoes"} }},
			{"case-insensitive duplicate", func(r *CreateAdGroupRequest) { r.Keywords = []string{"Shoes", "shoes"} }},
			{"duplicate after trim", func(r *CreateAdGroupRequest) { r.Keywords = []string{"shoes", "  SHOES  "} }},
			{"zero bid", func(r *CreateAdGroupRequest) { r.MaxCPC = 0 }},
			{"bid below floor", func(r *CreateAdGroupRequest) { r.MaxCPC = 0.004 }},
			{"bid over cap", func(r *CreateAdGroupRequest) { r.MaxCPC = 100.01 }},
			{"unknown status", func(r *CreateAdGroupRequest) { r.Status = "ACTIVE" }},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := validAdGroupRequest()
				tt.mutate(&req)
				_, err := req.Normalize()
				require.Error(t, err)
				assert.True(t, apierror.IsKind(err, apierror.KindValidation))
			})
		}
	})

	t.Run("bid boundaries", func(t *testing.T) {
		for _, cpc := range []float64{0.01, 100} {
			req := validAdGroupRequest()
			req.MaxCPC = cpc
			_, err := req.Normalize()
			assert.NoError(t, err, "max_cpc %v", cpc)
		}
	})

	t.Run("hundred keywords accepted", func(t *testing.T) {
		req := validAdGroupRequest()
		kws := make([]string, 100)
		for i := range kws {
			kws[i] = fmt.Sprintf("keyword %d", i)
		}
		req.Keywords = kws
		_, err := req.Normalize()
		assert.NoError(t, err)
	})
}

func TestKeywordIdeasQueryNormalize(t *testing.T) {
	valid := KeywordIdeasQuery{
		CustomerID: "987-318-6703",
		Seeds:      []string{" coffee beans ", "espresso"},
		Geo:        "2484",
		Language:   "1003",
		Limit:      25,
	}

	out, err := valid.Normalize()
	require.NoError(t, err)
	assert.Equal(t, "9873186703", out.CustomerID)
	assert.Equal(t, []string{"coffee beans", "espresso"}, out.Seeds)

	tests := []struct {
		name   string
		mutate func(*KeywordIdeasQuery)
	}{
		{"no seeds", func(q *KeywordIdeasQuery) { q.Seeds = nil }},
		{"blank seed", func(q *KeywordIdeasQuery) { q.Seeds = []string{"  "} }},
		{"duplicate seed", func(q *KeywordIdeasQuery) { q.Seeds = []string{"Coffee", "coffee"} }},
		{"non-numeric geo", func(q *KeywordIdeasQuery) { q.Geo = "MX" }},
		{"non-numeric language", func(q *KeywordIdeasQuery) { q.Language = "es" }},
		{"negative limit", func(q *KeywordIdeasQuery) { q.Limit = -1 }},
		{"limit over cap", func(q *KeywordIdeasQuery) { q.Limit = 10001 }},
		{"bad customer id", func(q *KeywordIdeasQuery) { q.CustomerID = "123" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := valid
			tt.mutate(&q)
			_, err := q.Normalize()
			require.Error(t, err)
			assert.True(t, apierror.IsKind(err, apierror.KindValidation))
		})
	}
}

func TestGAQLRequestNormalize(t *testing.T) {
	out, err := GAQLRequest{CustomerID: "987-318-6703", Query: " SELECT campaign.id FROM campaign "}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, "9873186703", out.CustomerID)
	assert.Equal(t, "SELECT campaign.id FROM campaign", out.Query)

	_, err = GAQLRequest{CustomerID: "9873186703", Query: "   "}.Normalize()
	assert.True(t, apierror.IsKind(err, apierror.KindValidation))

	_, err = GAQLRequest{CustomerID: "abc", Query: "SELECT campaign.id FROM campaign"}.Normalize()
	assert.True(t, apierror.IsKind(err, apierror.KindValidation))
}
