package campaign

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"adsgateway-service/internal/domain/ads"
	"adsgateway-service/internal/pkg/apierror"
	"adsgateway-service/internal/pkg/response"
)

// CampaignCreator is the slice of the campaign service this handler needs.
type CampaignCreator interface {
	CreateCampaign(ctx context.Context, req *ads.CreateCampaignRequest) (*ads.CampaignResponse, error)
}

type CampaignHandler struct {
	campaignService CampaignCreator
}

func NewCampaignHandler(campaignService CampaignCreator) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService}
}

// CreateCampaign serves POST /create-campaign.
func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	var req ads.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apierror.Wrap(apierror.KindValidation, "invalid request body", err))
		return
	}

	result, err := h.campaignService.CreateCampaign(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}
