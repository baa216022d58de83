package adgroup

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"adsgateway-service/internal/domain/ads"
	"adsgateway-service/internal/pkg/apierror"
	"adsgateway-service/internal/pkg/response"
)

// AdGroupCreator is the slice of the ad-group service this handler needs.
type AdGroupCreator interface {
	CreateAdGroup(ctx context.Context, req *ads.CreateAdGroupRequest) (*ads.AdGroupResponse, error)
}

type AdGroupHandler struct {
	adGroupService AdGroupCreator
}

func NewAdGroupHandler(adGroupService AdGroupCreator) *AdGroupHandler {
	return &AdGroupHandler{adGroupService: adGroupService}
}

// CreateAdGroup serves POST /create-ad-group.
func (h *AdGroupHandler) CreateAdGroup(c *gin.Context) {
	var req ads.CreateAdGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apierror.Wrap(apierror.KindValidation, "invalid request body", err))
		return
	}

	result, err := h.adGroupService.CreateAdGroup(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}
