package reporting

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"adsgateway-service/internal/domain/ads"
	"adsgateway-service/internal/pkg/apierror"
	"adsgateway-service/internal/pkg/response"
)

// Reporter is the slice of the reporting service this handler needs.
type Reporter interface {
	CampaignPerformance(ctx context.Context, customerID string, days int) ([]ads.CampaignPerformanceRow, error)
	AdPerformance(ctx context.Context, customerID string, days int) ([]ads.AdPerformanceRow, error)
	Search(ctx context.Context, req *ads.GAQLRequest) ([]json.RawMessage, error)
}

type ReportingHandler struct {
	reportingService Reporter
}

func NewReportingHandler(reportingService Reporter) *ReportingHandler {
	return &ReportingHandler{reportingService: reportingService}
}

func (h *ReportingHandler) parseWindow(c *gin.Context) (string, int, bool) {
	customerID := c.Query("customer_id")
	if customerID == "" {
		response.Fail(c, apierror.Validation("customer_id", "customer_id is required"))
		return "", 0, false
	}
	days := 0
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			response.Fail(c, apierror.Validation("days", "days must be a non-negative integer"))
			return "", 0, false
		}
		days = n
	}
	return customerID, days, true
}

// CampaignPerformance serves GET /campaign-performance?customer_id&days.
func (h *ReportingHandler) CampaignPerformance(c *gin.Context) {
	customerID, days, ok := h.parseWindow(c)
	if !ok {
		return
	}
	rows, err := h.reportingService.CampaignPerformance(c.Request.Context(), customerID, days)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rows)
}

// AdPerformance serves GET /ad-performance?customer_id&days.
func (h *ReportingHandler) AdPerformance(c *gin.Context) {
	customerID, days, ok := h.parseWindow(c)
	if !ok {
		return
	}
	rows, err := h.reportingService.AdPerformance(c.Request.Context(), customerID, days)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rows)
}

// GAQL serves POST /gaql, forwarding a raw query and returning the
// unshaped result rows.
func (h *ReportingHandler) GAQL(c *gin.Context) {
	var req ads.GAQLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apierror.Wrap(apierror.KindValidation, "invalid request body", err))
		return
	}
	rows, err := h.reportingService.Search(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"results": rows})
}
