// internal/app/router.go
package app

import (
	accountsHandler "adsgateway-service/internal/handlers/accounts"
	adGroupHandler "adsgateway-service/internal/handlers/adgroup"
	campaignHandler "adsgateway-service/internal/handlers/campaign"
	healthHandler "adsgateway-service/internal/handlers/health"
	ideasHandler "adsgateway-service/internal/handlers/ideas"
	reportingHandler "adsgateway-service/internal/handlers/reporting"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	AccountsHandler  *accountsHandler.AccountsHandler
	CampaignHandler  *campaignHandler.CampaignHandler
	AdGroupHandler   *adGroupHandler.AdGroupHandler
	IdeasHandler     *ideasHandler.IdeasHandler
	ReportingHandler *reportingHandler.ReportingHandler
	HealthHandler    *healthHandler.HealthHandler
}

func SetupRouter(r *gin.Engine, h *Handlers) {
	r.GET("/", h.HealthHandler.Root)
	r.GET("/health", h.HealthHandler.Liveness)
	r.GET("/health/keyword-ideas", h.HealthHandler.KeywordIdeasReadiness)
	r.GET("/api/status", h.HealthHandler.Status)

	r.GET("/list-accounts", h.AccountsHandler.ListAccounts)
	r.GET("/keyword-ideas", h.IdeasHandler.KeywordIdeas)

	r.POST("/create-campaign", h.CampaignHandler.CreateCampaign)
	r.POST("/create-ad-group", h.AdGroupHandler.CreateAdGroup)

	r.GET("/campaign-performance", h.ReportingHandler.CampaignPerformance)
	r.GET("/ad-performance", h.ReportingHandler.AdPerformance)
	r.POST("/gaql", h.ReportingHandler.GAQL)
}
