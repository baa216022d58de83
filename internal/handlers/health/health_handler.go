package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"adsgateway-service/internal/config"
	"adsgateway-service/internal/pkg/response"
)

const serviceVersion = "1.0.0"

type HealthHandler struct {
	cfg     config.AppConfig
	started time.Time
}

func NewHealthHandler(cfg config.AppConfig) *HealthHandler {
	return &HealthHandler{cfg: cfg, started: time.Now()}
}

// Root serves GET /.
func (h *HealthHandler) Root(c *gin.Context) {
	response.JSON(c, http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Google Ads gateway is running",
	})
}

// Liveness serves GET /health.
func (h *HealthHandler) Liveness(c *gin.Context) {
	response.JSON(c, http.StatusOK, gin.H{"status": "ok", "version": serviceVersion})
}

// KeywordIdeasReadiness serves GET /health/keyword-ideas. It probes the
// credential configuration the ideas path depends on; no upstream call is
// made, so the probe stays cheap enough for tight intervals.
func (h *HealthHandler) KeywordIdeasReadiness(c *gin.Context) {
	if err := h.cfg.GoogleAds.Validate(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "degraded",
			"component": "keyword-ideas",
			"reason":    err.Error(),
		})
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"status":    "ok",
		"component": "keyword-ideas",
	})
}

// Status serves GET /api/status with service metadata.
func (h *HealthHandler) Status(c *gin.Context) {
	response.JSON(c, http.StatusOK, gin.H{
		"status":         "ok",
		"service":        "ads-gateway",
		"version":        serviceVersion,
		"api_version":    h.cfg.GoogleAds.APIVersion,
		"environment":    h.cfg.Env,
		"uptime_seconds": int64(time.Since(h.started).Seconds()),
	})
}
