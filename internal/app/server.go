// internal/app/server.go
package app

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"adsgateway-service/internal/config"
	"adsgateway-service/internal/googleads"
	accountsHandler "adsgateway-service/internal/handlers/accounts"
	adGroupHandler "adsgateway-service/internal/handlers/adgroup"
	campaignHandler "adsgateway-service/internal/handlers/campaign"
	healthHandler "adsgateway-service/internal/handlers/health"
	ideasHandler "adsgateway-service/internal/handlers/ideas"
	reportingHandler "adsgateway-service/internal/handlers/reporting"
	"adsgateway-service/internal/middleware"
	"adsgateway-service/internal/pkg/retry"
	accountsUsecase "adsgateway-service/internal/service/accounts"
	adGroupUsecase "adsgateway-service/internal/service/adgroup"
	campaignUsecase "adsgateway-service/internal/service/campaign"
	ideasUsecase "adsgateway-service/internal/service/keywordideas"
	reportingUsecase "adsgateway-service/internal/service/reporting"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	http   *http.Server
	logger *zap.Logger
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	ctx := context.Background()

	// ----- Logger -----
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()
	s.logger = logger

	// ----- Upstream credentials -----
	creds, err := googleads.NewCredentials(ctx, s.cfg.GoogleAds)
	if err != nil {
		return fmt.Errorf("failed to load Google Ads credentials: %w", err)
	}

	// ----- Forwarder -----
	client := googleads.NewClient(creds, googleads.Options{
		Endpoint:   s.cfg.GoogleAds.Endpoint,
		APIVersion: s.cfg.GoogleAds.APIVersion,
		Timeout:    s.cfg.HTTPTimeout,
		Retry: retry.Policy{
			MaxAttempts: s.cfg.RetryMaxAttempts,
			BaseDelay:   s.cfg.RetryBaseDelay,
		},
		RequestsPerSecond: s.cfg.RequestsPerSecond,
		Burst:             s.cfg.RequestBurst,
	}, logger)

	// ----- Services (Usecases) -----
	accountsService := accountsUsecase.NewAccountsService(client, logger)
	campaignService := campaignUsecase.NewCampaignService(client, logger)
	adGroupService := adGroupUsecase.NewAdGroupService(client, logger)
	ideasService := ideasUsecase.NewIdeasService(client, logger)
	reportingService := reportingUsecase.NewReportingService(client, logger)

	// ----- Handlers -----
	handlers := &Handlers{
		AccountsHandler:  accountsHandler.NewAccountsHandler(accountsService),
		CampaignHandler:  campaignHandler.NewCampaignHandler(campaignService),
		AdGroupHandler:   adGroupHandler.NewAdGroupHandler(adGroupService),
		IdeasHandler:     ideasHandler.NewIdeasHandler(ideasService),
		ReportingHandler: reportingHandler.NewReportingHandler(reportingService),
		HealthHandler:    healthHandler.NewHealthHandler(s.cfg),
	}

	// ----- Middlewares -----
	s.engine.Use(
		middleware.RequestIDMiddleware(),
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(),
	)

	// ----- Router -----
	SetupRouter(s.engine, handlers)

	// ----- Start HTTP -----
	s.http = &http.Server{
		Addr:    s.cfg.HTTPAddr,
		Handler: s.engine,
	}
	log.Printf("server running on %s", s.cfg.HTTPAddr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests up to the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
