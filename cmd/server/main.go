package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"cotizador/internal/catalog"
	"cotizador/internal/config"
	"cotizador/internal/crm"
	emailnoop "cotizador/internal/email/noop"
	"cotizador/internal/email/ses"
	"cotizador/internal/geo"
	"cotizador/internal/handler"
	"cotizador/internal/lookup"
	"cotizador/internal/port"
	"cotizador/internal/repository/postgres"
	"cotizador/internal/router"
	"cotizador/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	sessionRepo := postgres.NewSessionRepo(db)
	leadRepo := postgres.NewLeadRepo(db)
	userRepo := postgres.NewUserRepo(db)

	// Region directory: load at startup, degrade when the upstream is down.
	// Validation fails closed until a later lazy load succeeds.
	geoClient := geo.NewClient(&cfg.Geo)
	regionCache := lookup.NewCache(geoClient)
	loadCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := regionCache.Load(loadCtx); err != nil {
		log.Printf("region directory load failed, continuing without it: %v", err)
	}
	cancel()

	// Outbound providers
	var leadSender port.LeadSender
	switch cfg.CRM.Provider {
	case "http":
		leadSender = crm.NewHTTPSender(&cfg.CRM)
	default:
		leadSender = crm.NewNoopSender()
	}

	var emailSender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		emailSender = emailnoop.NewNoopSender()
	}

	// Product catalog and services
	products := catalog.Default()
	journeySvc := service.NewJourneyService(products, sessionRepo, regionCache)
	quoteSvc := service.NewQuoteService(products)
	regionSvc := service.NewRegionService(regionCache)
	leadSvc := service.NewLeadService(products, sessionRepo, leadRepo, regionCache, leadSender, emailSender)
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	reportSvc := service.NewReportService(leadRepo)

	// Initialize handlers
	journeyH := handler.NewJourneyHandler(journeySvc)
	quoteH := handler.NewQuoteHandler(quoteSvc)
	regionH := handler.NewRegionHandler(regionSvc)
	leadH := handler.NewLeadHandler(leadSvc)
	authH := handler.NewAuthHandler(authSvc)
	reportH := handler.NewReportHandler(reportSvc)
	healthH := handler.NewHealthHandler(db, regionCache)

	// Setup router
	r := router.Setup(cfg.CORS, authSvc, journeyH, quoteH, regionH, leadH, authH, reportH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
