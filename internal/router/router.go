package router

import (
	"github.com/gin-gonic/gin"

	"cotizador/internal/config"
	"cotizador/internal/domain"
	"cotizador/internal/handler"
	"cotizador/internal/middleware"
	"cotizador/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg config.CORSConfig,
	authSvc service.AuthService,
	journeyH *handler.JourneyHandler,
	quoteH *handler.QuoteHandler,
	regionH *handler.RegionHandler,
	leadH *handler.LeadHandler,
	authH *handler.AuthHandler,
	reportH *handler.ReportHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Public widget routes
	journeys := v1.Group("/journeys")
	journeys.POST("", journeyH.Start)
	journeys.GET("/:id", journeyH.Get)
	journeys.POST("/:id/advance", journeyH.Advance)
	journeys.POST("/:id/retreat", journeyH.Retreat)
	journeys.POST("/:id/reset", journeyH.Reset)

	v1.GET("/products", quoteH.Products)
	v1.POST("/quotes", quoteH.Compute)
	v1.GET("/regions/search", regionH.Search)
	v1.POST("/leads", leadH.Submit)

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.RefreshToken)

	// Admin routes - lead reporting
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(authSvc))
	admin.Use(middleware.RequireRole(domain.RoleAdmin, domain.RoleAnalyst))
	admin.GET("/leads", reportH.ListLeads)
	admin.GET("/leads/export", middleware.RequireRole(domain.RoleAdmin), reportH.ExportLeads)

	return r
}
