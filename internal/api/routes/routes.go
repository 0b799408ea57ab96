package routes

import (
	"train-console-backend/internal/api/handlers"
	"train-console-backend/internal/api/middleware"
	"train-console-backend/internal/auth"
	"train-console-backend/internal/config"
	"train-console-backend/internal/payments"
	"train-console-backend/internal/repository"
	"train-console-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. The billing
// service is returned alongside the router so the recovery sweep can be
// scheduled from main.
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, *service.BillingService) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize repositories
	orgRepo := repository.NewOrganizationRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	clusterRepo := repository.NewClusterRepository(db)
	jobRepo := repository.NewTrainingJobRepository(db)
	intentRepo := repository.NewBillingIntentRepository(db)

	// Initialize payment provider. A nil provider means the deployment
	// operates without billing.
	var provider payments.Provider
	if cfg.BillingEnabled() {
		provider = payments.NewStripeClient(cfg.StripeAPIKey, cfg.StripeAPIBaseURL)
	}

	// Initialize services
	clusterService := service.NewClusterService(clusterRepo, cfg)
	orgResolver := service.NewOrgResolverService(orgRepo, membershipRepo, clusterService, cfg)
	billingService := service.NewBillingService(orgRepo, intentRepo, jobRepo, provider, cfg)
	jobService := service.NewJobService(jobRepo, clusterService, billingService)

	// Initialize auth
	verifier := auth.NewTokenVerifier(cfg)
	authMiddleware := auth.NewAuthMiddleware(verifier)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	orgHandler := handlers.NewOrgHandler(orgResolver)
	clusterHandler := handlers.NewClusterHandler(orgResolver, clusterService)
	billingHandler := handlers.NewBillingHandler(orgResolver, billingService)
	jobHandler := handlers.NewJobHandler(orgResolver, jobService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Organization context
		v1.GET("/org", orgHandler.Resolve)
		v1.POST("/organizations/:id/promo-credits", orgHandler.AdjustPromoCredits)

		// Cluster registry
		clusters := v1.Group("/clusters")
		{
			clusters.GET("", clusterHandler.ListClusters)
			clusters.POST("", clusterHandler.CreateCluster)
			clusters.GET("/:id", clusterHandler.GetCluster)
			clusters.PUT("/:id", clusterHandler.UpdateCluster)
			clusters.DELETE("/:id", clusterHandler.DeleteCluster)
		}

		// Billing
		billing := v1.Group("/billing")
		{
			billing.GET("/overview", billingHandler.GetOverview)
			billing.POST("/promo-codes", billingHandler.ApplyPromoCode)
			billing.POST("/setup-intent", billingHandler.CreateSetupIntent)
			billing.POST("/payment-methods", billingHandler.AttachPaymentMethod)
			billing.DELETE("/payment-methods", billingHandler.DetachPaymentMethod)
			billing.PUT("/payment-methods/default", billingHandler.SetDefaultPaymentMethod)
			billing.PUT("/address", billingHandler.UpdateBillingAddress)
		}

		// Training jobs
		jobs := v1.Group("/jobs")
		{
			jobs.GET("", jobHandler.ListJobs)
			jobs.POST("", jobHandler.LaunchJob)
			jobs.GET("/:id", jobHandler.GetJob)
			jobs.PATCH("/:id/status", jobHandler.UpdateJobStatus)
		}
	}

	return router, billingService
}
