// internal/api/api.go
package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/lpgflow/backend-go/internal/api/handlers"
	"github.com/lpgflow/backend-go/internal/api/middleware"
	"github.com/lpgflow/backend-go/internal/service"
)

type Services struct {
	Dashboard *service.DashboardService
	Customer  *service.CustomerService
	Safety    *service.SafetyService
	Insight   *service.InsightService
}

func NewRouter(services *Services, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	defaultOrigins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	corsConfig := cors.Config{
		AllowOrigins:     defaultOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api/v1")

	if services != nil {
		if services.Dashboard != nil {
			dashboardHandler := handlers.NewDashboardHandler(services.Dashboard)
			dashboardGroup := apiGroup.Group("/dashboard")
			{
				dashboardGroup.GET("/overview", dashboardHandler.GetOverview)
				dashboardGroup.GET("/idle-assets", dashboardHandler.GetIdleAssets)
				dashboardGroup.GET("/reconciliation", dashboardHandler.GetReconciliation)
			}
			apiGroup.GET("/fleet/vehicles", dashboardHandler.GetVehicles)
		}

		if services.Safety != nil {
			safetyHandler := handlers.NewSafetyHandler(services.Safety)
			safetyGroup := apiGroup.Group("/safety")
			{
				safetyGroup.GET("/documents", safetyHandler.GetDocuments)
				safetyGroup.GET("/incidents", safetyHandler.GetIncidents)
			}
		}

		if services.Customer != nil {
			customerHandler := handlers.NewCustomerHandler(services.Customer)
			customerGroup := apiGroup.Group("/customers")
			{
				customerGroup.GET("/:id/cylinder", customerHandler.GetCylinderStatus)
				customerGroup.GET("/:id/transactions", customerHandler.GetTransactions)
			}
		}

		if services.Insight != nil {
			insightHandler := handlers.NewInsightHandler(services.Insight)
			insightGroup := apiGroup.Group("/insights")
			{
				insightGroup.POST("/forecast", insightHandler.PostForecast)
				insightGroup.POST("/idle-analysis", insightHandler.PostIdleAnalysis)
				insightGroup.POST("/safety-advice", insightHandler.PostSafetyAdvice)
			}
		}
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
