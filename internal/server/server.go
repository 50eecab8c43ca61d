package server

import (
	"os"
	"strings"

	"github.com/enriquevdb/compliance-engine/internal/handlers"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with CORS and all routes registered.
func NewRouter(common *handlers.CommonServices) *gin.Engine {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Request-Id")
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	router.Use(cors.New(corsConfig))

	registerRoutes(router, common)
	return router
}

func registerRoutes(router *gin.Engine, common *handlers.CommonServices) {
	healthHandler := handlers.NewHealthHandler()
	complianceHandler := handlers.NewComplianceHandler(common)

	router.GET("/health", healthHandler.Health)

	v1 := router.Group("/api/v1")
	{
		compliance := v1.Group("/compliance")
		{
			compliance.POST("/calculate", complianceHandler.Calculate)
			compliance.GET("/rates/:state", complianceHandler.GetJurisdictionRates)
		}
	}
}
