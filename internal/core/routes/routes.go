package routes

import (
	"os"

	"github.com/Da-0ldSaint/Asm/internal/core/container"
	"github.com/Da-0ldSaint/Asm/internal/middleware"
	"github.com/Da-0ldSaint/Asm/pkg/security"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func RegisterPublicRoutes(router *gin.Engine, c *container.Container) {
	c.LoginHandler.RegisterRoutes(router)
}

func RegisterProtectedRoutes(router *gin.Engine, c *container.Container) {
	protected := router.Group("/api")
	protected.Use(security.JWTMiddleware())

	c.ReferenceHandler.RegisterRoutes(protected)
	c.EmployeeHandler.RegisterRoutes(protected)
	c.AssetHandler.RegisterRoutes(protected)
	c.LedgerHandler.RegisterRoutes(protected)
	c.AlertHandler.RegisterRoutes(protected)
	c.DashboardHandler.RegisterRoutes(protected)
	c.UserHandler.RegisterRoutes(protected)
	if c.ExportHandler != nil {
		c.ExportHandler.RegisterRoutes(protected)
	}
}

func RegisterUtilityRoutes(router *gin.Engine, c *container.Container) {
	router.GET("/api/health", middleware.HealthCheckHandler())
	router.Static("/uploads", c.Storage.Dir())
}

func CORSMiddleware() gin.HandlerFunc {
	origin := os.Getenv("FRONTEND_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}

	config := cors.DefaultConfig()
	config.AllowOrigins = []string{origin}
	config.AllowCredentials = true
	config.AddAllowHeaders("Authorization")

	return cors.New(config)
}
