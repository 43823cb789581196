package handler

import (
	"net/http"

	"spigot-link/internal/handler/api"
	"spigot-link/internal/handler/middleware"
	"spigot-link/internal/pkg/config"
	"spigot-link/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	promotionHandler *api.PromotionHandler,
	linkHandler *api.LinkHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, promotionHandler, linkHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	promotionHandler *api.PromotionHandler,
	linkHandler *api.LinkHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		promotions := apiGroup.Group("/promotions")
		{
			promotions.POST("", promotionHandler.Start)
			promotions.POST("/confirm", promotionHandler.Confirm)
			promotions.DELETE("/:discord_id",
				authMiddleware.RequireRoleAtLeast(jwt.RoleAdmin), promotionHandler.Cancel)
		}

		links := apiGroup.Group("/links")
		{
			links.GET("", linkHandler.List)
			links.GET("/:discord_id", linkHandler.Get)
			links.DELETE("/:discord_id",
				authMiddleware.RequireRoleAtLeast(jwt.RoleAdmin), linkHandler.Unlink)
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}
