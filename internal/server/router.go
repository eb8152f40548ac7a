package server

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/yungbote/portfolio-backend/internal/handlers"
	"github.com/yungbote/portfolio-backend/internal/logger"
	"github.com/yungbote/portfolio-backend/internal/middleware"
)

type RouterConfig struct {
	Log            *logger.Logger
	AuthHandler    *handlers.AuthHandler
	ProfileHandler *handlers.ProfileHandler
	UploadHandler  *handlers.UploadHandler
	AuthMiddleware *middleware.AuthMiddleware
	ExtraOrigins   []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(cfg.Log))
	router.Use(middleware.CORS(cfg.ExtraOrigins...))
	router.Use(otelgin.Middleware("portfolio-backend"))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)
	api := router.Group("/api")
	{
		api.POST("/login", cfg.AuthHandler.Login)
		api.GET("/profile", cfg.ProfileHandler.Get)
	}

	// ===============
	// || Protected ||
	// ===============
	protected := router.Group("/api")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	protected.POST("/profile", cfg.ProfileHandler.Replace)
	protected.POST("/upload", cfg.UploadHandler.Upload)

	return router
}
