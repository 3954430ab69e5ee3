package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/solanera/ventaflow/internal/config"
	"github.com/solanera/ventaflow/internal/server/http/handlers"
	"github.com/solanera/ventaflow/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.WorkflowFacade, health handlers.HealthChecker, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	operationHandler := handlers.NewOperationHandler(facade)
	documentHandler := handlers.NewDocumentHandler(facade, cfg.MaxUploadBytes)
	commentHandler := handlers.NewCommentHandler(facade)
	healthHandler := handlers.NewHealthHandler(health)

	engine.GET("/healthz", healthHandler.Check)

	api := engine.Group("/api")
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	authorized := api.Group("")
	authorized.Use(middleware.IdentityRequired(facade))

	operations := authorized.Group("/operations")
	operations.POST("", operationHandler.Create)
	operations.GET("", operationHandler.List)
	operations.GET("/:id", operationHandler.Get)
	operations.GET("/:id/steps/current", operationHandler.CurrentStep)
	operations.POST("/:id/steps/start", operationHandler.StartNext)
	operations.POST("/:id/steps/complete", operationHandler.CompleteCurrent)
	operations.POST("/:id/steps/:stepID/documents", documentHandler.Upload)

	steps := authorized.Group("/steps")
	steps.GET("/:id/documents", documentHandler.List)
	steps.GET("/:id/comments", commentHandler.List)
	steps.POST("/:id/comments", commentHandler.Add)

	documents := authorized.Group("/documents")
	documents.POST("/:id/review", documentHandler.Review)

	return engine
}
