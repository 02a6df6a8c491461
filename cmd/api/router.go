package main

import (
	"github.com/gin-gonic/gin"

	"gallery-backend/internal/shared/middleware"
	"gallery-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler)

		setupAuthRoutes(v1, c)
		setupArtworkRoutes(v1, c)
		setupArchiveRoutes(v1, c)
		setupUploadRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", c.SessionHandler.Login)
	}
}

// ========================================
// ARTWORK ROUTES
// ========================================
func setupArtworkRoutes(v1 *gin.RouterGroup, c *container.Container) {
	session := middleware.Session(c.JWTManager, c.Config.Auth.Enforce)

	artworks := v1.Group("/artworks")
	{
		artworks.GET("", c.ArtworkHandler.List)
		artworks.POST("", session, c.ArtworkHandler.Create)
		artworks.PUT("/:id", session, c.ArtworkHandler.Update)
		artworks.DELETE("/:id", session, c.ArtworkHandler.Delete)
	}
}

// ========================================
// ARCHIVE ROUTES
// ========================================
func setupArchiveRoutes(v1 *gin.RouterGroup, c *container.Container) {
	session := middleware.Session(c.JWTManager, c.Config.Auth.Enforce)

	archive := v1.Group("/archive")
	{
		archive.GET("", c.ArchiveHandler.List)
		archive.POST("", session, c.ArchiveHandler.Create)
		archive.DELETE("/:id", session, c.ArchiveHandler.Delete)
		archive.DELETE("", session, c.ArchiveHandler.Reset)
	}
}

// ========================================
// UPLOAD ROUTES
// ========================================
func setupUploadRoutes(v1 *gin.RouterGroup, c *container.Container) {
	session := middleware.Session(c.JWTManager, c.Config.Auth.Enforce)

	v1.POST("/upload-image", session, c.UploadHandler.Upload)
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}
