package routes

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"garden-backend/internal/api/handlers"
	"garden-backend/internal/api/middleware"
	"garden-backend/internal/cache"
	"garden-backend/internal/config"
	"garden-backend/internal/repository"
	"garden-backend/internal/service"
	"garden-backend/internal/sticker"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, projectCache *cache.ProjectCache) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	validate := validator.New()

	projectRepo := repository.NewProjectRepository(db)
	projectService := service.NewProjectService(projectRepo, validate, projectCache)

	uploads, err := service.NewUploadStore(cfg.UploadDir, cfg.MaxUploadBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare upload directory: %w", err)
	}

	composer := sticker.NewComposer(cfg.StickerAssetsDir, rand.New(rand.NewSource(time.Now().UnixNano())))

	healthHandler := handlers.NewHealthHandler(db)
	projectHandler := handlers.NewProjectHandler(projectService, uploads)
	stickerHandler := handlers.NewStickerHandler(projectService, composer)
	gardenHandler := handlers.NewGardenHandler(projectService)

	// Uploaded screenshots and raw sticker fragments are served as static files
	router.Static("/uploads", uploads.Dir())
	if info, err := os.Stat(cfg.StickerAssetsDir); err == nil && info.IsDir() {
		router.Static("/sticker-assets", cfg.StickerAssetsDir)
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		api.GET("/health", healthHandler.Health)

		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.GET("/search", projectHandler.SearchProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/:id", projectHandler.GetProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
			projects.POST("/:id/like", projectHandler.LikeProject)
			projects.PATCH("/:id/link", projectHandler.UpdateProjectLink)
			projects.PATCH("/:id/screenshot", projectHandler.UpdateProjectScreenshot)
			projects.GET("/:id/sticker", stickerHandler.ProjectSticker)
		}

		api.GET("/stickers/preview", stickerHandler.PreviewSticker)
		api.GET("/garden/layout", gardenHandler.Layout)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"success":    false,
			"message":    "endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, nil
}
