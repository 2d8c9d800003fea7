package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/kokotatan/swipecut/api/health"
	photosAPI "github.com/kokotatan/swipecut/api/photos"
	"github.com/kokotatan/swipecut/api/segments"
	"github.com/kokotatan/swipecut/api/types"
	"github.com/kokotatan/swipecut/api/version"
	"github.com/kokotatan/swipecut/api/videos"
	_ "github.com/kokotatan/swipecut/docs/swagger"
	"github.com/kokotatan/swipecut/internal/services/export"
	"github.com/kokotatan/swipecut/internal/services/ingest"
	photosService "github.com/kokotatan/swipecut/internal/services/photos"
	"github.com/kokotatan/swipecut/internal/services/registry"
	"github.com/kokotatan/swipecut/pkg/config"
	"github.com/kokotatan/swipecut/pkg/download"
	"github.com/kokotatan/swipecut/pkg/ffmpeg"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Load config for API routes
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if deps == nil {
		deps = &types.Dependencies{}
	}

	if cfg.Security.EnableCORS {
		engine.Use(CORS(cfg.Security.CORSOrigins))
	}

	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// API v1 routes
	v1 := engine.Group("/api/v1")

	deps.UploadDir = cfg.Storage.UploadDir
	deps.DefaultChunkSeconds = cfg.Segmenting.DefaultChunkSeconds
	deps.PhotosPageSize = cfg.Photos.PageSize

	// Initialize photo library client if not set
	if deps.PhotosClient == nil {
		deps.PhotosClient = photosService.NewClient(photosService.Config{
			ClientID:     cfg.Photos.ClientID,
			ClientSecret: cfg.Photos.ClientSecret,
			RedirectURL:  cfg.Photos.RedirectURL,
			TokenPath:    cfg.Photos.TokenPath,
			Timeout:      cfg.Photos.FetchTimeout,
		})
	}

	// Initialize the media downloader if not set
	if deps.Downloader == nil {
		deps.Downloader = download.NewDownloader(download.Options{
			MaxSize:       cfg.Photos.MaxFetchBytes,
			Timeout:       cfg.Photos.FetchTimeout,
			UserAgent:     "SwipeCut/1.0",
			ValidateVideo: true,
		})
	}

	// Initialize services if database is available
	if deps.DB != nil && deps.DB.DB != nil {
		if deps.RegistryService == nil {
			deps.RegistryService = registry.NewService(registry.NewRepository(deps.DB.DB))
		}

		if deps.IngestService == nil {
			splitter := ffmpeg.New(
				cfg.Segmenting.FFmpegPath,
				cfg.Segmenting.FFprobePath,
				cfg.Segmenting.FFmpegTimeout,
			)
			deps.IngestService = ingest.NewService(deps.RegistryService, splitter, cfg.Storage.SegmentsDir)
		}

		if deps.ExportService == nil {
			deps.ExportService = export.NewService(deps.RegistryService, cfg.Storage.ExportDir)
		}

		// Register video routes. Ingestion accepts whole media files, so the
		// group carries its own body limit and a stricter rate limit.
		videoGroup := v1.Group("/videos")
		videoGroup.Use(RequestSizeLimitWithSize(cfg.Server.MaxUploadBytes))
		ingestMiddleware := PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 1, 2)
		reviewMiddleware := PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20)
		videos.RegisterRoutes(videoGroup, deps, ingestMiddleware, reviewMiddleware)

		// Register segment routes with general rate limiting (10 req/s, burst of 20)
		segmentGroup := v1.Group("/segments")
		segmentGroup.Use(RequestSizeLimit())
		segmentGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
		segments.RegisterRoutes(segmentGroup, deps)

		// Register photo library routes with strict rate limiting (5 req/s, burst of 10)
		photosGroup := v1.Group("/photos")
		photosGroup.Use(RequestSizeLimit())
		photosGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 5, 10))
		photosAPI.RegisterRoutes(photosGroup, deps)
	}

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
