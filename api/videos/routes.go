package videos

import (
	"github.com/gin-gonic/gin"
	"github.com/kokotatan/swipecut/api/types"
)

// RegisterRoutes registers video routes. Ingestion takes its own rate
// limit since each request does ffmpeg work.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, ingestMiddleware, reviewMiddleware gin.HandlerFunc) {
	// POST /api/v1/videos - Upload and segment a video
	router.POST("", ingestMiddleware, PostIngest(deps))

	// GET /api/v1/videos/:id/next - Next undecided segment
	router.GET("/:id/next", reviewMiddleware, GetNext(deps))

	// GET /api/v1/videos/:id/progress - Decision counts
	router.GET("/:id/progress", reviewMiddleware, GetProgress(deps))

	// GET /api/v1/videos/:id/export - Manifest of kept segments
	router.GET("/:id/export", reviewMiddleware, GetExport(deps))

	// GET /api/v1/videos/:id/export/archive - ZIP of kept segments
	router.GET("/:id/export/archive", reviewMiddleware, GetArchive(deps))
}
