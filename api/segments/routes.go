package segments

import (
	"github.com/gin-gonic/gin"
	"github.com/kokotatan/swipecut/api/types"
)

// RegisterRoutes registers segment routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// POST /api/v1/segments/:id/decision - Record keep/drop
	router.POST("/:id/decision", PostDecision(deps))

	// POST /api/v1/segments/:id/name - Set display name
	router.POST("/:id/name", PostName(deps))

	// GET /api/v1/segments/:id/media - Serve segment media
	router.GET("/:id/media", GetMedia(deps))
}
