package photos

import (
	"github.com/gin-gonic/gin"
	"github.com/kokotatan/swipecut/api/types"
)

// RegisterRoutes registers photo library routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/photos/auth/url - OAuth consent URL
	router.GET("/auth/url", GetAuthURL(deps))

	// GET /api/v1/photos/auth/callback - OAuth code exchange
	router.GET("/auth/callback", GetAuthCallback(deps))

	// GET /api/v1/photos/items - List library videos
	router.GET("/items", GetItems(deps))

	// POST /api/v1/photos/import - Ingest a library video
	router.POST("/import", PostImport(deps))
}
