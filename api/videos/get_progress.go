package videos

import (
	"github.com/gin-gonic/gin"
	"github.com/kokotatan/swipecut/api/types"
)

// GetProgress returns the live decision counts for a video
// @Summary Review progress
// @Description Returns total, kept, dropped and pending segment counts
// @Tags videos
// @Produce json
// @Param id path string true "Video ID"
// @Success 200 {object} types.ProgressResponse
// @Failure 404 {object} types.ErrorResponse
// @Router /api/v1/videos/{id}/progress [get]
func GetProgress(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		videoID := c.Param("id")

		progress, err := deps.RegistryService.Progress(c.Request.Context(), videoID)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, types.ToProgressResponse(progress))
	}
}
