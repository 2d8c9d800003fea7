package segments

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/kokotatan/swipecut/api/types"
)

// GetMedia serves the raw media file of a segment for preview playback
// @Summary Segment media
// @Description Serves the segment's media file
// @Tags segments
// @Produce video/mp4
// @Param id path string true "Segment ID"
// @Success 200 {file} binary
// @Failure 404 {object} types.ErrorResponse
// @Router /api/v1/segments/{id}/media [get]
func GetMedia(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		segmentID := c.Param("id")

		segment, err := deps.RegistryService.GetSegment(c.Request.Context(), segmentID)
		if err != nil {
			types.SendError(c, err)
			return
		}

		if _, err := os.Stat(segment.Path); err != nil {
			types.SendNotFound(c, "Segment media file not found")
			return
		}

		// http.ServeFile under the hood, so range requests work for scrubbing
		c.File(segment.Path)
	}
}
