package videos

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/kokotatan/swipecut/api/types"
)

// GetArchive streams a ZIP of the kept segment files. Entries are stored
// uncompressed; the media bytes are exactly the segment files on disk.
// @Summary Export archive
// @Description Streams the kept segments as an uncompressed ZIP archive
// @Tags videos
// @Produce application/zip
// @Param id path string true "Video ID"
// @Success 200 {file} binary
// @Failure 404 {object} types.ErrorResponse
// @Router /api/v1/videos/{id}/export/archive [get]
func GetArchive(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		videoID := c.Param("id")

		c.Header("Content-Type", "application/zip")
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="video_%s_kept.zip"`, videoID))

		if err := deps.ExportService.Archive(c.Request.Context(), videoID, c.Writer); err != nil {
			log.Printf("[ERROR] Archive export for video %s failed: %v", videoID, err)

			// Once archive bytes are on the wire the status is committed;
			// only report the error if nothing was written yet
			if !c.Writer.Written() {
				c.Writer.Header().Del("Content-Disposition")
				types.SendError(c, err)
			}
			return
		}
	}
}
