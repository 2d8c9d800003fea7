package videos

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/kokotatan/swipecut/api/types"
)

// GetExport returns the manifest of kept segments and writes a copy to the
// export directory. The manifest reflects the decision state at call time.
// @Summary Export manifest
// @Description Returns the kept segments as an ordered JSON manifest
// @Tags videos
// @Produce json
// @Param id path string true "Video ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} types.ErrorResponse
// @Router /api/v1/videos/{id}/export [get]
func GetExport(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		videoID := c.Param("id")

		manifest, manifestPath, err := deps.ExportService.WriteManifestFile(c.Request.Context(), videoID)
		if err != nil {
			log.Printf("[ERROR] Manifest export for video %s failed: %v", videoID, err)
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, gin.H{
			"status":        types.StatusOK,
			"manifest":      manifest,
			"manifest_path": manifestPath,
		})
	}
}
