package photos

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kokotatan/swipecut/api/types"
	"github.com/kokotatan/swipecut/internal/services/ingest"
)

// PostImport downloads one library video and ingests it like an upload
// @Summary Import a library video
// @Description Fetches a video from the photo library and segments it
// @Tags photos
// @Accept json
// @Produce json
// @Param request body types.ImportRequest true "Import request"
// @Success 201 {object} types.VideoResponse
// @Failure 400 {object} types.ErrorResponse
// @Failure 401 {object} types.ErrorResponse
// @Failure 502 {object} types.ErrorResponse
// @Router /api/v1/photos/import [post]
func PostImport(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.ImportRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		chunkSeconds := req.ChunkSeconds
		if chunkSeconds == 0 {
			chunkSeconds = deps.DefaultChunkSeconds
		}

		source := &ingest.PhotosSource{
			Provider:   deps.PhotosClient,
			Downloader: deps.Downloader,
			ItemID:     req.ItemID,
			UploadDir:  deps.UploadDir,
		}

		video, err := deps.IngestService.Ingest(c.Request.Context(), source, chunkSeconds)
		if err != nil {
			log.Printf("[ERROR] Import of library item %s failed: %v", req.ItemID, err)
			types.SendError(c, err)
			return
		}

		c.JSON(http.StatusCreated, types.ToVideoResponse(video))
	}
}
