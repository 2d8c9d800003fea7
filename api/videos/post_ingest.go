package videos

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kokotatan/swipecut/api/types"
	"github.com/kokotatan/swipecut/internal/services/ingest"
)

// PostIngest accepts a multipart video upload, splits it into fixed-length
// segments and registers the review session
// @Summary Upload a video
// @Description Uploads a video file and splits it into reviewable segments
// @Tags videos
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Video file"
// @Param chunk_sec formData int false "Segment length in seconds"
// @Success 201 {object} types.VideoResponse
// @Failure 400 {object} types.ErrorResponse
// @Failure 415 {object} types.ErrorResponse
// @Router /api/v1/videos [post]
func PostIngest(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			types.SendBadRequest(c, "Missing file upload")
			return
		}

		chunkSeconds := deps.DefaultChunkSeconds
		if raw := c.PostForm("chunk_sec"); raw != "" {
			chunkSeconds, err = strconv.Atoi(raw)
			if err != nil {
				types.SendBadRequest(c, "Invalid chunk_sec")
				return
			}
		}

		file, err := fileHeader.Open()
		if err != nil {
			log.Printf("[ERROR] Failed to open upload %s: %v", fileHeader.Filename, err)
			types.SendInternalError(c, "Failed to read upload")
			return
		}
		defer file.Close()

		source := &ingest.UploadSource{
			Reader:    file,
			Filename:  fileHeader.Filename,
			UploadDir: deps.UploadDir,
		}

		video, err := deps.IngestService.Ingest(c.Request.Context(), source, chunkSeconds)
		if err != nil {
			log.Printf("[ERROR] Ingestion of %s failed: %v", fileHeader.Filename, err)
			types.SendError(c, err)
			return
		}

		c.JSON(http.StatusCreated, types.ToVideoResponse(video))
	}
}
