package videos

import (
	"github.com/gin-gonic/gin"
	"github.com/kokotatan/swipecut/api/types"
)

// GetNext returns the lowest-indexed undecided segment of a video
// @Summary Next undecided segment
// @Description Returns the next segment awaiting a decision, or done=true
// @Tags videos
// @Produce json
// @Param id path string true "Video ID"
// @Success 200 {object} types.NextSegmentResponse
// @Failure 404 {object} types.ErrorResponse
// @Router /api/v1/videos/{id}/next [get]
func GetNext(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		videoID := c.Param("id")

		segment, done, err := deps.RegistryService.NextPending(c.Request.Context(), videoID)
		if err != nil {
			types.SendError(c, err)
			return
		}

		response := types.NextSegmentResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Done:         done,
		}
		if segment != nil {
			s := types.ToSegment(segment)
			response.Segment = &s
		}

		types.SendSuccess(c, response)
	}
}
