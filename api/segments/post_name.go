package segments

import (
	"github.com/gin-gonic/gin"
	"github.com/kokotatan/swipecut/api/types"
)

// PostName sets the reviewer-supplied name for a segment. Any segment can
// be named regardless of its decision state.
// @Summary Name a segment
// @Description Sets the display name used for exported files
// @Tags segments
// @Accept json
// @Produce json
// @Param id path string true "Segment ID"
// @Param request body types.NameRequest true "Name"
// @Success 200 {object} types.SegmentResponse
// @Failure 400 {object} types.ErrorResponse
// @Failure 404 {object} types.ErrorResponse
// @Router /api/v1/segments/{id}/name [post]
func PostName(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		segmentID := c.Param("id")

		var req types.NameRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		segment, err := deps.RegistryService.UpdateName(c.Request.Context(), segmentID, req.Name)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, types.SegmentResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Segment:      types.ToSegment(segment),
		})
	}
}
