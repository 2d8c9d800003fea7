package segments

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/kokotatan/swipecut/api/types"
)

// PostDecision records a keep/drop decision for a segment. Re-posting the
// same decision succeeds without changing anything; switching between keep
// and drop is allowed at any time.
// @Summary Record a decision
// @Description Marks a segment as kept or dropped
// @Tags segments
// @Accept json
// @Produce json
// @Param id path string true "Segment ID"
// @Param request body types.DecisionRequest true "Decision"
// @Success 200 {object} types.SegmentResponse
// @Failure 400 {object} types.ErrorResponse
// @Failure 404 {object} types.ErrorResponse
// @Router /api/v1/segments/{id}/decision [post]
func PostDecision(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		segmentID := c.Param("id")

		var req types.DecisionRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		segment, err := deps.RegistryService.UpdateDecision(c.Request.Context(), segmentID, req.Decision)
		if err != nil {
			log.Printf("[WARN] Decision %q for segment %s rejected: %v", req.Decision, segmentID, err)
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, types.SegmentResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Segment:      types.ToSegment(segment),
		})
	}
}
