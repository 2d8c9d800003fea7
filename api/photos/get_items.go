package photos

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kokotatan/swipecut/api/types"
)

// GetItems lists video items in the external photo library
// @Summary List library videos
// @Description Lists videos available in the external photo library
// @Tags photos
// @Produce json
// @Param page_size query int false "Number of items to return"
// @Success 200 {object} types.PhotoItemsResponse
// @Failure 401 {object} types.ErrorResponse
// @Failure 502 {object} types.ErrorResponse
// @Router /api/v1/photos/items [get]
func GetItems(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		pageSize := deps.PhotosPageSize
		if raw := c.Query("page_size"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				types.SendBadRequest(c, "Invalid page_size")
				return
			}
			pageSize = parsed
		}

		items, err := deps.PhotosClient.ListVideos(c.Request.Context(), pageSize)
		if err != nil {
			types.SendError(c, err)
			return
		}

		apiItems := types.ToPhotoItems(items)
		types.SendSuccess(c, types.PhotoItemsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Items:        apiItems,
			Count:        len(apiItems),
		})
	}
}
