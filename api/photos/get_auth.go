package photos

import (
	"github.com/gin-gonic/gin"
	"github.com/kokotatan/swipecut/api/types"
)

// GetAuthURL returns the provider consent URL the user opens in a browser
// @Summary Provider auth URL
// @Description Returns the OAuth consent URL for the photo library provider
// @Tags photos
// @Produce json
// @Success 200 {object} types.AuthURLResponse
// @Router /api/v1/photos/auth/url [get]
func GetAuthURL(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		types.SendSuccess(c, types.AuthURLResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			AuthURL:      deps.PhotosClient.AuthURL(),
		})
	}
}

// GetAuthCallback completes the OAuth flow with the provider's callback code
// @Summary Provider auth callback
// @Description Exchanges the callback code and stores the authorization
// @Tags photos
// @Produce json
// @Param code query string true "Authorization code"
// @Success 200 {object} types.BaseResponse
// @Failure 400 {object} types.ErrorResponse
// @Failure 502 {object} types.ErrorResponse
// @Router /api/v1/photos/auth/callback [get]
func GetAuthCallback(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Query("code")
		if code == "" {
			types.SendBadRequest(c, "Missing authorization code")
			return
		}

		if err := deps.PhotosClient.Exchange(c.Request.Context(), code); err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, types.BaseResponse{
			Status:  types.StatusOK,
			Message: "Authorization stored",
		})
	}
}
