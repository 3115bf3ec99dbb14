package v1

import (
	"crypto/subtle"
	"net/http"

	"github.com/cityinfo/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) initAuthRoutes(api *gin.RouterGroup) {
	authGroup := api.Group("/auth")
	authGroup.POST("/token", h.createToken)
}

type createTokenRequest struct {
	UserName string `json:"user_name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type createTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// @Summary Create Token
// @Tags Auth
// @Description Exchange credentials for a bearer token carrying the city claim
// @ModuleID createToken
// @Accept  json
// @Produce  json
// @Param input body createTokenRequest true "credentials"
// @Success 200 {object} createTokenResponse
// @Failure 400 {object} ValidationErrorStruct
// @Failure 401 {object} ErrorStruct
// @Router /auth/token [post]
func (h *Handler) createToken(c *gin.Context) {
	var req createTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	apiUser := h.config.Auth.ApiUser
	if apiUser.UserName == "" || apiUser.Password == "" ||
		subtle.ConstantTimeCompare([]byte(req.UserName), []byte(apiUser.UserName)) != 1 ||
		subtle.ConstantTimeCompare([]byte(req.Password), []byte(apiUser.Password)) != 1 {
		errorResponse(c, http.StatusUnauthorized, InvalidCredentialsCode)
		return
	}

	token, ttl, err := h.tokenManager.NewJWT(apiUser.UserName, apiUser.City)
	if err != nil {
		logger.Error("create token failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, createTokenResponse{
		AccessToken: token,
		ExpiresIn:   int64(ttl.Seconds()),
	})
}
