package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/cityinfo/backend/pkg/auth"
	"github.com/cityinfo/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const (
	authorizationHeader = "Authorization"
	claimsCtx           = "authClaims"
)

func (h *Handler) userIdentityMiddleware(c *gin.Context) {
	claims, err := h.parseAuthHeader(c)
	if err != nil {
		if !errors.Is(err, jwt.ErrTokenExpired) {
			logger.Error("parse auth header failed", zap.Error(err))
		}
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	c.Set(claimsCtx, claims)
}

// cityClaimMiddleware gates mutating endpoints on the token's city claim.
// The policy check happens here, before any core logic runs.
func (h *Handler) cityClaimMiddleware(c *gin.Context) {
	claims, err := h.getClaims(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	if claims.City != h.config.Auth.RequiredCityClaim {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}
}

func (h *Handler) parseAuthHeader(c *gin.Context) (*auth.Claims, error) {
	header := c.GetHeader(authorizationHeader)
	if header == "" {
		return nil, errors.New("empty auth header")
	}

	headerParts := strings.Split(header, " ")
	if len(headerParts) != 2 || headerParts[0] != "Bearer" {
		return nil, errors.New("invalid auth header")
	}

	if len(headerParts[1]) == 0 {
		return nil, errors.New("token is empty")
	}

	return h.tokenManager.Parse(headerParts[1])
}

func (h *Handler) getClaims(c *gin.Context) (*auth.Claims, error) {
	value, ok := c.Get(claimsCtx)
	if !ok {
		return nil, errors.New("auth claims not found")
	}

	claims, ok := value.(*auth.Claims)
	if !ok {
		return nil, errors.New("auth claims have unexpected type")
	}

	return claims, nil
}
