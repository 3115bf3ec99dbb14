package v1

import (
	"github.com/cityinfo/backend/internal/config"
	"github.com/cityinfo/backend/internal/service"
	"github.com/cityinfo/backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title CityInfo API
// @version 1.0
// @description CRUD API for cities and their points of interest

// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

type Handler struct {
	services     *service.Services
	tokenManager auth.TokenManager
	config       *config.Config
}

func NewHandler(
	services *service.Services,
	tokenManager auth.TokenManager,
	config *config.Config,
) *Handler {
	return &Handler{
		services:     services,
		tokenManager: tokenManager,
		config:       config,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	v1 := api.Group("v1")

	h.initAuthRoutes(v1)
	h.initCitiesRoutes(v1)
}
