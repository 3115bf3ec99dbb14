package v1

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/cityinfo/backend/internal/domain"
	"github.com/cityinfo/backend/internal/service"
	"github.com/cityinfo/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// paginationHeader carries the page metadata of a list response.
const paginationHeader = "X-Pagination"

func (h *Handler) initCitiesRoutes(api *gin.RouterGroup) {
	cities := api.Group("/cities", h.userIdentityMiddleware)
	{
		cities.GET("", h.getCities)
		cities.GET("/:cityId", h.getCity)

		mutating := cities.Group("", h.cityClaimMiddleware)
		{
			mutating.POST("", h.createCity)
			mutating.PUT("/:cityId", h.updateCity)
			mutating.DELETE("/:cityId", h.deleteCity)
		}

		h.initPointsOfInterestRoutes(cities)
	}
}

type cityResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

type cityWithPointsResponse struct {
	ID               int64                     `json:"id"`
	Name             string                    `json:"name"`
	Description      *string                   `json:"description,omitempty"`
	PointsOfInterest []pointOfInterestResponse `json:"points_of_interest"`
}

func toCityResponse(city domain.City) cityResponse {
	return cityResponse{
		ID:          city.ID,
		Name:        city.Name,
		Description: city.Description,
	}
}

func toCityWithPointsResponse(city domain.City) cityWithPointsResponse {
	points := make([]pointOfInterestResponse, 0, len(city.PointsOfInterest))
	for _, poi := range city.PointsOfInterest {
		points = append(points, toPointOfInterestResponse(poi))
	}

	return cityWithPointsResponse{
		ID:               city.ID,
		Name:             city.Name,
		Description:      city.Description,
		PointsOfInterest: points,
	}
}

type cityRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

// @Summary Get Cities
// @Security BearerAuth
// @Tags Cities
// @Description List cities with filtering, search and pagination
// @ModuleID getCities
// @Accept  json
// @Produce  json
// @Param name query string false "Exact name filter"
// @Param search query string false "Substring search over name and description"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10, max 20)"
// @Success 200 {object} []cityResponse
// @Failure 401 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /cities [get]
func (h *Handler) getCities(c *gin.Context) {
	input := service.ListCitiesInput{
		Name:   c.Query("name"),
		Search: c.Query("search"),
		Page:   1,
		Limit:  10,
	}

	if pageStr := c.Query("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			input.Page = p
		}
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			input.Limit = l
		}
	}

	cities, meta, err := h.services.Cities.List(c.Request.Context(), input)
	if err != nil {
		logger.Error("list cities failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	metaJSON, err := json.Marshal(meta)
	if err != nil {
		logger.Error("marshal pagination metadata failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}
	c.Header(paginationHeader, string(metaJSON))

	out := make([]cityResponse, 0, len(cities))
	for _, city := range cities {
		out = append(out, toCityResponse(city))
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Get City
// @Security BearerAuth
// @Tags Cities
// @Description Get one city, optionally with its points of interest
// @ModuleID getCity
// @Accept  json
// @Produce  json
// @Param cityId path int true "City id"
// @Param include_points query bool false "Include points of interest (default true)"
// @Success 200 {object} cityWithPointsResponse
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /cities/{cityId} [get]
func (h *Handler) getCity(c *gin.Context) {
	cityID, err := parseIDParam(c, "cityId")
	if err != nil {
		errorResponse(c, http.StatusNotFound, CityNotFoundCode)
		return
	}

	includePoints := true
	if includeStr := c.Query("include_points"); includeStr != "" {
		if parsed, err := strconv.ParseBool(includeStr); err == nil {
			includePoints = parsed
		}
	}

	city, err := h.services.Cities.GetByID(c.Request.Context(), cityID, includePoints)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			errorResponse(c, http.StatusNotFound, CityNotFoundCode)
			return
		}
		logger.Error("get city failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	// The two shapes are a deliberate contract: the flag picks the payload.
	if includePoints {
		c.JSON(http.StatusOK, toCityWithPointsResponse(*city))
		return
	}
	c.JSON(http.StatusOK, toCityResponse(*city))
}

// @Summary Create City
// @Security BearerAuth
// @Tags Cities
// @Description Create a city
// @ModuleID createCity
// @Accept  json
// @Produce  json
// @Param input body cityRequest true "city"
// @Success 201 {object} cityResponse
// @Failure 400 {object} ValidationErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /cities [post]
func (h *Handler) createCity(c *gin.Context) {
	var req cityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	city, err := h.services.Cities.Create(c.Request.Context(), service.CityInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		logger.Error("create city failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	c.JSON(http.StatusCreated, toCityResponse(*city))
}

// @Summary Update City
// @Security BearerAuth
// @Tags Cities
// @Description Replace a city's mutable fields
// @ModuleID updateCity
// @Accept  json
// @Produce  json
// @Param cityId path int true "City id"
// @Param input body cityRequest true "city"
// @Success 204
// @Failure 400 {object} ValidationErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /cities/{cityId} [put]
func (h *Handler) updateCity(c *gin.Context) {
	cityID, err := parseIDParam(c, "cityId")
	if err != nil {
		errorResponse(c, http.StatusNotFound, CityNotFoundCode)
		return
	}

	var req cityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	err = h.services.Cities.Update(c.Request.Context(), cityID, service.CityInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			errorResponse(c, http.StatusNotFound, CityNotFoundCode)
			return
		}
		logger.Error("update city failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete City
// @Security BearerAuth
// @Tags Cities
// @Description Delete a city and all its points of interest
// @ModuleID deleteCity
// @Accept  json
// @Produce  json
// @Param cityId path int true "City id"
// @Success 204
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /cities/{cityId} [delete]
func (h *Handler) deleteCity(c *gin.Context) {
	cityID, err := parseIDParam(c, "cityId")
	if err != nil {
		errorResponse(c, http.StatusNotFound, CityNotFoundCode)
		return
	}

	if err := h.services.Cities.Delete(c.Request.Context(), cityID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			errorResponse(c, http.StatusNotFound, CityNotFoundCode)
			return
		}
		logger.Error("delete city failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseIDParam(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}
