package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/cityinfo/backend/internal/domain"
	"github.com/cityinfo/backend/internal/service"
	"github.com/cityinfo/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

func (h *Handler) initPointsOfInterestRoutes(cities *gin.RouterGroup) {
	points := cities.Group("/:cityId/pointsofinterest")
	{
		points.GET("", h.getPointsOfInterest)
		points.GET("/:poiId", h.getPointOfInterest)

		mutating := points.Group("", h.cityClaimMiddleware)
		{
			mutating.POST("", h.createPointOfInterest)
			mutating.PUT("/:poiId", h.updatePointOfInterest)
			mutating.PATCH("/:poiId", h.patchPointOfInterest)
			mutating.DELETE("/:poiId", h.deletePointOfInterest)
		}
	}
}

type pointOfInterestResponse struct {
	ID          int64   `json:"id"`
	CityID      int64   `json:"city_id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

func toPointOfInterestResponse(poi domain.PointOfInterest) pointOfInterestResponse {
	return pointOfInterestResponse{
		ID:          poi.ID,
		CityID:      poi.CityID,
		Name:        poi.Name,
		Description: poi.Description,
	}
}

type pointOfInterestRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

// @Summary Get Points Of Interest
// @Security BearerAuth
// @Tags PointsOfInterest
// @Description List a city's points of interest
// @ModuleID getPointsOfInterest
// @Accept  json
// @Produce  json
// @Param cityId path int true "City id"
// @Success 200 {object} []pointOfInterestResponse
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /cities/{cityId}/pointsofinterest [get]
func (h *Handler) getPointsOfInterest(c *gin.Context) {
	cityID, err := parseIDParam(c, "cityId")
	if err != nil {
		errorResponse(c, http.StatusNotFound, CityNotFoundCode)
		return
	}

	points, err := h.services.PointsOfInterest.ListForCity(c.Request.Context(), cityID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			errorResponse(c, http.StatusNotFound, CityNotFoundCode)
			return
		}
		logger.Error("list points of interest failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	out := make([]pointOfInterestResponse, 0, len(points))
	for _, poi := range points {
		out = append(out, toPointOfInterestResponse(poi))
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Get Point Of Interest
// @Security BearerAuth
// @Tags PointsOfInterest
// @Description Get one point of interest of a city
// @ModuleID getPointOfInterest
// @Accept  json
// @Produce  json
// @Param cityId path int true "City id"
// @Param poiId path int true "Point of interest id"
// @Success 200 {object} pointOfInterestResponse
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /cities/{cityId}/pointsofinterest/{poiId} [get]
func (h *Handler) getPointOfInterest(c *gin.Context) {
	cityID, poiID, ok := h.parsePointOfInterestParams(c)
	if !ok {
		return
	}

	poi, err := h.services.PointsOfInterest.GetByID(c.Request.Context(), cityID, poiID)
	if err != nil {
		h.pointOfInterestError(c, err, "get point of interest failed")
		return
	}

	c.JSON(http.StatusOK, toPointOfInterestResponse(*poi))
}

// @Summary Create Point Of Interest
// @Security BearerAuth
// @Tags PointsOfInterest
// @Description Add a point of interest to a city
// @ModuleID createPointOfInterest
// @Accept  json
// @Produce  json
// @Param cityId path int true "City id"
// @Param input body pointOfInterestRequest true "point of interest"
// @Success 201 {object} pointOfInterestResponse
// @Failure 400 {object} ValidationErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /cities/{cityId}/pointsofinterest [post]
func (h *Handler) createPointOfInterest(c *gin.Context) {
	cityID, err := parseIDParam(c, "cityId")
	if err != nil {
		errorResponse(c, http.StatusNotFound, CityNotFoundCode)
		return
	}

	var req pointOfInterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	poi, err := h.services.PointsOfInterest.Create(c.Request.Context(), cityID, service.PointOfInterestInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			errorResponse(c, http.StatusNotFound, CityNotFoundCode)
			return
		}
		logger.Error("create point of interest failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	location := fmt.Sprintf("/api/v1/cities/%d/pointsofinterest/%d", cityID, poi.ID)
	c.Header("Location", location)
	c.JSON(http.StatusCreated, toPointOfInterestResponse(*poi))
}

// @Summary Update Point Of Interest
// @Security BearerAuth
// @Tags PointsOfInterest
// @Description Replace a point of interest's mutable fields
// @ModuleID updatePointOfInterest
// @Accept  json
// @Produce  json
// @Param cityId path int true "City id"
// @Param poiId path int true "Point of interest id"
// @Param input body pointOfInterestRequest true "point of interest"
// @Success 204
// @Failure 400 {object} ValidationErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /cities/{cityId}/pointsofinterest/{poiId} [put]
func (h *Handler) updatePointOfInterest(c *gin.Context) {
	cityID, poiID, ok := h.parsePointOfInterestParams(c)
	if !ok {
		return
	}

	var req pointOfInterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	err := h.services.PointsOfInterest.Update(c.Request.Context(), cityID, poiID, service.PointOfInterestInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.pointOfInterestError(c, err, "update point of interest failed")
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Patch Point Of Interest
// @Security BearerAuth
// @Tags PointsOfInterest
// @Description Apply a JSON-patch style document to a point of interest. Supported paths: /name, /description
// @ModuleID patchPointOfInterest
// @Accept  json
// @Produce  json
// @Param cityId path int true "City id"
// @Param poiId path int true "Point of interest id"
// @Param input body []service.PatchOp true "patch operations"
// @Success 200 {object} pointOfInterestResponse
// @Failure 400 {object} ValidationErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /cities/{cityId}/pointsofinterest/{poiId} [patch]
func (h *Handler) patchPointOfInterest(c *gin.Context) {
	cityID, poiID, ok := h.parsePointOfInterestParams(c)
	if !ok {
		return
	}

	var ops []service.PatchOp
	if err := c.ShouldBindJSON(&ops); err != nil {
		errorResponse(c, http.StatusBadRequest, MalformedPatchCode)
		return
	}

	poi, err := h.services.PointsOfInterest.Patch(c.Request.Context(), cityID, poiID, ops)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			errorResponse(c, http.StatusNotFound, PointOfInterestNotFoundCode)
		case errors.Is(err, service.ErrMalformedPatch):
			errorResponse(c, http.StatusBadRequest, MalformedPatchCode)
		default:
			var verr validator.ValidationErrors
			if errors.As(err, &verr) {
				validationErrorResponse(c, err)
				return
			}
			logger.Error("patch point of interest failed", zap.Error(err))
			internalErrorResponse(c)
		}
		return
	}

	c.JSON(http.StatusOK, toPointOfInterestResponse(*poi))
}

// @Summary Delete Point Of Interest
// @Security BearerAuth
// @Tags PointsOfInterest
// @Description Delete a point of interest; a notification mail is queued
// @ModuleID deletePointOfInterest
// @Accept  json
// @Produce  json
// @Param cityId path int true "City id"
// @Param poiId path int true "Point of interest id"
// @Success 204
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /cities/{cityId}/pointsofinterest/{poiId} [delete]
func (h *Handler) deletePointOfInterest(c *gin.Context) {
	cityID, poiID, ok := h.parsePointOfInterestParams(c)
	if !ok {
		return
	}

	if err := h.services.PointsOfInterest.Delete(c.Request.Context(), cityID, poiID); err != nil {
		h.pointOfInterestError(c, err, "delete point of interest failed")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) parsePointOfInterestParams(c *gin.Context) (int64, int64, bool) {
	cityID, err := parseIDParam(c, "cityId")
	if err != nil {
		errorResponse(c, http.StatusNotFound, CityNotFoundCode)
		return 0, 0, false
	}

	poiID, err := parseIDParam(c, "poiId")
	if err != nil {
		errorResponse(c, http.StatusNotFound, PointOfInterestNotFoundCode)
		return 0, 0, false
	}

	return cityID, poiID, true
}

func (h *Handler) pointOfInterestError(c *gin.Context, err error, logMsg string) {
	if errors.Is(err, domain.ErrNotFound) {
		errorResponse(c, http.StatusNotFound, PointOfInterestNotFoundCode)
		return
	}
	logger.Error(logMsg, zap.Error(err))
	internalErrorResponse(c)
}
