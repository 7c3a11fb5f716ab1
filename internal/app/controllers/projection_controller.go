package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aksoyde/gradesphere/internal/app/models/dto"
	"github.com/aksoyde/gradesphere/internal/app/services"
	"github.com/aksoyde/gradesphere/internal/middleware"
)

// ProjectionController exposes model-backed performance projections
type ProjectionController struct {
	projectionService services.ProjectionService
}

// NewProjectionController creates a new ProjectionController
func NewProjectionController(projectionService services.ProjectionService) *ProjectionController {
	return &ProjectionController{
		projectionService: projectionService,
	}
}

// GetProjection predicts a student's future average and persists it
// @Summary Project a student's performance
// @Description Builds the student's feature vector, runs it through the regression model and stores the predicted average
// @Tags projections
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.ProjectionResponse} "Projection computed successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 502 {object} dto.ErrorResponse "Model service unavailable"
// @Router /students/{id}/projection [get]
func (c *ProjectionController) GetProjection(ctx *gin.Context) {
	projection, err := c.projectionService.GetProjection(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      projection,
		Timestamp: time.Now(),
	})
}

// Simulate runs a what-if projection without persisting the result
// @Summary Simulate a projection with overrides
// @Description Predicts the student's average with selected attributes replaced, leaving the stored record untouched
// @Tags projections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Param request body dto.ProjectionOverrides true "Attribute overrides"
// @Success 200 {object} dto.APIResponse{data=dto.ProjectionResponse} "Simulation computed successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 502 {object} dto.ErrorResponse "Model service unavailable"
// @Router /students/{id}/projection/simulate [post]
func (c *ProjectionController) Simulate(ctx *gin.Context) {
	var overrides dto.ProjectionOverrides
	if err := ctx.ShouldBindJSON(&overrides); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid override data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	projection, err := c.projectionService.Simulate(ctx, ctx.Param("id"), overrides)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      projection,
		Timestamp: time.Now(),
	})
}
