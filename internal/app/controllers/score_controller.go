package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aksoyde/gradesphere/internal/app/models/dto"
	"github.com/aksoyde/gradesphere/internal/app/services"
	"github.com/aksoyde/gradesphere/internal/middleware"
)

// ScoreController handles exam score submission and correction
type ScoreController struct {
	scoreService services.ScoreService
}

// NewScoreController creates a new ScoreController
func NewScoreController(scoreService services.ScoreService) *ScoreController {
	return &ScoreController{
		scoreService: scoreService,
	}
}

// AddScore handles a new exam score submission
// @Summary Submit an exam score
// @Description Records a score for a student and synchronously recomputes the running average
// @Tags scores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Param request body dto.AddExamScoreRequest true "Score information"
// @Success 201 {object} dto.APIResponse{data=models.ExamScore} "Score recorded successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/scores [post]
func (c *ScoreController) AddScore(ctx *gin.Context) {
	var req dto.AddExamScoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid score data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	score, err := c.scoreService.AddScore(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      score,
		Timestamp: time.Now(),
	})
}

// UpdateScore corrects an exam score in place
// @Summary Update an exam score
// @Description Rewrites the score of an existing exam and recomputes the owning student's average
// @Tags scores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param examId path string true "Exam ID"
// @Param request body dto.UpdateExamScoreRequest true "New score"
// @Success 200 {object} dto.APIResponse{data=models.ExamScore} "Score updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Exam score not found"
// @Router /scores/{examId} [put]
func (c *ScoreController) UpdateScore(ctx *gin.Context) {
	var req dto.UpdateExamScoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid score data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	score, err := c.scoreService.UpdateScore(ctx, ctx.Param("examId"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      score,
		Timestamp: time.Now(),
	})
}

// ListScores retrieves a student's exam score set
// @Summary List a student's exam scores
// @Tags scores
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.ExamScore} "Scores retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/scores [get]
func (c *ScoreController) ListScores(ctx *gin.Context) {
	scores, err := c.scoreService.ListScores(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      scores,
		Timestamp: time.Now(),
	})
}
