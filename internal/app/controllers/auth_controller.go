package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aksoyde/gradesphere/internal/app/models/dto"
	"github.com/aksoyde/gradesphere/internal/app/services"
	"github.com/aksoyde/gradesphere/internal/middleware"
)

// AuthController handles school registration and login
type AuthController struct {
	schoolService services.SchoolService
}

// NewAuthController creates a new AuthController
func NewAuthController(schoolService services.SchoolService) *AuthController {
	return &AuthController{
		schoolService: schoolService,
	}
}

// Register handles school registration
// @Summary Register a new school
// @Description Registers a school account; the teacher/student ratio category is derived server-side
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterSchoolRequest true "School information"
// @Success 201 {object} dto.APIResponse{data=models.School} "School registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "School name already taken"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterSchoolRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid registration data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	school, err := c.schoolService.Register(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      school,
		Timestamp: time.Now(),
	})
}

// Login handles school authentication
// @Summary Authenticate a school
// @Description Verifies credentials and returns a session token. Unknown name and wrong password are indistinguishable.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse} "Authenticated"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid login data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	token, err := c.schoolService.Authenticate(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      token,
		Timestamp: time.Now(),
	})
}
