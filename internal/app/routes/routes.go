package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/aksoyde/gradesphere/internal/app/controllers"
	"github.com/aksoyde/gradesphere/internal/app/models/dto"
	"github.com/aksoyde/gradesphere/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	scoreController *controllers.ScoreController,
	projectionController *controllers.ProjectionController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.RequireSchool())
	{
		students := authenticated.Group("/students")
		{
			students.POST("", studentController.AddStudent)
			students.GET("", studentController.SearchStudents)
			students.GET("/:id", studentController.GetStudent)
			students.PUT("/:id", studentController.UpdateStudent)

			// Exam scores nested under the owning student
			students.POST("/:id/scores", scoreController.AddScore)
			students.GET("/:id/scores", scoreController.ListScores)

			// Performance projections
			students.GET("/:id/projection", projectionController.GetProjection)
			students.POST("/:id/projection/simulate", projectionController.Simulate)
		}

		scores := authenticated.Group("/scores")
		{
			scores.PUT("/:examId", scoreController.UpdateScore)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// Swagger routes are set up in bootstrap.go already
}
