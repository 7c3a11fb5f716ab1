package services

import (
	"time"

	"github.com/aksoyde/gradesphere/internal/app/repositories"
	"github.com/aksoyde/gradesphere/internal/pkg/mlmodel"
)

// Services holds all the service instances
type Services struct {
	SchoolService     SchoolService
	StudentService    StudentService
	ScoreService      ScoreService
	Aggregator        AverageAggregator
	PredictionService PredictionService
	ProjectionService ProjectionService
}

// NewServices wires all services over the shared repositories
func NewServices(repos *repositories.Repositories, tokens TokenIssuer, model mlmodel.Model, modelTimeout time.Duration) *Services {
	aggregator := NewAverageService(repos.ExamScoreRepository, repos.StudentRepository)
	prediction := NewPredictionService(model, modelTimeout)

	return &Services{
		SchoolService:     NewSchoolService(repos.SchoolRepository, tokens),
		StudentService:    NewStudentService(repos.StudentRepository),
		ScoreService:      NewScoreService(repos.ExamScoreRepository, repos.StudentRepository, aggregator),
		Aggregator:        aggregator,
		PredictionService: prediction,
		ProjectionService: NewProjectionService(repos.StudentRepository, prediction),
	}
}
