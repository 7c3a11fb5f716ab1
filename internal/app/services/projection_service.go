package services

import (
	"context"
	"fmt"

	"github.com/aksoyde/gradesphere/internal/app/models"
	"github.com/aksoyde/gradesphere/internal/app/models/dto"
	"github.com/aksoyde/gradesphere/internal/pkg/category"
	"github.com/aksoyde/gradesphere/internal/pkg/logger"
)

// School-level defaults used when a student has no linked school. This
// default-filling is deliberate policy: the prediction input surface
// admits students registered without school context, and the model
// still needs every column.
const (
	defaultAccessToInternet = models.Yes
	defaultRatioCategory    = models.RatioGood
	defaultSchoolType       = models.SchoolTypePublic
)

// ProjectionService builds feature vectors from student records and
// turns them into grade projections.
type ProjectionService interface {
	// Project builds the feature vector for a student, merging any
	// overrides onto the stored record. Pure: no store access.
	Project(student *models.Student, overrides dto.ProjectionOverrides) models.FeatureVector

	// GetProjection predicts from the stored record and persists the
	// result to the student's predicted average.
	GetProjection(ctx context.Context, studentID string) (*dto.ProjectionResponse, error)

	// Simulate predicts a hypothetical change without mutating the
	// stored student.
	Simulate(ctx context.Context, studentID string, overrides dto.ProjectionOverrides) (*dto.ProjectionResponse, error)
}

// projectionServiceImpl implements the ProjectionService interface
type projectionServiceImpl struct {
	studentStore StudentStore
	prediction   PredictionService
}

// NewProjectionService creates a new projection service instance
func NewProjectionService(studentStore StudentStore, prediction PredictionService) ProjectionService {
	return &projectionServiceImpl{
		studentStore: studentStore,
		prediction:   prediction,
	}
}

// Project merges the student record, its school context (or the
// documented defaults) and the overrides into the model's input vector.
// Each override substitutes its field whole; a raw income override is
// bucketed before it lands in the vector.
func (s *projectionServiceImpl) Project(student *models.Student, overrides dto.ProjectionOverrides) models.FeatureVector {
	vector := models.FeatureVector{
		Gender:                   student.Gender,
		Location:                 student.Location,
		SchoolType:               defaultSchoolType,
		SportsParticipation:      student.SportsParticipation,
		AcademicClubs:            student.AcademicClubs,
		CulturalDebateClubs:      student.CulturalDebateClubs,
		AccessToInternet:         defaultAccessToInternet,
		InfrastructureChallenges: student.InfrastructureChallenges,
		TeacherStudentRatio:      defaultRatioCategory,
		HouseholdIncome:          student.HouseholdIncome,
	}

	if student.Average != nil {
		vector.CurrentAverage = *student.Average
	}

	if school := student.School; school != nil {
		vector.SchoolType = school.Type
		vector.TeacherStudentRatio = school.RatioCategory
		if school.HasInternetAccess {
			vector.AccessToInternet = models.Yes
		} else {
			vector.AccessToInternet = models.No
		}
	}

	if overrides.Empty() {
		return vector
	}

	if overrides.Gender != nil {
		vector.Gender = *overrides.Gender
	}
	if overrides.Location != nil {
		vector.Location = *overrides.Location
	}
	if overrides.SchoolType != nil {
		vector.SchoolType = *overrides.SchoolType
	}
	if overrides.SportsParticipation != nil {
		vector.SportsParticipation = *overrides.SportsParticipation
	}
	if overrides.AcademicClubs != nil {
		vector.AcademicClubs = *overrides.AcademicClubs
	}
	if overrides.CulturalDebateClubs != nil {
		vector.CulturalDebateClubs = *overrides.CulturalDebateClubs
	}
	if overrides.AccessToInternet != nil {
		vector.AccessToInternet = *overrides.AccessToInternet
	}
	if overrides.InfrastructureChallenges != nil {
		vector.InfrastructureChallenges = *overrides.InfrastructureChallenges
	}
	if overrides.TeacherStudentRatio != nil {
		vector.TeacherStudentRatio = category.TeacherRatio(*overrides.TeacherStudentRatio)
	}
	if overrides.RawHouseholdIncome != nil {
		vector.HouseholdIncome = category.Income(*overrides.RawHouseholdIncome)
	}
	if overrides.CurrentAverage != nil {
		vector.CurrentAverage = *overrides.CurrentAverage
	}

	return vector
}

// GetProjection projects the student's stored record and persists the
// model's answer as the predicted average.
func (s *projectionServiceImpl) GetProjection(ctx context.Context, studentID string) (*dto.ProjectionResponse, error) {
	student, err := s.studentStore.GetByIDWithSchool(ctx, studentID)
	if err != nil {
		return nil, err
	}

	vector := s.Project(student, dto.ProjectionOverrides{})

	projected, err := s.prediction.Predict(ctx, vector)
	if err != nil {
		return nil, err
	}

	if err := s.studentStore.SetPredictedAverage(ctx, studentID, &projected); err != nil {
		return nil, fmt.Errorf("error persisting projection: %w", err)
	}

	logger.Debug().Str("studentID", studentID).Float64("projected", projected).Msg("Projection persisted")

	return &dto.ProjectionResponse{
		StudentID:        studentID,
		ProjectedAverage: projected,
		Vector:           vector,
	}, nil
}

// Simulate projects a what-if change. The stored student is read, never
// written.
func (s *projectionServiceImpl) Simulate(ctx context.Context, studentID string, overrides dto.ProjectionOverrides) (*dto.ProjectionResponse, error) {
	student, err := s.studentStore.GetByIDWithSchool(ctx, studentID)
	if err != nil {
		return nil, err
	}

	vector := s.Project(student, overrides)

	projected, err := s.prediction.Predict(ctx, vector)
	if err != nil {
		return nil, err
	}

	return &dto.ProjectionResponse{
		StudentID:        studentID,
		ProjectedAverage: projected,
		Vector:           vector,
		Simulated:        true,
	}, nil
}
