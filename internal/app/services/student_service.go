package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/aksoyde/gradesphere/internal/app/models"
	"github.com/aksoyde/gradesphere/internal/app/models/dto"
	"github.com/aksoyde/gradesphere/internal/pkg/apperrors"
	"github.com/aksoyde/gradesphere/internal/pkg/category"
)

// Student age bounds, inclusive
const (
	minStudentAge = 10
	maxStudentAge = 100
)

// StudentService defines the interface for student record operations
type StudentService interface {
	Add(ctx context.Context, schoolName string, req *dto.CreateStudentRequest) (*models.Student, error)
	Update(ctx context.Context, studentID string, req *dto.UpdateStudentRequest) (*models.Student, error)
	GetByID(ctx context.Context, studentID string) (*models.Student, error)
	Search(ctx context.Context, name string) ([]*models.Student, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentStore StudentStore
}

// NewStudentService creates a new student service instance
func NewStudentService(studentStore StudentStore) StudentService {
	return &studentServiceImpl{
		studentStore: studentStore,
	}
}

func validateStudentFields(name string, gender models.Gender, age int, location models.Location,
	sports, academic models.YesNo) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.NewValidationError("name cannot be empty").
			WithDetails(map[string]interface{}{"field": "name"})
	}
	if !gender.Valid() {
		return apperrors.NewValidationError(fmt.Sprintf("gender must be %s or %s",
			models.GenderMale, models.GenderFemale)).
			WithDetails(map[string]interface{}{"field": "gender"})
	}
	if age < minStudentAge || age > maxStudentAge {
		return apperrors.NewValidationError(fmt.Sprintf("age must be between %d and %d",
			minStudentAge, maxStudentAge)).
			WithDetails(map[string]interface{}{"field": "age"})
	}
	if !location.Valid() {
		return apperrors.NewValidationError(fmt.Sprintf("location must be %s or %s",
			models.LocationRural, models.LocationUrban)).
			WithDetails(map[string]interface{}{"field": "location"})
	}
	if !sports.Valid() {
		return apperrors.NewValidationError(fmt.Sprintf("sports participation must be %s or %s",
			models.Yes, models.No)).
			WithDetails(map[string]interface{}{"field": "sportsParticipation"})
	}
	if !academic.Valid() {
		return apperrors.NewValidationError(fmt.Sprintf("academic clubs must be %s or %s",
			models.Yes, models.No)).
			WithDetails(map[string]interface{}{"field": "academicClubs"})
	}
	return nil
}

// defaultNo fills the optional participation flags
func defaultNo(v models.YesNo) (models.YesNo, error) {
	if v == "" {
		return models.No, nil
	}
	if !v.Valid() {
		return "", apperrors.NewValidationError(fmt.Sprintf("participation flags must be %s or %s",
			models.Yes, models.No))
	}
	return v, nil
}

// Add registers a new student under the authenticated school. The raw
// household income is bucketed here; the record never sees the number.
func (s *studentServiceImpl) Add(ctx context.Context, schoolName string, req *dto.CreateStudentRequest) (*models.Student, error) {
	if err := validateStudentFields(req.Name, req.Gender, req.Age, req.Location,
		req.SportsParticipation, req.AcademicClubs); err != nil {
		return nil, err
	}

	cultural, err := defaultNo(req.CulturalDebateClubs)
	if err != nil {
		return nil, err
	}
	infrastructure, err := defaultNo(req.InfrastructureChallenges)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		StudentID:                uuid.NewString(),
		Name:                     req.Name,
		Gender:                   req.Gender,
		Age:                      req.Age,
		Location:                 req.Location,
		HouseholdIncome:          category.Income(req.HouseholdIncome),
		SportsParticipation:      req.SportsParticipation,
		AcademicClubs:            req.AcademicClubs,
		CulturalDebateClubs:      cultural,
		InfrastructureChallenges: infrastructure,
	}
	if schoolName != "" {
		student.SchoolName = &schoolName
	}

	if err := s.studentStore.Create(ctx, student); err != nil {
		return nil, fmt.Errorf("error registering student: %w", err)
	}

	return student, nil
}

// Update rewrites a student's descriptive attributes in full
func (s *studentServiceImpl) Update(ctx context.Context, studentID string, req *dto.UpdateStudentRequest) (*models.Student, error) {
	if err := validateStudentFields(req.Name, req.Gender, req.Age, req.Location,
		req.SportsParticipation, req.AcademicClubs); err != nil {
		return nil, err
	}

	cultural, err := defaultNo(req.CulturalDebateClubs)
	if err != nil {
		return nil, err
	}
	infrastructure, err := defaultNo(req.InfrastructureChallenges)
	if err != nil {
		return nil, err
	}

	student, err := s.studentStore.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	student.Name = req.Name
	student.Gender = req.Gender
	student.Age = req.Age
	student.Location = req.Location
	student.HouseholdIncome = category.Income(req.HouseholdIncome)
	student.SportsParticipation = req.SportsParticipation
	student.AcademicClubs = req.AcademicClubs
	student.CulturalDebateClubs = cultural
	student.InfrastructureChallenges = infrastructure

	if err := s.studentStore.Update(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// GetByID retrieves a student by its ID
func (s *studentServiceImpl) GetByID(ctx context.Context, studentID string) (*models.Student, error) {
	return s.studentStore.GetByID(ctx, studentID)
}

// Search retrieves students whose name contains the given fragment
func (s *studentServiceImpl) Search(ctx context.Context, name string) ([]*models.Student, error) {
	return s.studentStore.SearchByName(ctx, name)
}
