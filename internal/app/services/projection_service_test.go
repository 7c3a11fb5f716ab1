package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aksoyde/gradesphere/internal/app/models"
	"github.com/aksoyde/gradesphere/internal/app/models/dto"
)

func floatPtr(v float64) *float64 { return &v }

func TestProjectDefaultsWithoutSchool(t *testing.T) {
	studentStore := newFakeStudentStore()
	svc := NewProjectionService(studentStore, echoPredictor{})

	student := &models.Student{
		StudentID:                "stu-1",
		Gender:                   models.GenderMale,
		Location:                 models.LocationRural,
		HouseholdIncome:          models.IncomeLow,
		SportsParticipation:      models.No,
		AcademicClubs:            models.Yes,
		CulturalDebateClubs:      models.No,
		InfrastructureChallenges: models.Yes,
	}

	vector := svc.Project(student, dto.ProjectionOverrides{})

	assert.Equal(t, models.Yes, vector.AccessToInternet)
	assert.Equal(t, models.RatioGood, vector.TeacherStudentRatio)
	assert.Equal(t, models.SchoolTypePublic, vector.SchoolType)
	assert.Equal(t, 0.0, vector.CurrentAverage)
	assert.NoError(t, vector.Validate())
}

func TestProjectUsesLinkedSchool(t *testing.T) {
	studentStore := newFakeStudentStore()
	svc := NewProjectionService(studentStore, echoPredictor{})

	student := &models.Student{
		StudentID:                "stu-1",
		Gender:                   models.GenderFemale,
		Location:                 models.LocationUrban,
		HouseholdIncome:          models.IncomeHigh,
		SportsParticipation:      models.Yes,
		AcademicClubs:            models.Yes,
		CulturalDebateClubs:      models.No,
		InfrastructureChallenges: models.No,
		Average:                  floatPtr(82.5),
		School: &models.School{
			Name:              "Hillcrest",
			HasInternetAccess: false,
			RatioCategory:     models.RatioBad,
			Type:              models.SchoolTypePrivate,
		},
	}

	vector := svc.Project(student, dto.ProjectionOverrides{})

	assert.Equal(t, models.No, vector.AccessToInternet)
	assert.Equal(t, models.RatioBad, vector.TeacherStudentRatio)
	assert.Equal(t, models.SchoolTypePrivate, vector.SchoolType)
	assert.Equal(t, 82.5, vector.CurrentAverage)
}

func TestProjectOverridesReplaceWholeFields(t *testing.T) {
	studentStore := newFakeStudentStore()
	svc := NewProjectionService(studentStore, echoPredictor{})

	student := &models.Student{
		StudentID:                "stu-1",
		Gender:                   models.GenderMale,
		Location:                 models.LocationRural,
		HouseholdIncome:          models.IncomeLow,
		SportsParticipation:      models.No,
		AcademicClubs:            models.No,
		CulturalDebateClubs:      models.No,
		InfrastructureChallenges: models.No,
		Average:                  floatPtr(65),
	}

	schoolType := models.SchoolTypePrivate
	rawIncome := 250000.0
	ratio := "30"
	vector := svc.Project(student, dto.ProjectionOverrides{
		SchoolType:         &schoolType,
		RawHouseholdIncome: &rawIncome,
		TeacherStudentRatio: &ratio,
	})

	// Overridden fields replaced whole
	assert.Equal(t, models.SchoolTypePrivate, vector.SchoolType)
	assert.Equal(t, models.IncomeHigh, vector.HouseholdIncome)
	assert.Equal(t, models.RatioBad, vector.TeacherStudentRatio)
	// Untouched fields keep the base record's values
	assert.Equal(t, models.GenderMale, vector.Gender)
	assert.Equal(t, models.LocationRural, vector.Location)
	assert.Equal(t, 65.0, vector.CurrentAverage)
}

func TestGetProjectionRoundTripAndPersist(t *testing.T) {
	ctx := context.Background()
	studentStore := newFakeStudentStore()
	seedStudent(t, studentStore, "stu-1")
	require.NoError(t, studentStore.SetAverage(ctx, "stu-1", floatPtr(78.5)))

	svc := NewProjectionService(studentStore, echoPredictor{})

	// The echo predictor hands CurrentAverage straight back, so any
	// pass-through corruption in the projector shows up here.
	resp, err := svc.GetProjection(ctx, "stu-1")
	require.NoError(t, err)
	assert.Equal(t, 78.5, resp.ProjectedAverage)
	assert.False(t, resp.Simulated)

	student, err := studentStore.GetByID(ctx, "stu-1")
	require.NoError(t, err)
	require.NotNil(t, student.PredictedAverage)
	assert.Equal(t, 78.5, *student.PredictedAverage)
}

func TestSimulateDoesNotPersist(t *testing.T) {
	ctx := context.Background()
	studentStore := newFakeStudentStore()
	seedStudent(t, studentStore, "stu-1")
	require.NoError(t, studentStore.SetAverage(ctx, "stu-1", floatPtr(70)))

	svc := NewProjectionService(studentStore, echoPredictor{})

	override := 95.0
	resp, err := svc.Simulate(ctx, "stu-1", dto.ProjectionOverrides{CurrentAverage: &override})
	require.NoError(t, err)
	assert.Equal(t, 95.0, resp.ProjectedAverage)
	assert.True(t, resp.Simulated)

	student, err := studentStore.GetByID(ctx, "stu-1")
	require.NoError(t, err)
	assert.Nil(t, student.PredictedAverage)
}

func TestGetProjectionUnknownStudent(t *testing.T) {
	studentStore := newFakeStudentStore()
	svc := NewProjectionService(studentStore, echoPredictor{})

	_, err := svc.GetProjection(context.Background(), "missing")
	assert.Error(t, err)
}
