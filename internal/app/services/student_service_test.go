package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aksoyde/gradesphere/internal/app/models"
	"github.com/aksoyde/gradesphere/internal/app/models/dto"
	"github.com/aksoyde/gradesphere/internal/pkg/apperrors"
)

func validCreateRequest() *dto.CreateStudentRequest {
	return &dto.CreateStudentRequest{
		Name:                "Amina Yilmaz",
		Gender:              models.GenderFemale,
		Age:                 16,
		Location:            models.LocationUrban,
		HouseholdIncome:     85000,
		SportsParticipation: models.Yes,
		AcademicClubs:       models.No,
	}
}

func TestAddStudent(t *testing.T) {
	store := newFakeStudentStore()
	svc := NewStudentService(store)

	student, err := svc.Add(context.Background(), "Greenhill High", validCreateRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, student.StudentID)
	assert.Equal(t, models.IncomeAverage, student.HouseholdIncome)
	assert.Nil(t, student.Average)
	assert.Nil(t, student.PredictedAverage)
	require.NotNil(t, student.SchoolName)
	assert.Equal(t, "Greenhill High", *student.SchoolName)
	// Optional participation flags default to No
	assert.Equal(t, models.No, student.CulturalDebateClubs)
	assert.Equal(t, models.No, student.InfrastructureChallenges)
}

func TestAddStudentBucketsIncome(t *testing.T) {
	store := newFakeStudentStore()
	svc := NewStudentService(store)

	tests := []struct {
		name   string
		income float64
		want   models.IncomeCategory
	}{
		{name: "zero", income: 0, want: models.IncomeLow},
		{name: "low", income: 42000, want: models.IncomeLow},
		{name: "average floor", income: 70000, want: models.IncomeAverage},
		{name: "high floor", income: 200000, want: models.IncomeHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			req.HouseholdIncome = tt.income
			student, err := svc.Add(context.Background(), "", req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, student.HouseholdIncome)
		})
	}
}

func TestAddStudentValidation(t *testing.T) {
	store := newFakeStudentStore()
	svc := NewStudentService(store)

	mutations := []struct {
		name   string
		mutate func(*dto.CreateStudentRequest)
	}{
		{name: "empty name", mutate: func(r *dto.CreateStudentRequest) { r.Name = " " }},
		{name: "bad gender", mutate: func(r *dto.CreateStudentRequest) { r.Gender = "Other" }},
		{name: "age below range", mutate: func(r *dto.CreateStudentRequest) { r.Age = 9 }},
		{name: "age above range", mutate: func(r *dto.CreateStudentRequest) { r.Age = 101 }},
		{name: "bad location", mutate: func(r *dto.CreateStudentRequest) { r.Location = "Suburban" }},
		{name: "bad sports flag", mutate: func(r *dto.CreateStudentRequest) { r.SportsParticipation = "Maybe" }},
	}
	for _, tt := range mutations {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(req)
			_, err := svc.Add(context.Background(), "", req)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}

	// Age bounds are inclusive
	for _, age := range []int{10, 100} {
		req := validCreateRequest()
		req.Age = age
		_, err := svc.Add(context.Background(), "", req)
		assert.NoError(t, err)
	}
}

func TestUpdateStudent(t *testing.T) {
	store := newFakeStudentStore()
	svc := NewStudentService(store)

	student, err := svc.Add(context.Background(), "Greenhill High", validCreateRequest())
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), student.StudentID, &dto.UpdateStudentRequest{
		Name:                "Amina Y.",
		Gender:              models.GenderFemale,
		Age:                 17,
		Location:            models.LocationRural,
		HouseholdIncome:     250000,
		SportsParticipation: models.No,
		AcademicClubs:       models.Yes,
	})
	require.NoError(t, err)

	assert.Equal(t, "Amina Y.", updated.Name)
	assert.Equal(t, 17, updated.Age)
	assert.Equal(t, models.IncomeHigh, updated.HouseholdIncome)
	// The school link survives a descriptive update
	require.NotNil(t, updated.SchoolName)
	assert.Equal(t, "Greenhill High", *updated.SchoolName)
}

func TestUpdateStudentNotFound(t *testing.T) {
	svc := NewStudentService(newFakeStudentStore())

	req := &dto.UpdateStudentRequest{
		Name:                "Ghost",
		Gender:              models.GenderMale,
		Age:                 15,
		Location:            models.LocationRural,
		HouseholdIncome:     50000,
		SportsParticipation: models.No,
		AcademicClubs:       models.No,
	}
	_, err := svc.Update(context.Background(), "missing", req)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}
