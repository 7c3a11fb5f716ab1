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

func registerSchool(t *testing.T, svc SchoolService, name, password, ratio string) *models.School {
	t.Helper()
	school, err := svc.Register(context.Background(), &dto.RegisterSchoolRequest{
		Name:                name,
		Password:            password,
		HasInternetAccess:   true,
		TeacherStudentRatio: ratio,
		Type:                models.SchoolTypePublic,
	})
	require.NoError(t, err)
	return school
}

func TestRegisterSchool(t *testing.T) {
	svc := NewSchoolService(newFakeSchoolStore(), fakeTokenIssuer{})

	school := registerSchool(t, svc, "Greenhill High", "s3cret!", "22")

	assert.Equal(t, models.RatioGood, school.RatioCategory)
	assert.NotEqual(t, "s3cret!", school.CredentialHash)
	assert.NotEmpty(t, school.CredentialHash)
}

func TestRegisterSchoolDerivesRatioCategory(t *testing.T) {
	svc := NewSchoolService(newFakeSchoolStore(), fakeTokenIssuer{})

	tests := []struct {
		name  string
		ratio string
		want  models.RatioCategory
	}{
		{name: "good", ratio: "25", want: models.RatioGood},
		{name: "bad", ratio: "31.4", want: models.RatioBad},
		{name: "unparseable", ratio: "lots", want: models.RatioInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			school := registerSchool(t, svc, "school-"+tt.name, "s3cret!", tt.ratio)
			assert.Equal(t, tt.want, school.RatioCategory)
		})
	}
}

func TestRegisterSchoolDuplicateName(t *testing.T) {
	svc := NewSchoolService(newFakeSchoolStore(), fakeTokenIssuer{})
	registerSchool(t, svc, "Greenhill High", "s3cret!", "22")

	_, err := svc.Register(context.Background(), &dto.RegisterSchoolRequest{
		Name:                "Greenhill High",
		Password:            "0therpwd",
		TeacherStudentRatio: "18",
		Type:                models.SchoolTypePrivate,
	})
	assert.ErrorIs(t, err, apperrors.ErrSchoolAlreadyExists)
}

func TestAuthenticate(t *testing.T) {
	svc := NewSchoolService(newFakeSchoolStore(), fakeTokenIssuer{})
	registerSchool(t, svc, "Greenhill High", "s3cret!", "22")

	resp, err := svc.Authenticate(context.Background(), &dto.LoginRequest{
		Name:     "Greenhill High",
		Password: "s3cret!",
	})
	require.NoError(t, err)
	assert.Equal(t, "Greenhill High", resp.SchoolName)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestAuthenticateUniformFailure(t *testing.T) {
	svc := NewSchoolService(newFakeSchoolStore(), fakeTokenIssuer{})
	registerSchool(t, svc, "Greenhill High", "s3cret!", "22")

	// Wrong password and unknown name yield the same error with no
	// distinguishing signal.
	_, wrongPwd := svc.Authenticate(context.Background(), &dto.LoginRequest{
		Name:     "Greenhill High",
		Password: "wrong",
	})
	_, wrongName := svc.Authenticate(context.Background(), &dto.LoginRequest{
		Name:     "Nowhere High",
		Password: "s3cret!",
	})

	assert.ErrorIs(t, wrongPwd, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongName, apperrors.ErrInvalidCredentials)
	assert.Equal(t, wrongPwd.Error(), wrongName.Error())
}
