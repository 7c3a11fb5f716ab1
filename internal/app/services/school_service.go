package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/aksoyde/gradesphere/internal/app/models"
	"github.com/aksoyde/gradesphere/internal/app/models/dto"
	"github.com/aksoyde/gradesphere/internal/pkg/apperrors"
	"github.com/aksoyde/gradesphere/internal/pkg/auth"
	"github.com/aksoyde/gradesphere/internal/pkg/category"
	"github.com/aksoyde/gradesphere/internal/pkg/logger"
)

// SchoolService defines the interface for school registration and login
type SchoolService interface {
	Register(ctx context.Context, req *dto.RegisterSchoolRequest) (*models.School, error)
	Authenticate(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
}

// schoolServiceImpl implements the SchoolService interface
type schoolServiceImpl struct {
	schoolStore SchoolStore
	tokens      TokenIssuer
}

// NewSchoolService creates a new school service instance
func NewSchoolService(schoolStore SchoolStore, tokens TokenIssuer) SchoolService {
	return &schoolServiceImpl{
		schoolStore: schoolStore,
		tokens:      tokens,
	}
}

// validateRegistration validates school registration data
func (s *schoolServiceImpl) validateRegistration(req *dto.RegisterSchoolRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return apperrors.NewValidationError("name cannot be empty").
			WithDetails(map[string]interface{}{"field": "name"})
	}
	if len(req.Password) < 6 {
		return apperrors.NewValidationError("password must be at least 6 characters").
			WithDetails(map[string]interface{}{"field": "password"})
	}
	if !req.Type.Valid() {
		return apperrors.NewValidationError(fmt.Sprintf("type must be %s or %s",
			models.SchoolTypePublic, models.SchoolTypePrivate)).
			WithDetails(map[string]interface{}{"field": "type"})
	}
	return nil
}

// Register creates a new school. The credential is stored hashed and
// the ratio category is derived here; both never arrive pre-computed.
func (s *schoolServiceImpl) Register(ctx context.Context, req *dto.RegisterSchoolRequest) (*models.School, error) {
	if err := s.validateRegistration(req); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing credential: %w", err)
	}

	school := &models.School{
		Name:                req.Name,
		CredentialHash:      hash,
		HasInternetAccess:   req.HasInternetAccess,
		TeacherStudentRatio: req.TeacherStudentRatio,
		RatioCategory:       category.TeacherRatio(req.TeacherStudentRatio),
		Type:                req.Type,
	}

	if err := s.schoolStore.Create(ctx, school); err != nil {
		return nil, err
	}

	logger.Info().Str("school", school.Name).Str("ratioCategory", string(school.RatioCategory)).Msg("School registered")
	return school, nil
}

// dummyCredentialHash absorbs the bcrypt work on the unknown-name path
// so response time does not separate it from a wrong password.
var dummyCredentialHash, _ = auth.HashPassword("gradesphere-dummy-credential")

// Authenticate verifies a school credential and issues a session token.
// Unknown name and wrong password are indistinguishable to the caller,
// in both the error value and the time taken to produce it.
func (s *schoolServiceImpl) Authenticate(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	school, err := s.schoolStore.GetByName(ctx, req.Name)
	if err != nil {
		auth.CheckPassword(dummyCredentialHash, req.Password)
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(school.CredentialHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.tokens.GenerateToken(school.Name)
	if err != nil {
		return nil, fmt.Errorf("error issuing session token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
		SchoolName:  school.Name,
	}, nil
}
