package dto

import "github.com/aksoyde/gradesphere/internal/app/models"

// RegisterSchoolRequest represents a school registration request.
// The ratio category is derived server-side and cannot be supplied.
type RegisterSchoolRequest struct {
	Name                string            `json:"name" binding:"required"`
	Password            string            `json:"password" binding:"required,min=6"`
	HasInternetAccess   bool              `json:"hasInternetAccess"`
	TeacherStudentRatio string            `json:"teacherStudentRatio" binding:"required"`
	Type                models.SchoolType `json:"type" binding:"required"`
}

// LoginRequest represents school login credentials
type LoginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents the session token handed out on login
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int    `json:"expiresIn"`
	SchoolName  string `json:"schoolName"`
}
