package dto

import "github.com/aksoyde/gradesphere/internal/app/models"

// CreateStudentRequest represents student registration data.
// HouseholdIncome is the raw figure; it is bucketed before storage and
// never persisted as a number. Zero is a valid income and buckets to
// Low, so the field carries no required binding.
type CreateStudentRequest struct {
	Name                     string          `json:"name" binding:"required"`
	Gender                   models.Gender   `json:"gender" binding:"required"`
	Age                      int             `json:"age" binding:"required"`
	Location                 models.Location `json:"location" binding:"required"`
	HouseholdIncome          float64         `json:"householdIncome"`
	SportsParticipation      models.YesNo    `json:"sportsParticipation" binding:"required"`
	AcademicClubs            models.YesNo    `json:"academicClubs" binding:"required"`
	CulturalDebateClubs      models.YesNo    `json:"culturalDebateClubs,omitempty"`
	InfrastructureChallenges models.YesNo    `json:"infrastructureChallenges,omitempty"`
}

// UpdateStudentRequest represents an update to a student's descriptive
// attributes. Derived values (average, predicted average) are not
// updatable through this surface.
type UpdateStudentRequest struct {
	Name                     string          `json:"name" binding:"required"`
	Gender                   models.Gender   `json:"gender" binding:"required"`
	Age                      int             `json:"age" binding:"required"`
	Location                 models.Location `json:"location" binding:"required"`
	HouseholdIncome          float64         `json:"householdIncome"`
	SportsParticipation      models.YesNo    `json:"sportsParticipation" binding:"required"`
	AcademicClubs            models.YesNo    `json:"academicClubs" binding:"required"`
	CulturalDebateClubs      models.YesNo    `json:"culturalDebateClubs,omitempty"`
	InfrastructureChallenges models.YesNo    `json:"infrastructureChallenges,omitempty"`
}
