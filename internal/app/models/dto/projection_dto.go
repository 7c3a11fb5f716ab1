package dto

import "github.com/aksoyde/gradesphere/internal/app/models"

// ProjectionOverrides lets a caller simulate a hypothetical change
// without mutating the stored student. Every field is optional; a set
// field replaces the base value entirely, never partially.
// RawHouseholdIncome is bucketed before it reaches the feature vector.
type ProjectionOverrides struct {
	Gender                   *models.Gender     `json:"gender,omitempty"`
	Location                 *models.Location   `json:"location,omitempty"`
	SchoolType               *models.SchoolType `json:"schoolType,omitempty"`
	SportsParticipation      *models.YesNo      `json:"sportsParticipation,omitempty"`
	AcademicClubs            *models.YesNo      `json:"academicClubs,omitempty"`
	CulturalDebateClubs      *models.YesNo      `json:"culturalDebateClubs,omitempty"`
	AccessToInternet         *models.YesNo      `json:"accessToInternet,omitempty"`
	InfrastructureChallenges *models.YesNo      `json:"infrastructureChallenges,omitempty"`
	TeacherStudentRatio      *string            `json:"teacherStudentRatio,omitempty"`
	RawHouseholdIncome       *float64           `json:"rawHouseholdIncome,omitempty"`
	CurrentAverage           *float64           `json:"currentAverage,omitempty"`
}

// Empty reports whether no override field is set
func (o ProjectionOverrides) Empty() bool {
	return o.Gender == nil &&
		o.Location == nil &&
		o.SchoolType == nil &&
		o.SportsParticipation == nil &&
		o.AcademicClubs == nil &&
		o.CulturalDebateClubs == nil &&
		o.AccessToInternet == nil &&
		o.InfrastructureChallenges == nil &&
		o.TeacherStudentRatio == nil &&
		o.RawHouseholdIncome == nil &&
		o.CurrentAverage == nil
}

// ProjectionResponse carries a model projection for a student
type ProjectionResponse struct {
	StudentID        string               `json:"studentId"`
	ProjectedAverage float64              `json:"projectedAverage"`
	Vector           models.FeatureVector `json:"vector"`
	Simulated        bool                 `json:"simulated"`
}
