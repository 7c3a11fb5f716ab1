package models

import "time"

// Student defines the student model based on the 'students' table.
//
// Average and PredictedAverage are derived columns: Average is only ever
// written by the average aggregator and PredictedAverage by the
// projection flow. HouseholdIncome holds the bucket, never the raw
// figure supplied at registration time.
type Student struct {
	StudentID                string         `json:"studentId" db:"student_id" example:"3e91f0d4-5a0e-4cf2-9c40-85a1d9f0b627"`
	Name                     string         `json:"name" db:"name" example:"Amina Yilmaz"`
	Gender                   Gender         `json:"gender" db:"gender" example:"Female"`
	Age                      int            `json:"age" db:"age" example:"16"`
	Location                 Location       `json:"location" db:"location" example:"Urban"`
	HouseholdIncome          IncomeCategory `json:"householdIncome" db:"household_income" example:"Average"`
	SportsParticipation      YesNo          `json:"sportsParticipation" db:"sports_participation" example:"Yes"`
	AcademicClubs            YesNo          `json:"academicClubs" db:"academic_clubs" example:"No"`
	CulturalDebateClubs      YesNo          `json:"culturalDebateClubs" db:"cultural_debate_clubs" example:"No"`
	InfrastructureChallenges YesNo          `json:"infrastructureChallenges" db:"infrastructure_challenges" example:"No"`
	SchoolName               *string        `json:"schoolName,omitempty" db:"school_name" example:"Greenhill High"`
	Average                  *float64       `json:"average" db:"average" example:"78.5"`
	PredictedAverage         *float64       `json:"predictedAverage" db:"predicted_average" example:"81.2"`
	CreatedAt                time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt                time.Time      `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	School *School `json:"school,omitempty"`
}
