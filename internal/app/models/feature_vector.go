package models

import "fmt"

// FeatureVector is the fixed, named set of inputs the external
// regression model requires. Every field is enumerated here and
// checked by Validate before a prediction call.
type FeatureVector struct {
	Gender                   Gender         `json:"gender" example:"Female"`
	Location                 Location       `json:"location" example:"Urban"`
	SchoolType               SchoolType     `json:"schoolType" example:"Public"`
	SportsParticipation      YesNo          `json:"sportsParticipation" example:"Yes"`
	AcademicClubs            YesNo          `json:"academicClubs" example:"No"`
	CulturalDebateClubs      YesNo          `json:"culturalDebateClubs" example:"No"`
	AccessToInternet         YesNo          `json:"accessToInternet" example:"Yes"`
	InfrastructureChallenges YesNo          `json:"infrastructureChallenges" example:"No"`
	TeacherStudentRatio      RatioCategory  `json:"teacherStudentRatio" example:"Good"`
	HouseholdIncome          IncomeCategory `json:"householdIncome" example:"Average"`
	CurrentAverage           float64        `json:"currentAverage" example:"78.5"`
}

// Validate checks that every categorical field carries a supported
// value. The ratio category additionally accepts Invalid, which is a
// legitimate derived value, not a validation failure.
func (v FeatureVector) Validate() error {
	if !v.Gender.Valid() {
		return fmt.Errorf("gender must be %s or %s", GenderMale, GenderFemale)
	}
	if !v.Location.Valid() {
		return fmt.Errorf("location must be %s or %s", LocationRural, LocationUrban)
	}
	if !v.SchoolType.Valid() {
		return fmt.Errorf("school type must be %s or %s", SchoolTypePublic, SchoolTypePrivate)
	}
	if !v.SportsParticipation.Valid() {
		return fmt.Errorf("sports participation must be %s or %s", Yes, No)
	}
	if !v.AcademicClubs.Valid() {
		return fmt.Errorf("academic clubs must be %s or %s", Yes, No)
	}
	if !v.CulturalDebateClubs.Valid() {
		return fmt.Errorf("cultural and debate clubs must be %s or %s", Yes, No)
	}
	if !v.AccessToInternet.Valid() {
		return fmt.Errorf("access to internet must be %s or %s", Yes, No)
	}
	if !v.InfrastructureChallenges.Valid() {
		return fmt.Errorf("infrastructure challenges must be %s or %s", Yes, No)
	}
	if v.TeacherStudentRatio != RatioGood && v.TeacherStudentRatio != RatioBad && v.TeacherStudentRatio != RatioInvalid {
		return fmt.Errorf("teacher/student ratio category must be %s, %s or %s", RatioGood, RatioBad, RatioInvalid)
	}
	if !v.HouseholdIncome.Valid() {
		return fmt.Errorf("household income must be %s, %s or %s", IncomeLow, IncomeAverage, IncomeHigh)
	}
	return nil
}

// Row lays the vector out under the column names the encoder was fitted
// with. Household income is sent as its ordinal encoding, the same
// mapping the training pipeline applied before one-hot encoding the
// remaining columns.
func (v FeatureVector) Row() map[string]interface{} {
	return map[string]interface{}{
		"Gender":                    string(v.Gender),
		"Location":                  string(v.Location),
		"Public_vs_Private":         string(v.SchoolType),
		"Sports_Participation":      string(v.SportsParticipation),
		"Academic_Clubs":            string(v.AcademicClubs),
		"Cultural_and_Debate_Clubs": string(v.CulturalDebateClubs),
		"Access_to_Internet":        string(v.AccessToInternet),
		"Infrastructure_Challenges": string(v.InfrastructureChallenges),
		"Teacher_to_Student_Ratio":  string(v.TeacherStudentRatio),
		"Household_Income":          v.HouseholdIncome.Ordinal(),
		"Current_Average":           v.CurrentAverage,
	}
}
