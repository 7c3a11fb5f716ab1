package models

import "time"

// School defines the school model based on the 'schools' table. The
// name is the natural key: it identifies the school at login and links
// students to their school context.
type School struct {
	Name                string        `json:"name" db:"name" example:"Greenhill High"`
	CredentialHash      string        `json:"-" db:"credential_hash"`
	HasInternetAccess   bool          `json:"hasInternetAccess" db:"has_internet_access" example:"true"`
	TeacherStudentRatio string        `json:"teacherStudentRatio" db:"teacher_student_ratio" example:"20"`
	RatioCategory       RatioCategory `json:"teacherStudentRatioCategory" db:"teacher_student_ratio_category" example:"Good"`
	Type                SchoolType    `json:"type" db:"type" example:"Public"`
	CreatedAt           time.Time     `json:"createdAt" db:"created_at"`
}
