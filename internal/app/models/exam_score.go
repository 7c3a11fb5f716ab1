package models

import "time"

// ExamScore defines a single exam result based on the 'exam_scores' table.
// A student exclusively owns its exam score set; deleting the student
// cascades to its scores.
type ExamScore struct {
	ExamID    string    `json:"examId" db:"exam_id" example:"b7a2c1e8-93d4-47f1-8a6b-1f20cd9e3a55"`
	StudentID string    `json:"studentId" db:"student_id" example:"3e91f0d4-5a0e-4cf2-9c40-85a1d9f0b627"`
	Subject   string    `json:"subject" db:"subject" example:"Mathematics"`
	Score     float64   `json:"score" db:"score" example:"87.5"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
