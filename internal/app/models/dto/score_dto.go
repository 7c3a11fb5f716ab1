package dto

// AddExamScoreRequest represents a new exam score submission
type AddExamScoreRequest struct {
	Subject string  `json:"subject" binding:"required"`
	Score   float64 `json:"score"`
}

// UpdateExamScoreRequest corrects a previously submitted score in place
type UpdateExamScoreRequest struct {
	Score float64 `json:"score"`
}
