package services

import (
	"context"

	"github.com/aksoyde/gradesphere/internal/app/models"
)

// The store interfaces are the slice of the record store each service
// consumes. The pgx-backed repositories satisfy them; tests substitute
// in-memory fakes.

// SchoolStore is the school slice of the record store
type SchoolStore interface {
	Create(ctx context.Context, school *models.School) error
	GetByName(ctx context.Context, name string) (*models.School, error)
}

// StudentStore is the student slice of the record store
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, studentID string) (*models.Student, error)
	GetByIDWithSchool(ctx context.Context, studentID string) (*models.Student, error)
	SearchByName(ctx context.Context, name string) ([]*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	SetAverage(ctx context.Context, studentID string, average *float64) error
	SetPredictedAverage(ctx context.Context, studentID string, predicted *float64) error
}

// ExamScoreStore is the exam score slice of the record store
type ExamScoreStore interface {
	Create(ctx context.Context, score *models.ExamScore) error
	GetByID(ctx context.Context, examID string) (*models.ExamScore, error)
	ListByStudent(ctx context.Context, studentID string) ([]*models.ExamScore, error)
	UpdateScore(ctx context.Context, examID string, score float64) error
}

// TokenIssuer hands out session tokens for authenticated schools
type TokenIssuer interface {
	GenerateToken(schoolName string) (token string, expiresIn int, err error)
}
