package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aksoyde/gradesphere/internal/app/models"
	"github.com/aksoyde/gradesphere/internal/pkg/apperrors"
	"github.com/aksoyde/gradesphere/internal/pkg/dberrors"
)

// ExamScoreRepository handles database operations for exam scores
type ExamScoreRepository struct {
	db *pgxpool.Pool
}

// NewExamScoreRepository creates a new exam score repository
func NewExamScoreRepository(db *pgxpool.Pool) *ExamScoreRepository {
	return &ExamScoreRepository{
		db: db,
	}
}

// Create inserts a new exam score
func (r *ExamScoreRepository) Create(ctx context.Context, score *models.ExamScore) error {
	query := `
		INSERT INTO exam_scores (exam_id, student_id, subject, score)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		score.ExamID,
		score.StudentID,
		score.Subject,
		score.Score,
	).Scan(&score.CreatedAt, &score.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrExamScoreAlreadyExists
		}
		return fmt.Errorf("error creating exam score: %w", err)
	}

	return nil
}

// GetByID retrieves an exam score by its ID
func (r *ExamScoreRepository) GetByID(ctx context.Context, examID string) (*models.ExamScore, error) {
	query := `
		SELECT exam_id, student_id, subject, score, created_at, updated_at
		FROM exam_scores
		WHERE exam_id = $1
	`

	var score models.ExamScore
	err := r.db.QueryRow(ctx, query, examID).Scan(
		&score.ExamID,
		&score.StudentID,
		&score.Subject,
		&score.Score,
		&score.CreatedAt,
		&score.UpdatedAt,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrExamScoreNotFound
		}
		return nil, fmt.Errorf("error retrieving exam score: %w", err)
	}

	return &score, nil
}

// ListByStudent retrieves all exam scores owned by a student
func (r *ExamScoreRepository) ListByStudent(ctx context.Context, studentID string) ([]*models.ExamScore, error) {
	query := `
		SELECT exam_id, student_id, subject, score, created_at, updated_at
		FROM exam_scores
		WHERE student_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing exam scores: %w", err)
	}
	defer rows.Close()

	var scores []*models.ExamScore
	for rows.Next() {
		var score models.ExamScore
		if err := rows.Scan(
			&score.ExamID,
			&score.StudentID,
			&score.Subject,
			&score.Score,
			&score.CreatedAt,
			&score.UpdatedAt,
		); err != nil {
			return nil, err
		}
		scores = append(scores, &score)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return scores, nil
}

// UpdateScore rewrites the score of an existing exam in place
func (r *ExamScoreRepository) UpdateScore(ctx context.Context, examID string, score float64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE exam_scores SET score = $2, updated_at = now() WHERE exam_id = $1`,
		examID, score,
	)
	if err != nil {
		return fmt.Errorf("error updating exam score: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrExamScoreNotFound
	}

	return nil
}
