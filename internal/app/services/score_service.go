package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/aksoyde/gradesphere/internal/app/models"
	"github.com/aksoyde/gradesphere/internal/app/models/dto"
	"github.com/aksoyde/gradesphere/internal/pkg/apperrors"
	"github.com/aksoyde/gradesphere/internal/pkg/logger"
)

// ScoreService defines the interface for exam score mutations. Every
// mutation recomputes the owning student's average before returning, so
// the stored average is never observably stale.
type ScoreService interface {
	AddScore(ctx context.Context, studentID string, req *dto.AddExamScoreRequest) (*models.ExamScore, error)
	UpdateScore(ctx context.Context, examID string, req *dto.UpdateExamScoreRequest) (*models.ExamScore, error)
	ListScores(ctx context.Context, studentID string) ([]*models.ExamScore, error)
}

// scoreServiceImpl implements the ScoreService interface
type scoreServiceImpl struct {
	scoreStore   ExamScoreStore
	studentStore StudentStore
	aggregator   AverageAggregator
	studentLocks *keyedMutex
}

// NewScoreService creates a new score service instance
func NewScoreService(scoreStore ExamScoreStore, studentStore StudentStore, aggregator AverageAggregator) ScoreService {
	return &scoreServiceImpl{
		scoreStore:   scoreStore,
		studentStore: studentStore,
		aggregator:   aggregator,
		studentLocks: newKeyedMutex(),
	}
}

func validateScore(score float64) error {
	if score < 0 || score > 100 {
		return apperrors.NewValidationError("score must be between 0 and 100").
			WithDetails(map[string]interface{}{"field": "score"})
	}
	return nil
}

// AddScore records a new exam score for a student and recomputes the
// running average. The score write and the average persist are one
// logical unit: if the average persist fails the whole call fails, even
// though the score row exists (at-least-once, the caller retries).
func (s *scoreServiceImpl) AddScore(ctx context.Context, studentID string, req *dto.AddExamScoreRequest) (*models.ExamScore, error) {
	if req.Subject == "" {
		return nil, apperrors.NewValidationError("subject cannot be empty").
			WithDetails(map[string]interface{}{"field": "subject"})
	}
	if err := validateScore(req.Score); err != nil {
		return nil, err
	}

	// Validate ownership up front so a bad student ID does not leave a
	// dangling score attempt.
	if _, err := s.studentStore.GetByID(ctx, studentID); err != nil {
		return nil, err
	}

	score := &models.ExamScore{
		ExamID:    uuid.NewString(),
		StudentID: studentID,
		Subject:   req.Subject,
		Score:     req.Score,
	}

	s.studentLocks.Lock(studentID)
	defer s.studentLocks.Unlock(studentID)

	if err := s.scoreStore.Create(ctx, score); err != nil {
		return nil, err
	}

	if _, err := s.aggregator.Recompute(ctx, studentID); err != nil {
		logger.Error().Err(err).Str("studentID", studentID).Msg("Average recompute failed after score write")
		return nil, err
	}

	return score, nil
}

// UpdateScore corrects an existing exam score in place and recomputes
// the owning student's average.
func (s *scoreServiceImpl) UpdateScore(ctx context.Context, examID string, req *dto.UpdateExamScoreRequest) (*models.ExamScore, error) {
	if err := validateScore(req.Score); err != nil {
		return nil, err
	}

	score, err := s.scoreStore.GetByID(ctx, examID)
	if err != nil {
		return nil, err
	}

	s.studentLocks.Lock(score.StudentID)
	defer s.studentLocks.Unlock(score.StudentID)

	if err := s.scoreStore.UpdateScore(ctx, examID, req.Score); err != nil {
		return nil, err
	}
	score.Score = req.Score

	if _, err := s.aggregator.Recompute(ctx, score.StudentID); err != nil {
		logger.Error().Err(err).Str("studentID", score.StudentID).Msg("Average recompute failed after score update")
		return nil, err
	}

	return score, nil
}

// ListScores retrieves a student's exam score set
func (s *scoreServiceImpl) ListScores(ctx context.Context, studentID string) ([]*models.ExamScore, error) {
	if _, err := s.studentStore.GetByID(ctx, studentID); err != nil {
		return nil, err
	}
	return s.scoreStore.ListByStudent(ctx, studentID)
}
