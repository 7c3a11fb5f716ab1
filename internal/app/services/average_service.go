package services

import (
	"context"
	"fmt"
)

// AverageAggregator recomputes a student's running average from its
// exam score set and persists the result. The stored average is only
// ever written through this path.
type AverageAggregator interface {
	Recompute(ctx context.Context, studentID string) (*float64, error)
}

// averageServiceImpl implements the AverageAggregator interface
type averageServiceImpl struct {
	scoreStore   ExamScoreStore
	studentStore StudentStore
}

// NewAverageService creates a new average aggregator instance
func NewAverageService(scoreStore ExamScoreStore, studentStore StudentStore) AverageAggregator {
	return &averageServiceImpl{
		scoreStore:   scoreStore,
		studentStore: studentStore,
	}
}

// Recompute derives the unweighted mean over the student's scores and
// persists it. An empty score set clears the stored average to NULL.
// Callers mutating scores hold the per-student lock across the score
// write and this call.
func (s *averageServiceImpl) Recompute(ctx context.Context, studentID string) (*float64, error) {
	scores, err := s.scoreStore.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error reading scores for average: %w", err)
	}

	if len(scores) == 0 {
		if err := s.studentStore.SetAverage(ctx, studentID, nil); err != nil {
			return nil, err
		}
		return nil, nil
	}

	var sum float64
	for _, score := range scores {
		sum += score.Score
	}
	average := sum / float64(len(scores))

	if err := s.studentStore.SetAverage(ctx, studentID, &average); err != nil {
		return nil, err
	}

	return &average, nil
}
