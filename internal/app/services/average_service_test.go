package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aksoyde/gradesphere/internal/app/models"
	"github.com/aksoyde/gradesphere/internal/app/models/dto"
)

func seedStudent(t *testing.T, store *fakeStudentStore, id string) {
	t.Helper()
	err := store.Create(context.Background(), &models.Student{
		StudentID:                id,
		Name:                     "Test Student",
		Gender:                   models.GenderFemale,
		Age:                      16,
		Location:                 models.LocationUrban,
		HouseholdIncome:          models.IncomeAverage,
		SportsParticipation:      models.Yes,
		AcademicClubs:            models.No,
		CulturalDebateClubs:      models.No,
		InfrastructureChallenges: models.No,
	})
	require.NoError(t, err)
}

func TestRecomputeAverage(t *testing.T) {
	ctx := context.Background()
	scoreStore := newFakeScoreStore()
	studentStore := newFakeStudentStore()
	seedStudent(t, studentStore, "stu-1")

	aggregator := NewAverageService(scoreStore, studentStore)
	scoreSvc := NewScoreService(scoreStore, studentStore, aggregator)

	// Empty score set clears the average
	avg, err := aggregator.Recompute(ctx, "stu-1")
	require.NoError(t, err)
	assert.Nil(t, avg)

	for _, v := range []float64{80, 90, 70} {
		_, err := scoreSvc.AddScore(ctx, "stu-1", &dto.AddExamScoreRequest{Subject: "Math", Score: v})
		require.NoError(t, err)
	}

	student, err := studentStore.GetByID(ctx, "stu-1")
	require.NoError(t, err)
	require.NotNil(t, student.Average)
	assert.Equal(t, 80.0, *student.Average)

	// A fourth score shifts the mean
	_, err = scoreSvc.AddScore(ctx, "stu-1", &dto.AddExamScoreRequest{Subject: "History", Score: 60})
	require.NoError(t, err)

	student, err = studentStore.GetByID(ctx, "stu-1")
	require.NoError(t, err)
	require.NotNil(t, student.Average)
	assert.Equal(t, 75.0, *student.Average)
}

func TestRecomputeAverageIdempotent(t *testing.T) {
	ctx := context.Background()
	scoreStore := newFakeScoreStore()
	studentStore := newFakeStudentStore()
	seedStudent(t, studentStore, "stu-1")

	aggregator := NewAverageService(scoreStore, studentStore)
	scoreSvc := NewScoreService(scoreStore, studentStore, aggregator)

	_, err := scoreSvc.AddScore(ctx, "stu-1", &dto.AddExamScoreRequest{Subject: "Math", Score: 88})
	require.NoError(t, err)

	first, err := aggregator.Recompute(ctx, "stu-1")
	require.NoError(t, err)
	second, err := aggregator.Recompute(ctx, "stu-1")
	require.NoError(t, err)

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, *first, *second)
}

func TestAddScoreFailedAveragePersistFailsCall(t *testing.T) {
	ctx := context.Background()
	scoreStore := newFakeScoreStore()
	studentStore := newFakeStudentStore()
	seedStudent(t, studentStore, "stu-1")

	aggregator := NewAverageService(scoreStore, studentStore)
	scoreSvc := NewScoreService(scoreStore, studentStore, aggregator)

	studentStore.failSetAv = true
	_, err := scoreSvc.AddScore(ctx, "stu-1", &dto.AddExamScoreRequest{Subject: "Math", Score: 50})
	assert.Error(t, err)

	// The score row exists even though the call failed: the guarantee
	// is at-least-once, the caller retries the whole unit.
	scores, listErr := scoreStore.ListByStudent(ctx, "stu-1")
	require.NoError(t, listErr)
	assert.Len(t, scores, 1)
}

func TestUpdateScoreRecomputesAverage(t *testing.T) {
	ctx := context.Background()
	scoreStore := newFakeScoreStore()
	studentStore := newFakeStudentStore()
	seedStudent(t, studentStore, "stu-1")

	aggregator := NewAverageService(scoreStore, studentStore)
	scoreSvc := NewScoreService(scoreStore, studentStore, aggregator)

	score, err := scoreSvc.AddScore(ctx, "stu-1", &dto.AddExamScoreRequest{Subject: "Math", Score: 40})
	require.NoError(t, err)
	_, err = scoreSvc.AddScore(ctx, "stu-1", &dto.AddExamScoreRequest{Subject: "Biology", Score: 60})
	require.NoError(t, err)

	_, err = scoreSvc.UpdateScore(ctx, score.ExamID, &dto.UpdateExamScoreRequest{Score: 80})
	require.NoError(t, err)

	student, err := studentStore.GetByID(ctx, "stu-1")
	require.NoError(t, err)
	require.NotNil(t, student.Average)
	assert.Equal(t, 70.0, *student.Average)
}

func TestAddScoreValidation(t *testing.T) {
	ctx := context.Background()
	scoreStore := newFakeScoreStore()
	studentStore := newFakeStudentStore()
	seedStudent(t, studentStore, "stu-1")

	aggregator := NewAverageService(scoreStore, studentStore)
	scoreSvc := NewScoreService(scoreStore, studentStore, aggregator)

	tests := []struct {
		name    string
		subject string
		score   float64
	}{
		{name: "negative score", subject: "Math", score: -1},
		{name: "score above 100", subject: "Math", score: 100.5},
		{name: "empty subject", subject: "", score: 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scoreSvc.AddScore(ctx, "stu-1", &dto.AddExamScoreRequest{Subject: tt.subject, Score: tt.score})
			assert.Error(t, err)
		})
	}

	// Boundary scores are accepted
	for _, v := range []float64{0, 100} {
		_, err := scoreSvc.AddScore(ctx, "stu-1", &dto.AddExamScoreRequest{Subject: "Art", Score: v})
		assert.NoError(t, err)
	}
}
