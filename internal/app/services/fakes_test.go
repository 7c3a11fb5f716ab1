package services

import (
	"context"
	"errors"
	"sync"

	"github.com/aksoyde/gradesphere/internal/app/models"
	"github.com/aksoyde/gradesphere/internal/pkg/apperrors"
)

// In-memory store fakes backing the service tests.

// assertError stands in for an unavailable storage backend
var assertError = errors.New("storage unavailable")

type fakeSchoolStore struct {
	mu      sync.Mutex
	schools map[string]*models.School
}

func newFakeSchoolStore() *fakeSchoolStore {
	return &fakeSchoolStore{schools: map[string]*models.School{}}
}

func (f *fakeSchoolStore) Create(_ context.Context, school *models.School) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.schools[school.Name]; ok {
		return apperrors.ErrSchoolAlreadyExists
	}
	copied := *school
	f.schools[school.Name] = &copied
	return nil
}

func (f *fakeSchoolStore) GetByName(_ context.Context, name string) (*models.School, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	school, ok := f.schools[name]
	if !ok {
		return nil, apperrors.ErrSchoolNotFound
	}
	copied := *school
	return &copied, nil
}

type fakeStudentStore struct {
	mu        sync.Mutex
	students  map[string]*models.Student
	schools   map[string]*models.School
	failSetAv bool
	writes    int
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{
		students: map[string]*models.Student{},
		schools:  map[string]*models.School{},
	}
}

func (f *fakeStudentStore) Create(_ context.Context, student *models.Student) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.students[student.StudentID]; ok {
		return apperrors.ErrStudentAlreadyExists
	}
	copied := *student
	f.students[student.StudentID] = &copied
	f.writes++
	return nil
}

func (f *fakeStudentStore) GetByID(_ context.Context, studentID string) (*models.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	student, ok := f.students[studentID]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	copied := *student
	return &copied, nil
}

func (f *fakeStudentStore) GetByIDWithSchool(ctx context.Context, studentID string) (*models.Student, error) {
	student, err := f.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if student.SchoolName != nil {
		if school, ok := f.schools[*student.SchoolName]; ok {
			copied := *school
			student.School = &copied
		}
	}
	return student, nil
}

func (f *fakeStudentStore) SearchByName(_ context.Context, name string) ([]*models.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Student
	for _, student := range f.students {
		copied := *student
		out = append(out, &copied)
	}
	_ = name
	return out, nil
}

func (f *fakeStudentStore) Update(_ context.Context, student *models.Student) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.students[student.StudentID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	copied := *student
	f.students[student.StudentID] = &copied
	f.writes++
	return nil
}

func (f *fakeStudentStore) SetAverage(_ context.Context, studentID string, average *float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSetAv {
		return assertError
	}
	student, ok := f.students[studentID]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	student.Average = average
	f.writes++
	return nil
}

func (f *fakeStudentStore) SetPredictedAverage(_ context.Context, studentID string, predicted *float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	student, ok := f.students[studentID]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	student.PredictedAverage = predicted
	f.writes++
	return nil
}

type fakeScoreStore struct {
	mu     sync.Mutex
	scores map[string]*models.ExamScore
}

func newFakeScoreStore() *fakeScoreStore {
	return &fakeScoreStore{scores: map[string]*models.ExamScore{}}
}

func (f *fakeScoreStore) Create(_ context.Context, score *models.ExamScore) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.scores[score.ExamID]; ok {
		return apperrors.ErrExamScoreAlreadyExists
	}
	copied := *score
	f.scores[score.ExamID] = &copied
	return nil
}

func (f *fakeScoreStore) GetByID(_ context.Context, examID string) (*models.ExamScore, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	score, ok := f.scores[examID]
	if !ok {
		return nil, apperrors.ErrExamScoreNotFound
	}
	copied := *score
	return &copied, nil
}

func (f *fakeScoreStore) ListByStudent(_ context.Context, studentID string) ([]*models.ExamScore, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.ExamScore
	for _, score := range f.scores {
		if score.StudentID == studentID {
			copied := *score
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeScoreStore) UpdateScore(_ context.Context, examID string, value float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	score, ok := f.scores[examID]
	if !ok {
		return apperrors.ErrExamScoreNotFound
	}
	score.Score = value
	return nil
}

type fakeTokenIssuer struct{}

func (fakeTokenIssuer) GenerateToken(schoolName string) (string, int, error) {
	return "token-for-" + schoolName, 3600, nil
}

// echoPredictor answers with the vector's current average, which makes
// projector pass-through corruption visible.
type echoPredictor struct{}

func (echoPredictor) Predict(_ context.Context, vector models.FeatureVector) (float64, error) {
	if err := vector.Validate(); err != nil {
		return 0, err
	}
	return vector.CurrentAverage, nil
}
