package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aksoyde/gradesphere/internal/app/models"
	"github.com/aksoyde/gradesphere/internal/pkg/apperrors"
	"github.com/aksoyde/gradesphere/internal/pkg/dberrors"
)

const studentColumns = `student_id, name, gender, age, location, household_income,
	sports_participation, academic_clubs, cultural_debate_clubs, infrastructure_challenges,
	school_name, average, predicted_average, created_at, updated_at`

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanStudent(row interface{ Scan(dest ...any) error }, s *models.Student) error {
	return row.Scan(
		&s.StudentID,
		&s.Name,
		&s.Gender,
		&s.Age,
		&s.Location,
		&s.HouseholdIncome,
		&s.SportsParticipation,
		&s.AcademicClubs,
		&s.CulturalDebateClubs,
		&s.InfrastructureChallenges,
		&s.SchoolName,
		&s.Average,
		&s.PredictedAverage,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
}

// Create inserts a new student record. Average and predicted average
// start out NULL; only the derived-value writers ever touch them.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (student_id, name, gender, age, location, household_income,
			sports_participation, academic_clubs, cultural_debate_clubs, infrastructure_challenges, school_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		student.StudentID,
		student.Name,
		student.Gender,
		student.Age,
		student.Location,
		student.HouseholdIncome,
		student.SportsParticipation,
		student.AcademicClubs,
		student.CulturalDebateClubs,
		student.InfrastructureChallenges,
		student.SchoolName,
	).Scan(&student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrStudentAlreadyExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by its ID
func (r *StudentRepository) GetByID(ctx context.Context, studentID string) (*models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM students WHERE student_id = $1`, studentColumns)

	var student models.Student
	if err := scanStudent(r.db.QueryRow(ctx, query, studentID), &student); err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// GetByIDWithSchool retrieves a student and, when linked, its school
func (r *StudentRepository) GetByIDWithSchool(ctx context.Context, studentID string) (*models.Student, error) {
	query := `
		SELECT s.student_id, s.name, s.gender, s.age, s.location, s.household_income,
			s.sports_participation, s.academic_clubs, s.cultural_debate_clubs, s.infrastructure_challenges,
			s.school_name, s.average, s.predicted_average, s.created_at, s.updated_at,
			sc.name, sc.has_internet_access, sc.teacher_student_ratio, sc.teacher_student_ratio_category, sc.type, sc.created_at
		FROM students s
		LEFT JOIN schools sc ON sc.name = s.school_name
		WHERE s.student_id = $1
	`

	var student models.Student
	var schoolName *string
	var hasInternet *bool
	var ratio, ratioCategory, schoolType *string
	var schoolCreatedAt *time.Time

	err := r.db.QueryRow(ctx, query, studentID).Scan(
		&student.StudentID,
		&student.Name,
		&student.Gender,
		&student.Age,
		&student.Location,
		&student.HouseholdIncome,
		&student.SportsParticipation,
		&student.AcademicClubs,
		&student.CulturalDebateClubs,
		&student.InfrastructureChallenges,
		&student.SchoolName,
		&student.Average,
		&student.PredictedAverage,
		&student.CreatedAt,
		&student.UpdatedAt,
		&schoolName,
		&hasInternet,
		&ratio,
		&ratioCategory,
		&schoolType,
		&schoolCreatedAt,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	if schoolName != nil {
		student.School = &models.School{
			Name:                *schoolName,
			HasInternetAccess:   *hasInternet,
			TeacherStudentRatio: *ratio,
			RatioCategory:       models.RatioCategory(*ratioCategory),
			Type:                models.SchoolType(*schoolType),
			CreatedAt:           *schoolCreatedAt,
		}
	}

	return &student, nil
}

// SearchByName retrieves students whose name contains the given
// fragment, case-insensitively. An empty fragment lists everyone.
func (r *StudentRepository) SearchByName(ctx context.Context, name string) ([]*models.Student, error) {
	builder := r.sb.
		Select(studentColumns).
		From("students").
		OrderBy("name ASC")

	if fragment := strings.TrimSpace(name); fragment != "" {
		builder = builder.Where(squirrel.ILike{"name": "%" + fragment + "%"})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building student search query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error searching students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := scanStudent(rows, &student); err != nil {
			return nil, err
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Update rewrites a student's descriptive attributes. The derived
// columns (average, predicted average) are not touched here.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET name = $2, gender = $3, age = $4, location = $5, household_income = $6,
			sports_participation = $7, academic_clubs = $8, cultural_debate_clubs = $9,
			infrastructure_challenges = $10, school_name = $11, updated_at = now()
		WHERE student_id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		student.StudentID,
		student.Name,
		student.Gender,
		student.Age,
		student.Location,
		student.HouseholdIncome,
		student.SportsParticipation,
		student.AcademicClubs,
		student.CulturalDebateClubs,
		student.InfrastructureChallenges,
		student.SchoolName,
	)
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// SetAverage persists the recomputed running average (nil clears it)
func (r *StudentRepository) SetAverage(ctx context.Context, studentID string, average *float64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE students SET average = $2, updated_at = now() WHERE student_id = $1`,
		studentID, average,
	)
	if err != nil {
		return fmt.Errorf("error persisting average: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// SetPredictedAverage persists the latest model projection
func (r *StudentRepository) SetPredictedAverage(ctx context.Context, studentID string, predicted *float64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE students SET predicted_average = $2, updated_at = now() WHERE student_id = $1`,
		studentID, predicted,
	)
	if err != nil {
		return fmt.Errorf("error persisting predicted average: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}
