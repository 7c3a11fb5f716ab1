package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aksoyde/gradesphere/internal/app/models"
	"github.com/aksoyde/gradesphere/internal/pkg/apperrors"
	"github.com/aksoyde/gradesphere/internal/pkg/dberrors"
)

// SchoolRepository handles database operations for schools
type SchoolRepository struct {
	db *pgxpool.Pool
}

// NewSchoolRepository creates a new school repository
func NewSchoolRepository(db *pgxpool.Pool) *SchoolRepository {
	return &SchoolRepository{
		db: db,
	}
}

// Create inserts a new school. The name is the primary key; inserting a
// name that already exists fails with ErrSchoolAlreadyExists.
func (r *SchoolRepository) Create(ctx context.Context, school *models.School) error {
	query := `
		INSERT INTO schools (name, credential_hash, has_internet_access, teacher_student_ratio, teacher_student_ratio_category, type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := r.db.QueryRow(ctx, query,
		school.Name,
		school.CredentialHash,
		school.HasInternetAccess,
		school.TeacherStudentRatio,
		school.RatioCategory,
		school.Type,
	).Scan(&school.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueConstraintError(err, "schools_pkey") {
			return apperrors.ErrSchoolAlreadyExists
		}
		return fmt.Errorf("error creating school: %w", err)
	}

	return nil
}

// GetByName retrieves a school by its name (case-sensitive match)
func (r *SchoolRepository) GetByName(ctx context.Context, name string) (*models.School, error) {
	query := `
		SELECT name, credential_hash, has_internet_access, teacher_student_ratio, teacher_student_ratio_category, type, created_at
		FROM schools
		WHERE name = $1
	`

	var school models.School
	err := r.db.QueryRow(ctx, query, name).Scan(
		&school.Name,
		&school.CredentialHash,
		&school.HasInternetAccess,
		&school.TeacherStudentRatio,
		&school.RatioCategory,
		&school.Type,
		&school.CreatedAt,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrSchoolNotFound
		}
		return nil, fmt.Errorf("error retrieving school: %w", err)
	}

	return &school, nil
}
