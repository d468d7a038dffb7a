package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/adithi-k-max/FSAD-project/internal/app/models"
	"github.com/adithi-k-max/FSAD-project/internal/db"
	"github.com/adithi-k-max/FSAD-project/internal/pkg/apperrors"
	"github.com/adithi-k-max/FSAD-project/internal/pkg/logger"
)

var studentColumns = []string{"id", "user_id", "department", "cgpa", "graduation_year", "resume_url"}

// StudentRepository handles student profile database operations
type StudentRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(q db.DBTX) *StudentRepository {
	return &StudentRepository{db: q, sb: newStatementBuilder()}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	s := &models.Student{}
	if err := row.Scan(&s.ID, &s.UserID, &s.Department, &s.CGPA, &s.GraduationYear, &s.ResumeURL); err != nil {
		return nil, err
	}
	return s, nil
}

// CreateStudent inserts a student profile and fills in its ID
func (r *StudentRepository) CreateStudent(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Insert("students").
		Columns("user_id", "department", "cgpa", "graduation_year", "resume_url").
		Values(student.UserID, student.Department, student.CGPA, student.GraduationYear, student.ResumeURL).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&student.ID); err != nil {
		logger.Error().Err(err).Int64("userID", student.UserID).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

// GetStudentByUserID retrieves the profile of a student user
func (r *StudentRepository) GetStudentByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).From("students").Where(squirrel.Eq{"user_id": userID}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get student SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	s, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error scanning student row")
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return s, nil
}

// ListStudents returns every student profile ordered by ID
func (r *StudentRepository) ListStudents(ctx context.Context) ([]*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).From("students").OrderBy("id").ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list students SQL")
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student: %w", err)
		}
		students = append(students, s)
	}
	return students, rows.Err()
}
