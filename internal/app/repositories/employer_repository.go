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
	"github.com/adithi-k-max/FSAD-project/internal/pkg/helpers"
	"github.com/adithi-k-max/FSAD-project/internal/pkg/logger"
)

var employerColumns = []string{"id", "user_id", "company_name", "industry", "website", "is_approved"}

// EmployerRepository handles employer profile database operations
type EmployerRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewEmployerRepository creates a new EmployerRepository
func NewEmployerRepository(q db.DBTX) *EmployerRepository {
	return &EmployerRepository{db: q, sb: newStatementBuilder()}
}

func scanEmployer(row pgx.Row) (*models.Employer, error) {
	e := &models.Employer{}
	if err := row.Scan(&e.ID, &e.UserID, &e.CompanyName, &e.Industry, &e.Website, &e.IsApproved); err != nil {
		return nil, err
	}
	return e, nil
}

// CreateEmployer inserts an employer profile and fills in its ID.
// New employers always start unapproved.
func (r *EmployerRepository) CreateEmployer(ctx context.Context, employer *models.Employer) error {
	sql, args, err := r.sb.Insert("employers").
		Columns("user_id", "company_name", "industry", "website").
		Values(employer.UserID, employer.CompanyName, employer.Industry, employer.Website).
		Suffix("RETURNING id, is_approved").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create employer SQL")
		return fmt.Errorf("failed to build create employer query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&employer.ID, &employer.IsApproved); err != nil {
		logger.Error().Err(err).Int64("userID", employer.UserID).Msg("Error executing create employer query")
		return fmt.Errorf("error creating employer: %w", err)
	}
	return nil
}

// GetEmployerByUserID retrieves the profile of an employer user
func (r *EmployerRepository) GetEmployerByUserID(ctx context.Context, userID int64) (*models.Employer, error) {
	sql, args, err := r.sb.Select(employerColumns...).From("employers").Where(squirrel.Eq{"user_id": userID}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get employer SQL")
		return nil, fmt.Errorf("failed to build get employer query: %w", err)
	}

	e, err := scanEmployer(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEmployerNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error scanning employer row")
		return nil, fmt.Errorf("error retrieving employer: %w", err)
	}
	return e, nil
}

// ListEmployers returns every employer profile ordered by ID
func (r *EmployerRepository) ListEmployers(ctx context.Context) ([]*models.Employer, error) {
	sql, args, err := r.sb.Select(employerColumns...).From("employers").OrderBy("id").ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list employers SQL")
		return nil, fmt.Errorf("failed to build list employers query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list employers query")
		return nil, fmt.Errorf("error listing employers: %w", err)
	}
	defer rows.Close()

	employers := []*models.Employer{}
	for rows.Next() {
		e, err := scanEmployer(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning employer: %w", err)
		}
		employers = append(employers, e)
	}
	return employers, rows.Err()
}

// ApproveEmployer marks the employer profile with the given ID approved
func (r *EmployerRepository) ApproveEmployer(ctx context.Context, id int64) (*models.Employer, error) {
	sql, args, err := r.sb.Update("employers").
		Set("is_approved", true).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + helpers.JoinColumns(employerColumns)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building approve employer SQL")
		return nil, fmt.Errorf("failed to build approve employer query: %w", err)
	}

	e, err := scanEmployer(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			logger.Warn().Int64("employerID", id).Msg("Attempted to approve unknown employer")
			return nil, apperrors.ErrEmployerNotFound
		}
		logger.Error().Err(err).Int64("employerID", id).Msg("Error executing approve employer query")
		return nil, fmt.Errorf("error approving employer: %w", err)
	}
	return e, nil
}
