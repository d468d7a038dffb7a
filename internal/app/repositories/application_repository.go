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
	"github.com/adithi-k-max/FSAD-project/internal/pkg/dberrors"
	"github.com/adithi-k-max/FSAD-project/internal/pkg/helpers"
	"github.com/adithi-k-max/FSAD-project/internal/pkg/logger"
)

const (
	constraintOneApplicationPerJob = "applications_job_id_student_id_key"
	constraintApplicationJob       = "applications_job_id_fkey"
)

var applicationColumns = []string{"id", "job_id", "student_id", "status", "applied_at"}

// ApplicationRepository handles application database operations
type ApplicationRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(q db.DBTX) *ApplicationRepository {
	return &ApplicationRepository{db: q, sb: newStatementBuilder()}
}

func applicationDest(a *models.Application) []any {
	return []any{&a.ID, &a.JobID, &a.StudentID, &a.Status, &a.AppliedAt}
}

func scanApplicationDetail(row pgx.Row) (*models.ApplicationDetail, error) {
	d := &models.ApplicationDetail{Job: &models.Job{}, Student: &models.User{}}
	dest := applicationDest(&d.Application)
	dest = append(dest, jobDest(d.Job)...)
	dest = append(dest, publicUserDest(d.Student)...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return d, nil
}

// CreateApplication inserts app with status applied unless set, and fills in ID and AppliedAt
func (r *ApplicationRepository) CreateApplication(ctx context.Context, app *models.Application) error {
	if app.Status == "" {
		app.Status = models.StatusApplied
	}

	sql, args, err := r.sb.Insert("applications").
		Columns("job_id", "student_id", "status").
		Values(app.JobID, app.StudentID, app.Status).
		Suffix("RETURNING id, applied_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create application SQL")
		return fmt.Errorf("failed to build create application query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&app.ID, &app.AppliedAt)
	if err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, constraintOneApplicationPerJob):
			logger.Warn().Int64("jobID", app.JobID).Int64("studentID", app.StudentID).Msg("Duplicate application rejected")
			return apperrors.ErrAlreadyApplied
		case dberrors.IsForeignKeyError(err, constraintApplicationJob):
			return apperrors.ErrJobNotFound
		}
		logger.Error().Err(err).Int64("jobID", app.JobID).Int64("studentID", app.StudentID).Msg("Error executing create application query")
		return fmt.Errorf("error creating application: %w", err)
	}
	return nil
}

// GetApplication retrieves an application by ID
func (r *ApplicationRepository) GetApplication(ctx context.Context, id int64) (*models.Application, error) {
	sql, args, err := r.sb.Select(applicationColumns...).From("applications").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get application SQL")
		return nil, fmt.Errorf("failed to build get application query: %w", err)
	}

	app := &models.Application{}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(applicationDest(app)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		logger.Error().Err(err).Int64("applicationID", id).Msg("Error scanning application row")
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}
	return app, nil
}

// ListApplications returns every application with its job and applicant
func (r *ApplicationRepository) ListApplications(ctx context.Context) ([]*models.ApplicationDetail, error) {
	return r.listApplications(ctx, nil)
}

// ListApplicationsByStudent returns the applications submitted by one student user
func (r *ApplicationRepository) ListApplicationsByStudent(ctx context.Context, studentID int64) ([]*models.ApplicationDetail, error) {
	return r.listApplications(ctx, squirrel.Eq{"a.student_id": studentID})
}

// ListApplicationsByEmployer returns the applications to any job posted by one employer user
func (r *ApplicationRepository) ListApplicationsByEmployer(ctx context.Context, employerID int64) ([]*models.ApplicationDetail, error) {
	return r.listApplications(ctx, squirrel.Eq{"j.employer_id": employerID})
}

// ListApplicationsByJob returns the applications to one job
func (r *ApplicationRepository) ListApplicationsByJob(ctx context.Context, jobID int64) ([]*models.ApplicationDetail, error) {
	return r.listApplications(ctx, squirrel.Eq{"a.job_id": jobID})
}

func (r *ApplicationRepository) listApplications(ctx context.Context, where squirrel.Sqlizer) ([]*models.ApplicationDetail, error) {
	cols := helpers.Qualify("a", applicationColumns...)
	cols = append(cols, helpers.Qualify("j", jobColumns...)...)
	cols = append(cols, helpers.Qualify("u", publicUserColumns...)...)

	q := r.sb.Select(cols...).
		From("applications a").
		Join("jobs j ON j.id = a.job_id").
		Join("users u ON u.id = a.student_id").
		OrderBy("a.applied_at DESC", "a.id DESC")
	if where != nil {
		q = q.Where(where)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list applications SQL")
		return nil, fmt.Errorf("failed to build list applications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list applications query")
		return nil, fmt.Errorf("error listing applications: %w", err)
	}
	defer rows.Close()

	apps := []*models.ApplicationDetail{}
	for rows.Next() {
		d, err := scanApplicationDetail(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning application row")
			return nil, fmt.Errorf("error scanning application: %w", err)
		}
		apps = append(apps, d)
	}
	return apps, rows.Err()
}

// UpdateApplicationStatus sets the status of an application and returns the updated row
func (r *ApplicationRepository) UpdateApplicationStatus(ctx context.Context, id int64, status models.ApplicationStatus) (*models.Application, error) {
	sql, args, err := r.sb.Update("applications").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + helpers.JoinColumns(applicationColumns)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update application status SQL")
		return nil, fmt.Errorf("failed to build update application status query: %w", err)
	}

	app := &models.Application{}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(applicationDest(app)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		logger.Error().Err(err).Int64("applicationID", id).Msg("Error executing update application status query")
		return nil, fmt.Errorf("error updating application status: %w", err)
	}
	return app, nil
}
