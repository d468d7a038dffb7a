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

var (
	jobColumns = []string{"id", "employer_id", "title", "description", "requirements", "location", "salary", "posted_at"}
	// password is never read in joins
	publicUserColumns = []string{"id", "username", "role", "name", "email", "created_at"}
)

// JobRepository handles job database operations
type JobRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(q db.DBTX) *JobRepository {
	return &JobRepository{db: q, sb: newStatementBuilder()}
}

func jobDest(j *models.Job) []any {
	return []any{&j.ID, &j.EmployerID, &j.Title, &j.Description, &j.Requirements, &j.Location, &j.Salary, &j.PostedAt}
}

func publicUserDest(u *models.User) []any {
	return []any{&u.ID, &u.Username, &u.Role, &u.Name, &u.Email, &u.CreatedAt}
}

func scanJobWithEmployer(row pgx.Row) (*models.JobWithEmployer, error) {
	jw := &models.JobWithEmployer{Employer: &models.User{}}
	dest := append(jobDest(&jw.Job), publicUserDest(jw.Employer)...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return jw, nil
}

// CreateJob inserts job and fills in its ID and PostedAt
func (r *JobRepository) CreateJob(ctx context.Context, job *models.Job) error {
	sql, args, err := r.sb.Insert("jobs").
		Columns("employer_id", "title", "description", "requirements", "location", "salary").
		Values(job.EmployerID, job.Title, job.Description, job.Requirements, job.Location, job.Salary).
		Suffix("RETURNING id, posted_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create job SQL")
		return fmt.Errorf("failed to build create job query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&job.ID, &job.PostedAt); err != nil {
		logger.Error().Err(err).Int64("employerID", job.EmployerID).Msg("Error executing create job query")
		return fmt.Errorf("error creating job: %w", err)
	}
	return nil
}

// GetJob retrieves a job by ID
func (r *JobRepository) GetJob(ctx context.Context, id int64) (*models.Job, error) {
	sql, args, err := r.sb.Select(jobColumns...).From("jobs").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get job SQL")
		return nil, fmt.Errorf("failed to build get job query: %w", err)
	}

	job := &models.Job{}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(jobDest(job)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrJobNotFound
		}
		logger.Error().Err(err).Int64("jobID", id).Msg("Error scanning job row")
		return nil, fmt.Errorf("error retrieving job: %w", err)
	}
	return job, nil
}

func (r *JobRepository) joinedJobs() squirrel.SelectBuilder {
	cols := append(helpers.Qualify("j", jobColumns...), helpers.Qualify("u", publicUserColumns...)...)
	return r.sb.Select(cols...).
		From("jobs j").
		Join("users u ON u.id = j.employer_id")
}

// GetJobWithEmployer retrieves a job joined with its employer
func (r *JobRepository) GetJobWithEmployer(ctx context.Context, id int64) (*models.JobWithEmployer, error) {
	sql, args, err := r.joinedJobs().Where(squirrel.Eq{"j.id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get job with employer SQL")
		return nil, fmt.Errorf("failed to build get job query: %w", err)
	}

	jw, err := scanJobWithEmployer(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrJobNotFound
		}
		logger.Error().Err(err).Int64("jobID", id).Msg("Error scanning job row")
		return nil, fmt.Errorf("error retrieving job: %w", err)
	}
	return jw, nil
}

// ListJobs returns every job joined with its employer
func (r *JobRepository) ListJobs(ctx context.Context) ([]*models.JobWithEmployer, error) {
	return r.listJobs(ctx, nil)
}

// ListJobsByEmployer returns the jobs posted by one employer user
func (r *JobRepository) ListJobsByEmployer(ctx context.Context, employerID int64) ([]*models.JobWithEmployer, error) {
	return r.listJobs(ctx, squirrel.Eq{"j.employer_id": employerID})
}

func (r *JobRepository) listJobs(ctx context.Context, where squirrel.Sqlizer) ([]*models.JobWithEmployer, error) {
	q := r.joinedJobs().OrderBy("j.posted_at DESC", "j.id DESC")
	if where != nil {
		q = q.Where(where)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list jobs SQL")
		return nil, fmt.Errorf("failed to build list jobs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list jobs query")
		return nil, fmt.Errorf("error listing jobs: %w", err)
	}
	defer rows.Close()

	jobs := []*models.JobWithEmployer{}
	for rows.Next() {
		jw, err := scanJobWithEmployer(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning job row")
			return nil, fmt.Errorf("error scanning job: %w", err)
		}
		jobs = append(jobs, jw)
	}
	return jobs, rows.Err()
}
