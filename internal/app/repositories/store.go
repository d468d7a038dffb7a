package repositories

import (
	"context"

	"github.com/adithi-k-max/FSAD-project/internal/app/models"
)

// UserStore persists user accounts. Missing users yield apperrors.ErrUserNotFound;
// duplicate usernames or emails yield apperrors.ErrUsernameTaken / ErrEmailTaken.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
}

// ProfileStore persists the role-specific student and employer profiles
type ProfileStore interface {
	CreateStudent(ctx context.Context, student *models.Student) error
	GetStudentByUserID(ctx context.Context, userID int64) (*models.Student, error)
	ListStudents(ctx context.Context) ([]*models.Student, error)

	CreateEmployer(ctx context.Context, employer *models.Employer) error
	GetEmployerByUserID(ctx context.Context, userID int64) (*models.Employer, error)
	ListEmployers(ctx context.Context) ([]*models.Employer, error)
	ApproveEmployer(ctx context.Context, id int64) (*models.Employer, error)
}

// JobStore persists job postings. Listings are newest first.
type JobStore interface {
	CreateJob(ctx context.Context, job *models.Job) error
	GetJob(ctx context.Context, id int64) (*models.Job, error)
	GetJobWithEmployer(ctx context.Context, id int64) (*models.JobWithEmployer, error)
	ListJobs(ctx context.Context) ([]*models.JobWithEmployer, error)
	ListJobsByEmployer(ctx context.Context, employerID int64) ([]*models.JobWithEmployer, error)
}

// ApplicationStore persists applications. A second application for the same
// (job, student) pair yields apperrors.ErrAlreadyApplied; an unknown job
// yields apperrors.ErrJobNotFound. Listings are newest first.
type ApplicationStore interface {
	CreateApplication(ctx context.Context, app *models.Application) error
	GetApplication(ctx context.Context, id int64) (*models.Application, error)
	ListApplications(ctx context.Context) ([]*models.ApplicationDetail, error)
	ListApplicationsByStudent(ctx context.Context, studentID int64) ([]*models.ApplicationDetail, error)
	ListApplicationsByEmployer(ctx context.Context, employerID int64) ([]*models.ApplicationDetail, error)
	ListApplicationsByJob(ctx context.Context, jobID int64) ([]*models.ApplicationDetail, error)
	UpdateApplicationStatus(ctx context.Context, id int64, status models.ApplicationStatus) (*models.Application, error)
}

// StatsStore computes aggregate counts
type StatsStore interface {
	GetStats(ctx context.Context) (*models.Stats, error)
}

// TxFn runs against a transaction-bound Store
type TxFn func(ctx context.Context, tx Store) error

// Store is the storage façade used by the services
type Store interface {
	UserStore
	ProfileStore
	JobStore
	ApplicationStore
	StatsStore

	// WithTx runs fn in a transaction: committed when fn returns nil,
	// rolled back on error or panic. Nested calls join the outer transaction.
	WithTx(ctx context.Context, fn TxFn) error
}
