package services

import (
	"context"
	"strings"

	"github.com/adithi-k-max/FSAD-project/internal/app/models"
	"github.com/adithi-k-max/FSAD-project/internal/app/models/dto"
	"github.com/adithi-k-max/FSAD-project/internal/app/repositories"
	"github.com/adithi-k-max/FSAD-project/internal/pkg/apperrors"
)

// JobService manages job postings
type JobService interface {
	ListJobs(ctx context.Context, employerID *int64) ([]*models.JobWithEmployer, error)
	GetJob(ctx context.Context, id int64) (*models.JobWithEmployer, error)
	CreateJob(ctx context.Context, caller *models.User, req *dto.CreateJobRequest) (*models.Job, error)
}

type jobServiceImpl struct {
	store repositories.Store
}

// NewJobService creates a new JobService
func NewJobService(store repositories.Store) JobService {
	return &jobServiceImpl{store: store}
}

// ListJobs returns all jobs, or only those of employerID when given
func (s *jobServiceImpl) ListJobs(ctx context.Context, employerID *int64) ([]*models.JobWithEmployer, error) {
	if employerID != nil {
		return s.store.ListJobsByEmployer(ctx, *employerID)
	}
	return s.store.ListJobs(ctx)
}

func (s *jobServiceImpl) GetJob(ctx context.Context, id int64) (*models.JobWithEmployer, error) {
	return s.store.GetJobWithEmployer(ctx, id)
}

// CreateJob posts a job owned by caller, whatever the request says
func (s *jobServiceImpl) CreateJob(ctx context.Context, caller *models.User, req *dto.CreateJobRequest) (*models.Job, error) {
	if !caller.HasRole(models.RoleEmployer) {
		return nil, apperrors.ErrEmployersOnly
	}

	job := &models.Job{
		EmployerID:   caller.ID,
		Title:        strings.TrimSpace(req.Title),
		Description:  strings.TrimSpace(req.Description),
		Requirements: strings.TrimSpace(req.Requirements),
		Location:     strings.TrimSpace(req.Location),
		Salary:       strings.TrimSpace(req.Salary),
	}
	if err := s.store.CreateJob(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}
