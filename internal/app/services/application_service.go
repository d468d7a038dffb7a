package services

import (
	"context"

	"github.com/adithi-k-max/FSAD-project/internal/app/auth"
	"github.com/adithi-k-max/FSAD-project/internal/app/models"
	"github.com/adithi-k-max/FSAD-project/internal/app/repositories"
	"github.com/adithi-k-max/FSAD-project/internal/pkg/apperrors"
)

// ApplicationService manages job applications
type ApplicationService interface {
	// List returns what caller may see: students their own, employers those
	// on their jobs, admins and officers everything.
	List(ctx context.Context, caller *models.User) ([]*models.ApplicationDetail, error)
	ListForJob(ctx context.Context, caller *models.User, jobID int64) ([]*models.ApplicationDetail, error)
	Apply(ctx context.Context, caller *models.User, jobID int64) (*models.Application, error)
	UpdateStatus(ctx context.Context, caller *models.User, id int64, status models.ApplicationStatus) (*models.Application, error)
}

type applicationServiceImpl struct {
	store repositories.Store
	authz *auth.AuthorizationService
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(store repositories.Store, authz *auth.AuthorizationService) ApplicationService {
	return &applicationServiceImpl{store: store, authz: authz}
}

func (s *applicationServiceImpl) List(ctx context.Context, caller *models.User) ([]*models.ApplicationDetail, error) {
	switch caller.Role {
	case models.RoleStudent:
		return s.store.ListApplicationsByStudent(ctx, caller.ID)
	case models.RoleEmployer:
		return s.store.ListApplicationsByEmployer(ctx, caller.ID)
	case models.RoleAdmin, models.RoleOfficer:
		return s.store.ListApplications(ctx)
	}
	return nil, apperrors.ErrInsufficientRights
}

func (s *applicationServiceImpl) ListForJob(ctx context.Context, caller *models.User, jobID int64) ([]*models.ApplicationDetail, error) {
	if _, err := s.authz.AuthorizeJobApplications(ctx, caller, jobID); err != nil {
		return nil, err
	}
	return s.store.ListApplicationsByJob(ctx, jobID)
}

// Apply records caller's application to jobID. The store's uniqueness
// constraint rejects a second application to the same job.
func (s *applicationServiceImpl) Apply(ctx context.Context, caller *models.User, jobID int64) (*models.Application, error) {
	if !caller.HasRole(models.RoleStudent) {
		return nil, apperrors.ErrStudentsOnly
	}

	app := &models.Application{
		JobID:     jobID,
		StudentID: caller.ID,
		Status:    models.StatusApplied,
	}
	if err := s.store.CreateApplication(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// UpdateStatus sets any valid status; transitions are not restricted
func (s *applicationServiceImpl) UpdateStatus(ctx context.Context, caller *models.User, id int64, status models.ApplicationStatus) (*models.Application, error) {
	if !status.Valid() {
		return nil, apperrors.ErrInvalidStatus
	}
	if _, err := s.authz.AuthorizeApplicationUpdate(ctx, caller, id); err != nil {
		return nil, err
	}
	return s.store.UpdateApplicationStatus(ctx, id, status)
}
