// Package auth centralizes resource-level authorization decisions.
package auth

import (
	"context"
	"errors"

	"github.com/adithi-k-max/FSAD-project/internal/app/models"
	"github.com/adithi-k-max/FSAD-project/internal/app/repositories"
	"github.com/adithi-k-max/FSAD-project/internal/pkg/apperrors"
	"github.com/adithi-k-max/FSAD-project/internal/pkg/logger"
)

// Lookups needed to resolve the job behind an application
type resourceStore interface {
	GetJob(ctx context.Context, id int64) (*models.Job, error)
	GetApplication(ctx context.Context, id int64) (*models.Application, error)
}

var _ resourceStore = (repositories.Store)(nil)

// AuthorizationService evaluates ownership policies against stored resources
type AuthorizationService struct {
	store resourceStore
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(store repositories.Store) *AuthorizationService {
	return &AuthorizationService{store: store}
}

// AuthorizeApplicationUpdate checks that caller may change the status of
// application appID and returns the application.
// Missing application: ErrApplicationNotFound. Foreign job: ErrNotJobOwner.
func (s *AuthorizationService) AuthorizeApplicationUpdate(ctx context.Context, caller *models.User, appID int64) (*models.Application, error) {
	if !caller.HasRole(models.RoleEmployer, models.RoleAdmin, models.RoleOfficer) {
		return nil, apperrors.ErrApplicationManagers
	}

	app, err := s.store.GetApplication(ctx, appID)
	if err != nil {
		return nil, err
	}

	job, err := s.store.GetJob(ctx, app.JobID)
	if err != nil {
		if errors.Is(err, apperrors.ErrJobNotFound) {
			logger.Error().Int64("applicationID", appID).Int64("jobID", app.JobID).Msg("Application references missing job")
		}
		return nil, err
	}

	if !CanManageApplicationsOf.Allows(caller, job) {
		logger.Warn().Int64("userID", caller.ID).Int64("jobID", job.ID).Msg("Rejected application update on foreign job")
		return nil, apperrors.ErrNotJobOwner
	}
	return app, nil
}

// AuthorizeJobApplications checks that caller may review the applications to job jobID
func (s *AuthorizationService) AuthorizeJobApplications(ctx context.Context, caller *models.User, jobID int64) (*models.Job, error) {
	job, err := s.store.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !CanManageApplicationsOf.Allows(caller, job) {
		return nil, apperrors.ErrInsufficientRights
	}
	return job, nil
}
