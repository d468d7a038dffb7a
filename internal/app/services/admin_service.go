package services

import (
	"context"

	"github.com/adithi-k-max/FSAD-project/internal/app/models"
	"github.com/adithi-k-max/FSAD-project/internal/app/repositories"
)

// AdminService backs the campus-wide views of admins and placement officers
type AdminService interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
	ListStudents(ctx context.Context) ([]*models.Student, error)
	ListEmployers(ctx context.Context) ([]*models.Employer, error)
	ApproveEmployer(ctx context.Context, id int64) (*models.Employer, error)
	GetStats(ctx context.Context) (*models.Stats, error)
}

type adminServiceImpl struct {
	store repositories.Store
}

// NewAdminService creates a new AdminService
func NewAdminService(store repositories.Store) AdminService {
	return &adminServiceImpl{store: store}
}

func (s *adminServiceImpl) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.store.ListUsers(ctx)
}

func (s *adminServiceImpl) ListStudents(ctx context.Context) ([]*models.Student, error) {
	return s.store.ListStudents(ctx)
}

func (s *adminServiceImpl) ListEmployers(ctx context.Context) ([]*models.Employer, error) {
	return s.store.ListEmployers(ctx)
}

func (s *adminServiceImpl) ApproveEmployer(ctx context.Context, id int64) (*models.Employer, error) {
	return s.store.ApproveEmployer(ctx, id)
}

func (s *adminServiceImpl) GetStats(ctx context.Context) (*models.Stats, error) {
	return s.store.GetStats(ctx)
}
