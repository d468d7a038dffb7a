package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/adithi-k-max/FSAD-project/internal/app/models"
	"github.com/adithi-k-max/FSAD-project/internal/app/models/dto"
	"github.com/adithi-k-max/FSAD-project/internal/app/repositories"
	"github.com/adithi-k-max/FSAD-project/internal/pkg/apperrors"
	"github.com/adithi-k-max/FSAD-project/internal/pkg/auth"
	"github.com/adithi-k-max/FSAD-project/internal/pkg/helpers"
	"github.com/adithi-k-max/FSAD-project/internal/pkg/validation"
)

// AuthOptions tunes registration
type AuthOptions struct {
	// RestrictPrivilegedRegistration refuses self-registration as admin or officer
	RestrictPrivilegedRegistration bool
}

// AuthService registers and authenticates users
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*models.User, error)
	CurrentUser(ctx context.Context, userID int64) (*models.User, error)
}

type authServiceImpl struct {
	store  repositories.Store
	opts   AuthOptions
	logger zerolog.Logger
	// compared against on unknown usernames so both paths cost one scrypt run
	dummyHash string
}

// NewAuthService creates a new AuthService
func NewAuthService(store repositories.Store, opts AuthOptions, lgr zerolog.Logger) AuthService {
	dummy, err := auth.HashPassword("placeholder-Password1")
	if err != nil {
		lgr.Warn().Err(err).Msg("Failed to prepare dummy password hash")
	}
	return &authServiceImpl{store: store, opts: opts, logger: lgr, dummyHash: dummy}
}

func (s *authServiceImpl) validateRegistration(req *dto.RegisterRequest) error {
	if !req.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", apperrors.ErrValidationFailed, req.Role)
	}
	if req.Role.Privileged() && s.opts.RestrictPrivilegedRegistration {
		return apperrors.ErrPrivilegedRole
	}
	if !validation.IsStrongPassword(req.Password) {
		return apperrors.NewValidationError("Invalid input", []apperrors.FieldError{{
			Field:   "password",
			Message: "Password must be at least 8 characters and contain an uppercase letter and a number",
		}})
	}
	if req.Role == models.RoleEmployer {
		if req.EmployerDetails == nil || strings.TrimSpace(req.EmployerDetails.CompanyName) == "" {
			return apperrors.ErrCompanyNameRequired
		}
	}
	return nil
}

// Register creates the user and its role profile in one transaction
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	if err := s.validateRegistration(req); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: strings.TrimSpace(req.Username),
		Password: hash,
		Role:     req.Role,
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
	}

	err = s.store.WithTx(ctx, func(ctx context.Context, tx repositories.Store) error {
		if err := tx.CreateUser(ctx, user); err != nil {
			return err
		}

		switch user.Role {
		case models.RoleStudent:
			student := &models.Student{UserID: user.ID}
			if d := req.StudentDetails; d != nil {
				student.Department = helpers.NilIfEmpty(d.Department)
				student.CGPA = helpers.NilIfEmpty(d.CGPA)
				student.GraduationYear = d.GraduationYear
				student.ResumeURL = helpers.NilIfEmpty(d.ResumeURL)
			}
			return tx.CreateStudent(ctx, student)

		case models.RoleEmployer:
			d := req.EmployerDetails
			return tx.CreateEmployer(ctx, &models.Employer{
				UserID:      user.ID,
				CompanyName: strings.TrimSpace(d.CompanyName),
				Industry:    helpers.NilIfEmpty(d.Industry),
				Website:     helpers.NilIfEmpty(d.Website),
			})
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			s.logger.Error().Err(err).Str("username", user.Username).Msg("Registration failed")
		}
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", string(user.Role)).Msg("User registered")
	return user, nil
}

// Login verifies credentials. Unknown usernames and wrong passwords are indistinguishable.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, error) {
	user, err := s.store.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			auth.CheckPassword(s.dummyHash, req.Password)
			return nil, apperrors.ErrWrongCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		s.logger.Debug().Int64("userID", user.ID).Msg("Password mismatch")
		return nil, apperrors.ErrWrongCredentials
	}
	return user, nil
}

// CurrentUser re-reads the session user from the store
func (s *authServiceImpl) CurrentUser(ctx context.Context, userID int64) (*models.User, error) {
	return s.store.GetUserByID(ctx, userID)
}
