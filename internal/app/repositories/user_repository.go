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
	"github.com/adithi-k-max/FSAD-project/internal/pkg/logger"
)

const (
	constraintUsername = "users_username_key"
	constraintEmail    = "users_email_key"
)

var userColumns = []string{"id", "username", "password", "role", "name", "email", "created_at"}

// UserRepository handles user database operations
type UserRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(q db.DBTX) *UserRepository {
	return &UserRepository{db: q, sb: newStatementBuilder()}
}

func scanUser(row pgx.Row) (*models.User, error) {
	u := &models.User{}
	if err := row.Scan(&u.ID, &u.Username, &u.Password, &u.Role, &u.Name, &u.Email, &u.CreatedAt); err != nil {
		return nil, err
	}
	return u, nil
}

// CreateUser inserts user and fills in its ID and CreatedAt
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	sql, args, err := r.sb.Insert("users").
		Columns("username", "password", "role", "name", "email").
		Values(user.Username, user.Password, user.Role, user.Name, user.Email).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create user SQL")
		return fmt.Errorf("failed to build create user query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, constraintUsername):
			logger.Warn().Str("username", user.Username).Msg("Attempted to create user with taken username")
			return apperrors.ErrUsernameTaken
		case dberrors.IsDuplicateConstraintError(err, constraintEmail):
			logger.Warn().Str("email", user.Email).Msg("Attempted to create user with taken email")
			return apperrors.ErrEmailTaken
		}
		logger.Error().Err(err).Str("username", user.Username).Msg("Error executing create user query")
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// GetUserByID retrieves a user by ID
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getUser(ctx, squirrel.Eq{"id": id})
}

// GetUserByUsername retrieves a user by username
func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getUser(ctx, squirrel.Eq{"username": username})
}

func (r *UserRepository) getUser(ctx context.Context, where squirrel.Eq) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).From("users").Where(where).Limit(1).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get user SQL")
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Interface("where", where).Msg("Error scanning user row")
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}

// ListUsers returns every user ordered by ID
func (r *UserRepository) ListUsers(ctx context.Context) ([]*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).From("users").OrderBy("id").ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list users SQL")
		return nil, fmt.Errorf("failed to build list users query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list users query")
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning user row")
			return nil, fmt.Errorf("error scanning user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}
	return users, nil
}
