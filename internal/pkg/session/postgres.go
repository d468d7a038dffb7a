package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/adithi-k-max/FSAD-project/internal/db"
	"github.com/adithi-k-max/FSAD-project/internal/pkg/logger"
)

// PostgresStore keeps sessions in the 'sessions' table so that several API
// instances can share them.
type PostgresStore struct {
	db  db.DBTX
	sb  squirrel.StatementBuilderType
	now func() time.Time
}

// NewPostgresStore creates a PostgresStore over q
func NewPostgresStore(q db.DBTX) *PostgresStore {
	return &PostgresStore{
		db:  q,
		sb:  squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		now: time.Now,
	}
}

func (p *PostgresStore) Get(ctx context.Context, id string) (*Session, error) {
	sql, args, err := p.sb.Select("id", "user_id", "expires_at").
		From("sessions").
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Gt{"expires_at": p.now()}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get session SQL")
		return nil, fmt.Errorf("failed to build get session query: %w", err)
	}

	s := &Session{}
	if err := p.db.QueryRow(ctx, sql, args...).Scan(&s.ID, &s.UserID, &s.ExpiresAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Msg("Error scanning session row")
		return nil, fmt.Errorf("error retrieving session: %w", err)
	}
	return s, nil
}

func (p *PostgresStore) Set(ctx context.Context, s *Session) error {
	sql, args, err := p.sb.Insert("sessions").
		Columns("id", "user_id", "expires_at").
		Values(s.ID, s.UserID, s.ExpiresAt).
		Suffix("ON CONFLICT (id) DO UPDATE SET user_id = EXCLUDED.user_id, expires_at = EXCLUDED.expires_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building set session SQL")
		return fmt.Errorf("failed to build set session query: %w", err)
	}

	if _, err := p.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("userID", s.UserID).Msg("Error executing set session query")
		return fmt.Errorf("error storing session: %w", err)
	}
	return nil
}

func (p *PostgresStore) Destroy(ctx context.Context, id string) error {
	sql, args, err := p.sb.Delete("sessions").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building destroy session SQL")
		return fmt.Errorf("failed to build destroy session query: %w", err)
	}

	if _, err := p.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error executing destroy session query")
		return fmt.Errorf("error destroying session: %w", err)
	}
	return nil
}

// Prune deletes expired sessions
func (p *PostgresStore) Prune(ctx context.Context) (int64, error) {
	sql, args, err := p.sb.Delete("sessions").Where(squirrel.LtOrEq{"expires_at": p.now()}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build prune sessions query: %w", err)
	}

	tag, err := p.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing prune sessions query")
		return 0, fmt.Errorf("error pruning sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}
