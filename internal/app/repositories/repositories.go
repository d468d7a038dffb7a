package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adithi-k-max/FSAD-project/internal/db"
)

// Repositories is the Postgres implementation of Store
type Repositories struct {
	pool *pgxpool.Pool // nil when bound to a transaction

	*UserRepository
	*StudentRepository
	*EmployerRepository
	*JobRepository
	*ApplicationRepository
	*StatsRepository
}

var _ Store = (*Repositories)(nil)

func newStatementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// NewRepositories initializes all repositories over the pool
func NewRepositories(pool *pgxpool.Pool) *Repositories {
	r := bind(pool)
	r.pool = pool
	return r
}

func bind(q db.DBTX) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(q),
		StudentRepository:     NewStudentRepository(q),
		EmployerRepository:    NewEmployerRepository(q),
		JobRepository:         NewJobRepository(q),
		ApplicationRepository: NewApplicationRepository(q),
		StatsRepository:       NewStatsRepository(q),
	}
}

// WithTx implements Store
func (r *Repositories) WithTx(ctx context.Context, fn TxFn) error {
	if r.pool == nil {
		return fn(ctx, r)
	}
	return db.WithTransaction(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		return fn(ctx, bind(tx))
	})
}
