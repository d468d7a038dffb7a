package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/adithi-k-max/FSAD-project/internal/app/models"
	"github.com/adithi-k-max/FSAD-project/internal/db"
	"github.com/adithi-k-max/FSAD-project/internal/pkg/logger"
)

// StatsRepository computes aggregate counts
type StatsRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(q db.DBTX) *StatsRepository {
	return &StatsRepository{db: q, sb: newStatementBuilder()}
}

// GetStats counts students, employers, jobs and selected applications in one round trip
func (r *StatsRepository) GetStats(ctx context.Context) (*models.Stats, error) {
	sql, args, err := r.sb.Select().
		Column("(SELECT COUNT(*) FROM students)").
		Column("(SELECT COUNT(*) FROM employers)").
		Column("(SELECT COUNT(*) FROM jobs)").
		Column(squirrel.Expr("(SELECT COUNT(*) FROM applications WHERE status = ?)", models.StatusSelected)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building stats SQL")
		return nil, fmt.Errorf("failed to build stats query: %w", err)
	}

	stats := &models.Stats{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&stats.TotalStudents, &stats.TotalEmployers, &stats.TotalJobs, &stats.Placements)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing stats query")
		return nil, fmt.Errorf("error computing stats: %w", err)
	}
	return stats, nil
}
