package repository

import (
	"context"
	"log/slog"

	"stay-command-core/internal/domain/rate"
	"stay-command-core/internal/infra"
	"stay-command-core/internal/infra/pgq"
	"stay-command-core/internal/pkg/pgconv"
)

type RateFallbackWriteQueries interface {
	InsertRateFallback(ctx context.Context, db pgq.DBTX, arg pgq.InsertRateFallbackParams) error
}

type RateFallbackRepository struct {
	queries RateFallbackWriteQueries
	db      pgq.DBTX
	logger  *slog.Logger
}

func NewRateFallbackRepository(queries RateFallbackWriteQueries, db pgq.DBTX, logger *slog.Logger) *RateFallbackRepository {
	return &RateFallbackRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *RateFallbackRepository) Record(ctx context.Context, rec rate.FallbackRecord) error {
	params := pgq.InsertRateFallbackParams{
		ID:            rec.ID,
		TenantID:      rec.TenantID,
		ReservationID: rec.ReservationID,
		PropertyID:    rec.PropertyID,
		RequestedCode: rec.RequestedCode,
		AppliedCode:   rec.AppliedCode,
		Reason:        rec.Reason,
		DecidedAt:     pgconv.TimeToPgtype(rec.DecidedAt),
		DecidedBy:     rec.DecidedBy,
	}
	if err := r.queries.InsertRateFallback(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr(r.logger, "failed to record rate fallback", err)
	}
	return nil
}
