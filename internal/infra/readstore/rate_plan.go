package readstore

import (
	"context"
	"log/slog"

	"stay-command-core/internal/domain/rate"
	"stay-command-core/internal/infra"
	"stay-command-core/internal/infra/converter"
	"stay-command-core/internal/infra/pgq"

	"github.com/google/uuid"
)

type RatePlanQueries interface {
	ListRatePlans(ctx context.Context, db pgq.DBTX, arg pgq.ListRatePlansParams) ([]pgq.ListRatePlansRow, error)
}

// RatePlanReadStore is the database-backed rate.Catalog.
type RatePlanReadStore struct {
	queries RatePlanQueries
	db      pgq.DBTX
	logger  *slog.Logger
}

func NewRatePlanReadStore(queries RatePlanQueries, db pgq.DBTX, logger *slog.Logger) *RatePlanReadStore {
	return &RatePlanReadStore{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *RatePlanReadStore) PlansFor(ctx context.Context, tenantID, propertyID, roomTypeID uuid.UUID) ([]rate.Plan, error) {
	rows, err := r.queries.ListRatePlans(ctx, r.db, pgq.ListRatePlansParams{
		TenantID:   tenantID,
		PropertyID: propertyID,
		RoomTypeID: roomTypeID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to list rate plans", err)
	}
	return converter.RatePlansFromRows(rows)
}
