package repository

import (
	"context"
	"log/slog"

	"stay-command-core/internal/domain/lifecycle"
	"stay-command-core/internal/infra"
	"stay-command-core/internal/infra/pgq"
	"stay-command-core/internal/pkg/pgconv"
)

type LifecycleWriteQueries interface {
	InsertLifecycleEvent(ctx context.Context, db pgq.DBTX, arg pgq.InsertLifecycleEventParams) error
}

type LifecycleRepository struct {
	queries LifecycleWriteQueries
	db      pgq.DBTX
	logger  *slog.Logger
}

func NewLifecycleRepository(queries LifecycleWriteQueries, db pgq.DBTX, logger *slog.Logger) *LifecycleRepository {
	return &LifecycleRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

// Append fails with KindDuplicateKey when the event id was already recorded.
func (r *LifecycleRepository) Append(ctx context.Context, rec lifecycle.Record) error {
	metadata := []byte(rec.Metadata)
	if len(metadata) == 0 {
		metadata = []byte("{}")
	}
	params := pgq.InsertLifecycleEventParams{
		TenantID:      rec.TenantID,
		EventID:       rec.EventID,
		EntityID:      rec.EntityID,
		EntityType:    rec.EntityType,
		CommandName:   rec.Command,
		CorrelationID: pgconv.NullableText(rec.CorrelationID),
		PartitionKey:  rec.PartitionKey,
		ActorID:       rec.ActorID,
		Metadata:      metadata,
		RecordedAt:    pgconv.TimeToPgtype(rec.RecordedAt),
	}
	if err := r.queries.InsertLifecycleEvent(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr(r.logger, "failed to append lifecycle event", err)
	}
	return nil
}
