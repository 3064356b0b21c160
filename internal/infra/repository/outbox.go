package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"stay-command-core/internal/domain/outbox"
	"stay-command-core/internal/infra"
	"stay-command-core/internal/infra/pgq"
	"stay-command-core/internal/pkg/errs"
	"stay-command-core/internal/pkg/pgconv"
)

type OutboxWriteQueries interface {
	InsertOutboxEntry(ctx context.Context, db pgq.DBTX, arg pgq.InsertOutboxEntryParams) error
}

type OutboxRepository struct {
	queries OutboxWriteQueries
	db      pgq.DBTX
	logger  *slog.Logger
}

func NewOutboxRepository(queries OutboxWriteQueries, db pgq.DBTX, logger *slog.Logger) *OutboxRepository {
	return &OutboxRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, entry outbox.Entry) error {
	headers, err := json.Marshal(entry.Headers)
	if err != nil {
		return errs.Wrap(err, "marshal outbox headers")
	}
	status := entry.Status
	if status == "" {
		status = outbox.StatusPending
	}
	params := pgq.InsertOutboxEntryParams{
		TenantID:      entry.TenantID,
		EventID:       entry.EventID,
		AggregateID:   entry.AggregateID,
		AggregateType: entry.AggregateType,
		EventType:     entry.EventType,
		Payload:       entry.Payload,
		Headers:       headers,
		PartitionKey:  entry.PartitionKey,
		Status:        string(status),
		CreatedAt:     pgconv.TimeToPgtype(entry.CreatedAt),
	}
	if err := r.queries.InsertOutboxEntry(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr(r.logger, "failed to enqueue outbox entry", err)
	}
	return nil
}
