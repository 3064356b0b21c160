package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"stay-command-core/internal/domain/guard"
	"stay-command-core/internal/infra"
	"stay-command-core/internal/infra/pgq"
	"stay-command-core/internal/pkg/errs"
	"stay-command-core/internal/pkg/pgconv"
)

type GuardLockWriteQueries interface {
	UpsertGuardLock(ctx context.Context, db pgq.DBTX, arg pgq.UpsertGuardLockParams) error
}

type GuardLockRepository struct {
	queries GuardLockWriteQueries
	db      pgq.DBTX
	logger  *slog.Logger
}

func NewGuardLockRepository(queries GuardLockWriteQueries, db pgq.DBTX, logger *slog.Logger) *GuardLockRepository {
	return &GuardLockRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *GuardLockRepository) Upsert(ctx context.Context, meta guard.Metadata) error {
	details := meta.Details
	if details == nil {
		details = map[string]any{}
	}
	raw, err := json.Marshal(details)
	if err != nil {
		return errs.Wrap(err, "marshal guard lock metadata")
	}
	params := pgq.UpsertGuardLockParams{
		TenantID:      meta.TenantID,
		ReservationID: meta.ReservationID,
		LockID:        pgconv.NullableText(meta.LockID),
		Status:        string(meta.Status),
		Metadata:      raw,
		UpdatedAt:     pgconv.TimeToPgtype(meta.UpdatedAt),
	}
	if err := r.queries.UpsertGuardLock(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr(r.logger, "failed to upsert guard lock", err)
	}
	return nil
}
