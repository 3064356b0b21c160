package repository

import (
	"context"
	"log/slog"

	"stay-command-core/internal/domain/group"
	"stay-command-core/internal/infra"
	"stay-command-core/internal/infra/converter"
	"stay-command-core/internal/infra/pgq"
	"stay-command-core/internal/pkg/errs"

	"github.com/google/uuid"
)

type GroupBlockWriteQueries interface {
	InsertGroupBlock(ctx context.Context, db pgq.DBTX, arg pgq.InsertGroupBlockParams) error
	GetGroupBlockForUpdate(ctx context.Context, db pgq.DBTX, tenantID, id uuid.UUID) (pgq.GroupBlockRow, error)
	IncrementGroupBlockPickup(ctx context.Context, db pgq.DBTX, tenantID, id uuid.UUID) (int64, error)
	UpdateGroupBlockStatus(ctx context.Context, db pgq.DBTX, tenantID, id uuid.UUID, status string) (int64, error)
}

type GroupBlockRepository struct {
	queries GroupBlockWriteQueries
	db      pgq.DBTX
	logger  *slog.Logger
}

func NewGroupBlockRepository(queries GroupBlockWriteQueries, db pgq.DBTX, logger *slog.Logger) *GroupBlockRepository {
	return &GroupBlockRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *GroupBlockRepository) Create(ctx context.Context, block group.Block) error {
	if err := r.queries.InsertGroupBlock(ctx, r.db, converter.GroupBlockToParams(block)); err != nil {
		return infra.WrapRepoErr(r.logger, "failed to create group block", err)
	}
	return nil
}

func (r *GroupBlockRepository) LockForPickup(ctx context.Context, tenantID, blockID uuid.UUID) (*group.Block, error) {
	row, err := r.queries.GetGroupBlockForUpdate(ctx, r.db, tenantID, blockID)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to lock group block", err)
	}
	block, err := converter.GroupBlockFromRow(row)
	if err != nil {
		return nil, errs.Wrapf(err, "decode group block %s", blockID)
	}
	return block, nil
}

// IncrementPickup returns group.ErrBlockExhausted when no room is left.
func (r *GroupBlockRepository) IncrementPickup(ctx context.Context, tenantID, blockID uuid.UUID) error {
	n, err := r.queries.IncrementGroupBlockPickup(ctx, r.db, tenantID, blockID)
	if err != nil {
		return infra.WrapRepoErr(r.logger, "failed to increment group pickup", err)
	}
	if n == 0 {
		return group.ErrBlockExhausted
	}
	return nil
}

func (r *GroupBlockRepository) UpdateStatus(ctx context.Context, tenantID, blockID uuid.UUID, status group.Status) error {
	n, err := r.queries.UpdateGroupBlockStatus(ctx, r.db, tenantID, blockID, string(status))
	if err != nil {
		return infra.WrapRepoErr(r.logger, "failed to update group block status", err)
	}
	if n == 0 {
		return infra.NotFound("group block not found")
	}
	return nil
}
