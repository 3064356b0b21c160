package readstore

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

type GroupBlockQueries interface {
	GetGroupBlock(ctx context.Context, db pgq.DBTX, tenantID, id uuid.UUID) (pgq.GroupBlockRow, error)
}

type GroupBlockReadStore struct {
	queries GroupBlockQueries
	db      pgq.DBTX
	logger  *slog.Logger
}

func NewGroupBlockReadStore(queries GroupBlockQueries, db pgq.DBTX, logger *slog.Logger) *GroupBlockReadStore {
	return &GroupBlockReadStore{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *GroupBlockReadStore) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*group.Block, error) {
	row, err := r.queries.GetGroupBlock(ctx, r.db, tenantID, id)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to find group block", err)
	}
	block, err := converter.GroupBlockFromRow(row)
	if err != nil {
		return nil, errs.Wrapf(err, "decode group block %s", id)
	}
	return block, nil
}
