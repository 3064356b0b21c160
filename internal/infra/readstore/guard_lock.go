package readstore

import (
	"context"
	"log/slog"

	"stay-command-core/internal/domain/guard"
	"stay-command-core/internal/infra"
	"stay-command-core/internal/infra/converter"
	"stay-command-core/internal/infra/pgq"
	"stay-command-core/internal/pkg/errs"
	"stay-command-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type GuardLockQueries interface {
	GetGuardLock(ctx context.Context, db pgq.DBTX, tenantID, reservationID uuid.UUID) (pgq.GetGuardLockRow, error)
}

type GuardLockReadStore struct {
	queries GuardLockQueries
	db      pgq.DBTX
	logger  *slog.Logger
}

func NewGuardLockReadStore(queries GuardLockQueries, db pgq.DBTX, logger *slog.Logger) *GuardLockReadStore {
	return &GuardLockReadStore{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

// FindByReservation returns nil, nil when the guard was never consulted for it.
func (r *GuardLockReadStore) FindByReservation(ctx context.Context, tenantID, reservationID uuid.UUID) (*guard.Metadata, error) {
	row, err := r.queries.GetGuardLock(ctx, r.db, tenantID, reservationID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr(r.logger, "failed to read guard lock", err)
	}
	meta, err := converter.GuardLockFromRow(row)
	if err != nil {
		return nil, errs.Wrapf(err, "decode guard lock for %s", reservationID)
	}
	return meta, nil
}
