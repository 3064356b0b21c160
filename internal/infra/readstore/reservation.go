package readstore

import (
	"context"
	"log/slog"
	"time"

	"stay-command-core/internal/domain/reservation"
	"stay-command-core/internal/infra"
	"stay-command-core/internal/infra/converter"
	"stay-command-core/internal/infra/pgq"
	"stay-command-core/internal/pkg/errs"
	"stay-command-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationSnapshotQueries interface {
	GetReservation(ctx context.Context, db pgq.DBTX, tenantID, id uuid.UUID) (pgq.ReservationRow, error)
	GetReservationForUpdate(ctx context.Context, db pgq.DBTX, tenantID, id uuid.UUID) (pgq.ReservationRow, error)
	ListNoShowCandidates(ctx context.Context, db pgq.DBTX, arg pgq.ListNoShowCandidatesParams) ([]uuid.UUID, error)
}

type ReservationReadStore struct {
	queries ReservationSnapshotQueries
	db      pgq.DBTX
	logger  *slog.Logger
}

func NewReservationReadStore(queries ReservationSnapshotQueries, db pgq.DBTX, logger *slog.Logger) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*reservation.Snapshot, error) {
	row, err := r.queries.GetReservation(ctx, r.db, tenantID, id)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to find reservation by ID", err)
	}
	return r.toSnapshot(row)
}

// FindByIDForUpdate holds the row lock until the surrounding transaction ends.
func (r *ReservationReadStore) FindByIDForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*reservation.Snapshot, error) {
	row, err := r.queries.GetReservationForUpdate(ctx, r.db, tenantID, id)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to lock reservation", err)
	}
	return r.toSnapshot(row)
}

func (r *ReservationReadStore) NoShowCandidates(ctx context.Context, tenantID, propertyID uuid.UUID, businessDate time.Time) ([]uuid.UUID, error) {
	params := pgq.ListNoShowCandidatesParams{
		TenantID:     tenantID,
		PropertyID:   propertyID,
		BusinessDate: pgconv.DateToPgtype(businessDate),
	}
	ids, err := r.queries.ListNoShowCandidates(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to list no-show candidates", err)
	}
	return ids, nil
}

func (r *ReservationReadStore) toSnapshot(row pgq.ReservationRow) (*reservation.Snapshot, error) {
	snap, err := converter.ReservationFromRow(row)
	if err != nil {
		return nil, errs.Wrapf(err, "decode reservation %s", row.ID)
	}
	return snap, nil
}
