package repository

import (
	"context"
	"log/slog"
	"time"

	"stay-command-core/internal/infra"
	"stay-command-core/internal/infra/pgq"
	"stay-command-core/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AdvisoryQueries interface {
	MarkReservationNoShow(ctx context.Context, db pgq.DBTX, arg pgq.MarkReservationNoShowParams) (int64, error)
	UpdateRoomStatus(ctx context.Context, db pgq.DBTX, tenantID, roomID uuid.UUID, status string) (int64, error)
}

// AdvisoryRepository writes denormalized columns owned by the projection
// side. It runs on the pool, outside the command transaction.
type AdvisoryRepository struct {
	queries AdvisoryQueries
	db      pgq.DBTX
	logger  *slog.Logger
}

func NewAdvisoryRepository(queries AdvisoryQueries, db pgq.DBTX, logger *slog.Logger) *AdvisoryRepository {
	return &AdvisoryRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *AdvisoryRepository) MarkNoShow(ctx context.Context, tenantID, reservationID uuid.UUID, fee decimal.Decimal, at time.Time) error {
	n, err := r.queries.MarkReservationNoShow(ctx, r.db, pgq.MarkReservationNoShowParams{
		TenantID:   tenantID,
		ID:         reservationID,
		NoShowDate: pgconv.TimeToPgtype(at),
		NoShowFee:  pgconv.DecimalToPgtype(fee),
	})
	if err != nil {
		return infra.WrapRepoErr(r.logger, "failed to mark reservation no-show", err)
	}
	if n == 0 {
		return infra.NotFound("reservation not found for no-show flag")
	}
	return nil
}

func (r *AdvisoryRepository) ReleaseRoom(ctx context.Context, tenantID, roomID uuid.UUID, status string) error {
	n, err := r.queries.UpdateRoomStatus(ctx, r.db, tenantID, roomID, status)
	if err != nil {
		return infra.WrapRepoErr(r.logger, "failed to update room status", err)
	}
	if n == 0 {
		return infra.NotFound("room not found")
	}
	return nil
}
