package repository

import (
	"context"
	"log/slog"

	"stay-command-core/internal/domain/reservation"
	"stay-command-core/internal/infra"
	"stay-command-core/internal/infra/pgq"
	"stay-command-core/internal/pkg/pgconv"
)

type WalkWriteQueries interface {
	InsertWalk(ctx context.Context, db pgq.DBTX, arg pgq.InsertWalkParams) error
}

type WalkRepository struct {
	queries WalkWriteQueries
	db      pgq.DBTX
	logger  *slog.Logger
}

func NewWalkRepository(queries WalkWriteQueries, db pgq.DBTX, logger *slog.Logger) *WalkRepository {
	return &WalkRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

// Create fails with KindDuplicateKey if the reservation was already walked.
func (r *WalkRepository) Create(ctx context.Context, rec reservation.WalkRecord) error {
	params := pgq.InsertWalkParams{
		ID:                     rec.ID,
		TenantID:               rec.TenantID,
		ReservationID:          rec.ReservationID,
		PropertyID:             rec.PropertyID,
		EventID:                rec.EventID,
		AlternateHotel:         rec.AlternateHotel,
		AlternateHotelContact:  pgconv.NullableText(rec.AlternateHotelContact),
		CompensationAmount:     pgconv.DecimalToPgtype(rec.CompensationAmount),
		CompensationType:       string(rec.CompensationType),
		Currency:               pgconv.NullableText(rec.Currency),
		TransportationProvided: rec.TransportationProvided,
		TransportationDetails:  pgconv.NullableText(rec.TransportationDetails),
		ReturnGuaranteed:       rec.ReturnGuaranteed,
		ReturnDate:             pgconv.DatePtrToPgtype(rec.ReturnDate),
		Notes:                  pgconv.NullableText(rec.Notes),
		WalkedAt:               pgconv.TimeToPgtype(rec.WalkedAt),
		WalkedBy:               rec.WalkedBy,
	}
	if err := r.queries.InsertWalk(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr(r.logger, "failed to record walk", err)
	}
	return nil
}
