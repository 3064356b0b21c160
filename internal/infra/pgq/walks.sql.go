package pgq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertWalk = `-- name: InsertWalk :exec
INSERT INTO reservation_walks (
    id, tenant_id, reservation_id, property_id, event_id,
    alternate_hotel, alternate_hotel_contact, compensation_amount,
    compensation_type, currency, transportation_provided,
    transportation_details, return_guaranteed, return_date, notes,
    walked_at, walked_by
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
`

type InsertWalkParams struct {
	ID                     uuid.UUID
	TenantID               uuid.UUID
	ReservationID          uuid.UUID
	PropertyID             uuid.UUID
	EventID                uuid.UUID
	AlternateHotel         string
	AlternateHotelContact  pgtype.Text
	CompensationAmount     pgtype.Numeric
	CompensationType       string
	Currency               pgtype.Text
	TransportationProvided bool
	TransportationDetails  pgtype.Text
	ReturnGuaranteed       bool
	ReturnDate             pgtype.Date
	Notes                  pgtype.Text
	WalkedAt               pgtype.Timestamptz
	WalkedBy               uuid.UUID
}

func (q *Queries) InsertWalk(ctx context.Context, db DBTX, arg InsertWalkParams) error {
	_, err := db.Exec(ctx, insertWalk,
		arg.ID,
		arg.TenantID,
		arg.ReservationID,
		arg.PropertyID,
		arg.EventID,
		arg.AlternateHotel,
		arg.AlternateHotelContact,
		arg.CompensationAmount,
		arg.CompensationType,
		arg.Currency,
		arg.TransportationProvided,
		arg.TransportationDetails,
		arg.ReturnGuaranteed,
		arg.ReturnDate,
		arg.Notes,
		arg.WalkedAt,
		arg.WalkedBy,
	)
	return err
}
