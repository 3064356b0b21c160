package pgq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertRateFallback = `-- name: InsertRateFallback :exec
INSERT INTO reservation_rate_fallbacks (
    id, tenant_id, reservation_id, property_id, requested_code,
    applied_code, reason, decided_at, decided_by
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

type InsertRateFallbackParams struct {
	ID            uuid.UUID
	TenantID      uuid.UUID
	ReservationID uuid.UUID
	PropertyID    uuid.UUID
	RequestedCode string
	AppliedCode   string
	Reason        string
	DecidedAt     pgtype.Timestamptz
	DecidedBy     uuid.UUID
}

func (q *Queries) InsertRateFallback(ctx context.Context, db DBTX, arg InsertRateFallbackParams) error {
	_, err := db.Exec(ctx, insertRateFallback,
		arg.ID,
		arg.TenantID,
		arg.ReservationID,
		arg.PropertyID,
		arg.RequestedCode,
		arg.AppliedCode,
		arg.Reason,
		arg.DecidedAt,
		arg.DecidedBy,
	)
	return err
}

const listRatePlans = `-- name: ListRatePlans :many
SELECT code, active, rank, valid_from, valid_to, min_stay, max_stay, amount
FROM rate_plans
WHERE tenant_id = $1 AND property_id = $2 AND room_type_id = $3
ORDER BY rank, code
`

type ListRatePlansParams struct {
	TenantID   uuid.UUID
	PropertyID uuid.UUID
	RoomTypeID uuid.UUID
}

type ListRatePlansRow struct {
	Code      string
	Active    bool
	Rank      int32
	ValidFrom pgtype.Date
	ValidTo   pgtype.Date
	MinStay   int32
	MaxStay   int32
	Amount    pgtype.Numeric
}

func (q *Queries) ListRatePlans(ctx context.Context, db DBTX, arg ListRatePlansParams) ([]ListRatePlansRow, error) {
	rows, err := db.Query(ctx, listRatePlans, arg.TenantID, arg.PropertyID, arg.RoomTypeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListRatePlansRow
	for rows.Next() {
		var i ListRatePlansRow
		if err := rows.Scan(
			&i.Code,
			&i.Active,
			&i.Rank,
			&i.ValidFrom,
			&i.ValidTo,
			&i.MinStay,
			&i.MaxStay,
			&i.Amount,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
