package pgq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationColumns = `id, tenant_id, property_id, room_type_id, room_id, guest_id,
    group_block_id, status, check_in_date, check_out_date, rate_code,
    room_rate, total_amount, currency, adults, children, notes,
    cancellation_policy, updated_at`

const getReservation = `-- name: GetReservation :one
SELECT ` + reservationColumns + `
FROM reservations
WHERE tenant_id = $1 AND id = $2
`

const getReservationForUpdate = `-- name: GetReservationForUpdate :one
SELECT ` + reservationColumns + `
FROM reservations
WHERE tenant_id = $1 AND id = $2
FOR UPDATE
`

type ReservationRow struct {
	ID                 uuid.UUID
	TenantID           uuid.UUID
	PropertyID         uuid.UUID
	RoomTypeID         uuid.UUID
	RoomID             pgtype.UUID
	GuestID            pgtype.UUID
	GroupBlockID       pgtype.UUID
	Status             string
	CheckInDate        pgtype.Date
	CheckOutDate       pgtype.Date
	RateCode           string
	RoomRate           pgtype.Numeric
	TotalAmount        pgtype.Numeric
	Currency           string
	Adults             int32
	Children           int32
	Notes              pgtype.Text
	CancellationPolicy []byte
	UpdatedAt          pgtype.Timestamptz
}

func (q *Queries) GetReservation(ctx context.Context, db DBTX, tenantID, id uuid.UUID) (ReservationRow, error) {
	return scanReservation(db.QueryRow(ctx, getReservation, tenantID, id))
}

func (q *Queries) GetReservationForUpdate(ctx context.Context, db DBTX, tenantID, id uuid.UUID) (ReservationRow, error) {
	return scanReservation(db.QueryRow(ctx, getReservationForUpdate, tenantID, id))
}

func scanReservation(row interface{ Scan(...any) error }) (ReservationRow, error) {
	var i ReservationRow
	err := row.Scan(
		&i.ID,
		&i.TenantID,
		&i.PropertyID,
		&i.RoomTypeID,
		&i.RoomID,
		&i.GuestID,
		&i.GroupBlockID,
		&i.Status,
		&i.CheckInDate,
		&i.CheckOutDate,
		&i.RateCode,
		&i.RoomRate,
		&i.TotalAmount,
		&i.Currency,
		&i.Adults,
		&i.Children,
		&i.Notes,
		&i.CancellationPolicy,
		&i.UpdatedAt,
	)
	return i, err
}

const listNoShowCandidates = `-- name: ListNoShowCandidates :many
SELECT id
FROM reservations
WHERE tenant_id = $1
  AND property_id = $2
  AND status IN ('PENDING', 'CONFIRMED')
  AND check_in_date <= $3
  AND is_no_show = FALSE
ORDER BY check_in_date, id
`

type ListNoShowCandidatesParams struct {
	TenantID     uuid.UUID
	PropertyID   uuid.UUID
	BusinessDate pgtype.Date
}

func (q *Queries) ListNoShowCandidates(ctx context.Context, db DBTX, arg ListNoShowCandidatesParams) ([]uuid.UUID, error) {
	rows, err := db.Query(ctx, listNoShowCandidates, arg.TenantID, arg.PropertyID, arg.BusinessDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		items = append(items, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const markReservationNoShow = `-- name: MarkReservationNoShow :execrows
UPDATE reservations
SET is_no_show = TRUE, no_show_date = $3, no_show_fee = $4, updated_at = NOW()
WHERE tenant_id = $1 AND id = $2
`

type MarkReservationNoShowParams struct {
	TenantID   uuid.UUID
	ID         uuid.UUID
	NoShowDate pgtype.Timestamptz
	NoShowFee  pgtype.Numeric
}

func (q *Queries) MarkReservationNoShow(ctx context.Context, db DBTX, arg MarkReservationNoShowParams) (int64, error) {
	result, err := db.Exec(ctx, markReservationNoShow, arg.TenantID, arg.ID, arg.NoShowDate, arg.NoShowFee)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const updateRoomStatus = `-- name: UpdateRoomStatus :execrows
UPDATE rooms
SET status = $3, updated_at = NOW()
WHERE tenant_id = $1 AND id = $2
`

func (q *Queries) UpdateRoomStatus(ctx context.Context, db DBTX, tenantID, roomID uuid.UUID, status string) (int64, error) {
	result, err := db.Exec(ctx, updateRoomStatus, tenantID, roomID, status)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
