package pgq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertGroupBlock = `-- name: InsertGroupBlock :exec
INSERT INTO group_blocks (
    tenant_id, id, property_id, room_type_id, code, name, status,
    start_date, end_date, room_count, picked_up, cutoff_date,
    rate_code, block_rate, currency, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), NOW())
`

type InsertGroupBlockParams struct {
	TenantID   uuid.UUID
	ID         uuid.UUID
	PropertyID uuid.UUID
	RoomTypeID uuid.UUID
	Code       string
	Name       pgtype.Text
	Status     string
	StartDate  pgtype.Date
	EndDate    pgtype.Date
	RoomCount  int32
	PickedUp   int32
	CutoffDate pgtype.Date
	RateCode   string
	BlockRate  pgtype.Numeric
	Currency   string
}

func (q *Queries) InsertGroupBlock(ctx context.Context, db DBTX, arg InsertGroupBlockParams) error {
	_, err := db.Exec(ctx, insertGroupBlock,
		arg.TenantID,
		arg.ID,
		arg.PropertyID,
		arg.RoomTypeID,
		arg.Code,
		arg.Name,
		arg.Status,
		arg.StartDate,
		arg.EndDate,
		arg.RoomCount,
		arg.PickedUp,
		arg.CutoffDate,
		arg.RateCode,
		arg.BlockRate,
		arg.Currency,
	)
	return err
}

const groupBlockColumns = `tenant_id, id, property_id, room_type_id, code, name, status,
    start_date, end_date, room_count, picked_up, cutoff_date,
    rate_code, block_rate, currency`

const getGroupBlock = `-- name: GetGroupBlock :one
SELECT ` + groupBlockColumns + `
FROM group_blocks
WHERE tenant_id = $1 AND id = $2
`

const getGroupBlockForUpdate = `-- name: GetGroupBlockForUpdate :one
SELECT ` + groupBlockColumns + `
FROM group_blocks
WHERE tenant_id = $1 AND id = $2
FOR UPDATE
`

type GroupBlockRow struct {
	TenantID   uuid.UUID
	ID         uuid.UUID
	PropertyID uuid.UUID
	RoomTypeID uuid.UUID
	Code       string
	Name       pgtype.Text
	Status     string
	StartDate  pgtype.Date
	EndDate    pgtype.Date
	RoomCount  int32
	PickedUp   int32
	CutoffDate pgtype.Date
	RateCode   string
	BlockRate  pgtype.Numeric
	Currency   string
}

func (q *Queries) GetGroupBlock(ctx context.Context, db DBTX, tenantID, id uuid.UUID) (GroupBlockRow, error) {
	return scanGroupBlock(db.QueryRow(ctx, getGroupBlock, tenantID, id))
}

func (q *Queries) GetGroupBlockForUpdate(ctx context.Context, db DBTX, tenantID, id uuid.UUID) (GroupBlockRow, error) {
	return scanGroupBlock(db.QueryRow(ctx, getGroupBlockForUpdate, tenantID, id))
}

func scanGroupBlock(row interface{ Scan(...any) error }) (GroupBlockRow, error) {
	var i GroupBlockRow
	err := row.Scan(
		&i.TenantID,
		&i.ID,
		&i.PropertyID,
		&i.RoomTypeID,
		&i.Code,
		&i.Name,
		&i.Status,
		&i.StartDate,
		&i.EndDate,
		&i.RoomCount,
		&i.PickedUp,
		&i.CutoffDate,
		&i.RateCode,
		&i.BlockRate,
		&i.Currency,
	)
	return i, err
}

// Guarded by the room_count check; zero rows affected means the block is full or gone.
const incrementGroupBlockPickup = `-- name: IncrementGroupBlockPickup :execrows
UPDATE group_blocks
SET picked_up = picked_up + 1, updated_at = NOW()
WHERE tenant_id = $1 AND id = $2 AND picked_up < room_count
`

func (q *Queries) IncrementGroupBlockPickup(ctx context.Context, db DBTX, tenantID, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, incrementGroupBlockPickup, tenantID, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const updateGroupBlockStatus = `-- name: UpdateGroupBlockStatus :execrows
UPDATE group_blocks
SET status = $3, updated_at = NOW()
WHERE tenant_id = $1 AND id = $2
`

func (q *Queries) UpdateGroupBlockStatus(ctx context.Context, db DBTX, tenantID, id uuid.UUID, status string) (int64, error) {
	result, err := db.Exec(ctx, updateGroupBlockStatus, tenantID, id, status)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
