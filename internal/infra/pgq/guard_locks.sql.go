package pgq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const upsertGuardLock = `-- name: UpsertGuardLock :exec
INSERT INTO reservation_guard_locks (
    tenant_id, reservation_id, lock_id, status, metadata, updated_at
) VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (tenant_id, reservation_id) DO UPDATE SET
    lock_id    = EXCLUDED.lock_id,
    status     = EXCLUDED.status,
    metadata   = EXCLUDED.metadata,
    updated_at = EXCLUDED.updated_at
`

type UpsertGuardLockParams struct {
	TenantID      uuid.UUID
	ReservationID uuid.UUID
	LockID        pgtype.Text
	Status        string
	Metadata      []byte
	UpdatedAt     pgtype.Timestamptz
}

func (q *Queries) UpsertGuardLock(ctx context.Context, db DBTX, arg UpsertGuardLockParams) error {
	_, err := db.Exec(ctx, upsertGuardLock,
		arg.TenantID,
		arg.ReservationID,
		arg.LockID,
		arg.Status,
		arg.Metadata,
		arg.UpdatedAt,
	)
	return err
}

const getGuardLock = `-- name: GetGuardLock :one
SELECT tenant_id, reservation_id, lock_id, status, metadata, updated_at
FROM reservation_guard_locks
WHERE tenant_id = $1 AND reservation_id = $2
`

type GetGuardLockRow struct {
	TenantID      uuid.UUID
	ReservationID uuid.UUID
	LockID        pgtype.Text
	Status        string
	Metadata      []byte
	UpdatedAt     pgtype.Timestamptz
}

func (q *Queries) GetGuardLock(ctx context.Context, db DBTX, tenantID, reservationID uuid.UUID) (GetGuardLockRow, error) {
	row := db.QueryRow(ctx, getGuardLock, tenantID, reservationID)
	var i GetGuardLockRow
	err := row.Scan(
		&i.TenantID,
		&i.ReservationID,
		&i.LockID,
		&i.Status,
		&i.Metadata,
		&i.UpdatedAt,
	)
	return i, err
}
