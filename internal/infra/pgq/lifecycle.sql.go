package pgq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertLifecycleEvent = `-- name: InsertLifecycleEvent :exec
INSERT INTO reservation_lifecycle_events (
    tenant_id, event_id, entity_id, entity_type, command_name,
    correlation_id, partition_key, actor_id, metadata, recorded_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`

type InsertLifecycleEventParams struct {
	TenantID      uuid.UUID
	EventID       uuid.UUID
	EntityID      uuid.UUID
	EntityType    string
	CommandName   string
	CorrelationID pgtype.Text
	PartitionKey  string
	ActorID       uuid.UUID
	Metadata      []byte
	RecordedAt    pgtype.Timestamptz
}

func (q *Queries) InsertLifecycleEvent(ctx context.Context, db DBTX, arg InsertLifecycleEventParams) error {
	_, err := db.Exec(ctx, insertLifecycleEvent,
		arg.TenantID,
		arg.EventID,
		arg.EntityID,
		arg.EntityType,
		arg.CommandName,
		arg.CorrelationID,
		arg.PartitionKey,
		arg.ActorID,
		arg.Metadata,
		arg.RecordedAt,
	)
	return err
}

const countLifecycleEvents = `-- name: CountLifecycleEvents :one
SELECT COUNT(*) FROM reservation_lifecycle_events
WHERE tenant_id = $1 AND entity_id = $2
`

func (q *Queries) CountLifecycleEvents(ctx context.Context, db DBTX, tenantID, entityID uuid.UUID) (int64, error) {
	row := db.QueryRow(ctx, countLifecycleEvents, tenantID, entityID)
	var count int64
	err := row.Scan(&count)
	return count, err
}
