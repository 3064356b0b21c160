package pgq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertOutboxEntry = `-- name: InsertOutboxEntry :exec
INSERT INTO transactional_outbox (
    tenant_id, event_id, aggregate_id, aggregate_type, event_type,
    payload, headers, partition_key, status, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`

type InsertOutboxEntryParams struct {
	TenantID      uuid.UUID
	EventID       uuid.UUID
	AggregateID   uuid.UUID
	AggregateType string
	EventType     string
	Payload       []byte
	Headers       []byte
	PartitionKey  string
	Status        string
	CreatedAt     pgtype.Timestamptz
}

func (q *Queries) InsertOutboxEntry(ctx context.Context, db DBTX, arg InsertOutboxEntryParams) error {
	_, err := db.Exec(ctx, insertOutboxEntry,
		arg.TenantID,
		arg.EventID,
		arg.AggregateID,
		arg.AggregateType,
		arg.EventType,
		arg.Payload,
		arg.Headers,
		arg.PartitionKey,
		arg.Status,
		arg.CreatedAt,
	)
	return err
}

const listOutboxByAggregate = `-- name: ListOutboxByAggregate :many
SELECT event_id, event_type, payload, headers, partition_key, status, created_at
FROM transactional_outbox
WHERE tenant_id = $1 AND aggregate_id = $2
ORDER BY created_at, event_id
`

type ListOutboxByAggregateRow struct {
	EventID      uuid.UUID
	EventType    string
	Payload      []byte
	Headers      []byte
	PartitionKey string
	Status       string
	CreatedAt    pgtype.Timestamptz
}

func (q *Queries) ListOutboxByAggregate(ctx context.Context, db DBTX, tenantID, aggregateID uuid.UUID) ([]ListOutboxByAggregateRow, error) {
	rows, err := db.Query(ctx, listOutboxByAggregate, tenantID, aggregateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListOutboxByAggregateRow
	for rows.Next() {
		var i ListOutboxByAggregateRow
		if err := rows.Scan(
			&i.EventID,
			&i.EventType,
			&i.Payload,
			&i.Headers,
			&i.PartitionKey,
			&i.Status,
			&i.CreatedAt,
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
