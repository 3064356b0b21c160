package lifecycle

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Record is the append-only proof that a command was processed. EventID is
// unique across the store.
type Record struct {
	EventID       uuid.UUID
	TenantID      uuid.UUID
	EntityID      uuid.UUID
	EntityType    string
	Command       string
	CorrelationID string
	PartitionKey  string
	ActorID       uuid.UUID
	Metadata      json.RawMessage
	RecordedAt    time.Time
}

type RecordParams struct {
	EventID       uuid.UUID
	TenantID      uuid.UUID
	EntityID      uuid.UUID
	EntityType    string
	Command       string
	CorrelationID string
	PartitionKey  string
	ActorID       uuid.UUID
	Metadata      Metadata
	RecordedAt    time.Time
}

// Metadata captures the decisions taken while processing the command.
type Metadata struct {
	PreviousStatus string          `json:"previousStatus,omitempty"`
	NewStatus      string          `json:"newStatus,omitempty"`
	Tag            string          `json:"tag,omitempty"`
	Guard          *GuardDecision  `json:"guard,omitempty"`
	Rate           json.RawMessage `json:"rate,omitempty"`
	Fee            json.RawMessage `json:"fee,omitempty"`
	ChangedFields  []string        `json:"changedFields,omitempty"`
	Extra          map[string]any  `json:"extra,omitempty"`
}

type GuardDecision struct {
	Status         string `json:"status"`
	LockID         string `json:"lockId,omitempty"`
	Message        string `json:"message,omitempty"`
	SupersededLock string `json:"supersededLockId,omitempty"`
}

func NewRecord(p RecordParams) (Record, error) {
	if p.EventID == uuid.Nil {
		return Record{}, fmt.Errorf("lifecycle record requires an event id")
	}
	meta, err := json.Marshal(p.Metadata)
	if err != nil {
		return Record{}, fmt.Errorf("marshal lifecycle metadata: %w", err)
	}
	return Record{
		EventID:       p.EventID,
		TenantID:      p.TenantID,
		EntityID:      p.EntityID,
		EntityType:    p.EntityType,
		Command:       p.Command,
		CorrelationID: p.CorrelationID,
		PartitionKey:  p.PartitionKey,
		ActorID:       p.ActorID,
		Metadata:      meta,
		RecordedAt:    p.RecordedAt,
	}, nil
}
