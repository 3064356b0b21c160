package outbox

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusDelivered Status = "DELIVERED"
	StatusFailed    Status = "FAILED"
)

const (
	AggregateReservation = "reservation"
	AggregateGroupBlock  = "group_block"
)

const (
	EventReservationCreated      = "reservation.created"
	EventReservationModified     = "reservation.modified"
	EventReservationCancelled    = "reservation.cancelled"
	EventReservationNoShow       = "reservation.no_show"
	EventReservationStayExtended = "reservation.stay_extended"
	EventReservationRoomAssigned = "reservation.room_assigned"
	EventReservationCheckedIn    = "reservation.checked_in"
	EventReservationCheckedOut   = "reservation.checked_out"
	EventGroupBlockCreated       = "group.block_created"
	EventGroupBlockCancelled     = "group.block_cancelled"
)

const (
	HeaderTenantID      = "tenantId"
	HeaderCorrelationID = "correlationId"
	HeaderEventType     = "eventType"
)

// Entry is queued in the same transaction as its lifecycle record and is
// consumed by a separate relay.
type Entry struct {
	EventID       uuid.UUID
	TenantID      uuid.UUID
	AggregateID   uuid.UUID
	AggregateType string
	EventType     string
	Payload       json.RawMessage
	Headers       map[string]string
	PartitionKey  string
	Status        Status
	CreatedAt     time.Time
}

type EntryParams struct {
	EventID       uuid.UUID
	TenantID      uuid.UUID
	AggregateID   uuid.UUID
	AggregateType string
	EventType     string
	CorrelationID string
	Payload       any
	OccurredAt    time.Time
}

func NewEntry(p EntryParams) (Entry, error) {
	if p.EventID == uuid.Nil {
		return Entry{}, fmt.Errorf("outbox entry requires an event id")
	}
	payload, err := json.Marshal(p.Payload)
	if err != nil {
		return Entry{}, fmt.Errorf("marshal %s payload: %w", p.EventType, err)
	}
	headers := map[string]string{
		HeaderTenantID:  p.TenantID.String(),
		HeaderEventType: p.EventType,
	}
	if p.CorrelationID != "" {
		headers[HeaderCorrelationID] = p.CorrelationID
	}
	return Entry{
		EventID:       p.EventID,
		TenantID:      p.TenantID,
		AggregateID:   p.AggregateID,
		AggregateType: p.AggregateType,
		EventType:     p.EventType,
		Payload:       payload,
		Headers:       headers,
		PartitionKey:  PartitionKey(p.TenantID, p.AggregateID),
		Status:        StatusPending,
		CreatedAt:     p.OccurredAt,
	}, nil
}

// PartitionKey keeps every event of one aggregate on one partition.
func PartitionKey(tenantID, aggregateID uuid.UUID) string {
	return tenantID.String() + ":" + aggregateID.String()
}
