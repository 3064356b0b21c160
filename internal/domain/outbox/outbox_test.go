//go:build unit

package outbox_test

import (
	"encoding/json"
	"testing"
	"time"

	"stay-command-core/internal/domain/outbox"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	tenant := uuid.New()
	aggregate := uuid.New()
	eventID := uuid.New()

	entry, err := outbox.NewEntry(outbox.EntryParams{
		EventID:       eventID,
		TenantID:      tenant,
		AggregateID:   aggregate,
		AggregateType: outbox.AggregateReservation,
		EventType:     outbox.EventReservationCancelled,
		CorrelationID: "corr-1",
		Payload:       map[string]string{"status": "CANCELLED"},
		OccurredAt:    time.Unix(0, 0).UTC(),
	})
	require.NoError(t, err)

	assert.Equal(t, outbox.StatusPending, entry.Status)
	assert.Equal(t, tenant.String()+":"+aggregate.String(), entry.PartitionKey)
	assert.Equal(t, "corr-1", entry.Headers[outbox.HeaderCorrelationID])
	assert.Equal(t, tenant.String(), entry.Headers[outbox.HeaderTenantID])

	var payload map[string]string
	require.NoError(t, json.Unmarshal(entry.Payload, &payload))
	assert.Equal(t, "CANCELLED", payload["status"])
}

func TestNewEntryWithoutCorrelation(t *testing.T) {
	entry, err := outbox.NewEntry(outbox.EntryParams{EventID: uuid.New(), TenantID: uuid.New(), Payload: struct{}{}})
	require.NoError(t, err)
	_, ok := entry.Headers[outbox.HeaderCorrelationID]
	assert.False(t, ok)
}

func TestNewEntryRequiresEventID(t *testing.T) {
	_, err := outbox.NewEntry(outbox.EntryParams{TenantID: uuid.New()})
	require.Error(t, err)
}
