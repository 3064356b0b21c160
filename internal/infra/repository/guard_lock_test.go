//go:build unit

package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"stay-command-core/internal/domain/guard"
	"stay-command-core/internal/infra"
	"stay-command-core/internal/infra/pgq"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGuardLockUpsert(t *testing.T) {
	tests := []struct {
		name        string
		meta        guard.Metadata
		wantLockID  bool
		wantDetails map[string]any
		mockError   error
	}{
		{
			name: "locked with details",
			meta: guard.Metadata{
				LockID:  "lock-1",
				Status:  guard.StatusLocked,
				Details: map[string]any{"reason": "RESERVATION_CREATE"},
			},
			wantLockID:  true,
			wantDetails: map[string]any{"reason": "RESERVATION_CREATE"},
		},
		{
			name:        "skipped without details",
			meta:        guard.Metadata{Status: guard.StatusSkipped},
			wantDetails: map[string]any{},
		},
		{
			name:        "database error",
			meta:        guard.Metadata{Status: guard.StatusSkipped},
			wantDetails: map[string]any{},
			mockError:   assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.meta.TenantID = uuid.New()
			tt.meta.ReservationID = uuid.New()
			tt.meta.UpdatedAt = time.Now()

			mockQueries := new(MockWriteQueries)
			mockQueries.On("UpsertGuardLock", mock.Anything, mock.Anything, mock.MatchedBy(func(p pgq.UpsertGuardLockParams) bool {
				var details map[string]any
				if json.Unmarshal(p.Metadata, &details) != nil {
					return false
				}
				return p.ReservationID == tt.meta.ReservationID &&
					p.LockID.Valid == tt.wantLockID &&
					p.Status == string(tt.meta.Status) &&
					assert.ObjectsAreEqual(tt.wantDetails, details)
			})).Return(tt.mockError)

			err := NewGuardLockRepository(mockQueries, nil, nil).Upsert(context.Background(), tt.meta)

			if tt.mockError == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			}
			mockQueries.AssertExpectations(t)
		})
	}
}
