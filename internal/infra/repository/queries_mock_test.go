//go:build unit

package repository

import (
	"context"

	"stay-command-core/internal/infra/pgq"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockWriteQueries covers every query interface of this package.
type MockWriteQueries struct {
	mock.Mock
}

func (m *MockWriteQueries) InsertLifecycleEvent(ctx context.Context, db pgq.DBTX, arg pgq.InsertLifecycleEventParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockWriteQueries) InsertOutboxEntry(ctx context.Context, db pgq.DBTX, arg pgq.InsertOutboxEntryParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockWriteQueries) UpsertGuardLock(ctx context.Context, db pgq.DBTX, arg pgq.UpsertGuardLockParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockWriteQueries) InsertWalk(ctx context.Context, db pgq.DBTX, arg pgq.InsertWalkParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockWriteQueries) InsertGroupBlock(ctx context.Context, db pgq.DBTX, arg pgq.InsertGroupBlockParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockWriteQueries) GetGroupBlockForUpdate(ctx context.Context, db pgq.DBTX, tenantID, id uuid.UUID) (pgq.GroupBlockRow, error) {
	args := m.Called(ctx, db, tenantID, id)
	return args.Get(0).(pgq.GroupBlockRow), args.Error(1)
}

func (m *MockWriteQueries) IncrementGroupBlockPickup(ctx context.Context, db pgq.DBTX, tenantID, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, tenantID, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWriteQueries) UpdateGroupBlockStatus(ctx context.Context, db pgq.DBTX, tenantID, id uuid.UUID, status string) (int64, error) {
	args := m.Called(ctx, db, tenantID, id, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWriteQueries) MarkReservationNoShow(ctx context.Context, db pgq.DBTX, arg pgq.MarkReservationNoShowParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWriteQueries) UpdateRoomStatus(ctx context.Context, db pgq.DBTX, tenantID, roomID uuid.UUID, status string) (int64, error) {
	args := m.Called(ctx, db, tenantID, roomID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWriteQueries) InsertRateFallback(ctx context.Context, db pgq.DBTX, arg pgq.InsertRateFallbackParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}
