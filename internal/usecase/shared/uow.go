package shared

import (
	"context"
	"time"

	"stay-command-core/internal/domain/group"
	"stay-command-core/internal/domain/guard"
	"stay-command-core/internal/domain/lifecycle"
	"stay-command-core/internal/domain/outbox"
	"stay-command-core/internal/domain/rate"
	"stay-command-core/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitOfWork interface {
	// Within: one local transaction with retry on serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: precondition reads outside any transaction
	CommandReads() CommandReads
	// Advisory: denormalized writes applied after the authoritative commit
	Advisory() AdvisoryWrites
}

type Tx interface {
	Lifecycle() LifecycleRepository
	Outbox() OutboxRepository
	GuardLocks() GuardLockRepository
	RateFallbacks() RateFallbackRepository
	Walks() WalkRepository
	GroupBlocks() GroupBlockRepository
	Reads() CommandReads
}

type CommandReads interface {
	ReservationByID(ctx context.Context, tenantID, id uuid.UUID) (*reservation.Snapshot, error)
	// ReservationForUpdate takes a row lock; only meaningful inside Within.
	ReservationForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*reservation.Snapshot, error)
	// GuardLock returns nil, nil when no metadata was ever recorded.
	GuardLock(ctx context.Context, tenantID, reservationID uuid.UUID) (*guard.Metadata, error)
	NoShowCandidates(ctx context.Context, q NoShowQuery) ([]uuid.UUID, error)
	GroupBlockByID(ctx context.Context, tenantID, id uuid.UUID) (*group.Block, error)
}

type NoShowQuery struct {
	TenantID     uuid.UUID
	PropertyID   uuid.UUID
	BusinessDate time.Time
}

type LifecycleRepository interface {
	Append(ctx context.Context, rec lifecycle.Record) error
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, entry outbox.Entry) error
}

type GuardLockRepository interface {
	Upsert(ctx context.Context, meta guard.Metadata) error
}

type RateFallbackRepository interface {
	Record(ctx context.Context, rec rate.FallbackRecord) error
}

type WalkRepository interface {
	Create(ctx context.Context, rec reservation.WalkRecord) error
}

type GroupBlockRepository interface {
	Create(ctx context.Context, block group.Block) error
	// LockForPickup reads the block with FOR UPDATE.
	LockForPickup(ctx context.Context, tenantID, blockID uuid.UUID) (*group.Block, error)
	IncrementPickup(ctx context.Context, tenantID, blockID uuid.UUID) error
	UpdateStatus(ctx context.Context, tenantID, blockID uuid.UUID, status group.Status) error
}

const (
	RoomStatusAvailable = "AVAILABLE"
	RoomStatusDirty     = "DIRTY"
)

// AdvisoryWrites touch projection-owned columns. Failures never undo a committed command.
type AdvisoryWrites interface {
	MarkNoShow(ctx context.Context, tenantID, reservationID uuid.UUID, fee decimal.Decimal, at time.Time) error
	ReleaseRoom(ctx context.Context, tenantID, roomID uuid.UUID, status string) error
}
