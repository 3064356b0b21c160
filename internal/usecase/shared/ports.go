package shared

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/shared/ports_mock.go -package=sharedmock

import (
	"context"
	"time"

	"stay-command-core/internal/domain/guard"
	"stay-command-core/internal/domain/rate"
	"stay-command-core/internal/domain/reservation"
	"stay-command-core/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrSweepLockHeld = errs.New("sweep lock held by another worker")

// GuardClient talks to the external availability-guard service. Lock returns
// a SKIPPED result, not an error, when availability is simply not granted.
type GuardClient interface {
	Lock(ctx context.Context, req guard.LockRequest) (guard.LockResult, error)
	Release(ctx context.Context, req guard.ReleaseRequest) error
}

type RateResolver interface {
	Resolve(ctx context.Context, q rate.Query) (rate.Decision, error)
}

type FeeCalculator interface {
	Quote(policy reservation.CancellationPolicy, basis reservation.FeeBasis, now time.Time) (reservation.FeeQuote, error)
}

type IDGenerator interface {
	NewEventID() (uuid.UUID, error)
}

// SweepLocker gives one worker at a time the right to sweep a key.
// Acquire returns ErrSweepLockHeld when another worker has it.
type SweepLocker interface {
	Acquire(ctx context.Context, key string) (release func(context.Context) error, err error)
}

type UUIDv7Generator struct{}

func NewUUIDv7Generator() IDGenerator {
	return UUIDv7Generator{}
}

func (UUIDv7Generator) NewEventID() (uuid.UUID, error) {
	return uuid.NewV7()
}
