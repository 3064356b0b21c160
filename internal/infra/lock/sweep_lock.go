package lock

import (
	"context"
	"errors"
	"time"

	"stay-command-core/internal/usecase/shared"

	"github.com/bsm/redislock"
)

// Obtainer is satisfied by *redislock.Client.
type Obtainer interface {
	Obtain(ctx context.Context, key string, ttl time.Duration, opt *redislock.Options) (*redislock.Lock, error)
}

type RedisSweepLocker struct {
	client Obtainer
	ttl    time.Duration
}

func NewRedisSweepLocker(client Obtainer, ttl time.Duration) *RedisSweepLocker {
	return &RedisSweepLocker{client: client, ttl: ttl}
}

// Acquire does not wait: a held key fails fast with shared.ErrSweepLockHeld.
func (l *RedisSweepLocker) Acquire(ctx context.Context, key string) (func(context.Context) error, error) {
	held, err := l.client.Obtain(ctx, "lock:"+key, l.ttl, nil)
	if err != nil {
		if errors.Is(err, redislock.ErrNotObtained) {
			return nil, shared.ErrSweepLockHeld
		}
		return nil, err
	}
	return func(ctx context.Context) error {
		if err := held.Release(ctx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			return err
		}
		return nil
	}, nil
}

// NoopSweepLocker is used when Redis is not configured; a single instance
// deployment needs no cross-worker exclusivity.
type NoopSweepLocker struct{}

func (NoopSweepLocker) Acquire(context.Context, string) (func(context.Context) error, error) {
	return func(context.Context) error { return nil }, nil
}
