//go:build unit

package lock_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"stay-command-core/internal/infra/lock"
	"stay-command-core/internal/usecase/shared"

	"github.com/bsm/redislock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockObtainer struct {
	mock.Mock
}

func (m *MockObtainer) Obtain(ctx context.Context, key string, ttl time.Duration, opt *redislock.Options) (*redislock.Lock, error) {
	args := m.Called(ctx, key, ttl, opt)
	held, _ := args.Get(0).(*redislock.Lock)
	return held, args.Error(1)
}

func TestRedisSweepLocker_Acquire(t *testing.T) {
	ctx := context.Background()
	errRedisDown := errors.New("redis down")

	testCases := []struct {
		name      string
		obtainErr error
		wantErr   error
	}{
		{name: "held elsewhere", obtainErr: redislock.ErrNotObtained, wantErr: shared.ErrSweepLockHeld},
		{name: "redis failure", obtainErr: errRedisDown, wantErr: errRedisDown},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			obtainer := new(MockObtainer)
			obtainer.On("Obtain", ctx, "lock:no-show-sweep:t:p:2025-03-10", 5*time.Minute, (*redislock.Options)(nil)).
				Return(nil, tc.obtainErr)

			release, err := lock.NewRedisSweepLocker(obtainer, 5*time.Minute).Acquire(ctx, "no-show-sweep:t:p:2025-03-10")

			assert.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, release)
			obtainer.AssertExpectations(t)
		})
	}
}

func TestNoopSweepLocker(t *testing.T) {
	release, err := lock.NoopSweepLocker{}.Acquire(context.Background(), "any")

	require.NoError(t, err)
	assert.NoError(t, release(context.Background()))
}
