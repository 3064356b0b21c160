//go:build unit

package cache_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"stay-command-core/internal/domain/rate"
	"stay-command-core/internal/infra/cache"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Get(ctx context.Context, key string) *redis.StringCmd {
	args := m.Called(ctx, key)
	return args.Get(0).(*redis.StringCmd)
}

func (m *MockStore) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	args := m.Called(ctx, key, value, expiration)
	return args.Get(0).(*redis.StatusCmd)
}

type stubCatalog struct {
	plans []rate.Plan
	err   error
	calls int
}

func (c *stubCatalog) PlansFor(context.Context, uuid.UUID, uuid.UUID, uuid.UUID) ([]rate.Plan, error) {
	c.calls++
	return c.plans, c.err
}

var errRedisDown = errors.New("redis: connection refused")

func TestRatePlanCache_PlansFor(t *testing.T) {
	ctx := context.Background()
	tenantID, propertyID, roomTypeID := uuid.New(), uuid.New(), uuid.New()
	key := cache.RatePlanKey(tenantID, propertyID, roomTypeID)
	plans := []rate.Plan{{Code: "BAR", Active: true, Amount: decimal.NewFromInt(120)}}
	encoded, err := json.Marshal(plans)
	require.NoError(t, err)

	testCases := []struct {
		name        string
		setupStore  func(*MockStore)
		catalogErr  error
		wantErr     bool
		wantFetches int
	}{
		{
			name: "hit: served from redis",
			setupStore: func(s *MockStore) {
				s.On("Get", ctx, key).Return(redis.NewStringResult(string(encoded), nil))
			},
			wantFetches: 0,
		},
		{
			name: "miss: fetched and stored",
			setupStore: func(s *MockStore) {
				s.On("Get", ctx, key).Return(redis.NewStringResult("", redis.Nil))
				s.On("Set", ctx, key, encoded, time.Minute).Return(redis.NewStatusResult("OK", nil))
			},
			wantFetches: 1,
		},
		{
			name: "corrupt entry: refetched",
			setupStore: func(s *MockStore) {
				s.On("Get", ctx, key).Return(redis.NewStringResult("{not json", nil))
				s.On("Set", ctx, key, encoded, time.Minute).Return(redis.NewStatusResult("OK", nil))
			},
			wantFetches: 1,
		},
		{
			name: "redis down: falls through",
			setupStore: func(s *MockStore) {
				s.On("Get", ctx, key).Return(redis.NewStringResult("", errRedisDown))
				s.On("Set", ctx, key, encoded, time.Minute).Return(redis.NewStatusResult("", errRedisDown))
			},
			wantFetches: 1,
		},
		{
			name: "catalog error: propagated, nothing cached",
			setupStore: func(s *MockStore) {
				s.On("Get", ctx, key).Return(redis.NewStringResult("", redis.Nil))
			},
			catalogErr:  errors.New("db down"),
			wantErr:     true,
			wantFetches: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := new(MockStore)
			tc.setupStore(store)
			next := &stubCatalog{plans: plans, err: tc.catalogErr}
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			got, err := cache.NewRatePlanCache(store, next, time.Minute, logger).PlansFor(ctx, tenantID, propertyID, roomTypeID)

			if tc.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				require.Len(t, got, 1)
				assert.Equal(t, "BAR", got[0].Code)
				assert.True(t, got[0].Amount.Equal(decimal.NewFromInt(120)))
			}
			assert.Equal(t, tc.wantFetches, next.calls)
			store.AssertExpectations(t)
		})
	}
}
