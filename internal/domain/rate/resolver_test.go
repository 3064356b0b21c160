//go:build unit

package rate_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"stay-command-core/internal/domain/rate"
	"stay-command-core/internal/pkg/clock"
	"stay-command-core/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticCatalog struct {
	plans []rate.Plan
	err   error
}

func (c staticCatalog) PlansFor(context.Context, uuid.UUID, uuid.UUID, uuid.UUID) ([]rate.Plan, error) {
	return c.plans, c.err
}

func date(s string) time.Time {
	t, _ := time.Parse(time.DateOnly, s)
	return t
}

func plans() []rate.Plan {
	return []rate.Plan{
		{Code: "BAR", Active: false, Rank: 1, Amount: decimal.NewFromInt(150)},
		{Code: "RACK", Active: true, Rank: 5, Amount: decimal.NewFromInt(200)},
		{Code: "CORP", Active: true, Rank: 2, Amount: decimal.NewFromInt(130), ValidTo: ptr.To(date("2025-02-28"))},
		{Code: "ADV", Active: true, Rank: 3, MinStay: 3, Amount: decimal.NewFromInt(110)},
		{Code: "PROMO", Active: true, Rank: 4, Amount: decimal.NewFromInt(140)},
	}
}

func query(code string) rate.Query {
	return rate.Query{
		TenantID:      uuid.New(),
		PropertyID:    uuid.New(),
		RoomTypeID:    uuid.New(),
		StayStart:     date("2025-03-01"),
		StayEnd:       date("2025-03-03"),
		RequestedCode: code,
	}
}

func TestDecide(t *testing.T) {
	now := date("2025-02-01")

	cases := []struct {
		name     string
		code     string
		applied  string
		fallback bool
		reason   string
	}{
		{name: "requested available", code: "PROMO", applied: "PROMO", reason: rate.ReasonRequestedApplied},
		{name: "case insensitive match", code: "promo", applied: "PROMO", reason: rate.ReasonRequestedApplied},
		{name: "inactive falls back", code: "BAR", applied: "PROMO", fallback: true, reason: rate.ReasonCodeInactive},
		{name: "unknown falls back", code: "NOPE", applied: "PROMO", fallback: true, reason: rate.ReasonCodeNotFound},
		{name: "expired falls back", code: "CORP", applied: "PROMO", fallback: true, reason: rate.ReasonCodeNotValidForDates},
		{name: "min stay falls back", code: "ADV", applied: "PROMO", fallback: true, reason: rate.ReasonMinStayNotMet},
		{name: "empty code is not a fallback", code: "", applied: "PROMO", reason: rate.ReasonDefaultSelected},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := rate.Decide(plans(), query(c.code), now)
			assert.Equal(t, c.applied, d.AppliedCode)
			assert.Equal(t, c.fallback, d.FallbackApplied)
			assert.Equal(t, c.reason, d.Reason)
			assert.Equal(t, now, d.DecidedAt)
		})
	}
}

func TestDecideNothingSellable(t *testing.T) {
	d := rate.Decide([]rate.Plan{{Code: "BAR", Active: false}}, query("BAR"), date("2025-02-01"))
	assert.Empty(t, d.AppliedCode)
	assert.False(t, d.FallbackApplied)
	assert.Equal(t, rate.ReasonCodeInactive, d.Reason)
}

func TestDecideMaxStay(t *testing.T) {
	q := query("SHORT")
	q.StayEnd = date("2025-03-10")
	d := rate.Decide([]rate.Plan{
		{Code: "SHORT", Active: true, Rank: 1, MaxStay: 3},
		{Code: "LONG", Active: true, Rank: 2},
	}, q, date("2025-02-01"))
	assert.Equal(t, "LONG", d.AppliedCode)
	assert.Equal(t, rate.ReasonMaxStayExceeded, d.Reason)
	assert.True(t, d.FallbackApplied)
}

func TestResolver(t *testing.T) {
	clk := clock.NewMockClock(date("2025-02-01"))

	t.Run("uses catalog and clock", func(t *testing.T) {
		r := rate.NewResolver(staticCatalog{plans: plans()}, clk)
		d, err := r.Resolve(context.Background(), query("RACK"))
		require.NoError(t, err)
		assert.Equal(t, "RACK", d.AppliedCode)
		assert.Equal(t, clk.Now(), d.DecidedAt)
	})

	t.Run("catalog failure", func(t *testing.T) {
		boom := errors.New("boom")
		r := rate.NewResolver(staticCatalog{err: boom}, clk)
		_, err := r.Resolve(context.Background(), query("RACK"))
		require.ErrorIs(t, err, boom)
	})

	t.Run("fallback record mirrors decision", func(t *testing.T) {
		d := rate.Decide(plans(), query("BAR"), clk.Now())
		actor := uuid.New()
		rec := rate.NewFallbackRecord(uuid.New(), uuid.New(), uuid.New(), actor, d)
		assert.Equal(t, "BAR", rec.RequestedCode)
		assert.Equal(t, "PROMO", rec.AppliedCode)
		assert.Equal(t, actor, rec.DecidedBy)
		assert.NotEqual(t, uuid.Nil, rec.ID)
	})
}
