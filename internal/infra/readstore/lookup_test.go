//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"stay-command-core/internal/domain/guard"
	"stay-command-core/internal/domain/group"
	"stay-command-core/internal/infra"
	"stay-command-core/internal/infra/pgq"
	"stay-command-core/internal/infra/readstore"
	"stay-command-core/internal/pkg/pgconv"
	readstoremock "stay-command-core/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGuardLockReadStore_FindByReservation(t *testing.T) {
	ctx := context.Background()
	tenantID, reservationID := uuid.New(), uuid.New()

	t.Run("success: held lock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockGuardLockQueries(ctrl)
		mockQueries.EXPECT().GetGuardLock(ctx, gomock.Any(), tenantID, reservationID).Return(pgq.GetGuardLockRow{
			TenantID:      tenantID,
			ReservationID: reservationID,
			LockID:        pgconv.NullableText("lock-1"),
			Status:        "LOCKED",
			Metadata:      []byte(`{"reason":"RESERVATION_CREATE"}`),
			UpdatedAt:     pgconv.TimeToPgtype(time.Now()),
		}, nil)

		meta, err := readstore.NewGuardLockReadStore(mockQueries, nil, nil).FindByReservation(ctx, tenantID, reservationID)

		require.NoError(t, err)
		lockID, held := meta.HeldLockID()
		assert.True(t, held)
		assert.Equal(t, "lock-1", lockID)
		assert.Equal(t, "RESERVATION_CREATE", meta.Details["reason"])
	})

	t.Run("success: never consulted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockGuardLockQueries(ctrl)
		mockQueries.EXPECT().GetGuardLock(ctx, gomock.Any(), tenantID, reservationID).Return(pgq.GetGuardLockRow{}, pgx.ErrNoRows)

		meta, err := readstore.NewGuardLockReadStore(mockQueries, nil, nil).FindByReservation(ctx, tenantID, reservationID)

		require.NoError(t, err)
		assert.Nil(t, meta)
	})

	t.Run("error: corrupt metadata", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockGuardLockQueries(ctrl)
		mockQueries.EXPECT().GetGuardLock(ctx, gomock.Any(), tenantID, reservationID).Return(pgq.GetGuardLockRow{
			Status:   string(guard.StatusSkipped),
			Metadata: []byte(`{`),
		}, nil)

		_, err := readstore.NewGuardLockReadStore(mockQueries, nil, nil).FindByReservation(ctx, tenantID, reservationID)

		assert.Error(t, err)
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockGuardLockQueries(ctrl)
		mockQueries.EXPECT().GetGuardLock(ctx, gomock.Any(), tenantID, reservationID).Return(pgq.GetGuardLockRow{}, errDBConnectionLost)

		_, err := readstore.NewGuardLockReadStore(mockQueries, nil, nil).FindByReservation(ctx, tenantID, reservationID)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestRatePlanReadStore_PlansFor(t *testing.T) {
	ctx := context.Background()
	tenantID, propertyID, roomTypeID := uuid.New(), uuid.New(), uuid.New()
	params := pgq.ListRatePlansParams{TenantID: tenantID, PropertyID: propertyID, RoomTypeID: roomTypeID}

	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockRatePlanQueries(ctrl)
	mockQueries.EXPECT().ListRatePlans(ctx, gomock.Any(), params).Return([]pgq.ListRatePlansRow{
		{Code: "BAR", Active: true, Rank: 1, Amount: pgconv.DecimalToPgtype(decimal.NewFromInt(120))},
		{
			Code:      "PROMO",
			Active:    true,
			Rank:      0,
			ValidFrom: pgconv.DateToPgtype(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)),
			MinStay:   2,
			Amount:    pgconv.DecimalToPgtype(decimal.NewFromInt(80)),
		},
	}, nil)
	mockQueries.EXPECT().ListRatePlans(ctx, gomock.Any(), params).Return(nil, errDBConnectionLost)

	store := readstore.NewRatePlanReadStore(mockQueries, nil, nil)

	plans, err := store.PlansFor(ctx, tenantID, propertyID, roomTypeID)
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Nil(t, plans[0].ValidFrom)
	assert.NotNil(t, plans[1].ValidFrom)
	assert.Equal(t, 2, plans[1].MinStay)
	assert.True(t, plans[1].Amount.Equal(decimal.NewFromInt(80)))

	_, err = store.PlansFor(ctx, tenantID, propertyID, roomTypeID)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

func TestGroupBlockReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	tenantID, blockID := uuid.New(), uuid.New()

	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockGroupBlockQueries(ctrl)
	mockQueries.EXPECT().GetGroupBlock(ctx, gomock.Any(), tenantID, blockID).Return(pgq.GroupBlockRow{
		TenantID:  tenantID,
		ID:        blockID,
		Status:    "TENTATIVE",
		RoomCount: 5,
		BlockRate: pgconv.DecimalToPgtype(decimal.NewFromInt(90)),
	}, nil)
	mockQueries.EXPECT().GetGroupBlock(ctx, gomock.Any(), tenantID, blockID).Return(pgq.GroupBlockRow{}, pgx.ErrNoRows)

	store := readstore.NewGroupBlockReadStore(mockQueries, nil, nil)

	block, err := store.FindByID(ctx, tenantID, blockID)
	require.NoError(t, err)
	assert.Equal(t, group.StatusTentative, block.Status)
	assert.Equal(t, 5, block.Remaining())

	_, err = store.FindByID(ctx, tenantID, blockID)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
