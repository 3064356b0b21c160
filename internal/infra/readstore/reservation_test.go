//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"stay-command-core/internal/domain/reservation"
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

var (
	errDBConnectionLost = errors.New("database connection lost")
)

func reservationRow(tenantID, id uuid.UUID) pgq.ReservationRow {
	checkIn := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	return pgq.ReservationRow{
		ID:                 id,
		TenantID:           tenantID,
		PropertyID:         uuid.New(),
		RoomTypeID:         uuid.New(),
		RoomID:             pgconv.UUIDToPgtype(uuid.New()),
		Status:             "CONFIRMED",
		CheckInDate:        pgconv.DateToPgtype(checkIn),
		CheckOutDate:       pgconv.DateToPgtype(checkIn.AddDate(0, 0, 2)),
		RateCode:           "BAR",
		RoomRate:           pgconv.DecimalToPgtype(decimal.NewFromInt(120)),
		TotalAmount:        pgconv.DecimalToPgtype(decimal.NewFromInt(240)),
		Currency:           "USD",
		Adults:             2,
		Notes:              pgconv.NullableText("late arrival"),
		CancellationPolicy: []byte(`{"code":"STD","freeCancellationHours":48,"feeType":"NIGHTS","nights":1}`),
	}
}

// =============================================================================
// FindByID Tests
// =============================================================================

func TestReservationReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	testCases := []struct {
		name       string
		setupMock  func(*readstoremock.MockReservationSnapshotQueries, uuid.UUID)
		expectKind infra.RepositoryErrorKind
		check      func(*testing.T, *reservation.Snapshot)
	}{
		{
			name: "success: snapshot decoded",
			setupMock: func(m *readstoremock.MockReservationSnapshotQueries, id uuid.UUID) {
				m.EXPECT().GetReservation(ctx, gomock.Any(), tenantID, id).Return(reservationRow(tenantID, id), nil)
			},
			check: func(t *testing.T, snap *reservation.Snapshot) {
				assert.Equal(t, reservation.StatusConfirmed, snap.Status)
				assert.Equal(t, 2, snap.Stay.Nights())
				assert.NotNil(t, snap.RoomID)
				assert.Nil(t, snap.GroupBlockID)
				assert.Equal(t, "late arrival", snap.Notes)
				assert.Equal(t, reservation.FeeTypeNights, snap.CancellationPolicy.FeeType)
				assert.True(t, snap.TotalAmount.Equal(decimal.NewFromInt(240)))
			},
		},
		{
			name: "error: reservation not found",
			setupMock: func(m *readstoremock.MockReservationSnapshotQueries, id uuid.UUID) {
				m.EXPECT().GetReservation(ctx, gomock.Any(), tenantID, id).Return(pgq.ReservationRow{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(m *readstoremock.MockReservationSnapshotQueries, id uuid.UUID) {
				m.EXPECT().GetReservation(ctx, gomock.Any(), tenantID, id).Return(pgq.ReservationRow{}, errDBConnectionLost)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockReservationSnapshotQueries(ctrl)
			id := uuid.New()
			tc.setupMock(mockQueries, id)

			store := readstore.NewReservationReadStore(mockQueries, nil, nil)
			snap, err := store.FindByID(ctx, tenantID, id)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				assert.Nil(t, snap)
				return
			}
			require.NoError(t, err)
			tc.check(t, snap)
		})
	}
}

func TestReservationReadStore_FindByIDForUpdate(t *testing.T) {
	ctx := context.Background()
	tenantID, id := uuid.New(), uuid.New()

	t.Run("success: locks and decodes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockReservationSnapshotQueries(ctrl)
		mockQueries.EXPECT().GetReservationForUpdate(ctx, gomock.Any(), tenantID, id).Return(reservationRow(tenantID, id), nil)

		snap, err := readstore.NewReservationReadStore(mockQueries, nil, nil).FindByIDForUpdate(ctx, tenantID, id)

		require.NoError(t, err)
		assert.Equal(t, id, snap.ID)
	})

	t.Run("error: unknown status in row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockReservationSnapshotQueries(ctrl)
		row := reservationRow(tenantID, id)
		row.Status = "ARCHIVED"
		mockQueries.EXPECT().GetReservationForUpdate(ctx, gomock.Any(), tenantID, id).Return(row, nil)

		_, err := readstore.NewReservationReadStore(mockQueries, nil, nil).FindByIDForUpdate(ctx, tenantID, id)

		require.Error(t, err)
		assert.False(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestReservationReadStore_NoShowCandidates(t *testing.T) {
	ctx := context.Background()
	tenantID, propertyID := uuid.New(), uuid.New()
	businessDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockReservationSnapshotQueries(ctrl)
	mockQueries.EXPECT().ListNoShowCandidates(ctx, gomock.Any(), pgq.ListNoShowCandidatesParams{
		TenantID:     tenantID,
		PropertyID:   propertyID,
		BusinessDate: pgconv.DateToPgtype(businessDate),
	}).Return(ids, nil)
	mockQueries.EXPECT().ListNoShowCandidates(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

	store := readstore.NewReservationReadStore(mockQueries, nil, nil)

	got, err := store.NoShowCandidates(ctx, tenantID, propertyID, businessDate)
	require.NoError(t, err)
	assert.Equal(t, ids, got)

	_, err = store.NoShowCandidates(ctx, tenantID, propertyID, businessDate)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
