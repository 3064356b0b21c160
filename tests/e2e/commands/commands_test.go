//go:build e2e

package commands_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"stay-command-core/internal/domain/outbox"
	"stay-command-core/internal/domain/reservation"
	"stay-command-core/internal/handler/dto/request"
	"stay-command-core/internal/handler/dto/response"
	"stay-command-core/internal/infra/pgq"
	"stay-command-core/tests/common/builder"
	"stay-command-core/tests/common/dbtest"
	"stay-command-core/tests/common/httptest"
	"stay-command-core/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	commandURL = "/v1/commands/%s"
	sweepURL   = "/v1/properties/%s/no-show-sweep"
)

type CommandSuite struct {
	e2e.SharedSuite
	queries *pgq.Queries
}

func (s *CommandSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.queries = pgq.New()
}

func (s *CommandSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestCommandSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CommandSuite))
}

func headers(tenantID uuid.UUID, correlationID string) map[string]string {
	return map[string]string{
		"X-Tenant-ID":      tenantID.String(),
		"X-Correlation-ID": correlationID,
	}
}

func (s *CommandSuite) outbox(tenantID, aggregateID uuid.UUID) []pgq.ListOutboxByAggregateRow {
	rows, err := s.queries.ListOutboxByAggregate(context.Background(), s.DB, tenantID, aggregateID)
	s.Require().NoError(err)
	return rows
}

func (s *CommandSuite) lifecycleCount(tenantID, entityID uuid.UUID) int64 {
	n, err := s.queries.CountLifecycleEvents(context.Background(), s.DB, tenantID, entityID)
	s.Require().NoError(err)
	return n
}

func (s *CommandSuite) accepted(tenantID uuid.UUID, command string, body any) response.AcceptedResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(commandURL, command), body, headers(tenantID, "corr-"+command))
	require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())
	httptest.AssertHeaders(t, w, map[string]string{"X-Correlation-ID": "corr-" + command})

	var got response.AcceptedResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))
	require.NotEqual(t, uuid.Nil, got.EventID)
	return got
}

// =============================================================================
// reservation.create
// =============================================================================

func (s *CommandSuite) TestCreateReservation() {
	s.Run("Normal case: lifecycle and outbox rows share the event id", func() {
		t := s.T()
		res := builder.NewReservationBuilder()
		dbtest.InsertRatePlan(t, s.DB, res.TenantID, res.PropertyID, res.RoomTypeID, "BAR", 1, decimal.NewFromInt(120))

		got := s.accepted(res.TenantID, "reservation.create", request.CreateReservationRequest{
			ReservationID: res.ID,
			PropertyID:    res.PropertyID,
			RoomTypeID:    res.RoomTypeID,
			CheckIn:       request.Date{Time: res.CheckIn},
			CheckOut:      request.Date{Time: res.CheckOut},
			RateCode:      "BAR",
			Adults:        2,
		})

		expected := response.AcceptedResponse{EntityID: res.ID, CorrelationID: "corr-reservation.create"}
		if diff := cmp.Diff(expected, got, cmpopts.IgnoreFields(response.AcceptedResponse{}, "EventID", "Status")); diff != "" {
			t.Errorf("accepted response mismatch (-want +got):\n%s", diff)
		}

		rows := s.outbox(res.TenantID, res.ID)
		require.Len(t, rows, 1)
		require.Equal(t, got.EventID, rows[0].EventID)
		require.Equal(t, outbox.EventReservationCreated, rows[0].EventType)
		require.Equal(t, string(outbox.StatusPending), rows[0].Status)
		require.Equal(t, outbox.PartitionKey(res.TenantID, res.ID), rows[0].PartitionKey)

		var payload map[string]any
		require.NoError(t, json.Unmarshal(rows[0].Payload, &payload))
		require.Equal(t, "240", payload["totalAmount"])

		require.EqualValues(t, 1, s.lifecycleCount(res.TenantID, res.ID))
	})

	s.Run("Error case: unknown rate code without opt-in commits nothing", func() {
		t := s.T()
		res := builder.NewReservationBuilder()
		dbtest.InsertRatePlan(t, s.DB, res.TenantID, res.PropertyID, res.RoomTypeID, "BAR", 1, decimal.NewFromInt(120))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(commandURL, "reservation.create"), request.CreateReservationRequest{
			ReservationID: res.ID,
			PropertyID:    res.PropertyID,
			RoomTypeID:    res.RoomTypeID,
			CheckIn:       request.Date{Time: res.CheckIn},
			CheckOut:      request.Date{Time: res.CheckOut},
			RateCode:      "PROMO",
		}, headers(res.TenantID, "corr-fallback"))

		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "RATE_FALLBACK_NOT_ALLOWED")
		require.Empty(t, s.outbox(res.TenantID, res.ID))
		require.Zero(t, s.lifecycleCount(res.TenantID, res.ID))
	})

}

// =============================================================================
// reservation.cancel
// =============================================================================

func (s *CommandSuite) TestCancelReservation() {
	s.Run("Normal case: cancellation is recorded against the projection row", func() {
		t := s.T()
		res := builder.NewReservationBuilder()
		dbtest.InsertReservation(t, s.DB, res)

		got := s.accepted(res.TenantID, "reservation.cancel", request.CancelReservationRequest{
			ReservationID: res.ID,
			Reason:        "guest request",
			WaiveFee:      true,
		})

		rows := s.outbox(res.TenantID, res.ID)
		require.Len(t, rows, 1)
		require.Equal(t, got.EventID, rows[0].EventID)
		require.Equal(t, outbox.EventReservationCancelled, rows[0].EventType)
	})

	s.Run("Error case: checked-in stays cannot be cancelled", func() {
		t := s.T()
		res := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.Status = reservation.StatusCheckedIn
		})
		dbtest.InsertReservation(t, s.DB, res)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(commandURL, "reservation.cancel"),
			request.CancelReservationRequest{ReservationID: res.ID}, headers(res.TenantID, "corr-cancel"))

		httptest.AssertErrorResponse(t, w, http.StatusConflict, "INVALID_STATUS_FOR_CANCEL")
		require.Empty(t, s.outbox(res.TenantID, res.ID))
	})

	s.Run("Error case: another tenant's reservation is not found", func() {
		t := s.T()
		res := builder.NewReservationBuilder()
		dbtest.InsertReservation(t, s.DB, res)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(commandURL, "reservation.cancel"),
			request.CancelReservationRequest{ReservationID: res.ID}, headers(uuid.New(), "corr-cancel"))

		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// =============================================================================
// no-show sweep
// =============================================================================

func (s *CommandSuite) TestNoShowSweep() {
	s.Run("Normal case: due reservations are marked and flagged", func() {
		t := s.T()
		tenantID, propertyID := uuid.New(), uuid.New()
		due := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.TenantID = tenantID
			b.PropertyID = propertyID
		})
		future := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.TenantID = tenantID
			b.PropertyID = propertyID
			b.CheckIn = b.CheckIn.AddDate(0, 0, 5)
			b.CheckOut = b.CheckOut.AddDate(0, 0, 5)
		})
		dbtest.InsertReservation(t, s.DB, due)
		dbtest.InsertReservation(t, s.DB, future)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(sweepURL, propertyID),
			request.NoShowSweepRequest{BusinessDate: request.Date{Time: due.CheckIn}}, headers(tenantID, "corr-sweep"))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var report response.SweepResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &report))
		require.Equal(t, []uuid.UUID{due.ID}, report.Candidates)
		require.Len(t, report.Processed, 1)
		require.Empty(t, report.Failed)

		rows := s.outbox(tenantID, due.ID)
		require.Len(t, rows, 1)
		require.Equal(t, outbox.EventReservationNoShow, rows[0].EventType)
		require.Empty(t, s.outbox(tenantID, future.ID))

		var flagged bool
		require.NoError(t, s.DB.QueryRow(context.Background(),
			"SELECT is_no_show FROM reservations WHERE id = $1", due.ID).Scan(&flagged))
		require.True(t, flagged)
	})
}
