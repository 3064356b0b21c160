//go:build unit

package commands_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"time"

	"stay-command-core/internal/domain/guard"
	"stay-command-core/internal/domain/lifecycle"
	"stay-command-core/internal/domain/outbox"
	"stay-command-core/internal/domain/rate"
	"stay-command-core/internal/domain/reservation"
	"stay-command-core/internal/pkg/clock"
	"stay-command-core/internal/pkg/telemetry"
	"stay-command-core/internal/usecase/commands"
	"stay-command-core/internal/usecase/shared"
	"stay-command-core/tests/common/builder"
	"stay-command-core/tests/common/memstore"
	sharedmock "stay-command-core/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var errInjected = errors.New("injected failure")

// commandSuite wires both command sets over an in-memory store and mocked
// outbound ports. Any unexpected guard, rate or sweep-lock call fails the test.
type commandSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	store        *memstore.Store
	guard        *sharedmock.MockGuardClient
	rates        *sharedmock.MockRateResolver
	sweeps       *sharedmock.MockSweepLocker
	fees         shared.FeeCalculator
	ids          shared.IDGenerator
	clock        *clock.MockClock
	settings     commands.Settings
	reservations commands.ReservationCommands
	groups       commands.GroupCommands
	meta         commands.Meta
}

func (s *commandSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = memstore.New()
	s.guard = sharedmock.NewMockGuardClient(s.ctrl)
	s.rates = sharedmock.NewMockRateResolver(s.ctrl)
	s.sweeps = sharedmock.NewMockSweepLocker(s.ctrl)
	s.fees = reservation.NewFeeCalculator()
	s.clock = clock.NewMockClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	s.settings = commands.Settings{
		SystemActorID:    uuid.MustParse("00000000-0000-0000-0000-000000000001"),
		LockTimeout:      time.Second,
		ReleaseTimeout:   time.Second,
		SweepConcurrency: 2,
	}
	s.meta = commands.Meta{
		TenantID:      uuid.New(),
		CorrelationID: "corr-" + uuid.NewString()[:8],
	}
	s.ids = shared.NewUUIDv7Generator()
	s.build()
}

// build wires the command sets from the suite's current collaborators.
func (s *commandSuite) build() {
	metrics, err := telemetry.New()
	s.Require().NoError(err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s.reservations = commands.NewReservationCommands(s.store, s.guard, s.rates, s.fees, s.sweeps, s.ids, s.clock, logger, metrics, s.settings)
	s.groups = commands.NewGroupCommands(s.store, s.guard, s.rates, s.ids, s.clock, logger, metrics, s.settings)
}

func (s *commandSuite) TearDownTest() {
	s.ctrl.Finish()
}

// seed stores a reservation owned by the suite tenant.
func (s *commandSuite) seed(mutate func(*builder.ReservationBuilder)) reservation.Snapshot {
	b := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.TenantID = s.meta.TenantID
	})
	if mutate != nil {
		b.With(mutate)
	}
	snap := b.BuildDomain()
	s.store.PutReservation(snap)
	return snap
}

func (s *commandSuite) holdLock(reservationID uuid.UUID, lockID string) {
	s.store.PutGuardLock(guard.Metadata{
		TenantID:      s.meta.TenantID,
		ReservationID: reservationID,
		LockID:        lockID,
		Status:        guard.StatusLocked,
	})
}

func (s *commandSuite) expectRate(d rate.Decision) {
	s.rates.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(d, nil)
}

func (s *commandSuite) expectLock(lockID string) {
	s.guard.EXPECT().Lock(gomock.Any(), gomock.Any()).Return(guard.LockResult{Status: guard.StatusLocked, LockID: lockID}, nil)
}

func (s *commandSuite) expectRelease(lockID, reason string) *gomock.Call {
	return s.guard.EXPECT().Release(gomock.Any(), releaseMatcher{lockID: lockID, reason: reason})
}

func applied(code string, amount int64) rate.Decision {
	return rate.Decision{
		AppliedCode:   code,
		RequestedCode: code,
		Reason:        rate.ReasonRequestedApplied,
		Amount:        decimal.NewFromInt(amount),
	}
}

func fallback(requested, appliedCode string, amount int64) rate.Decision {
	return rate.Decision{
		AppliedCode:     appliedCode,
		RequestedCode:   requested,
		FallbackApplied: true,
		Reason:          rate.ReasonCodeNotValidForDates,
		Amount:          decimal.NewFromInt(amount),
	}
}

// assertCommitted checks the lifecycle/outbox pair for the accepted command.
func (s *commandSuite) assertCommitted(accepted *commands.Accepted, eventType string) (lifecycle.Record, outbox.Entry) {
	s.Require().NotNil(accepted)
	s.Equal(commands.StatusAccepted, accepted.Status)
	s.Equal(s.meta.CorrelationID, accepted.CorrelationID)

	var rec *lifecycle.Record
	for _, r := range s.store.Lifecycle() {
		if r.EventID == accepted.EventID {
			r := r
			rec = &r
		}
	}
	var entry *outbox.Entry
	for _, e := range s.store.Outbox() {
		if e.EventID == accepted.EventID {
			e := e
			entry = &e
		}
	}
	s.Require().NotNil(rec, "lifecycle record missing")
	s.Require().NotNil(entry, "outbox entry missing")
	s.Equal(eventType, entry.EventType)
	s.Equal(accepted.EntityID, rec.EntityID)
	s.Equal(accepted.EntityID, entry.AggregateID)
	s.Equal(rec.PartitionKey, entry.PartitionKey)
	s.Equal(outbox.StatusPending, entry.Status)
	s.Equal(s.meta.CorrelationID, entry.Headers[outbox.HeaderCorrelationID])
	return *rec, *entry
}

func (s *commandSuite) assertNothingCommitted() {
	s.Empty(s.store.Lifecycle())
	s.Empty(s.store.Outbox())
}

func (s *commandSuite) assertCode(err error, code string) {
	s.Require().Error(err)
	var cmdErr *commands.Error
	s.Require().True(errors.As(err, &cmdErr), "expected *commands.Error, got %T: %v", err, err)
	s.Equal(code, cmdErr.Code, cmdErr.Error())
}

func decodeMetadata(s *commandSuite, rec lifecycle.Record) lifecycle.Metadata {
	var m lifecycle.Metadata
	s.Require().NoError(json.Unmarshal(rec.Metadata, &m))
	return m
}

func decodePayload(s *commandSuite, entry outbox.Entry) map[string]any {
	var m map[string]any
	s.Require().NoError(json.Unmarshal(entry.Payload, &m))
	return m
}

type releaseMatcher struct {
	lockID string
	reason string
}

func (m releaseMatcher) Matches(x any) bool {
	req, ok := x.(guard.ReleaseRequest)
	return ok && req.LockID == m.lockID && req.Reason == m.reason
}

func (m releaseMatcher) String() string {
	return "release of " + m.lockID + " with reason " + m.reason
}

// lockRequestMatcher checks the stay range and reason of a lock request.
type lockRequestMatcher struct {
	start, end time.Time
	reason     string
}

func (m lockRequestMatcher) Matches(x any) bool {
	req, ok := x.(guard.LockRequest)
	return ok && req.StayStart.Equal(m.start) && req.StayEnd.Equal(m.end) && req.Reason == m.reason
}

func (m lockRequestMatcher) String() string {
	return "lock " + m.reason + " " + m.start.Format(time.DateOnly) + ".." + m.end.Format(time.DateOnly)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
