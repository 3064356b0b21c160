//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"stay-command-core/internal/domain/guard"
	"stay-command-core/internal/domain/outbox"
	"stay-command-core/internal/domain/rate"
	"stay-command-core/internal/domain/reservation"
	"stay-command-core/internal/usecase/commands"
	"stay-command-core/tests/common/memstore"
	sharedmock "stay-command-core/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CreateReservationSuite struct {
	commandSuite
}

func TestCreateReservationSuite(t *testing.T) {
	suite.Run(t, new(CreateReservationSuite))
}

func (s *CreateReservationSuite) command() commands.CreateReservation {
	return commands.CreateReservation{
		PropertyID: uuid.New(),
		RoomTypeID: uuid.New(),
		CheckIn:    date(2025, 3, 10),
		CheckOut:   date(2025, 3, 12),
		RateCode:   "BAR",
		Status:     reservation.StatusConfirmed,
		Adults:     2,
		Currency:   "USD",
	}
}

func (s *CreateReservationSuite) TestCommitsLifecycleAndOutboxTogether() {
	cmd := s.command()
	s.expectRate(applied("BAR", 120))
	s.guard.EXPECT().
		Lock(gomock.Any(), lockRequestMatcher{start: cmd.CheckIn, end: cmd.CheckOut, reason: guard.ReasonReservationCreate}).
		Return(guard.LockResult{Status: guard.StatusLocked, LockID: "lock-1"}, nil)

	accepted, err := s.reservations.Create(context.Background(), s.meta, cmd)

	s.Require().NoError(err)
	s.Equal(uuid.Version(7), accepted.EventID.Version())
	rec, entry := s.assertCommitted(accepted, outbox.EventReservationCreated)
	s.Equal(reservation.CommandCreate, rec.Command)
	s.Equal(s.settings.SystemActorID, rec.ActorID)
	s.Equal(outbox.AggregateReservation, entry.AggregateType)

	meta := decodeMetadata(&s.commandSuite, rec)
	s.Equal(string(reservation.StatusConfirmed), meta.NewStatus)
	s.Require().NotNil(meta.Guard)
	s.Equal("LOCKED", meta.Guard.Status)
	s.Equal("lock-1", meta.Guard.LockID)

	payload := decodePayload(&s.commandSuite, entry)
	s.Equal("BAR", payload["rateCode"])
	s.Equal("240", payload["totalAmount"])
	s.EqualValues(2, payload["nights"])

	row, ok := s.store.GuardRow(s.meta.TenantID, accepted.EntityID)
	s.Require().True(ok)
	s.Equal(guard.StatusLocked, row.Status)
	s.Equal("lock-1", row.LockID)
	s.Empty(s.store.Fallbacks())
}

func (s *CreateReservationSuite) TestKeepsCallerReservationID() {
	cmd := s.command()
	cmd.ReservationID = uuid.New()
	s.expectRate(applied("BAR", 100))
	s.expectLock("lock-1")

	accepted, err := s.reservations.Create(context.Background(), s.meta, cmd)

	s.Require().NoError(err)
	s.Equal(cmd.ReservationID, accepted.EntityID)
}

func (s *CreateReservationSuite) TestFallbackRequiresOptIn() {
	s.expectRate(fallback("PROMO", "BAR", 100))

	accepted, err := s.reservations.Create(context.Background(), s.meta, s.command())

	s.Nil(accepted)
	s.assertCode(err, commands.CodeRateFallbackNotAllowed)
	s.True(errors.Is(err, commands.ErrRateFallbackNotAllowed))
	s.Zero(s.store.Transactions())
	s.assertNothingCommitted()
}

func (s *CreateReservationSuite) TestFallbackWithOptInIsRecorded() {
	cmd := s.command()
	cmd.RateCode = "PROMO"
	cmd.AllowRateFallback = true
	s.expectRate(fallback("PROMO", "BAR", 100))
	s.expectLock("lock-1")

	accepted, err := s.reservations.Create(context.Background(), s.meta, cmd)

	s.Require().NoError(err)
	_, entry := s.assertCommitted(accepted, outbox.EventReservationCreated)
	s.Equal("BAR", decodePayload(&s.commandSuite, entry)["rateCode"])

	fallbacks := s.store.Fallbacks()
	s.Require().Len(fallbacks, 1)
	s.Equal("PROMO", fallbacks[0].RequestedCode)
	s.Equal("BAR", fallbacks[0].AppliedCode)
	s.Equal(rate.ReasonCodeNotValidForDates, fallbacks[0].Reason)
	s.Equal(accepted.EntityID, fallbacks[0].ReservationID)
}

func (s *CreateReservationSuite) TestNoRateAvailable() {
	s.rates.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(rate.Decision{Reason: rate.ReasonCodeNotFound}, nil)

	_, err := s.reservations.Create(context.Background(), s.meta, s.command())

	s.assertCode(err, commands.CodeNoRateAvailable)
	s.Zero(s.store.Transactions())
}

func (s *CreateReservationSuite) TestRateResolverFailure() {
	s.rates.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(rate.Decision{}, errInjected)

	_, err := s.reservations.Create(context.Background(), s.meta, s.command())

	s.assertCode(err, commands.CodeRateResolutionFailed)
	s.ErrorIs(err, errInjected)
}

func (s *CreateReservationSuite) TestTransactionFailureReleasesLock() {
	s.store.FailOn(memstore.OpOutboxEnqueue, errInjected)
	s.expectRate(applied("BAR", 100))
	s.expectLock("lock-1")
	s.expectRelease("lock-1", guard.ReleaseTransactionRollback).Return(nil)

	accepted, err := s.reservations.Create(context.Background(), s.meta, s.command())

	s.Nil(accepted)
	s.assertCode(err, commands.CodeTransactionFailed)
	s.ErrorIs(err, errInjected)
	s.assertNothingCommitted()
}

func (s *CreateReservationSuite) TestFailedRollbackReleaseKeepsOriginalError() {
	s.store.FailOn(memstore.OpCommit, errInjected)
	s.expectRate(applied("BAR", 100))
	s.expectLock("lock-1")
	s.expectRelease("lock-1", guard.ReleaseTransactionRollback).Return(errors.New("guard unavailable"))

	_, err := s.reservations.Create(context.Background(), s.meta, s.command())

	s.assertCode(err, commands.CodeTransactionFailed)
	s.ErrorIs(err, errInjected)
	s.assertNothingCommitted()
}

func (s *CreateReservationSuite) TestLockFailureAbortsBeforeTransaction() {
	s.expectRate(applied("BAR", 100))
	s.guard.EXPECT().Lock(gomock.Any(), gomock.Any()).Return(guard.LockResult{}, errInjected)

	_, err := s.reservations.Create(context.Background(), s.meta, s.command())

	s.assertCode(err, commands.CodeAvailabilityLockFailed)
	s.Zero(s.store.Transactions())
}

func (s *CreateReservationSuite) TestSkippedLockStillCommits() {
	s.expectRate(applied("BAR", 100))
	s.guard.EXPECT().Lock(gomock.Any(), gomock.Any()).Return(guard.Skipped(guard.SkipGuardDisabled), nil)

	accepted, err := s.reservations.Create(context.Background(), s.meta, s.command())

	s.Require().NoError(err)
	rec, _ := s.assertCommitted(accepted, outbox.EventReservationCreated)
	meta := decodeMetadata(&s.commandSuite, rec)
	s.Require().NotNil(meta.Guard)
	s.Equal("SKIPPED", meta.Guard.Status)
	s.Equal(guard.SkipGuardDisabled, meta.Guard.Message)

	_, ok := s.store.GuardRow(s.meta.TenantID, accepted.EntityID)
	s.False(ok)
}

func (s *CreateReservationSuite) TestDuplicateEventIsRejected() {
	s.store.FailLifecycleAsDuplicate()
	s.expectRate(applied("BAR", 100))
	s.expectLock("lock-1")
	s.expectRelease("lock-1", guard.ReleaseTransactionRollback).Return(nil)

	_, err := s.reservations.Create(context.Background(), s.meta, s.command())

	s.assertCode(err, commands.CodeEventAlreadyRecorded)
	s.assertNothingCommitted()
}

func (s *CreateReservationSuite) TestEventIDFailureReleasesLock() {
	ids := sharedmock.NewMockIDGenerator(s.ctrl)
	ids.EXPECT().NewEventID().Return(uuid.Nil, errInjected)
	s.ids = ids
	s.build()
	s.expectRate(applied("BAR", 100))
	s.expectLock("lock-1")
	s.expectRelease("lock-1", guard.ReleaseTransactionRollback).Return(nil)

	_, err := s.reservations.Create(context.Background(), s.meta, s.command())

	s.assertCode(err, commands.CodeTransactionFailed)
	s.Zero(s.store.Transactions())
}

func (s *CreateReservationSuite) TestValidation() {
	tests := []struct {
		name   string
		meta   func(commands.Meta) commands.Meta
		mutate func(*commands.CreateReservation)
	}{
		{
			name: "missing tenant",
			meta: func(m commands.Meta) commands.Meta {
				m.TenantID = uuid.Nil
				return m
			},
		},
		{
			name:   "missing property",
			mutate: func(c *commands.CreateReservation) { c.PropertyID = uuid.Nil },
		},
		{
			name:   "check-out before check-in",
			mutate: func(c *commands.CreateReservation) { c.CheckOut = date(2025, 3, 9) },
		},
		{
			name:   "same-day stay",
			mutate: func(c *commands.CreateReservation) { c.CheckOut = c.CheckIn },
		},
		{
			name:   "created as checked in",
			mutate: func(c *commands.CreateReservation) { c.Status = reservation.StatusCheckedIn },
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			meta := s.meta
			if tt.meta != nil {
				meta = tt.meta(meta)
			}
			cmd := s.command()
			if tt.mutate != nil {
				tt.mutate(&cmd)
			}

			_, err := s.reservations.Create(context.Background(), meta, cmd)

			s.assertCode(err, commands.CodeValidation)
			s.True(errors.Is(err, commands.ErrValidation))
		})
	}
	s.Zero(s.store.Transactions())
}

func (s *CreateReservationSuite) TestDefaultsToPending() {
	cmd := s.command()
	cmd.Status = ""
	s.expectRate(applied("BAR", 100))
	s.expectLock("lock-1")

	accepted, err := s.reservations.Create(context.Background(), s.meta, cmd)

	s.Require().NoError(err)
	_, entry := s.assertCommitted(accepted, outbox.EventReservationCreated)
	s.Equal(string(reservation.StatusPending), decodePayload(&s.commandSuite, entry)["status"])
}
