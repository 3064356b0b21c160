//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"stay-command-core/internal/usecase/commands"
	"stay-command-core/internal/usecase/shared"
	"stay-command-core/tests/common/builder"
	"stay-command-core/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type NoShowSweepSuite struct {
	commandSuite
	property uuid.UUID
	due      []uuid.UUID
	future   uuid.UUID
}

func TestNoShowSweepSuite(t *testing.T) {
	suite.Run(t, new(NoShowSweepSuite))
}

func (s *NoShowSweepSuite) SetupTest() {
	s.commandSuite.SetupTest()
	s.property = uuid.New()
	s.due = nil
	for _, day := range []int{9, 10, 10} {
		snap := s.seed(func(b *builder.ReservationBuilder) {
			b.PropertyID = s.property
			b.CheckIn = date(2025, 3, day)
			b.CheckOut = date(2025, 3, day+2)
		})
		s.due = append(s.due, snap.ID)
	}
	s.future = s.seed(func(b *builder.ReservationBuilder) {
		b.PropertyID = s.property
		b.CheckIn = date(2025, 3, 15)
		b.CheckOut = date(2025, 3, 16)
	}).ID
	// different property, same day
	s.seed(func(b *builder.ReservationBuilder) { b.CheckIn = date(2025, 3, 10) })
}

func (s *NoShowSweepSuite) command() commands.NoShowSweep {
	return commands.NoShowSweep{PropertyID: s.property, BusinessDate: date(2025, 3, 10)}
}

func (s *NoShowSweepSuite) expectAcquire(released *atomic.Int32) {
	key := "no-show-sweep:" + s.meta.TenantID.String() + ":" + s.property.String() + ":2025-03-10"
	s.sweeps.EXPECT().Acquire(gomock.Any(), key).Return(func(context.Context) error {
		released.Add(1)
		return nil
	}, nil)
}

func (s *NoShowSweepSuite) TestDryRunReportsWithoutWriting() {
	cmd := s.command()
	cmd.DryRun = true

	report, err := s.reservations.NoShowSweep(context.Background(), s.meta, cmd)

	s.Require().NoError(err)
	s.True(report.DryRun)
	s.Equal("2025-03-10", report.BusinessDate)
	s.ElementsMatch(s.due, report.Candidates)
	s.NotContains(report.Candidates, s.future)
	s.Empty(report.Processed)
	s.Empty(report.Failed)
	s.Zero(s.store.Transactions())
}

func (s *NoShowSweepSuite) TestProcessesEveryCandidate() {
	var released atomic.Int32
	s.expectAcquire(&released)

	report, err := s.reservations.NoShowSweep(context.Background(), s.meta, s.command())

	s.Require().NoError(err)
	s.Len(report.Processed, len(s.due))
	s.Empty(report.Failed)
	s.Len(s.store.Outbox(), len(s.due))
	for _, id := range s.due {
		_, marked := s.store.NoShow(s.meta.TenantID, id)
		s.True(marked, id.String())
	}
	_, marked := s.store.NoShow(s.meta.TenantID, s.future)
	s.False(marked)
	s.EqualValues(1, released.Load())

	again, err := s.reservations.NoShowSweep(context.Background(), s.meta, s.command())
	s.Require().NoError(err)
	s.Empty(again.Candidates)
}

func (s *NoShowSweepSuite) TestPartitionsFailures() {
	var released atomic.Int32
	s.expectAcquire(&released)
	failing := s.due[1]
	s.store.FailOnEntity(memstore.OpOutboxEnqueue, failing, errInjected)

	report, err := s.reservations.NoShowSweep(context.Background(), s.meta, s.command())

	s.Require().NoError(err)
	s.Len(report.Processed, 2)
	s.Require().Len(report.Failed, 1)
	s.Equal(failing, report.Failed[0].ReservationID)
	s.Equal(commands.CodeTransactionFailed, report.Failed[0].Code)
	for _, p := range report.Processed {
		s.NotEqual(failing, p.ReservationID)
		s.NotEqual(uuid.Nil, p.EventID)
	}
	s.Len(s.store.Lifecycle(), 2)
	s.EqualValues(1, released.Load())
}

func (s *NoShowSweepSuite) TestNoCandidatesSkipsLock() {
	cmd := s.command()
	cmd.PropertyID = uuid.New()

	report, err := s.reservations.NoShowSweep(context.Background(), s.meta, cmd)

	s.Require().NoError(err)
	s.Empty(report.Candidates)
	s.Zero(s.store.Transactions())
}

func (s *NoShowSweepSuite) TestConcurrentSweepRejected() {
	s.sweeps.EXPECT().Acquire(gomock.Any(), gomock.Any()).Return(nil, shared.ErrSweepLockHeld)

	_, err := s.reservations.NoShowSweep(context.Background(), s.meta, s.command())

	s.assertCode(err, commands.CodeNoShowSweepInProgress)
	s.ErrorIs(err, commands.ErrNoShowSweepInProgress)
	s.Zero(s.store.Transactions())
}

func (s *NoShowSweepSuite) TestLockBackendFailure() {
	s.sweeps.EXPECT().Acquire(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))

	_, err := s.reservations.NoShowSweep(context.Background(), s.meta, s.command())

	s.assertCode(err, commands.CodeSweepLockFailed)
}

func (s *NoShowSweepSuite) TestCandidateReadFailure() {
	s.store.FailOn(memstore.OpReadCandidates, errInjected)

	_, err := s.reservations.NoShowSweep(context.Background(), s.meta, s.command())

	s.assertCode(err, commands.CodeSnapshotReadFailed)
}

func (s *NoShowSweepSuite) TestValidation() {
	_, err := s.reservations.NoShowSweep(context.Background(), s.meta, commands.NoShowSweep{BusinessDate: date(2025, 3, 10)})
	s.assertCode(err, commands.CodeTargetRequired)

	_, err = s.reservations.NoShowSweep(context.Background(), s.meta, commands.NoShowSweep{PropertyID: s.property})
	s.assertCode(err, commands.CodeValidation)
}
