package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stay-command-core/internal/pkg/clock"
	"stay-command-core/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const commandNoShowSweep = "reservation.no_show_sweep"

type SweepReport struct {
	PropertyID   uuid.UUID      `json:"propertyId"`
	BusinessDate string         `json:"businessDate"`
	DryRun       bool           `json:"dryRun"`
	Candidates   []uuid.UUID    `json:"candidates"`
	Processed    []SweepSuccess `json:"processed"`
	Failed       []SweepFailure `json:"failed"`
}

type SweepSuccess struct {
	ReservationID uuid.UUID `json:"reservationId"`
	EventID       uuid.UUID `json:"eventId"`
}

type SweepFailure struct {
	ReservationID uuid.UUID `json:"reservationId"`
	Code          string    `json:"code"`
	Message       string    `json:"message"`
}

// NoShowSweep marks every eligible reservation of a property as no-show by
// delegating to NoShow per candidate. Per-candidate failures do not fail the sweep.
func (c *reservationCommands) NoShowSweep(ctx context.Context, meta Meta, cmd NoShowSweep) (_ *SweepReport, err error) {
	ctx, finish := c.begin(ctx, commandNoShowSweep, &meta)
	defer func() { finish(err) }()

	if err = requireTenant(meta); err != nil {
		return nil, err
	}
	if cmd.PropertyID == uuid.Nil {
		return nil, newError(KindValidation, CodeTargetRequired, "property id is required")
	}
	if cmd.BusinessDate.IsZero() {
		return nil, validationError("business date is required")
	}
	businessDate := clock.Date(cmd.BusinessDate)

	candidates, err := c.uow.CommandReads().NoShowCandidates(ctx, shared.NoShowQuery{
		TenantID:     meta.TenantID,
		PropertyID:   cmd.PropertyID,
		BusinessDate: businessDate,
	})
	if err != nil {
		return nil, dependencyError(CodeSnapshotReadFailed, "read no-show candidates", err)
	}

	report := &SweepReport{
		PropertyID:   cmd.PropertyID,
		BusinessDate: businessDate.Format(time.DateOnly),
		DryRun:       cmd.DryRun,
		Candidates:   candidates,
		Processed:    []SweepSuccess{},
		Failed:       []SweepFailure{},
	}
	if cmd.DryRun || len(candidates) == 0 {
		return report, nil
	}

	unlock, err := c.sweeps.Acquire(ctx, sweepKey(meta.TenantID, cmd.PropertyID, businessDate))
	if err != nil {
		if errors.Is(err, shared.ErrSweepLockHeld) {
			return nil, conflictError(CodeNoShowSweepInProgress, "a no-show sweep for this property and date is already running")
		}
		return nil, dependencyError(CodeSweepLockFailed, "acquire sweep lock", err)
	}
	defer c.nonCritical(ctx, "sweep_unlock", meta, cmd.PropertyID, unlock)

	// each goroutine writes only its own index
	results := make([]error, len(candidates))
	events := make([]uuid.UUID, len(candidates))

	g := new(errgroup.Group)
	g.SetLimit(c.settings.SweepConcurrency)
	for i, id := range candidates {
		i, id := i, id
		g.Go(func() error {
			accepted, nerr := c.NoShow(ctx, meta, MarkNoShow{
				ReservationID: id,
				Reason:        "NO_SHOW_SWEEP " + report.BusinessDate,
			})
			if nerr != nil {
				results[i] = nerr
				return nil
			}
			events[i] = accepted.EventID
			return nil
		})
	}
	_ = g.Wait()

	for i, id := range candidates {
		if results[i] == nil {
			report.Processed = append(report.Processed, SweepSuccess{ReservationID: id, EventID: events[i]})
			continue
		}
		failure := SweepFailure{ReservationID: id, Code: CodeTransactionFailed, Message: results[i].Error()}
		var cmdErr *Error
		if errors.As(results[i], &cmdErr) {
			failure.Code = cmdErr.Code
			failure.Message = cmdErr.Message
		}
		report.Failed = append(report.Failed, failure)
	}

	c.logger.Info("no-show sweep finished",
		"tenant_id", meta.TenantID,
		"property_id", cmd.PropertyID,
		"business_date", report.BusinessDate,
		"processed", len(report.Processed),
		"failed", len(report.Failed),
		"correlation_id", meta.CorrelationID)
	return report, nil
}

func sweepKey(tenantID, propertyID uuid.UUID, businessDate time.Time) string {
	return fmt.Sprintf("no-show-sweep:%s:%s:%s", tenantID, propertyID, businessDate.Format(time.DateOnly))
}
