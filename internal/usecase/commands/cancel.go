package commands

import (
	"context"

	"stay-command-core/internal/domain/guard"
	"stay-command-core/internal/domain/lifecycle"
	"stay-command-core/internal/domain/outbox"
	"stay-command-core/internal/domain/reservation"
)

func (c *reservationCommands) Cancel(ctx context.Context, meta Meta, cmd CancelReservation) (_ *Accepted, err error) {
	ctx, finish := c.begin(ctx, reservation.CommandCancel, &meta)
	defer func() { finish(err) }()

	if err = requireTenant(meta); err != nil {
		return nil, err
	}
	current, err := c.loadReservation(ctx, meta, cmd.ReservationID)
	if err != nil {
		return nil, err
	}
	if err = checkTransition(reservation.CancelTransition, current.Status); err != nil {
		return nil, err
	}

	fee := c.cancellationFee(ctx, meta, *current, cmd.WaiveFee)

	held, err := c.loadGuardLock(ctx, meta, current.ID)
	if err != nil {
		return nil, err
	}

	target := reservation.CancelTransition.ResultingStatus(current.Status)
	w := write{
		command:       reservation.CommandCancel,
		aggregateType: outbox.AggregateReservation,
		entityID:      current.ID,
		eventType:     outbox.EventReservationCancelled,
		payload: statusChangePayload{
			ReservationID:  current.ID,
			PropertyID:     current.PropertyID,
			PreviousStatus: current.Status,
			Status:         target,
			Reason:         cmd.Reason,
			RoomID:         current.RoomID,
			Fee:            &fee,
			OccurredAt:     c.clock.Now(),
		},
		metadata: lifecycle.Metadata{
			PreviousStatus: string(current.Status),
			NewStatus:      string(target),
			Fee:            rawJSON(fee),
		},
		guardRow: releaseRequestedRow(current.ID, held, guard.ReleaseCancelled),
	}
	lockID := heldLock(held, &w)

	accepted, err := c.commit(ctx, meta, w)
	if err != nil {
		return nil, err
	}
	c.releaseAfterCommit(ctx, meta, lockID, current.ID, guard.ReleaseCancelled)
	return accepted, nil
}

// cancellationFee never fails the command; a calculation error yields a zero fee.
func (c *reservationCommands) cancellationFee(ctx context.Context, meta Meta, snap reservation.Snapshot, waive bool) reservation.FeeQuote {
	if waive {
		return reservation.ZeroFee(snap.Currency, reservation.FeeReasonWaived)
	}
	var quote reservation.FeeQuote
	c.nonCritical(ctx, "cancellation_fee", meta, snap.ID, func(context.Context) error {
		q, err := c.fees.Quote(snap.CancellationPolicy, snap.FeeBasis(), c.clock.Now())
		if err != nil {
			quote = reservation.ZeroFee(snap.Currency, reservation.FeeReasonCalcFailed)
			return err
		}
		quote = q
		return nil
	}, "policy_code", snap.CancellationPolicy.Code)
	return quote
}

// heldLock records the held lock in the lifecycle metadata and returns its id.
func heldLock(held *guard.Metadata, w *write) string {
	lockID, ok := held.HeldLockID()
	if !ok {
		return ""
	}
	w.metadata.Guard = &lifecycle.GuardDecision{
		Status: string(guard.StatusReleaseRequested),
		LockID: lockID,
	}
	return lockID
}

