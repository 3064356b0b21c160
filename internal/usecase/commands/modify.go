package commands

import (
	"context"

	"stay-command-core/internal/domain/guard"
	"stay-command-core/internal/domain/lifecycle"
	"stay-command-core/internal/domain/outbox"
	"stay-command-core/internal/domain/rate"
	"stay-command-core/internal/domain/reservation"

	"github.com/shopspring/decimal"
)

func (c *reservationCommands) Modify(ctx context.Context, meta Meta, cmd ModifyReservation) (_ *Accepted, err error) {
	ctx, finish := c.begin(ctx, reservation.CommandModify, &meta)
	defer func() { finish(err) }()

	if err = requireTenant(meta); err != nil {
		return nil, err
	}
	current, err := c.loadReservation(ctx, meta, cmd.ReservationID)
	if err != nil {
		return nil, err
	}
	if err = checkTransition(reservation.ModifyTransition, current.Status); err != nil {
		return nil, err
	}

	merged, err := mergeModification(*current, cmd)
	if err != nil {
		return nil, err
	}
	change := reservation.CompareStay(*current, merged)

	var decision *rate.Decision
	if cmd.RateCode != nil {
		d, rerr := resolveRate(ctx, c.rates, rate.Query{
			TenantID:      meta.TenantID,
			PropertyID:    merged.PropertyID,
			RoomTypeID:    merged.RoomTypeID,
			StayStart:     merged.Stay.CheckIn,
			StayEnd:       merged.Stay.CheckOut,
			RequestedCode: *cmd.RateCode,
		}, cmd.AllowRateFallback)
		if rerr != nil {
			return nil, rerr
		}
		decision = &d
		merged.RateCode = d.AppliedCode
		merged.RoomRate = d.Amount
	}
	merged.TotalAmount = merged.RoomRate.Mul(decimal.NewFromInt(int64(merged.Stay.Nights())))

	held, err := c.loadGuardLock(ctx, meta, merged.ID)
	if err != nil {
		return nil, err
	}

	lock := guard.Skipped(guard.SkipNoStayCriticalChanges)
	if change.Any() {
		lock, err = c.acquireLock(ctx, meta, guard.LockRequest{
			ReservationID: merged.ID,
			RoomTypeID:    merged.RoomTypeID,
			RoomID:        merged.RoomID,
			StayStart:     merged.Stay.CheckIn,
			StayEnd:       merged.Stay.CheckOut,
			Reason:        guard.ReasonReservationModify,
		})
		if err != nil {
			return nil, err
		}
	}

	payload := newReservationPayload(merged)
	payload.Rate = decision
	payload.ChangedFields = change.Fields()

	w := write{
		command:       reservation.CommandModify,
		aggregateType: outbox.AggregateReservation,
		entityID:      merged.ID,
		eventType:     outbox.EventReservationModified,
		payload:       payload,
		metadata: lifecycle.Metadata{
			PreviousStatus: string(current.Status),
			NewStatus:      string(merged.Status),
			ChangedFields:  change.Fields(),
		},
		lock: &lock,
	}
	if decision != nil {
		w.metadata.Rate = rawJSON(decision)
		if decision.FallbackApplied {
			rec := rate.NewFallbackRecord(meta.TenantID, merged.ID, merged.PropertyID, meta.ActorID, *decision)
			w.fallback = &rec
		}
	}

	superseded := ""
	if lock.Locked() {
		w.guardRow = lockedRow(merged.ID, lock, guard.ReasonReservationModify)
		if old, ok := held.HeldLockID(); ok && old != lock.LockID {
			superseded = old
			w.supersedes = old
		}
	}

	accepted, err := c.commit(ctx, meta, w)
	if err != nil {
		return nil, err
	}
	c.releaseAfterCommit(ctx, meta, superseded, merged.ID, guard.ReleaseModified)
	return accepted, nil
}

func mergeModification(current reservation.Snapshot, cmd ModifyReservation) (reservation.Snapshot, error) {
	merged := current
	if cmd.RoomTypeID != nil && *cmd.RoomTypeID != current.RoomTypeID {
		merged.RoomTypeID = *cmd.RoomTypeID
		// the assigned room belongs to the old room type
		merged.RoomID = nil
	}
	checkIn, checkOut := current.Stay.CheckIn, current.Stay.CheckOut
	if cmd.CheckIn != nil {
		checkIn = *cmd.CheckIn
	}
	if cmd.CheckOut != nil {
		checkOut = *cmd.CheckOut
	}
	stay, err := reservation.NewStayWindow(checkIn, checkOut)
	if err != nil {
		return reservation.Snapshot{}, validationError(err.Error())
	}
	merged.Stay = stay
	if cmd.GuestID != nil {
		merged.GuestID = cmd.GuestID
	}
	if cmd.Adults != nil {
		merged.Adults = *cmd.Adults
	}
	if cmd.Children != nil {
		merged.Children = *cmd.Children
	}
	if cmd.Notes != nil {
		merged.Notes = *cmd.Notes
	}
	return merged, nil
}
