package commands

import (
	"context"
	"time"

	"stay-command-core/internal/domain/guard"
	"stay-command-core/internal/domain/lifecycle"
	"stay-command-core/internal/domain/outbox"
	"stay-command-core/internal/domain/rate"
	"stay-command-core/internal/domain/reservation"
	"stay-command-core/internal/pkg/clock"

	"github.com/shopspring/decimal"
)

func (c *reservationCommands) ExtendStay(ctx context.Context, meta Meta, cmd ExtendStay) (_ *Accepted, err error) {
	ctx, finish := c.begin(ctx, reservation.CommandExtendStay, &meta)
	defer func() { finish(err) }()

	if err = requireTenant(meta); err != nil {
		return nil, err
	}
	current, err := c.loadReservation(ctx, meta, cmd.ReservationID)
	if err != nil {
		return nil, err
	}
	if err = checkTransition(reservation.ExtendStayTransition, current.Status); err != nil {
		return nil, err
	}
	if cmd.NewCheckOut.IsZero() || !clock.Date(cmd.NewCheckOut).After(current.Stay.CheckOut) {
		return nil, validationError("new check-out must be after the current check-out")
	}
	stay, err := reservation.NewStayWindow(current.Stay.CheckIn, cmd.NewCheckOut)
	if err != nil {
		return nil, validationError(err.Error())
	}

	extended := *current
	extended.Stay = stay

	var decision *rate.Decision
	if cmd.RateCode != nil {
		d, rerr := resolveRate(ctx, c.rates, rate.Query{
			TenantID:      meta.TenantID,
			PropertyID:    extended.PropertyID,
			RoomTypeID:    extended.RoomTypeID,
			StayStart:     stay.CheckIn,
			StayEnd:       stay.CheckOut,
			RequestedCode: *cmd.RateCode,
		}, cmd.AllowRateFallback)
		if rerr != nil {
			return nil, rerr
		}
		decision = &d
		extended.RateCode = d.AppliedCode
		extended.RoomRate = d.Amount
	}
	extended.TotalAmount = extended.RoomRate.Mul(decimal.NewFromInt(int64(stay.Nights())))

	held, err := c.loadGuardLock(ctx, meta, current.ID)
	if err != nil {
		return nil, err
	}

	lock, err := c.acquireLock(ctx, meta, guard.LockRequest{
		ReservationID: current.ID,
		RoomTypeID:    extended.RoomTypeID,
		RoomID:        extended.RoomID,
		StayStart:     stay.CheckIn,
		StayEnd:       stay.CheckOut,
		Reason:        guard.ReasonStayExtension,
	})
	if err != nil {
		return nil, err
	}

	payload := newReservationPayload(extended)
	payload.Rate = decision
	payload.ChangedFields = []string{"checkOut"}

	w := write{
		command:       reservation.CommandExtendStay,
		aggregateType: outbox.AggregateReservation,
		entityID:      current.ID,
		eventType:     outbox.EventReservationStayExtended,
		payload:       payload,
		metadata: lifecycle.Metadata{
			PreviousStatus: string(current.Status),
			NewStatus:      string(current.Status),
			ChangedFields:  []string{"checkOut"},
			Extra:          map[string]any{"previousCheckOut": current.Stay.CheckOut.Format(time.DateOnly)},
		},
		lock: &lock,
	}
	if decision != nil {
		w.metadata.Rate = rawJSON(decision)
		if decision.FallbackApplied {
			rec := rate.NewFallbackRecord(meta.TenantID, current.ID, current.PropertyID, meta.ActorID, *decision)
			w.fallback = &rec
		}
	}
	superseded := ""
	if lock.Locked() {
		w.guardRow = lockedRow(current.ID, lock, guard.ReasonStayExtension)
		if old, ok := held.HeldLockID(); ok && old != lock.LockID {
			superseded = old
			w.supersedes = old
		}
	}

	accepted, err := c.commit(ctx, meta, w)
	if err != nil {
		return nil, err
	}
	c.releaseAfterCommit(ctx, meta, superseded, current.ID, guard.ReleaseStayExtended)
	return accepted, nil
}
