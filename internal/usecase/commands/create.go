package commands

import (
	"context"

	"stay-command-core/internal/domain/guard"
	"stay-command-core/internal/domain/lifecycle"
	"stay-command-core/internal/domain/outbox"
	"stay-command-core/internal/domain/rate"
	"stay-command-core/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (c *reservationCommands) Create(ctx context.Context, meta Meta, cmd CreateReservation) (_ *Accepted, err error) {
	ctx, finish := c.begin(ctx, reservation.CommandCreate, &meta)
	defer func() { finish(err) }()

	if err = requireTenant(meta); err != nil {
		return nil, err
	}
	if cmd.PropertyID == uuid.Nil || cmd.RoomTypeID == uuid.Nil {
		return nil, validationError("propertyId and roomTypeId are required")
	}
	stay, err := reservation.NewStayWindow(cmd.CheckIn, cmd.CheckOut)
	if err != nil {
		return nil, validationError(err.Error())
	}
	status := cmd.Status
	if status == "" {
		status = reservation.StatusPending
	}
	if !reservation.InitialStatuses.Contains(status) {
		return nil, validationError("reservations cannot be created in status " + string(status))
	}
	if cmd.ReservationID == uuid.Nil {
		cmd.ReservationID = uuid.New()
	}

	decision, err := resolveRate(ctx, c.rates, rate.Query{
		TenantID:      meta.TenantID,
		PropertyID:    cmd.PropertyID,
		RoomTypeID:    cmd.RoomTypeID,
		StayStart:     stay.CheckIn,
		StayEnd:       stay.CheckOut,
		RequestedCode: cmd.RateCode,
	}, cmd.AllowRateFallback)
	if err != nil {
		return nil, err
	}

	lock, err := c.acquireLock(ctx, meta, guard.LockRequest{
		ReservationID: cmd.ReservationID,
		RoomTypeID:    cmd.RoomTypeID,
		RoomID:        cmd.RoomID,
		StayStart:     stay.CheckIn,
		StayEnd:       stay.CheckOut,
		Reason:        guard.ReasonReservationCreate,
	})
	if err != nil {
		return nil, err
	}

	snap := reservation.Snapshot{
		ID:          cmd.ReservationID,
		TenantID:    meta.TenantID,
		PropertyID:  cmd.PropertyID,
		RoomTypeID:  cmd.RoomTypeID,
		RoomID:      cmd.RoomID,
		GuestID:     cmd.GuestID,
		Status:      status,
		Stay:        stay,
		RateCode:    decision.AppliedCode,
		RoomRate:    decision.Amount,
		TotalAmount: decision.Amount.Mul(decimal.NewFromInt(int64(stay.Nights()))),
		Currency:    cmd.Currency,
		Adults:      cmd.Adults,
		Children:    cmd.Children,
		Notes:       cmd.Notes,
	}
	if cmd.CancellationPolicy != nil {
		snap.CancellationPolicy = *cmd.CancellationPolicy
	}

	payload := newReservationPayload(snap)
	payload.Rate = &decision

	w := write{
		command:       reservation.CommandCreate,
		aggregateType: outbox.AggregateReservation,
		entityID:      cmd.ReservationID,
		eventType:     outbox.EventReservationCreated,
		payload:       payload,
		metadata: lifecycle.Metadata{
			NewStatus: string(status),
			Rate:      rawJSON(decision),
		},
		lock: &lock,
	}
	if lock.Locked() {
		w.guardRow = lockedRow(cmd.ReservationID, lock, guard.ReasonReservationCreate)
	}
	if decision.FallbackApplied {
		rec := rate.NewFallbackRecord(meta.TenantID, cmd.ReservationID, cmd.PropertyID, meta.ActorID, decision)
		w.fallback = &rec
	}

	return c.commit(ctx, meta, w)
}
