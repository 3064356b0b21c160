package commands

import (
	"context"

	"stay-command-core/internal/domain/guard"
	"stay-command-core/internal/domain/lifecycle"
	"stay-command-core/internal/domain/outbox"
	"stay-command-core/internal/domain/reservation"
	"stay-command-core/internal/usecase/shared"
)

func (c *reservationCommands) NoShow(ctx context.Context, meta Meta, cmd MarkNoShow) (_ *Accepted, err error) {
	ctx, finish := c.begin(ctx, reservation.CommandNoShow, &meta)
	defer func() { finish(err) }()

	if err = requireTenant(meta); err != nil {
		return nil, err
	}
	current, err := c.loadReservation(ctx, meta, cmd.ReservationID)
	if err != nil {
		return nil, err
	}
	if err = checkTransition(reservation.NoShowTransition, current.Status); err != nil {
		return nil, err
	}

	fee := reservation.FeeQuote{
		Amount:   current.RoomRate,
		Currency: current.Currency,
		Reason:   reservation.FeeReasonRoomRateBase,
	}
	if cmd.FeeOverride != nil {
		if cmd.FeeOverride.IsNegative() {
			return nil, validationError("no-show fee cannot be negative")
		}
		fee.Amount = *cmd.FeeOverride
		fee.Reason = reservation.FeeReasonOverride
	}

	held, err := c.loadGuardLock(ctx, meta, current.ID)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	target := reservation.NoShowTransition.ResultingStatus(current.Status)
	w := write{
		command:       reservation.CommandNoShow,
		aggregateType: outbox.AggregateReservation,
		entityID:      current.ID,
		eventType:     outbox.EventReservationNoShow,
		payload: statusChangePayload{
			ReservationID:  current.ID,
			PropertyID:     current.PropertyID,
			PreviousStatus: current.Status,
			Status:         target,
			Reason:         cmd.Reason,
			RoomID:         current.RoomID,
			Fee:            &fee,
			OccurredAt:     now,
		},
		metadata: lifecycle.Metadata{
			PreviousStatus: string(current.Status),
			NewStatus:      string(target),
			Fee:            rawJSON(fee),
		},
		guardRow: releaseRequestedRow(current.ID, held, guard.ReleaseNoShow),
	}
	lockID := heldLock(held, &w)

	accepted, err := c.commit(ctx, meta, w)
	if err != nil {
		return nil, err
	}

	advisory := c.uow.Advisory()
	c.nonCritical(ctx, "no_show_columns", meta, current.ID, func(ctx context.Context) error {
		return advisory.MarkNoShow(ctx, meta.TenantID, current.ID, fee.Amount, now)
	})
	if current.RoomID != nil {
		roomID := *current.RoomID
		c.nonCritical(ctx, "room_release", meta, current.ID, func(ctx context.Context) error {
			return advisory.ReleaseRoom(ctx, meta.TenantID, roomID, shared.RoomStatusAvailable)
		}, "room_id", roomID)
	}
	c.releaseAfterCommit(ctx, meta, lockID, current.ID, guard.ReleaseNoShow)
	return accepted, nil
}
