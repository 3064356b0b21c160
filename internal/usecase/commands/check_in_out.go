package commands

import (
	"context"

	"stay-command-core/internal/domain/guard"
	"stay-command-core/internal/domain/lifecycle"
	"stay-command-core/internal/domain/outbox"
	"stay-command-core/internal/domain/reservation"
	"stay-command-core/internal/usecase/shared"
)

func (c *reservationCommands) CheckIn(ctx context.Context, meta Meta, cmd CheckIn) (_ *Accepted, err error) {
	ctx, finish := c.begin(ctx, reservation.CommandCheckIn, &meta)
	defer func() { finish(err) }()

	if err = requireTenant(meta); err != nil {
		return nil, err
	}
	current, err := c.loadReservation(ctx, meta, cmd.ReservationID)
	if err != nil {
		return nil, err
	}
	if err = checkTransition(reservation.CheckInTransition, current.Status); err != nil {
		return nil, err
	}

	target := reservation.CheckInTransition.ResultingStatus(current.Status)
	return c.commit(ctx, meta, write{
		command:       reservation.CommandCheckIn,
		aggregateType: outbox.AggregateReservation,
		entityID:      current.ID,
		eventType:     outbox.EventReservationCheckedIn,
		payload: statusChangePayload{
			ReservationID:  current.ID,
			PropertyID:     current.PropertyID,
			PreviousStatus: current.Status,
			Status:         target,
			RoomID:         current.RoomID,
			OccurredAt:     c.clock.Now(),
		},
		metadata: lifecycle.Metadata{
			PreviousStatus: string(current.Status),
			NewStatus:      string(target),
		},
	})
}

func (c *reservationCommands) CheckOut(ctx context.Context, meta Meta, cmd CheckOut) (_ *Accepted, err error) {
	ctx, finish := c.begin(ctx, reservation.CommandCheckOut, &meta)
	defer func() { finish(err) }()

	if err = requireTenant(meta); err != nil {
		return nil, err
	}
	current, err := c.loadReservation(ctx, meta, cmd.ReservationID)
	if err != nil {
		return nil, err
	}
	if err = checkTransition(reservation.CheckOutTransition, current.Status); err != nil {
		return nil, err
	}

	held, err := c.loadGuardLock(ctx, meta, current.ID)
	if err != nil {
		return nil, err
	}

	target := reservation.CheckOutTransition.ResultingStatus(current.Status)
	w := write{
		command:       reservation.CommandCheckOut,
		aggregateType: outbox.AggregateReservation,
		entityID:      current.ID,
		eventType:     outbox.EventReservationCheckedOut,
		payload: statusChangePayload{
			ReservationID:  current.ID,
			PropertyID:     current.PropertyID,
			PreviousStatus: current.Status,
			Status:         target,
			RoomID:         current.RoomID,
			OccurredAt:     c.clock.Now(),
		},
		metadata: lifecycle.Metadata{
			PreviousStatus: string(current.Status),
			NewStatus:      string(target),
		},
		guardRow: releaseRequestedRow(current.ID, held, guard.ReleaseCheckedOut),
	}
	lockID := heldLock(held, &w)

	accepted, err := c.commit(ctx, meta, w)
	if err != nil {
		return nil, err
	}
	if current.RoomID != nil {
		roomID := *current.RoomID
		c.nonCritical(ctx, "room_release", meta, current.ID, func(ctx context.Context) error {
			return c.uow.Advisory().ReleaseRoom(ctx, meta.TenantID, roomID, shared.RoomStatusDirty)
		}, "room_id", roomID)
	}
	c.releaseAfterCommit(ctx, meta, lockID, current.ID, guard.ReleaseCheckedOut)
	return accepted, nil
}
