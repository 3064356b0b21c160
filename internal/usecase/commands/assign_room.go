package commands

import (
	"context"

	"stay-command-core/internal/domain/guard"
	"stay-command-core/internal/domain/lifecycle"
	"stay-command-core/internal/domain/outbox"
	"stay-command-core/internal/domain/reservation"

	"github.com/google/uuid"
)

func (c *reservationCommands) AssignRoom(ctx context.Context, meta Meta, cmd AssignRoom) (_ *Accepted, err error) {
	ctx, finish := c.begin(ctx, reservation.CommandAssignRoom, &meta)
	defer func() { finish(err) }()

	if err = requireTenant(meta); err != nil {
		return nil, err
	}
	if cmd.RoomID == uuid.Nil {
		return nil, validationError("roomId is required")
	}
	current, err := c.loadReservation(ctx, meta, cmd.ReservationID)
	if err != nil {
		return nil, err
	}
	if err = checkTransition(reservation.AssignRoomTransition, current.Status); err != nil {
		return nil, err
	}

	held, err := c.loadGuardLock(ctx, meta, current.ID)
	if err != nil {
		return nil, err
	}

	roomID := cmd.RoomID
	lock := guard.Skipped(guard.SkipRoomAlreadyAssigned)
	if current.RoomID == nil || *current.RoomID != roomID {
		lock, err = c.acquireLock(ctx, meta, guard.LockRequest{
			ReservationID: current.ID,
			RoomTypeID:    current.RoomTypeID,
			RoomID:        &roomID,
			StayStart:     current.Stay.CheckIn,
			StayEnd:       current.Stay.CheckOut,
			Reason:        guard.ReasonRoomAssignment,
		})
		if err != nil {
			return nil, err
		}
	}

	assigned := *current
	assigned.RoomID = &roomID
	payload := newReservationPayload(assigned)
	payload.ChangedFields = []string{"roomId"}

	metadata := lifecycle.Metadata{
		PreviousStatus: string(current.Status),
		NewStatus:      string(current.Status),
		ChangedFields:  []string{"roomId"},
	}
	if current.RoomID != nil {
		metadata.Extra = map[string]any{"previousRoomId": current.RoomID.String()}
	}

	w := write{
		command:       reservation.CommandAssignRoom,
		aggregateType: outbox.AggregateReservation,
		entityID:      current.ID,
		eventType:     outbox.EventReservationRoomAssigned,
		payload:       payload,
		metadata:      metadata,
		lock:          &lock,
	}
	superseded := ""
	if lock.Locked() {
		w.guardRow = lockedRow(current.ID, lock, guard.ReasonRoomAssignment)
		if old, ok := held.HeldLockID(); ok && old != lock.LockID {
			superseded = old
			w.supersedes = old
		}
	}

	accepted, err := c.commit(ctx, meta, w)
	if err != nil {
		return nil, err
	}
	c.releaseAfterCommit(ctx, meta, superseded, current.ID, guard.ReleaseRoomReassigned)
	return accepted, nil
}
