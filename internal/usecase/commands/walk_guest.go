package commands

import (
	"context"
	"strings"

	"stay-command-core/internal/domain/guard"
	"stay-command-core/internal/domain/lifecycle"
	"stay-command-core/internal/domain/outbox"
	"stay-command-core/internal/domain/reservation"
	"stay-command-core/internal/infra"
	"stay-command-core/internal/usecase/shared"

	"github.com/google/uuid"
)

func (c *reservationCommands) WalkGuest(ctx context.Context, meta Meta, cmd WalkGuest) (_ *Accepted, err error) {
	ctx, finish := c.begin(ctx, reservation.CommandWalkGuest, &meta)
	defer func() { finish(err) }()

	if err = requireTenant(meta); err != nil {
		return nil, err
	}
	current, err := c.loadReservation(ctx, meta, cmd.ReservationID)
	if err != nil {
		return nil, err
	}
	if err = checkTransition(reservation.WalkTransition, current.Status); err != nil {
		return nil, err
	}

	compType := cmd.CompensationType
	if compType == "" {
		compType = reservation.CompensationNone
	}
	currency := cmd.Currency
	if currency == "" {
		currency = current.Currency
	}
	now := c.clock.Now()
	walk := reservation.WalkRecord{
		ID:                     uuid.New(),
		TenantID:               meta.TenantID,
		ReservationID:          current.ID,
		PropertyID:             current.PropertyID,
		AlternateHotel:         strings.TrimSpace(cmd.AlternateHotel),
		AlternateHotelContact:  cmd.AlternateHotelContact,
		CompensationAmount:     cmd.CompensationAmount,
		CompensationType:       compType,
		Currency:               currency,
		TransportationProvided: cmd.TransportationProvided,
		TransportationDetails:  cmd.TransportationDetails,
		ReturnGuaranteed:       cmd.ReturnGuaranteed,
		ReturnDate:             cmd.ReturnDate,
		Notes:                  cmd.Notes,
		WalkedAt:               now,
		WalkedBy:               meta.ActorID,
	}
	if err = walk.Validate(); err != nil {
		return nil, validationError(err.Error())
	}

	held, err := c.loadGuardLock(ctx, meta, current.ID)
	if err != nil {
		return nil, err
	}

	target := reservation.WalkTransition.ResultingStatus(current.Status)
	w := write{
		command:       reservation.CommandWalkGuest,
		aggregateType: outbox.AggregateReservation,
		entityID:      current.ID,
		eventType:     outbox.EventReservationCancelled,
		payload: statusChangePayload{
			ReservationID:  current.ID,
			PropertyID:     current.PropertyID,
			PreviousStatus: current.Status,
			Status:         target,
			Tag:            reservation.WalkTransition.TargetLabel,
			Reason:         "GUEST_WALKED",
			RoomID:         current.RoomID,
			Walk: &walkPayload{
				AlternateHotel:         walk.AlternateHotel,
				CompensationAmount:     walk.CompensationAmount,
				CompensationType:       walk.CompensationType,
				Currency:               walk.Currency,
				TransportationProvided: walk.TransportationProvided,
				ReturnGuaranteed:       walk.ReturnGuaranteed,
			},
			OccurredAt: now,
		},
		metadata: lifecycle.Metadata{
			PreviousStatus: string(current.Status),
			NewStatus:      string(target),
			Tag:            reservation.WalkTransition.TargetLabel,
			Extra:          map[string]any{"walkId": walk.ID.String()},
		},
		guardRow: releaseRequestedRow(current.ID, held, guard.ReleaseGuestWalked),
		apply: func(ctx context.Context, tx shared.Tx, eventID uuid.UUID) error {
			locked, err := tx.Reads().ReservationForUpdate(ctx, meta.TenantID, current.ID)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return newError(KindNotFound, CodeReservationNotFound, "reservation "+current.ID.String()+" not found")
				}
				return err
			}
			if err := checkTransition(reservation.WalkTransition, locked.Status); err != nil {
				return err
			}
			walk.EventID = eventID
			if err := tx.Walks().Create(ctx, walk); err != nil {
				if infra.IsKind(err, infra.KindDuplicateKey) {
					return conflictError(CodeReservationAlreadyWalked, "reservation "+current.ID.String()+" was already walked")
				}
				return err
			}
			return nil
		},
	}
	lockID := heldLock(held, &w)

	accepted, err := c.commit(ctx, meta, w)
	if err != nil {
		return nil, err
	}
	if current.RoomID != nil {
		roomID := *current.RoomID
		c.nonCritical(ctx, "room_release", meta, current.ID, func(ctx context.Context) error {
			return c.uow.Advisory().ReleaseRoom(ctx, meta.TenantID, roomID, shared.RoomStatusAvailable)
		}, "room_id", roomID)
	}
	c.releaseAfterCommit(ctx, meta, lockID, current.ID, guard.ReleaseGuestWalked)
	return accepted, nil
}
