package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/group_mock.go -package=commandsmock

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"stay-command-core/internal/domain/group"
	"stay-command-core/internal/domain/guard"
	"stay-command-core/internal/domain/lifecycle"
	"stay-command-core/internal/domain/outbox"
	"stay-command-core/internal/domain/rate"
	"stay-command-core/internal/domain/reservation"
	"stay-command-core/internal/infra"
	"stay-command-core/internal/pkg/clock"
	"stay-command-core/internal/pkg/telemetry"
	"stay-command-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type GroupCommands interface {
	CreateBlock(ctx context.Context, meta Meta, cmd CreateGroupBlock) (*Accepted, error)
	PickupRoom(ctx context.Context, meta Meta, cmd PickupGroupRoom) (*Accepted, error)
	CancelBlock(ctx context.Context, meta Meta, cmd CancelGroupBlock) (*Accepted, error)
}

type CreateGroupBlock struct {
	BlockID           uuid.UUID
	PropertyID        uuid.UUID
	RoomTypeID        uuid.UUID
	Code              string
	Name              string
	StartDate         time.Time
	EndDate           time.Time
	RoomCount         int
	CutoffDate        *time.Time
	RateCode          string
	AllowRateFallback bool
	Definite          bool
	Currency          string
}

type PickupGroupRoom struct {
	BlockID       uuid.UUID
	ReservationID uuid.UUID
	GuestID       *uuid.UUID
	CheckIn       time.Time
	CheckOut      time.Time
	Adults        int
	Children      int
	Notes         string
}

type CancelGroupBlock struct {
	BlockID uuid.UUID
	Reason  string
}

type groupCommands struct {
	*orchestrator
	rates shared.RateResolver
}

func NewGroupCommands(
	uow shared.UnitOfWork,
	guardClient shared.GuardClient,
	rates shared.RateResolver,
	ids shared.IDGenerator,
	clk clock.Clock,
	logger *slog.Logger,
	metrics *telemetry.Instruments,
	settings Settings,
) GroupCommands {
	return &groupCommands{
		orchestrator: &orchestrator{
			uow:      uow,
			guard:    guardClient,
			ids:      ids,
			clock:    clk,
			logger:   logger,
			metrics:  metrics,
			settings: settings,
		},
		rates: rates,
	}
}

func (c *groupCommands) CreateBlock(ctx context.Context, meta Meta, cmd CreateGroupBlock) (_ *Accepted, err error) {
	ctx, finish := c.begin(ctx, group.CommandCreateBlock, &meta)
	defer func() { finish(err) }()

	if err = requireTenant(meta); err != nil {
		return nil, err
	}
	if cmd.PropertyID == uuid.Nil || cmd.RoomTypeID == uuid.Nil {
		return nil, validationError("propertyId and roomTypeId are required")
	}
	if cmd.Code == "" {
		return nil, validationError("block code is required")
	}
	if cmd.RoomCount <= 0 {
		return nil, validationError(group.ErrInvalidRoomCount.Error())
	}
	window, err := reservation.NewStayWindow(cmd.StartDate, cmd.EndDate)
	if err != nil {
		return nil, validationError(err.Error())
	}
	if cmd.BlockID == uuid.Nil {
		cmd.BlockID = uuid.New()
	}

	decision, err := resolveRate(ctx, c.rates, rate.Query{
		TenantID:      meta.TenantID,
		PropertyID:    cmd.PropertyID,
		RoomTypeID:    cmd.RoomTypeID,
		StayStart:     window.CheckIn,
		StayEnd:       window.CheckOut,
		RequestedCode: cmd.RateCode,
	}, cmd.AllowRateFallback)
	if err != nil {
		return nil, err
	}

	lock, err := c.acquireLock(ctx, meta, guard.LockRequest{
		ReservationID: cmd.BlockID,
		RoomTypeID:    cmd.RoomTypeID,
		Quantity:      cmd.RoomCount,
		StayStart:     window.CheckIn,
		StayEnd:       window.CheckOut,
		Reason:        guard.ReasonGroupBlockCreate,
	})
	if err != nil {
		return nil, err
	}

	status := group.StatusTentative
	if cmd.Definite {
		status = group.StatusDefinite
	}
	block := group.Block{
		ID:         cmd.BlockID,
		TenantID:   meta.TenantID,
		PropertyID: cmd.PropertyID,
		RoomTypeID: cmd.RoomTypeID,
		Code:       cmd.Code,
		Name:       cmd.Name,
		Status:     status,
		Window:     window,
		RoomCount:  cmd.RoomCount,
		CutoffDate: cmd.CutoffDate,
		RateCode:   decision.AppliedCode,
		BlockRate:  decision.Amount,
		Currency:   cmd.Currency,
	}

	w := write{
		command:       group.CommandCreateBlock,
		aggregateType: outbox.AggregateGroupBlock,
		entityID:      block.ID,
		eventType:     outbox.EventGroupBlockCreated,
		payload:       newGroupBlockPayload(block, ""),
		metadata: lifecycle.Metadata{
			NewStatus: string(status),
			Rate:      rawJSON(decision),
		},
		lock: &lock,
		apply: func(ctx context.Context, tx shared.Tx, _ uuid.UUID) error {
			return tx.GroupBlocks().Create(ctx, block)
		},
	}
	if lock.Locked() {
		w.guardRow = lockedRow(block.ID, lock, guard.ReasonGroupBlockCreate)
	}
	if decision.FallbackApplied {
		rec := rate.NewFallbackRecord(meta.TenantID, block.ID, block.PropertyID, meta.ActorID, decision)
		w.fallback = &rec
	}
	return c.commit(ctx, meta, w)
}

// PickupRoom books one room out of a block. The block's own lock already
// covers availability, so the guard is not called.
func (c *groupCommands) PickupRoom(ctx context.Context, meta Meta, cmd PickupGroupRoom) (_ *Accepted, err error) {
	ctx, finish := c.begin(ctx, group.CommandPickupRoom, &meta)
	defer func() { finish(err) }()

	if err = requireTenant(meta); err != nil {
		return nil, err
	}
	stay, err := reservation.NewStayWindow(cmd.CheckIn, cmd.CheckOut)
	if err != nil {
		return nil, validationError(err.Error())
	}
	block, err := c.loadBlock(ctx, meta, cmd.BlockID)
	if err != nil {
		return nil, err
	}
	if err = block.Covers(block.RoomTypeID, stay); err != nil {
		return nil, validationError(err.Error())
	}
	businessDate := clock.Date(c.clock.Now())
	if err = pickupError(block.AcceptsPickup(businessDate)); err != nil {
		return nil, err
	}
	if cmd.ReservationID == uuid.Nil {
		cmd.ReservationID = uuid.New()
	}

	blockID := block.ID
	snap := reservation.Snapshot{
		ID:           cmd.ReservationID,
		TenantID:     meta.TenantID,
		PropertyID:   block.PropertyID,
		RoomTypeID:   block.RoomTypeID,
		GuestID:      cmd.GuestID,
		GroupBlockID: &blockID,
		Status:       reservation.StatusConfirmed,
		Stay:         stay,
		RateCode:     block.RateCode,
		RoomRate:     block.BlockRate,
		TotalAmount:  block.BlockRate.Mul(decimal.NewFromInt(int64(stay.Nights()))),
		Currency:     block.Currency,
		Adults:       cmd.Adults,
		Children:     cmd.Children,
		Notes:        cmd.Notes,
	}
	lock := guard.Skipped(guard.SkipCoveredByGroupBlock)

	return c.commit(ctx, meta, write{
		command:       group.CommandPickupRoom,
		aggregateType: outbox.AggregateReservation,
		entityID:      snap.ID,
		eventType:     outbox.EventReservationCreated,
		payload:       newReservationPayload(snap),
		metadata: lifecycle.Metadata{
			NewStatus: string(snap.Status),
			Extra:     map[string]any{"groupBlockId": blockID.String()},
		},
		lock: &lock,
		apply: func(ctx context.Context, tx shared.Tx, _ uuid.UUID) error {
			locked, err := tx.GroupBlocks().LockForPickup(ctx, meta.TenantID, blockID)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return newError(KindNotFound, CodeGroupBlockNotFound, "group block "+blockID.String()+" not found")
				}
				return err
			}
			if err := pickupError(locked.AcceptsPickup(businessDate)); err != nil {
				return err
			}
			if err := tx.GroupBlocks().IncrementPickup(ctx, meta.TenantID, blockID); err != nil {
				if errors.Is(err, group.ErrBlockExhausted) {
					return pickupError(err)
				}
				return err
			}
			return nil
		},
	})
}

func (c *groupCommands) CancelBlock(ctx context.Context, meta Meta, cmd CancelGroupBlock) (_ *Accepted, err error) {
	ctx, finish := c.begin(ctx, group.CommandCancelBlock, &meta)
	defer func() { finish(err) }()

	if err = requireTenant(meta); err != nil {
		return nil, err
	}
	block, err := c.loadBlock(ctx, meta, cmd.BlockID)
	if err != nil {
		return nil, err
	}
	if !block.Status.IsOpen() {
		return nil, conflictError(CodeInvalidStatusGroupCancel, "group block in status "+string(block.Status)+" cannot be cancelled")
	}

	held, err := c.loadGuardLock(ctx, meta, block.ID)
	if err != nil {
		return nil, err
	}

	cancelled := *block
	cancelled.Status = group.StatusCancelled
	w := write{
		command:       group.CommandCancelBlock,
		aggregateType: outbox.AggregateGroupBlock,
		entityID:      block.ID,
		eventType:     outbox.EventGroupBlockCancelled,
		payload:       newGroupBlockPayload(cancelled, cmd.Reason),
		metadata: lifecycle.Metadata{
			PreviousStatus: string(block.Status),
			NewStatus:      string(group.StatusCancelled),
		},
		guardRow: releaseRequestedRow(block.ID, held, guard.ReleaseGroupBlockCancelled),
		apply: func(ctx context.Context, tx shared.Tx, _ uuid.UUID) error {
			return tx.GroupBlocks().UpdateStatus(ctx, meta.TenantID, block.ID, group.StatusCancelled)
		},
	}
	lockID := heldLock(held, &w)

	accepted, err := c.commit(ctx, meta, w)
	if err != nil {
		return nil, err
	}
	c.releaseAfterCommit(ctx, meta, lockID, block.ID, guard.ReleaseGroupBlockCancelled)
	return accepted, nil
}

func (c *groupCommands) loadBlock(ctx context.Context, meta Meta, id uuid.UUID) (*group.Block, error) {
	if id == uuid.Nil {
		return nil, newError(KindValidation, CodeTargetRequired, "group block id is required")
	}
	block, err := c.uow.CommandReads().GroupBlockByID(ctx, meta.TenantID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, newError(KindNotFound, CodeGroupBlockNotFound, "group block "+id.String()+" not found")
		}
		return nil, dependencyError(CodeSnapshotReadFailed, "read group block", err)
	}
	return block, nil
}

func pickupError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, group.ErrBlockExhausted):
		return conflictError(CodeGroupBlockExhausted, err.Error())
	default:
		return conflictError(CodeGroupBlockClosed, err.Error())
	}
}

func newGroupBlockPayload(b group.Block, reason string) groupBlockPayload {
	return groupBlockPayload{
		BlockID:    b.ID,
		PropertyID: b.PropertyID,
		RoomTypeID: b.RoomTypeID,
		Code:       b.Code,
		Name:       b.Name,
		Status:     string(b.Status),
		StartDate:  b.Window.CheckIn.Format(time.DateOnly),
		EndDate:    b.Window.CheckOut.Format(time.DateOnly),
		RoomCount:  b.RoomCount,
		PickedUp:   b.PickedUp,
		RateCode:   b.RateCode,
		BlockRate:  b.BlockRate,
		Reason:     reason,
	}
}
