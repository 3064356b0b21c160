package group

import (
	"errors"
	"time"

	"stay-command-core/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidRoomCount = errors.New("room count must be positive")
	ErrBlockExhausted   = errors.New("group block has no remaining rooms")
	ErrOutsideBlock     = errors.New("stay is outside the group block window")
	ErrPastCutoff       = errors.New("group block cut-off date has passed")
	ErrBlockNotPickable = errors.New("group block does not accept pickups")
	ErrRoomTypeMismatch = errors.New("room type does not match the group block")
)

type Status string

const (
	StatusTentative Status = "TENTATIVE"
	StatusDefinite  Status = "DEFINITE"
	StatusCancelled Status = "CANCELLED"
	StatusReleased  Status = "RELEASED"
)

func (s Status) IsOpen() bool {
	return s == StatusTentative || s == StatusDefinite
}

const (
	CommandCreateBlock = "group.create_block"
	CommandPickupRoom  = "group.pickup_room"
	CommandCancelBlock = "group.cancel_block"
)

// Block is a contracted allotment of rooms of one type over a date range.
type Block struct {
	ID         uuid.UUID
	TenantID   uuid.UUID
	PropertyID uuid.UUID
	RoomTypeID uuid.UUID
	Code       string
	Name       string
	Status     Status
	Window     reservation.StayWindow
	RoomCount  int
	PickedUp   int
	CutoffDate *time.Time
	RateCode   string
	BlockRate  decimal.Decimal
	Currency   string
}

func (b Block) Remaining() int {
	if r := b.RoomCount - b.PickedUp; r > 0 {
		return r
	}
	return 0
}

// Covers reports whether the stay fits inside the block window for the block's room type.
func (b Block) Covers(roomTypeID uuid.UUID, stay reservation.StayWindow) error {
	if roomTypeID != b.RoomTypeID {
		return ErrRoomTypeMismatch
	}
	if !b.Window.Contains(stay) {
		return ErrOutsideBlock
	}
	return nil
}

// AcceptsPickup checks everything except the room type and window.
func (b Block) AcceptsPickup(businessDate time.Time) error {
	if !b.Status.IsOpen() {
		return ErrBlockNotPickable
	}
	if b.CutoffDate != nil && businessDate.After(*b.CutoffDate) {
		return ErrPastCutoff
	}
	if b.Remaining() == 0 {
		return ErrBlockExhausted
	}
	return nil
}
