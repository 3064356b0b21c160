//go:build unit || e2e

package builder

import (
	"time"

	"stay-command-core/internal/domain/group"
	"stay-command-core/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type GroupBlockBuilder struct {
	ID         uuid.UUID
	TenantID   uuid.UUID
	PropertyID uuid.UUID
	RoomTypeID uuid.UUID
	Code       string
	Status     group.Status
	StartDate  time.Time
	EndDate    time.Time
	RoomCount  int
	PickedUp   int
	CutoffDate *time.Time
	RateCode   string
	BlockRate  decimal.Decimal
}

// NewGroupBlockBuilder returns a definite ten-room block for 2025-05-01..05.
func NewGroupBlockBuilder() *GroupBlockBuilder {
	return &GroupBlockBuilder{
		ID:         uuid.New(),
		TenantID:   uuid.New(),
		PropertyID: uuid.New(),
		RoomTypeID: uuid.New(),
		Code:       "WEDDING",
		Status:     group.StatusDefinite,
		StartDate:  time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC),
		RoomCount:  10,
		RateCode:   "GRP",
		BlockRate:  decimal.NewFromInt(90),
	}
}

func (b *GroupBlockBuilder) With(mutate func(*GroupBlockBuilder)) *GroupBlockBuilder {
	mutate(b)
	return b
}

func (b *GroupBlockBuilder) BuildDomain() group.Block {
	return group.Block{
		ID:         b.ID,
		TenantID:   b.TenantID,
		PropertyID: b.PropertyID,
		RoomTypeID: b.RoomTypeID,
		Code:       b.Code,
		Name:       b.Code + " block",
		Status:     b.Status,
		Window:     reservation.StayWindow{CheckIn: b.StartDate, CheckOut: b.EndDate},
		RoomCount:  b.RoomCount,
		PickedUp:   b.PickedUp,
		CutoffDate: b.CutoffDate,
		RateCode:   b.RateCode,
		BlockRate:  b.BlockRate,
		Currency:   "USD",
	}
}
