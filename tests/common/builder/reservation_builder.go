//go:build unit || e2e

package builder

import (
	"encoding/json"
	"time"

	"stay-command-core/internal/domain/reservation"
	"stay-command-core/internal/infra/pgq"
	"stay-command-core/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type ReservationBuilder struct {
	ID           uuid.UUID
	TenantID     uuid.UUID
	PropertyID   uuid.UUID
	RoomTypeID   uuid.UUID
	RoomID       *uuid.UUID
	GuestID      *uuid.UUID
	GroupBlockID *uuid.UUID
	Status       reservation.Status
	CheckIn      time.Time
	CheckOut     time.Time
	RateCode     string
	RoomRate     decimal.Decimal
	Currency     string
	Adults       int
	Children     int
	Notes        string
	Policy       reservation.CancellationPolicy
}

// NewReservationBuilder returns a confirmed two-night stay starting 2025-03-10.
func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:         uuid.New(),
		TenantID:   uuid.New(),
		PropertyID: uuid.New(),
		RoomTypeID: uuid.New(),
		Status:     reservation.StatusConfirmed,
		CheckIn:    time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		RateCode:   "BAR",
		RoomRate:   decimal.NewFromInt(100),
		Currency:   "USD",
		Adults:     2,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) nights() int64 {
	return int64(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}

// Build methods
func (b *ReservationBuilder) BuildDomain() reservation.Snapshot {
	return reservation.Snapshot{
		ID:                 b.ID,
		TenantID:           b.TenantID,
		PropertyID:         b.PropertyID,
		RoomTypeID:         b.RoomTypeID,
		RoomID:             b.RoomID,
		GuestID:            b.GuestID,
		GroupBlockID:       b.GroupBlockID,
		Status:             b.Status,
		Stay:               reservation.StayWindow{CheckIn: b.CheckIn, CheckOut: b.CheckOut},
		RateCode:           b.RateCode,
		RoomRate:           b.RoomRate,
		TotalAmount:        b.RoomRate.Mul(decimal.NewFromInt(b.nights())),
		Currency:           b.Currency,
		Adults:             b.Adults,
		Children:           b.Children,
		Notes:              b.Notes,
		CancellationPolicy: b.Policy,
	}
}

func (b *ReservationBuilder) BuildRow() pgq.ReservationRow {
	policy, _ := json.Marshal(b.Policy)
	return pgq.ReservationRow{
		ID:                 b.ID,
		TenantID:           b.TenantID,
		PropertyID:         b.PropertyID,
		RoomTypeID:         b.RoomTypeID,
		RoomID:             pgconv.UUIDPtrToPgtype(b.RoomID),
		GuestID:            pgconv.UUIDPtrToPgtype(b.GuestID),
		GroupBlockID:       pgconv.UUIDPtrToPgtype(b.GroupBlockID),
		Status:             string(b.Status),
		CheckInDate:        pgconv.DateToPgtype(b.CheckIn),
		CheckOutDate:       pgconv.DateToPgtype(b.CheckOut),
		RateCode:           b.RateCode,
		RoomRate:           pgconv.DecimalToPgtype(b.RoomRate),
		TotalAmount:        pgconv.DecimalToPgtype(b.RoomRate.Mul(decimal.NewFromInt(b.nights()))),
		Currency:           b.Currency,
		Adults:             int32(b.Adults),
		Children:           int32(b.Children),
		Notes:              pgconv.NullableText(b.Notes),
		CancellationPolicy: policy,
		UpdatedAt:          pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
}
