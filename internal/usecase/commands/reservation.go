package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/reservation_mock.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"stay-command-core/internal/domain/reservation"
	"stay-command-core/internal/pkg/clock"
	"stay-command-core/internal/pkg/telemetry"
	"stay-command-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReservationCommands interface {
	Create(ctx context.Context, meta Meta, cmd CreateReservation) (*Accepted, error)
	Modify(ctx context.Context, meta Meta, cmd ModifyReservation) (*Accepted, error)
	Cancel(ctx context.Context, meta Meta, cmd CancelReservation) (*Accepted, error)
	NoShow(ctx context.Context, meta Meta, cmd MarkNoShow) (*Accepted, error)
	NoShowSweep(ctx context.Context, meta Meta, cmd NoShowSweep) (*SweepReport, error)
	WalkGuest(ctx context.Context, meta Meta, cmd WalkGuest) (*Accepted, error)
	ExtendStay(ctx context.Context, meta Meta, cmd ExtendStay) (*Accepted, error)
	AssignRoom(ctx context.Context, meta Meta, cmd AssignRoom) (*Accepted, error)
	CheckIn(ctx context.Context, meta Meta, cmd CheckIn) (*Accepted, error)
	CheckOut(ctx context.Context, meta Meta, cmd CheckOut) (*Accepted, error)
}

type CreateReservation struct {
	// ReservationID is generated when zero.
	ReservationID      uuid.UUID
	PropertyID         uuid.UUID
	RoomTypeID         uuid.UUID
	RoomID             *uuid.UUID
	GuestID            *uuid.UUID
	CheckIn            time.Time
	CheckOut           time.Time
	RateCode           string
	AllowRateFallback  bool
	Status             reservation.Status
	Adults             int
	Children           int
	Currency           string
	Notes              string
	CancellationPolicy *reservation.CancellationPolicy
}

// ModifyReservation merges every non-nil field over the current snapshot.
type ModifyReservation struct {
	ReservationID     uuid.UUID
	RoomTypeID        *uuid.UUID
	CheckIn           *time.Time
	CheckOut          *time.Time
	RateCode          *string
	AllowRateFallback bool
	GuestID           *uuid.UUID
	Adults            *int
	Children          *int
	Notes             *string
}

type CancelReservation struct {
	ReservationID uuid.UUID
	Reason        string
	WaiveFee      bool
}

type MarkNoShow struct {
	ReservationID uuid.UUID
	FeeOverride   *decimal.Decimal
	Reason        string
}

type NoShowSweep struct {
	PropertyID   uuid.UUID
	BusinessDate time.Time
	DryRun       bool
}

type WalkGuest struct {
	ReservationID          uuid.UUID
	AlternateHotel         string
	AlternateHotelContact  string
	CompensationAmount     decimal.Decimal
	CompensationType       reservation.CompensationType
	Currency               string
	TransportationProvided bool
	TransportationDetails  string
	ReturnGuaranteed       bool
	ReturnDate             *time.Time
	Notes                  string
}

type ExtendStay struct {
	ReservationID     uuid.UUID
	NewCheckOut       time.Time
	RateCode          *string
	AllowRateFallback bool
}

type AssignRoom struct {
	ReservationID uuid.UUID
	RoomID        uuid.UUID
}

type CheckIn struct {
	ReservationID uuid.UUID
}

type CheckOut struct {
	ReservationID uuid.UUID
}

type reservationCommands struct {
	*orchestrator
	rates  shared.RateResolver
	fees   shared.FeeCalculator
	sweeps shared.SweepLocker
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	guardClient shared.GuardClient,
	rates shared.RateResolver,
	fees shared.FeeCalculator,
	sweeps shared.SweepLocker,
	ids shared.IDGenerator,
	clk clock.Clock,
	logger *slog.Logger,
	metrics *telemetry.Instruments,
	settings Settings,
) ReservationCommands {
	return &reservationCommands{
		orchestrator: &orchestrator{
			uow:      uow,
			guard:    guardClient,
			ids:      ids,
			clock:    clk,
			logger:   logger,
			metrics:  metrics,
			settings: settings,
		},
		rates:  rates,
		fees:   fees,
		sweeps: sweeps,
	}
}
