package request

import (
	"stay-command-core/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateReservationRequest struct {
	ReservationID      uuid.UUID                       `json:"reservationId"`
	PropertyID         uuid.UUID                       `json:"propertyId" binding:"required"`
	RoomTypeID         uuid.UUID                       `json:"roomTypeId" binding:"required"`
	RoomID             *uuid.UUID                      `json:"roomId,omitempty"`
	GuestID            *uuid.UUID                      `json:"guestId,omitempty"`
	CheckIn            Date                            `json:"checkIn"`
	CheckOut           Date                            `json:"checkOut"`
	RateCode           string                          `json:"rateCode" binding:"max=32"`
	AllowRateFallback  bool                            `json:"allowRateFallback"`
	Status             string                          `json:"status,omitempty"`
	Adults             int                             `json:"adults" binding:"min=0,max=20"`
	Children           int                             `json:"children" binding:"min=0,max=20"`
	Currency           string                          `json:"currency,omitempty" binding:"omitempty,len=3"`
	Notes              string                          `json:"notes,omitempty" binding:"max=2000"`
	CancellationPolicy *reservation.CancellationPolicy `json:"cancellationPolicy,omitempty"`
}

type ModifyReservationRequest struct {
	ReservationID     uuid.UUID  `json:"reservationId" binding:"required"`
	RoomTypeID        *uuid.UUID `json:"roomTypeId,omitempty"`
	CheckIn           *Date      `json:"checkIn,omitempty"`
	CheckOut          *Date      `json:"checkOut,omitempty"`
	RateCode          *string    `json:"rateCode,omitempty"`
	AllowRateFallback bool       `json:"allowRateFallback"`
	GuestID           *uuid.UUID `json:"guestId,omitempty"`
	Adults            *int       `json:"adults,omitempty" binding:"omitempty,min=0,max=20"`
	Children          *int       `json:"children,omitempty" binding:"omitempty,min=0,max=20"`
	Notes             *string    `json:"notes,omitempty"`
}

type CancelReservationRequest struct {
	ReservationID uuid.UUID `json:"reservationId" binding:"required"`
	Reason        string    `json:"reason,omitempty" binding:"max=500"`
	WaiveFee      bool      `json:"waiveFee"`
}

type MarkNoShowRequest struct {
	ReservationID uuid.UUID        `json:"reservationId" binding:"required"`
	FeeOverride   *decimal.Decimal `json:"feeOverride,omitempty"`
	Reason        string           `json:"reason,omitempty" binding:"max=500"`
}

type NoShowSweepRequest struct {
	BusinessDate Date `json:"businessDate"`
	DryRun       bool `json:"dryRun"`
}

type WalkGuestRequest struct {
	ReservationID          uuid.UUID       `json:"reservationId" binding:"required"`
	AlternateHotel         string          `json:"alternateHotel" binding:"required,max=200"`
	AlternateHotelContact  string          `json:"alternateHotelContact,omitempty"`
	CompensationAmount     decimal.Decimal `json:"compensationAmount"`
	CompensationType       string          `json:"compensationType,omitempty"`
	Currency               string          `json:"currency,omitempty" binding:"omitempty,len=3"`
	TransportationProvided bool            `json:"transportationProvided"`
	TransportationDetails  string          `json:"transportationDetails,omitempty"`
	ReturnGuaranteed       bool            `json:"returnGuaranteed"`
	ReturnDate             *Date           `json:"returnDate,omitempty"`
	Notes                  string          `json:"notes,omitempty" binding:"max=2000"`
}

type ExtendStayRequest struct {
	ReservationID     uuid.UUID `json:"reservationId" binding:"required"`
	NewCheckOut       Date      `json:"newCheckOut"`
	RateCode          *string   `json:"rateCode,omitempty"`
	AllowRateFallback bool      `json:"allowRateFallback"`
}

type AssignRoomRequest struct {
	ReservationID uuid.UUID `json:"reservationId" binding:"required"`
	RoomID        uuid.UUID `json:"roomId" binding:"required"`
}

// StatusChangeRequest covers check_in and check_out.
type StatusChangeRequest struct {
	ReservationID uuid.UUID `json:"reservationId" binding:"required"`
}

type CreateGroupBlockRequest struct {
	BlockID           uuid.UUID `json:"blockId"`
	PropertyID        uuid.UUID `json:"propertyId" binding:"required"`
	RoomTypeID        uuid.UUID `json:"roomTypeId" binding:"required"`
	Code              string    `json:"code" binding:"required,max=32"`
	Name              string    `json:"name,omitempty" binding:"max=200"`
	StartDate         Date      `json:"startDate"`
	EndDate           Date      `json:"endDate"`
	RoomCount         int       `json:"roomCount" binding:"required,min=1"`
	CutoffDate        *Date     `json:"cutoffDate,omitempty"`
	RateCode          string    `json:"rateCode" binding:"max=32"`
	AllowRateFallback bool      `json:"allowRateFallback"`
	Definite          bool      `json:"definite"`
	Currency          string    `json:"currency,omitempty" binding:"omitempty,len=3"`
}

type PickupGroupRoomRequest struct {
	BlockID       uuid.UUID  `json:"blockId" binding:"required"`
	ReservationID uuid.UUID  `json:"reservationId"`
	GuestID       *uuid.UUID `json:"guestId,omitempty"`
	CheckIn       Date       `json:"checkIn"`
	CheckOut      Date       `json:"checkOut"`
	Adults        int        `json:"adults" binding:"min=0,max=20"`
	Children      int        `json:"children" binding:"min=0,max=20"`
	Notes         string     `json:"notes,omitempty" binding:"max=2000"`
}

type CancelGroupBlockRequest struct {
	BlockID uuid.UUID `json:"blockId" binding:"required"`
	Reason  string    `json:"reason,omitempty" binding:"max=500"`
}
