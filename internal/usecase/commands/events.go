package commands

import (
	"time"

	"stay-command-core/internal/domain/rate"
	"stay-command-core/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type reservationPayload struct {
	ReservationID      uuid.UUID                       `json:"reservationId"`
	PropertyID         uuid.UUID                       `json:"propertyId"`
	RoomTypeID         uuid.UUID                       `json:"roomTypeId"`
	RoomID             *uuid.UUID                      `json:"roomId,omitempty"`
	GuestID            *uuid.UUID                      `json:"guestId,omitempty"`
	GroupBlockID       *uuid.UUID                      `json:"groupBlockId,omitempty"`
	Status             reservation.Status              `json:"status"`
	CheckIn            string                          `json:"checkIn"`
	CheckOut           string                          `json:"checkOut"`
	Nights             int                             `json:"nights"`
	RateCode           string                          `json:"rateCode"`
	RoomRate           decimal.Decimal                 `json:"roomRate"`
	TotalAmount        decimal.Decimal                 `json:"totalAmount"`
	Currency           string                          `json:"currency,omitempty"`
	Adults             int                             `json:"adults"`
	Children           int                             `json:"children"`
	Notes              string                          `json:"notes,omitempty"`
	CancellationPolicy *reservation.CancellationPolicy `json:"cancellationPolicy,omitempty"`
	Rate               *rate.Decision                  `json:"rate,omitempty"`
	ChangedFields      []string                        `json:"changedFields,omitempty"`
}

func newReservationPayload(s reservation.Snapshot) reservationPayload {
	p := reservationPayload{
		ReservationID: s.ID,
		PropertyID:    s.PropertyID,
		RoomTypeID:    s.RoomTypeID,
		RoomID:        s.RoomID,
		GuestID:       s.GuestID,
		GroupBlockID:  s.GroupBlockID,
		Status:        s.Status,
		CheckIn:       s.Stay.CheckIn.Format(time.DateOnly),
		CheckOut:      s.Stay.CheckOut.Format(time.DateOnly),
		Nights:        s.Stay.Nights(),
		RateCode:      s.RateCode,
		RoomRate:      s.RoomRate,
		TotalAmount:   s.TotalAmount,
		Currency:      s.Currency,
		Adults:        s.Adults,
		Children:      s.Children,
		Notes:         s.Notes,
	}
	if !s.CancellationPolicy.IsZero() {
		policy := s.CancellationPolicy
		p.CancellationPolicy = &policy
	}
	return p
}

type statusChangePayload struct {
	ReservationID  uuid.UUID             `json:"reservationId"`
	PropertyID     uuid.UUID             `json:"propertyId"`
	PreviousStatus reservation.Status    `json:"previousStatus"`
	Status         reservation.Status    `json:"status"`
	Tag            string                `json:"tag,omitempty"`
	Reason         string                `json:"reason,omitempty"`
	RoomID         *uuid.UUID            `json:"roomId,omitempty"`
	Fee            *reservation.FeeQuote `json:"fee,omitempty"`
	Walk           *walkPayload          `json:"walk,omitempty"`
	OccurredAt     time.Time             `json:"occurredAt"`
}

type walkPayload struct {
	AlternateHotel         string                       `json:"alternateHotel"`
	CompensationAmount     decimal.Decimal              `json:"compensationAmount"`
	CompensationType       reservation.CompensationType `json:"compensationType"`
	Currency               string                       `json:"currency,omitempty"`
	TransportationProvided bool                         `json:"transportationProvided"`
	ReturnGuaranteed       bool                         `json:"returnGuaranteed"`
}

type groupBlockPayload struct {
	BlockID    uuid.UUID       `json:"blockId"`
	PropertyID uuid.UUID       `json:"propertyId"`
	RoomTypeID uuid.UUID       `json:"roomTypeId"`
	Code       string          `json:"code"`
	Name       string          `json:"name,omitempty"`
	Status     string          `json:"status"`
	StartDate  string          `json:"startDate"`
	EndDate    string          `json:"endDate"`
	RoomCount  int             `json:"roomCount"`
	PickedUp   int             `json:"pickedUp"`
	RateCode   string          `json:"rateCode,omitempty"`
	BlockRate  decimal.Decimal `json:"blockRate"`
	Reason     string          `json:"reason,omitempty"`
}
