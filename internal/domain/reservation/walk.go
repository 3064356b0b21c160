package reservation

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrAlternateHotelRequired  = errors.New("alternate hotel is required")
	ErrNegativeCompensation    = errors.New("compensation amount cannot be negative")
	ErrInvalidCompensationType = errors.New("invalid compensation type")
)

type CompensationType string

const (
	CompensationCash            CompensationType = "CASH"
	CompensationVoucher         CompensationType = "VOUCHER"
	CompensationComplimentary   CompensationType = "COMPLIMENTARY_NIGHT"
	CompensationPaidAlternative CompensationType = "PAID_ALTERNATE_STAY"
	CompensationNone            CompensationType = "NONE"
)

func (c CompensationType) IsValid() bool {
	switch c {
	case CompensationCash, CompensationVoucher, CompensationComplimentary, CompensationPaidAlternative, CompensationNone:
		return true
	default:
		return false
	}
}

// WalkRecord documents a guest displaced to another hotel because of overbooking.
type WalkRecord struct {
	ID                     uuid.UUID
	TenantID               uuid.UUID
	ReservationID          uuid.UUID
	PropertyID             uuid.UUID
	EventID                uuid.UUID
	AlternateHotel         string
	AlternateHotelContact  string
	CompensationAmount     decimal.Decimal
	CompensationType       CompensationType
	Currency               string
	TransportationProvided bool
	TransportationDetails  string
	ReturnGuaranteed       bool
	ReturnDate             *time.Time
	Notes                  string
	WalkedAt               time.Time
	WalkedBy               uuid.UUID
}

func (w WalkRecord) Validate() error {
	if strings.TrimSpace(w.AlternateHotel) == "" {
		return ErrAlternateHotelRequired
	}
	if w.CompensationAmount.IsNegative() {
		return ErrNegativeCompensation
	}
	if !w.CompensationType.IsValid() {
		return ErrInvalidCompensationType
	}
	return nil
}
