package rate

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNoRateAvailable = errors.New("no rate plan available for stay")

const (
	ReasonRequestedApplied     = "REQUESTED_RATE_APPLIED"
	ReasonDefaultSelected      = "DEFAULT_RATE_SELECTED"
	ReasonCodeNotFound         = "RATE_CODE_NOT_FOUND"
	ReasonCodeInactive         = "RATE_CODE_INACTIVE"
	ReasonCodeNotValidForDates = "RATE_CODE_NOT_VALID_FOR_DATES"
	ReasonMinStayNotMet        = "MIN_STAY_NOT_MET"
	ReasonMaxStayExceeded      = "MAX_STAY_EXCEEDED"
)

// Plan is a priceable rate configuration for one room type at one property.
// ValidTo is inclusive and refers to the last night the plan can be sold for.
type Plan struct {
	Code      string          `json:"code"`
	Active    bool            `json:"active"`
	Rank      int             `json:"rank"`
	ValidFrom *time.Time      `json:"validFrom,omitempty"`
	ValidTo   *time.Time      `json:"validTo,omitempty"`
	MinStay   int             `json:"minStay"`
	MaxStay   int             `json:"maxStay"`
	Amount    decimal.Decimal `json:"amount"`
}

type Query struct {
	TenantID      uuid.UUID
	PropertyID    uuid.UUID
	RoomTypeID    uuid.UUID
	StayStart     time.Time
	StayEnd       time.Time
	RequestedCode string
}

type Decision struct {
	AppliedCode     string          `json:"appliedCode"`
	RequestedCode   string          `json:"requestedCode"`
	FallbackApplied bool            `json:"fallbackApplied"`
	Reason          string          `json:"reason"`
	DecidedAt       time.Time       `json:"decidedAt"`
	Amount          decimal.Decimal `json:"amount"`
}

// Catalog reads the current rate configuration for a property and room type.
type Catalog interface {
	PlansFor(ctx context.Context, tenantID, propertyID, roomTypeID uuid.UUID) ([]Plan, error)
}

// FallbackRecord is written only when the applied code differs from the requested one.
type FallbackRecord struct {
	ID            uuid.UUID
	TenantID      uuid.UUID
	ReservationID uuid.UUID
	PropertyID    uuid.UUID
	RequestedCode string
	AppliedCode   string
	Reason        string
	DecidedAt     time.Time
	DecidedBy     uuid.UUID
}

func NewFallbackRecord(tenantID, reservationID, propertyID, actorID uuid.UUID, d Decision) FallbackRecord {
	return FallbackRecord{
		ID:            uuid.New(),
		TenantID:      tenantID,
		ReservationID: reservationID,
		PropertyID:    propertyID,
		RequestedCode: d.RequestedCode,
		AppliedCode:   d.AppliedCode,
		Reason:        d.Reason,
		DecidedAt:     d.DecidedAt,
		DecidedBy:     actorID,
	}
}
