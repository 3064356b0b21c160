package reservation

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidCancellationPolicy = errors.New("invalid cancellation policy")

type FeeType string

const (
	FeeTypeNone    FeeType = "NONE"
	FeeTypeFlat    FeeType = "FLAT"
	FeeTypePercent FeeType = "PERCENT"
	FeeTypeNights  FeeType = "NIGHTS"
)

const DefaultCheckInHour = 15

const (
	FeeReasonFreeWindow   = "WITHIN_FREE_CANCELLATION_WINDOW"
	FeeReasonNoFeePolicy  = "POLICY_HAS_NO_FEE"
	FeeReasonPolicyFee    = "POLICY_FEE_APPLIED"
	FeeReasonCalcFailed   = "FEE_CALCULATION_FAILED"
	FeeReasonWaived       = "FEE_WAIVED"
	FeeReasonNoPolicy     = "NO_POLICY"
	FeeReasonOverride     = "FEE_OVERRIDE"
	FeeReasonRoomRateBase = "ROOM_RATE"
)

// CancellationPolicy is stored with the reservation as JSON. No fee applies
// until FreeCancellationHours before the check-in instant.
type CancellationPolicy struct {
	Code                  string          `json:"code"`
	FreeCancellationHours int             `json:"freeCancellationHours"`
	FeeType               FeeType         `json:"feeType"`
	FlatAmount            decimal.Decimal `json:"flatAmount"`
	Percent               decimal.Decimal `json:"percent"`
	Nights                int             `json:"nights"`
	CheckInHour           int             `json:"checkInHour"`
}

func (p CancellationPolicy) IsZero() bool {
	return p.Code == "" && p.FeeType == ""
}

type FeeBasis struct {
	Stay        StayWindow
	RoomRate    decimal.Decimal
	TotalAmount decimal.Decimal
	Currency    string
}

type FeeQuote struct {
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	PolicyCode     string          `json:"policyCode,omitempty"`
	Reason         string          `json:"reason"`
	HoursToCheckIn float64         `json:"hoursToCheckIn"`
}

func ZeroFee(currency, reason string) FeeQuote {
	return FeeQuote{Amount: decimal.Zero, Currency: currency, Reason: reason}
}

// FeeCalculator is stateless; it exists so handlers can depend on an interface.
type FeeCalculator struct{}

func NewFeeCalculator() *FeeCalculator {
	return &FeeCalculator{}
}

func (FeeCalculator) Quote(policy CancellationPolicy, basis FeeBasis, now time.Time) (FeeQuote, error) {
	return CalculateCancellationFee(policy, basis, now)
}

// CalculateCancellationFee is a pure function of the policy, the stay and now.
func CalculateCancellationFee(policy CancellationPolicy, basis FeeBasis, now time.Time) (FeeQuote, error) {
	if policy.IsZero() {
		return ZeroFee(basis.Currency, FeeReasonNoPolicy), nil
	}
	if policy.FreeCancellationHours < 0 {
		return FeeQuote{}, fmt.Errorf("%w: negative free cancellation hours", ErrInvalidCancellationPolicy)
	}

	checkInHour := policy.CheckInHour
	if checkInHour <= 0 || checkInHour > 23 {
		checkInHour = DefaultCheckInHour
	}
	checkInAt := basis.Stay.CheckIn.Add(time.Duration(checkInHour) * time.Hour)
	hoursToCheckIn := checkInAt.Sub(now).Hours()

	quote := FeeQuote{
		Amount:         decimal.Zero,
		Currency:       basis.Currency,
		PolicyCode:     policy.Code,
		HoursToCheckIn: hoursToCheckIn,
	}

	deadline := checkInAt.Add(-time.Duration(policy.FreeCancellationHours) * time.Hour)
	if now.Before(deadline) {
		quote.Reason = FeeReasonFreeWindow
		return quote, nil
	}

	var amount decimal.Decimal
	switch policy.FeeType {
	case FeeTypeNone:
		quote.Reason = FeeReasonNoFeePolicy
		return quote, nil
	case FeeTypeFlat:
		if policy.FlatAmount.IsNegative() {
			return FeeQuote{}, fmt.Errorf("%w: negative flat amount", ErrInvalidCancellationPolicy)
		}
		amount = policy.FlatAmount
	case FeeTypePercent:
		if policy.Percent.IsNegative() || policy.Percent.GreaterThan(decimal.NewFromInt(100)) {
			return FeeQuote{}, fmt.Errorf("%w: percent out of range", ErrInvalidCancellationPolicy)
		}
		amount = basis.TotalAmount.Mul(policy.Percent).Div(decimal.NewFromInt(100))
	case FeeTypeNights:
		if policy.Nights <= 0 {
			return FeeQuote{}, fmt.Errorf("%w: nights must be positive", ErrInvalidCancellationPolicy)
		}
		nights := policy.Nights
		if stayNights := basis.Stay.Nights(); stayNights > 0 && nights > stayNights {
			nights = stayNights
		}
		amount = basis.RoomRate.Mul(decimal.NewFromInt(int64(nights)))
	default:
		return FeeQuote{}, fmt.Errorf("%w: unknown fee type %q", ErrInvalidCancellationPolicy, policy.FeeType)
	}

	if basis.TotalAmount.IsPositive() && amount.GreaterThan(basis.TotalAmount) {
		amount = basis.TotalAmount
	}
	quote.Amount = amount.Round(2)
	quote.Reason = FeeReasonPolicyFee
	return quote, nil
}
