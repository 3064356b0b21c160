package reservation

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Snapshot is the read-only view of a reservation the command core decides on.
// The projection that owns the row is out of scope; commands never write it
// except for the advisory no-show and room columns.
type Snapshot struct {
	ID                 uuid.UUID
	TenantID           uuid.UUID
	PropertyID         uuid.UUID
	RoomTypeID         uuid.UUID
	RoomID             *uuid.UUID
	GuestID            *uuid.UUID
	GroupBlockID       *uuid.UUID
	Status             Status
	Stay               StayWindow
	RateCode           string
	RoomRate           decimal.Decimal
	TotalAmount        decimal.Decimal
	Currency           string
	Adults             int
	Children           int
	Notes              string
	CancellationPolicy CancellationPolicy
	UpdatedAt          time.Time
}

// StayCriticalChange lists which availability-relevant attributes differ.
type StayCriticalChange struct {
	RoomType bool
	CheckIn  bool
	CheckOut bool
}

func (c StayCriticalChange) Any() bool {
	return c.RoomType || c.CheckIn || c.CheckOut
}

func (c StayCriticalChange) Fields() []string {
	var fields []string
	if c.RoomType {
		fields = append(fields, "roomTypeId")
	}
	if c.CheckIn {
		fields = append(fields, "checkIn")
	}
	if c.CheckOut {
		fields = append(fields, "checkOut")
	}
	return fields
}

// CompareStay reports the stay-critical differences between two versions of a reservation.
func CompareStay(before, after Snapshot) StayCriticalChange {
	return StayCriticalChange{
		RoomType: before.RoomTypeID != after.RoomTypeID,
		CheckIn:  !before.Stay.CheckIn.Equal(after.Stay.CheckIn),
		CheckOut: !before.Stay.CheckOut.Equal(after.Stay.CheckOut),
	}
}

func (s Snapshot) FeeBasis() FeeBasis {
	return FeeBasis{
		Stay:        s.Stay,
		RoomRate:    s.RoomRate,
		TotalAmount: s.TotalAmount,
		Currency:    s.Currency,
	}
}
