package converter

import (
	"encoding/json"
	"fmt"

	"stay-command-core/internal/domain/reservation"
	"stay-command-core/internal/infra/pgq"
	"stay-command-core/internal/pkg/pgconv"
)

func ReservationFromRow(row pgq.ReservationRow) (*reservation.Snapshot, error) {
	status, err := reservation.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	roomRate, err := pgconv.DecimalFromPgtype(row.RoomRate)
	if err != nil {
		return nil, fmt.Errorf("room_rate: %w", err)
	}
	total, err := pgconv.DecimalFromPgtype(row.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("total_amount: %w", err)
	}

	var policy reservation.CancellationPolicy
	if len(row.CancellationPolicy) > 0 && string(row.CancellationPolicy) != "null" {
		if err := json.Unmarshal(row.CancellationPolicy, &policy); err != nil {
			return nil, fmt.Errorf("cancellation_policy: %w", err)
		}
	}

	snap := &reservation.Snapshot{
		ID:         row.ID,
		TenantID:   row.TenantID,
		PropertyID: row.PropertyID,
		RoomTypeID: row.RoomTypeID,
		RoomID:     pgconv.UUIDPtrFromPgtype(row.RoomID),
		GuestID:    pgconv.UUIDPtrFromPgtype(row.GuestID),
		// Stay dates are trusted as stored; the table enforces check_out > check_in.
		Stay: reservation.StayWindow{
			CheckIn:  pgconv.DateFromPgtype(row.CheckInDate),
			CheckOut: pgconv.DateFromPgtype(row.CheckOutDate),
		},
		GroupBlockID:       pgconv.UUIDPtrFromPgtype(row.GroupBlockID),
		Status:             status,
		RateCode:           row.RateCode,
		RoomRate:           roomRate,
		TotalAmount:        total,
		Currency:           row.Currency,
		Adults:             int(row.Adults),
		Children:           int(row.Children),
		CancellationPolicy: policy,
	}
	if row.Notes.Valid {
		snap.Notes = row.Notes.String
	}
	if row.UpdatedAt.Valid {
		snap.UpdatedAt = row.UpdatedAt.Time
	}
	return snap, nil
}
