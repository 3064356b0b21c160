package converter

import (
	"fmt"

	"stay-command-core/internal/domain/group"
	"stay-command-core/internal/domain/reservation"
	"stay-command-core/internal/infra/pgq"
	"stay-command-core/internal/pkg/pgconv"
)

func GroupBlockToParams(b group.Block) pgq.InsertGroupBlockParams {
	return pgq.InsertGroupBlockParams{
		TenantID:   b.TenantID,
		ID:         b.ID,
		PropertyID: b.PropertyID,
		RoomTypeID: b.RoomTypeID,
		Code:       b.Code,
		Name:       pgconv.NullableText(b.Name),
		Status:     string(b.Status),
		StartDate:  pgconv.DateToPgtype(b.Window.CheckIn),
		EndDate:    pgconv.DateToPgtype(b.Window.CheckOut),
		RoomCount:  int32(b.RoomCount), // #nosec G115 -- validated positive and small
		PickedUp:   int32(b.PickedUp),  // #nosec G115
		CutoffDate: pgconv.DatePtrToPgtype(b.CutoffDate),
		RateCode:   b.RateCode,
		BlockRate:  pgconv.DecimalToPgtype(b.BlockRate),
		Currency:   b.Currency,
	}
}

func GroupBlockFromRow(row pgq.GroupBlockRow) (*group.Block, error) {
	rateAmount, err := pgconv.DecimalFromPgtype(row.BlockRate)
	if err != nil {
		return nil, fmt.Errorf("block_rate: %w", err)
	}
	b := &group.Block{
		ID:         row.ID,
		TenantID:   row.TenantID,
		PropertyID: row.PropertyID,
		RoomTypeID: row.RoomTypeID,
		Code:       row.Code,
		Status:     group.Status(row.Status),
		Window: reservation.StayWindow{
			CheckIn:  pgconv.DateFromPgtype(row.StartDate),
			CheckOut: pgconv.DateFromPgtype(row.EndDate),
		},
		RoomCount:  int(row.RoomCount),
		PickedUp:   int(row.PickedUp),
		CutoffDate: pgconv.DatePtrFromPgtype(row.CutoffDate),
		RateCode:   row.RateCode,
		BlockRate:  rateAmount,
		Currency:   row.Currency,
	}
	if row.Name.Valid {
		b.Name = row.Name.String
	}
	return b, nil
}
