//go:build unit

package request_test

import (
	"encoding/json"
	"testing"
	"time"

	"stay-command-core/internal/domain/reservation"
	"stay-command-core/internal/handler/dto/request"
	"stay-command-core/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "date only", input: `"2025-03-10"`, want: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)},
		{name: "rfc3339", input: `"2025-03-10T15:04:05Z"`, want: time.Date(2025, 3, 10, 15, 4, 5, 0, time.UTC)},
		{name: "empty string", input: `""`},
		{name: "not a date", input: `"next tuesday"`, wantErr: true},
		{name: "not a string", input: `20250310`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var d request.Date
			err := json.Unmarshal([]byte(tc.input), &d)

			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(d.Time), "got %s", d.Time)
		})
	}
}

func TestToCommand_CreateReservation(t *testing.T) {
	roomID := uuid.New()
	req := request.CreateReservationRequest{
		PropertyID: uuid.New(),
		RoomTypeID: uuid.New(),
		RoomID:     &roomID,
		CheckIn:    request.Date{Time: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)},
		CheckOut:   request.Date{Time: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)},
		RateCode:   "BAR",
		Status:     "CONFIRMED",
		Adults:     2,
		CancellationPolicy: &reservation.CancellationPolicy{
			Code:    "STD",
			FeeType: reservation.FeeTypeNights,
			Nights:  1,
		},
	}

	cmd, err := request.ToCommand[commands.CreateReservation](&req)

	require.NoError(t, err)
	assert.Equal(t, req.PropertyID, cmd.PropertyID)
	assert.Equal(t, &roomID, cmd.RoomID)
	assert.Equal(t, req.CheckIn.Time, cmd.CheckIn)
	assert.Equal(t, req.CheckOut.Time, cmd.CheckOut)
	assert.Equal(t, reservation.StatusConfirmed, cmd.Status)
	assert.Equal(t, 2, cmd.Adults)
	require.NotNil(t, cmd.CancellationPolicy)
	assert.Equal(t, 1, cmd.CancellationPolicy.Nights)
}

func TestToCommand_ModifyReservationKeepsNils(t *testing.T) {
	checkOut := request.Date{Time: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)}
	notes := "quiet room"
	req := request.ModifyReservationRequest{
		ReservationID: uuid.New(),
		CheckOut:      &checkOut,
		Notes:         &notes,
	}

	cmd, err := request.ToCommand[commands.ModifyReservation](&req)

	require.NoError(t, err)
	assert.Nil(t, cmd.CheckIn)
	assert.Nil(t, cmd.RoomTypeID)
	assert.Nil(t, cmd.Adults)
	require.NotNil(t, cmd.CheckOut)
	assert.Equal(t, checkOut.Time, *cmd.CheckOut)
	require.NotNil(t, cmd.Notes)
	assert.Equal(t, "quiet room", *cmd.Notes)
}

func TestToCommand_WalkGuest(t *testing.T) {
	returnDate := request.Date{Time: time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)}
	req := request.WalkGuestRequest{
		ReservationID:      uuid.New(),
		AlternateHotel:     "Harbor Inn",
		CompensationAmount: decimal.RequireFromString("75.50"),
		CompensationType:   "VOUCHER",
		ReturnGuaranteed:   true,
		ReturnDate:         &returnDate,
	}

	cmd, err := request.ToCommand[commands.WalkGuest](&req)

	require.NoError(t, err)
	assert.Equal(t, reservation.CompensationVoucher, cmd.CompensationType)
	assert.True(t, cmd.CompensationAmount.Equal(decimal.RequireFromString("75.5")))
	assert.True(t, cmd.ReturnGuaranteed)
	require.NotNil(t, cmd.ReturnDate)
	assert.Equal(t, returnDate.Time, *cmd.ReturnDate)
}
