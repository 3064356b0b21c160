//go:build unit

package group_test

import (
	"testing"
	"time"

	"stay-command-core/internal/domain/group"
	"stay-command-core/internal/domain/reservation"
	"stay-command-core/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, _ := time.Parse(time.DateOnly, s)
	return t
}

func newBlock(t *testing.T) group.Block {
	t.Helper()
	window, err := reservation.NewStayWindow(date("2025-06-10"), date("2025-06-14"))
	require.NoError(t, err)
	return group.Block{
		ID:         uuid.New(),
		RoomTypeID: uuid.New(),
		Status:     group.StatusDefinite,
		Window:     window,
		RoomCount:  10,
		PickedUp:   9,
		CutoffDate: ptr.To(date("2025-06-01")),
	}
}

func TestBlockAcceptsPickup(t *testing.T) {
	t.Run("open with one room left", func(t *testing.T) {
		b := newBlock(t)
		assert.Equal(t, 1, b.Remaining())
		require.NoError(t, b.AcceptsPickup(date("2025-05-20")))
	})

	t.Run("exhausted", func(t *testing.T) {
		b := newBlock(t)
		b.PickedUp = 10
		require.ErrorIs(t, b.AcceptsPickup(date("2025-05-20")), group.ErrBlockExhausted)
	})

	t.Run("past cutoff", func(t *testing.T) {
		b := newBlock(t)
		require.ErrorIs(t, b.AcceptsPickup(date("2025-06-02")), group.ErrPastCutoff)
	})

	t.Run("cancelled", func(t *testing.T) {
		b := newBlock(t)
		b.Status = group.StatusCancelled
		require.ErrorIs(t, b.AcceptsPickup(date("2025-05-20")), group.ErrBlockNotPickable)
	})
}

func TestBlockCovers(t *testing.T) {
	b := newBlock(t)

	inside, err := reservation.NewStayWindow(date("2025-06-11"), date("2025-06-13"))
	require.NoError(t, err)
	require.NoError(t, b.Covers(b.RoomTypeID, inside))

	require.ErrorIs(t, b.Covers(uuid.New(), inside), group.ErrRoomTypeMismatch)

	outside, err := reservation.NewStayWindow(date("2025-06-13"), date("2025-06-15"))
	require.NoError(t, err)
	require.ErrorIs(t, b.Covers(b.RoomTypeID, outside), group.ErrOutsideBlock)
}
