package reservation

import (
	"errors"
	"time"

	"stay-command-core/internal/pkg/clock"
)

var ErrInvalidStayDates = errors.New("check-out must be after check-in")

// StayWindow is a half-open range of nights: CheckIn inclusive, CheckOut exclusive.
type StayWindow struct {
	CheckIn  time.Time
	CheckOut time.Time
}

func NewStayWindow(checkIn, checkOut time.Time) (StayWindow, error) {
	in := clock.Date(checkIn)
	out := clock.Date(checkOut)
	if checkIn.IsZero() || checkOut.IsZero() || !out.After(in) {
		return StayWindow{}, ErrInvalidStayDates
	}
	return StayWindow{CheckIn: in, CheckOut: out}, nil
}

func (w StayWindow) Nights() int {
	return int(w.CheckOut.Sub(w.CheckIn).Hours() / 24)
}

func (w StayWindow) Equal(other StayWindow) bool {
	return w.CheckIn.Equal(other.CheckIn) && w.CheckOut.Equal(other.CheckOut)
}

// Contains reports whether inner lies entirely within w.
func (w StayWindow) Contains(inner StayWindow) bool {
	return !inner.CheckIn.Before(w.CheckIn) && !inner.CheckOut.After(w.CheckOut)
}

// LastNight is the date of the final night stayed.
func (w StayWindow) LastNight() time.Time {
	return w.CheckOut.AddDate(0, 0, -1)
}
