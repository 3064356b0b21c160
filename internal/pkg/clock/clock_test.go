//go:build unit

package clock_test

import (
	"testing"
	"time"

	"stay-command-core/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestDate(t *testing.T) {
	loc := time.FixedZone("JST", 9*60*60)
	in := time.Date(2025, 3, 1, 23, 30, 0, 0, loc)

	got := clock.Date(in)

	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestMockClock(t *testing.T) {
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	c := clock.NewMockClock(start)

	assert.Equal(t, start, c.Now())

	c.Add(90 * time.Minute)
	assert.Equal(t, start.Add(90*time.Minute), c.Now())

	next := start.AddDate(0, 0, 2)
	c.Set(next)
	assert.Equal(t, next, c.Now())
}
