//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"stay-command-core/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errMarker = errs.New("marker")

func TestMark(t *testing.T) {
	t.Run("marked error matches both cause and mark", func(t *testing.T) {
		cause := errors.New("connection reset")
		marked := errs.Mark(cause, errMarker)

		assert.True(t, errs.Is(marked, errMarker))
		assert.True(t, errs.Is(marked, cause))
	})

	t.Run("nil error returns the mark itself", func(t *testing.T) {
		assert.Equal(t, errMarker, errs.Mark(nil, errMarker))
	})
}

func TestWrap(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "ignored"))

	cause := errors.New("boom")
	wrapped := errs.Wrapf(cause, "step %d", 3)
	require.Error(t, wrapped)
	assert.Contains(t, wrapped.Error(), "step 3")
	assert.True(t, errors.Is(wrapped, cause))
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 5))

	lines := errs.ExtractStackLines(errs.New("with stack"), 3)
	assert.LessOrEqual(t, len(lines), 3)
	assert.Equal(t, "with stack", lines[0])
}
