package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithDetails_DoesNotMutateSentinel(t *testing.T) {
	detailed := ErrWayNotFound.WithDetails(map[string]interface{}{"way_id": int64(42)})

	assert.Equal(t, int64(42), detailed.Details["way_id"])
	assert.Empty(t, ErrWayNotFound.Details)
	assert.Equal(t, ErrWayNotFound.Code, detailed.Code)
}

func TestAppError_IsMatchesByCode(t *testing.T) {
	detailed := ErrNoPathFound.WithDetails(map[string]interface{}{"start": 1})
	wrapped := fmt.Errorf("search: %w", detailed)

	assert.True(t, stderrors.Is(wrapped, ErrNoPathFound))
	assert.False(t, stderrors.Is(wrapped, ErrWayNotFound))
}

func TestAppError_WrapKeepsCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	wrapped := ErrDatabaseError.Wrap(cause)

	assert.True(t, stderrors.Is(wrapped, ErrDatabaseError))
	assert.True(t, stderrors.Is(wrapped, cause))
	assert.Contains(t, wrapped.Error(), "connection refused")
	assert.Nil(t, ErrDatabaseError.Unwrap())
	assert.Equal(t, ErrDatabaseError.StatusCode, wrapped.StatusCode)
}
