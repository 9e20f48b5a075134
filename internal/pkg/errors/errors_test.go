package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		err := NotFound("anchor")
		assert.Equal(t, CodeNotFound, err.Code)
		assert.Equal(t, "anchor not found", err.Message)
		assert.Equal(t, http.StatusNotFound, err.StatusCode)
	})

	t.Run("conflict", func(t *testing.T) {
		err := Conflict("anchor with this Stellar account already exists")
		assert.Equal(t, CodeConflict, err.Code)
		assert.Equal(t, http.StatusConflict, err.StatusCode)
	})

	t.Run("unavailable and integrity surface as 500", func(t *testing.T) {
		assert.Equal(t, http.StatusInternalServerError, Unavailable("storage unreachable").StatusCode)
		assert.Equal(t, http.StatusInternalServerError, Integrity("duplicate stellar account").StatusCode)
	})
}

func TestErrorChecks(t *testing.T) {
	assert.True(t, IsNotFound(NotFound("asset")))
	assert.True(t, IsConflict(Conflict("dup")))
	assert.True(t, IsValidation(Validation("bad")))
	assert.True(t, IsUnavailable(Unavailable("down")))
	assert.True(t, IsIntegrity(Integrity("broken")))

	assert.False(t, IsNotFound(Conflict("dup")))
	assert.False(t, IsConflict(assert.AnError))
}

func TestWrapping(t *testing.T) {
	t.Run("checks survive fmt.Errorf wrapping", func(t *testing.T) {
		err := fmt.Errorf("repository: %w", NotFound("anchor"))
		assert.True(t, IsNotFound(err))
		assert.Equal(t, http.StatusNotFound, GetStatusCode(err))
	})

	t.Run("WithError keeps cause but hides it from JSON", func(t *testing.T) {
		cause := assert.AnError
		err := Unavailable("storage unreachable").WithError(cause)
		require.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "storage unreachable")
	})

	t.Run("unknown errors map to 500", func(t *testing.T) {
		assert.Equal(t, http.StatusInternalServerError, GetStatusCode(assert.AnError))
		assert.Nil(t, GetAppError(assert.AnError))
	})
}

func TestWithDetail(t *testing.T) {
	err := Validation("invalid input").WithDetail("field", "stellarAccount")
	assert.Equal(t, "stellarAccount", err.Details["field"])
}
