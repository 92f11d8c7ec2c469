package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, Status(ErrUnauthenticated))
	assert.Equal(t, http.StatusForbidden, Status(ErrForbidden))
	assert.Equal(t, http.StatusBadRequest, Status(ErrInvalidID))
	assert.Equal(t, http.StatusNotFound, Status(ErrNotFound))
	assert.Equal(t, http.StatusInternalServerError, Status(ErrUpstream))
	assert.Equal(t, http.StatusInternalServerError, Status(errors.New("driver exploded")))
}

func TestStatusUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("updating cart: %w", ErrInvalidID)
	assert.Equal(t, http.StatusBadRequest, Status(wrapped))
	assert.True(t, errors.Is(wrapped, ErrInvalidID))
}
