package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, ErrorKindOf(ErrNotFound("movie not found")))
	assert.Equal(t, KindForbidden, ErrorKindOf(fmt.Errorf("wrapped: %w", ErrForbidden("nope"))))
	assert.Equal(t, KindInternal, ErrorKindOf(errors.New("boom")))
}

func TestAsAppErrorHidesCause(t *testing.T) {
	cause := errors.New("pq: connection refused")
	appErr := AsAppError(ErrInternal("Error adding review", cause))

	assert.Equal(t, "Error adding review", appErr.Message)
	assert.ErrorIs(t, appErr, cause)

	plain := AsAppError(cause)
	assert.Equal(t, KindInternal, plain.Kind)
	assert.Equal(t, "Internal server error", plain.Message)
}
