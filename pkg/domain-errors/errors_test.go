package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasCode(t *testing.T) {
	t.Run("matches direct code", func(t *testing.T) {
		err := New(CodeNotFound, "evidence not found")
		assert.True(t, HasCode(err, CodeNotFound))
		assert.False(t, HasCode(err, CodeInternal))
	})

	t.Run("matches through fmt wrapping", func(t *testing.T) {
		err := fmt.Errorf("outer: %w", New(CodeInvalidInput, "bad type"))
		assert.True(t, Is(err, CodeInvalidInput))
	})

	t.Run("matches codes hidden behind an outer wrap", func(t *testing.T) {
		err := Wrap(New(CodeNotFound, "evidence not found"), CodeInternal, "failed to link claim")
		assert.True(t, HasCode(err, CodeInternal))
		assert.True(t, HasCode(err, CodeNotFound))
		assert.False(t, HasCode(err, CodeConflict))
		assert.Equal(t, CodeInternal, CodeOf(err), "outermost code still drives the response")
	})

	t.Run("uncoded errors have no code", func(t *testing.T) {
		err := errors.New("plain")
		assert.False(t, HasCode(err, CodeInternal))
		assert.Equal(t, CodeInternal, CodeOf(err))
		assert.Empty(t, MessageOf(err))
	})
}

func TestWrap(t *testing.T) {
	cause := errors.New("redis: connection refused")

	err := Wrap(cause, CodeInternal, "failed to load evidence")
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to load evidence: redis: connection refused", err.Error())
	assert.Equal(t, "failed to load evidence", MessageOf(err))

	assert.NoError(t, Wrap(nil, CodeInternal, "ignored"))
}

func TestHTTPStatus(t *testing.T) {
	cases := map[Code]int{
		CodeBadRequest:         http.StatusBadRequest,
		CodeValidation:         http.StatusBadRequest,
		CodeInvalidInput:       http.StatusBadRequest,
		CodeNotFound:           http.StatusNotFound,
		CodeConflict:           http.StatusConflict,
		CodeInvariantViolation: http.StatusUnprocessableEntity,
		CodeUnavailable:        http.StatusServiceUnavailable,
		CodeInternal:           http.StatusInternalServerError,
		Code("unknown"):        http.StatusInternalServerError,
	}
	for code, status := range cases {
		assert.Equal(t, status, HTTPStatus(code), "code %s", code)
	}
}
