package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_IsMatchesKind(t *testing.T) {
	err := Conflictf("%s service already exists", "plumbing")

	assert.ErrorIs(t, err, ErrConflict)
	assert.ErrorIs(t, fmt.Errorf("wrapped: %w", err), ErrConflict)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "plumbing service already exists", err.Error())
}

func TestError_IsMatchesMessageWhenSet(t *testing.T) {
	sentinel := NotFound("Booking not found")

	assert.ErrorIs(t, NotFound("Booking not found"), sentinel)
	assert.NotErrorIs(t, NotFound("Review not found"), sentinel)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindUnauthorized, KindOf(Unauthorized("nope")))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(KindNotFound))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(KindBadRequest))
	assert.Equal(t, http.StatusConflict, HTTPStatus(KindConflict))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(KindUnauthorized))
	assert.Equal(t, http.StatusNotImplemented, HTTPStatus(KindNotImplemented))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(KindInternal))
}
