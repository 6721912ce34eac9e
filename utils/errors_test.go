package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomErrorMatchesByKind(t *testing.T) {
	err := NotFoundf("customer %d not found", 7)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrConflict)
	assert.Equal(t, "customer 7 not found", err.Error())

	wrapped := fmt.Errorf("handler: %w", Conflictf("duplicate"))
	assert.ErrorIs(t, wrapped, ErrConflict)
}

func TestCustomErrorWrapKeepsCause(t *testing.T) {
	cause := errors.New("UNIQUE constraint failed: customers.email")
	err := Conflictf("customer with email %q already exists", "ada@x.com").Wrap(cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, `customer with email "ada@x.com" already exists`, err.Error())
}

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusFromError(Validationf("bad")))
	assert.Equal(t, http.StatusNotFound, StatusFromError(ErrNotFound))
	assert.Equal(t, http.StatusConflict, StatusFromError(fmt.Errorf("x: %w", ErrConflict)))
	assert.Equal(t, http.StatusInternalServerError, StatusFromError(errors.New("connection reset")))
}
