package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	require.Equal(t, KindValidation, KindOf(Validation("bad input")))
	require.Equal(t, KindNotFound, KindOf(NotFound("missing")))
	require.Equal(t, KindIntegrity, KindOf(Integrity("mismatch")))
	require.Equal(t, KindStorage, KindOf(Storage("list products", errors.New("disk io"))))

	// Anything outside the taxonomy is treated as a storage failure.
	require.Equal(t, KindStorage, KindOf(errors.New("mystery")))

	// Wrapped errors still resolve.
	wrapped := fmt.Errorf("while handling request: %w", NotFound("gone"))
	require.Equal(t, KindNotFound, KindOf(wrapped))
}

func TestStatusCode(t *testing.T) {
	require.Equal(t, http.StatusBadRequest, StatusCode(Validation("x")))
	require.Equal(t, http.StatusNotFound, StatusCode(NotFound("x")))
	require.Equal(t, http.StatusConflict, StatusCode(Integrity("x")))
	require.Equal(t, http.StatusInternalServerError, StatusCode(Storage("op", errors.New("x"))))
	require.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("x")))
}

func TestStorageCarriesOpAndCause(t *testing.T) {
	cause := errors.New("database is locked")
	err := Storage("record sale", cause)

	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "record sale")
	require.Contains(t, err.Error(), "database is locked")
}

func TestValidationFormats(t *testing.T) {
	err := Validation("line %d: quantity must be positive", 2)
	require.Equal(t, "VALIDATION_ERROR: line 2: quantity must be positive", err.Error())
}
