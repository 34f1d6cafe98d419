package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	custom := "USER_ALREADY_EXISTS"

	tests := []struct {
		name   string
		err    *HTTPError
		status int
		code   string
		msg    string
	}{
		{"bad request", NewBadRequestError("bad", nil, nil), http.StatusBadRequest, "BAD_REQUEST", "bad"},
		{"not found", NewNotFoundError("User not found", nil), http.StatusNotFound, "NOT_FOUND", "User not found"},
		{"conflict", NewConflictError("Email already registered", nil), http.StatusConflict, "CONFLICT", "Email already registered"},
		{"conflict custom code", NewConflictError("dup", &custom), http.StatusConflict, custom, "dup"},
		{"internal", NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal server error"},
		{"validation", ValidationError([]FieldError{{Field: "email", Error: "is required"}}), http.StatusBadRequest, "BAD_REQUEST", "Validation failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.msg, tt.err.Error())
		})
	}
}

func TestHTTPError_JSONShape(t *testing.T) {
	body, err := json.Marshal(NewNotFoundError("User not found", nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"detail":"User not found"}`, string(body))

	body, err = json.Marshal(NewBadRequestError("Validation failed", nil, []FieldError{{Field: "email", Error: "is required"}}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"detail":"Validation failed","errors":[{"field":"email","error":"is required"}]}`, string(body))
}

func TestHTTPError_ErrorsAsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", NewConflictError("Email already registered", nil))

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, http.StatusConflict, httpErr.Status)

	assert.True(t, errors.Is(wrapped, &HTTPError{Status: http.StatusConflict}))
	assert.True(t, errors.Is(wrapped, &HTTPError{}))
	assert.False(t, errors.Is(wrapped, &HTTPError{Status: http.StatusNotFound}))
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "INTERNAL_SERVER_ERROR", MakeUpperCaseWithUnderscores(http.StatusText(500)))
}
