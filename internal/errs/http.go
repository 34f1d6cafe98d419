package errs

import (
	"net/http"
)

// InternalServerErrorMessage is the only detail a client ever sees for a 500.
const InternalServerErrorMessage = "Internal server error"

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// code is an optional machine-readable code (defaults to "BAD_REQUEST"),
// errors is an optional list of field errors.
func NewBadRequestError(message string, code *string, errors []FieldError) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusBadRequest,
		Errors:  errors,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewConflictError creates a 409 Conflict HTTPError, used when a uniqueness
// rule is violated.
func NewConflictError(message string, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusConflict))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusConflict,
	}
}

// NewInternalServerError creates a 500 HTTPError with a fixed message.
// The real cause is logged, never sent to the client.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message: InternalServerErrorMessage,
		Status:  http.StatusInternalServerError,
	}
}

// ValidationFailedMessage is the detail of every 400 carrying field errors.
const ValidationFailedMessage = "Validation failed"

// ValidationError creates the 400 returned when a payload breaks its
// validation rules, listing the offending fields.
func ValidationError(fields []FieldError) *HTTPError {
	return NewBadRequestError(ValidationFailedMessage, nil, fields)
}
