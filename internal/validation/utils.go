package validation

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"

	"github.com/deppfellow/bff-service/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Client-facing bind failures. The parser error behind them is only logged.
const (
	InvalidPathMessage  = "Invalid path parameter"
	InvalidQueryMessage = "Invalid query parameter"
	InvalidBodyMessage  = "Invalid request body"
)

var binder = &echo.DefaultBinder{}

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Typical pattern:
// - Define a request struct with validator tags (`validate:"required,email"`)
// - Implement Validate() error that calls validation.Struct(req)
type Validatable interface {
	Validate() error
}

// Defaulter is implemented by payloads with optional inputs. SetDefaults
// runs before binding, so anything the request leaves out keeps its default.
type Defaulter interface {
	SetDefaults()
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
// 1) payload.SetDefaults() when payload is a Defaulter.
// 2) path params, then query params (GET, DELETE, HEAD), then the body,
// in the order echo's DefaultBinder uses.
// 3) payload.Validate() applies validation rules.
//
// Every failure is a 400 *errs.HTTPError, with field-level errors when
// validation rules were broken. payload must be a pointer to a struct.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if d, ok := payload.(Defaulter); ok {
		d.SetDefaults()
	}

	if err := bind(c, payload); err != nil {
		return err
	}

	if err := payload.Validate(); err != nil {
		return errs.ValidationError(fieldErrors(err))
	}

	return nil
}

func bind(c echo.Context, payload any) error {
	if err := binder.BindPathParams(c, payload); err != nil {
		return bindError(c, err, InvalidPathMessage)
	}

	switch c.Request().Method {
	case http.MethodGet, http.MethodDelete, http.MethodHead:
		if err := binder.BindQueryParams(c, payload); err != nil {
			return bindError(c, err, InvalidQueryMessage)
		}
	}

	if err := binder.BindBody(c, payload); err != nil {
		return bindError(c, err, InvalidBodyMessage)
	}
	return nil
}

func bindError(c echo.Context, err error, message string) *errs.HTTPError {
	zerolog.Ctx(c.Request().Context()).Debug().
		Err(err).
		Str("detail", message).
		Msg("request binding failed")

	return errs.NewBadRequestError(message, nil, nil)
}

// fieldErrors maps a Validate() error onto per-field messages.
func fieldErrors(err error) []errs.FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []errs.FieldError{{Field: "request", Error: "is invalid"}}
	}

	fields := make([]errs.FieldError, 0, len(validationErrors))

	for _, err := range validationErrors {
		field := err.Field()
		var msg string

		switch err.Tag() {
		case "required":
			msg = "is required"

		case "min":
			// min/max count characters for strings and compare values for numbers.
			if err.Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", err.Param())
			}

		case "max":
			if err.Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", err.Param())
			}

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", err.Param())

		case "email":
			msg = "must be a valid email address"

		case "dive":
			msg = "some items are invalid"

		default:
			if err.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, err.Tag(), err.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, err.Tag())
			}
		}

		fields = append(fields, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return fields
}
