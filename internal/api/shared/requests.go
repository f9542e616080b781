package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// MaxBodyBytes caps the size of a decoded request body.
const MaxBodyBytes = 1 << 20

var (
	// ErrEmptyBody is returned by DecodeJSON when the request has no body.
	ErrEmptyBody = errors.New("request body is required")

	// ErrMalformedBody is returned by DecodeJSON when the body is not valid
	// JSON for the target type.
	ErrMalformedBody = errors.New("malformed request body")

	// ErrBodyTooLarge is returned by DecodeJSON when the body exceeds MaxBodyBytes.
	ErrBodyTooLarge = errors.New("request body too large")
)

// FieldTypeError reports a JSON field whose value has the wrong type.
type FieldTypeError struct {
	Field    string
	Expected string
}

// Error implements the error interface.
func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("%s must be %s", e.Field, e.Expected)
}

// Unwrap makes a FieldTypeError match ErrMalformedBody.
func (e *FieldTypeError) Unwrap() error {
	return ErrMalformedBody
}

// Validate is the global validator instance, reused across requests.
var Validate = validator.New()

// DecodeJSON decodes the request body into the given struct.
// It returns ErrEmptyBody for an empty body, ErrBodyTooLarge when the body
// exceeds MaxBodyBytes, a *FieldTypeError when a field has the wrong JSON
// type, and an error wrapping ErrMalformedBody otherwise.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}

	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, MaxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}

		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return ErrBodyTooLarge
		}

		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return &FieldTypeError{Field: typeErr.Field, Expected: describeKind(typeErr.Type)}
		}

		return fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}

	// Reject trailing content such as `{"a":1}{"b":2}`
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return ErrBodyTooLarge
		}
		return fmt.Errorf("%w: unexpected data after JSON object", ErrMalformedBody)
	}

	return nil
}

// ValidateRequest validates the given struct using the validator package.
func ValidateRequest(v interface{}) error {
	// Check if the object implements the Validate interface
	if validator, ok := v.(interface{ Validate() error }); ok {
		return validator.Validate()
	}

	// Otherwise, use the struct validator
	return Validate.Struct(v)
}

func describeKind(t reflect.Type) string {
	if t == nil {
		return "a valid value"
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool:
		return "a boolean"
	case reflect.String:
		return "a string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Slice, reflect.Array:
		return "an array"
	case reflect.Map, reflect.Struct:
		return "an object"
	default:
		return "a valid value"
	}
}
