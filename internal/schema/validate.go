package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// PasswordMessage is reported when a password lacks a digit, a lowercase or
// an uppercase letter, or contains whitespace.
const PasswordMessage = "The password too simple. It must contain numbers, uppercase and lowercase letters."

// Schema is a request body that converts itself into a domain value.
type Schema[O any] interface {
	Output() O
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("password", validatePassword); err != nil {
		panic(fmt.Sprintf("schema: register password validation: %v", err))
	}
	return v
}

func validatePassword(fl validator.FieldLevel) bool {
	var digit, lower, upper bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsSpace(r):
			return false
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		}
	}
	return digit && lower && upper
}

// Decode reads a JSON body into S, validates it and returns its output.
// The body must hold exactly one JSON value. Any failure is a
// *ValidationError.
func Decode[S Schema[O], O any](r io.Reader) (O, error) {
	var (
		s    S
		zero O
	)
	dec := json.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		return zero, decodeError(err)
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return zero, &ValidationError{Fields: []FieldError{{Field: "body", Message: "Invalid JSON"}}}
	}
	if err := Validate(s); err != nil {
		return zero, err
	}
	return s.Output(), nil
}

// Validate checks s against its validate tags and collects every violation.
func Validate(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ValidationError{Fields: []FieldError{{Field: "body", Message: "Invalid request body"}}}
	}

	verr := &ValidationError{Fields: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		verr.Fields = append(verr.Fields, FieldError{
			Field:   fe.Field(),
			Message: tagMessage(fe),
		})
	}
	return verr
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return &ValidationError{Fields: []FieldError{{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("must be of type %s", jsonKind(typeErr.Type)),
		}}}
	}
	if errors.Is(err, io.EOF) {
		return &ValidationError{Fields: []FieldError{{Field: "body", Message: "Request body is empty"}}}
	}
	return &ValidationError{Fields: []FieldError{{Field: "body", Message: "Invalid JSON"}}}
}

func jsonKind(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Struct, reflect.Map:
		return "object"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Bool:
		return "boolean"
	default:
		return "number"
	}
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Field required"
	case "password":
		return PasswordMessage
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return "validation failed"
	}
}
