package http

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

var (
	reDigits = regexp.MustCompile(`^[0-9]+$`)
	reUPI    = regexp.MustCompile(`^[a-zA-Z0-9.\-_]{2,}@[a-zA-Z]{2,}$`)
)

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// ASCII digits only (aadhar, pincode, phone)
	_ = v.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
		return reDigits.MatchString(fl.Field().String())
	})
	// virtual payment address, e.g. name@okaxis
	_ = v.RegisterValidation("upi", func(fl validator.FieldLevel) bool {
		return reUPI.MatchString(fl.Field().String())
	})
	// phone: at least 10 digits once separators are stripped
	_ = v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		n := 0
		for _, r := range fl.Field().String() {
			if r >= '0' && r <= '9' {
				n++
			}
		}
		return n >= 10
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "digits":
			out = append(out, FieldError{Field: field, Message: "must contain only digits"})
		case "upi":
			out = append(out, FieldError{Field: field, Message: "must be a valid UPI id"})
		case "phone10":
			out = append(out, FieldError{Field: field, Message: "must be at least 10 digits"})
		case "email":
			out = append(out, FieldError{Field: field, Message: "must be a valid email"})
		case "min":
			out = append(out, FieldError{Field: field, Message: "must be at least " + e.Param() + " characters"})
		case "max":
			out = append(out, FieldError{Field: field, Message: "must be at most " + e.Param() + " characters"})
		case "len":
			out = append(out, FieldError{Field: field, Message: "must be exactly " + e.Param() + " characters"})
		case "gte":
			out = append(out, FieldError{Field: field, Message: "must be greater than or equal to " + e.Param()})
		case "oneof":
			out = append(out, FieldError{Field: field, Message: "must be one of: " + strings.ReplaceAll(e.Param(), " ", ", ")})
		case "datetime":
			out = append(out, FieldError{Field: field, Message: "must match format " + e.Param()})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
