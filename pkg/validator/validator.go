// Package validator flattens gin binding failures into field-keyed messages
// the mobile client can render beside its form inputs.
package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ParseError converts a binding error into a field -> message map. Errors
// that are not field validation failures collapse into a single "error" key.
func ParseError(err error) map[string]string {
	out := make(map[string]string)
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		if err != nil {
			out["error"] = err.Error()
		}
		return out
	}
	for _, fe := range ve {
		out[fe.Field()] = messageFor(fe)
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("Failed '%s' validation", fe.Tag())
	}
}
