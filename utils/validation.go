package utils

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FormErrors flattens a binding error into a field -> message map for
// form redisplay. Non-validator errors (malformed bodies and the like)
// land under the empty field key.
func FormErrors(err error) map[string]string {
	fieldErrors := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		fieldErrors[""] = err.Error()
		return fieldErrors
	}

	for _, fe := range validationErrors {
		fieldErrors[fe.Field()] = messageFor(fe)
	}
	return fieldErrors
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "enter a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "prefecture":
		return "choose a prefecture from the list"
	default:
		return fmt.Sprintf("invalid value (%s)", fe.Tag())
	}
}
