package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required": "{field} is required",
	"min":      "{field} must be greater than or equal to {param}",
	"max":      "{field} must be less than or equal to {param}",
	"gte":      "{field} must be greater than or equal to {param}",
	"lte":      "{field} must be less than or equal to {param}",
	"oneof":    "{field} must be one of {param}",
	"email":    "{field} must be a valid email address",
	"uuid":     "{field} must be a valid UUID",
	"datetime": "{field} must be a date in {param} format",
}

// message turns the first validation error into a human-readable sentence;
// tags without a template fall back to the library's own wording.
func message(err error) string {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, valErr := range valErrors {
		template := messages[valErr.Tag()]
		if template == "" {
			continue
		}

		msg := strings.ReplaceAll(template, "{field}", valErr.Field())
		msg = strings.ReplaceAll(msg, "{param}", valErr.Param())

		return msg
	}

	return valErrors.Error()
}
