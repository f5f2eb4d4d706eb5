package apperror

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// formatFieldName turns a json field name into a readable label (recipient_phone -> Recipient Phone).
func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

func fieldMessage(e validator.FieldError) string {
	label := formatFieldName(e.Field())
	switch e.Tag() {
	case "required":
		return label + " is required"
	case "max":
		return label + " must not exceed " + e.Param() + " characters"
	case "min":
		return label + " must be at least " + e.Param()
	case "oneof":
		return label + " must be one of: " + e.Param()
	case "email":
		return label + " must be a valid email address"
	case "uuid":
		return label + " must be a valid id"
	default:
		return label + " is invalid"
	}
}

// MapValidationError converts binding errors into a 422 carrying one message per field.
// Field names come from json tags, see Init.
func MapValidationError(err error) *AppError {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		fields := make(map[string]string, len(errs))
		for _, e := range errs {
			if _, seen := fields[e.Field()]; !seen {
				fields[e.Field()] = fieldMessage(e)
			}
		}

		first := errs[0]
		var base *AppError
		if first.Tag() == "required" {
			base = RequiredField(formatFieldName(first.Field()))
		} else {
			base = InvalidField(formatFieldName(first.Field()))
		}
		return base.WithDetails(fields)
	}

	return New(
		CodeValidation,
		"Invalid input",
		http.StatusUnprocessableEntity,
	).WithDetails(err.Error())
}
