package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// full_name -> Full Name
func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")

	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError turns the first validator failure into a 400 AppError.
// Field names come from json tags once Init has registered the tag func.
func MapValidationError(err error) error {
	// collections are validated per element
	var sliceErrs binding.SliceValidationError
	if errors.As(err, &sliceErrs) {
		for _, e := range sliceErrs {
			if e != nil {
				return MapValidationError(e)
			}
		}
	}

	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		e := errs[0]
		humanReadableField := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return RequiredField(humanReadableField)
		case "gt", "min":
			return New(
				CodeInvalidInput,
				fmt.Sprintf("%s must be greater than %s", humanReadableField, e.Param()),
				http.StatusBadRequest,
			)
		case "max":
			return New(
				CodeInvalidInput,
				fmt.Sprintf("%s must be at most %s characters", humanReadableField, e.Param()),
				http.StatusBadRequest,
			)
		default:
			return InvalidField(humanReadableField)
		}
	}

	return Wrap(err, CodeInvalidInput, "Invalid input", http.StatusBadRequest)
}
