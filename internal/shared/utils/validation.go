package utils

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/unicode/norm"

	"github.com/accesskit/accesskit/internal/shared/errors"
)

var (
	validate *validator.Validate

	// stripPolicy removes all markup from administrator-entered text.
	stripPolicy = bluemonday.StrictPolicy()

	// permNameRegex matches the action:resource naming convention,
	// e.g. read:users or write:permissions.
	permNameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*:[a-z][a-z0-9_]*$`)
)

func init() {
	validate = validator.New()

	// Use JSON tag names for validation errors
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterValidation("permname", func(fl validator.FieldLevel) bool {
		return permNameRegex.MatchString(fl.Field().String())
	})
}

// ValidateStruct validates a struct and returns a user-friendly error
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return errors.NewValidationError("Validation failed")
	}

	var errorMessages []string
	for _, fieldError := range validationErrors {
		errorMessages = append(errorMessages, getFieldErrorMessage(fieldError))
	}

	return errors.NewValidationError(
		"Validation failed",
		strings.Join(errorMessages, "; "),
	)
}

// getFieldErrorMessage returns a user-friendly error message for a field validation error
func getFieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	tag := fe.Tag()
	param := fe.Param()

	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID", field)
	case "permname":
		return fmt.Sprintf("%s must follow the action:resource convention (e.g. read:users)", field)
	default:
		return fmt.Sprintf("%s failed validation for '%s'", field, tag)
	}
}

// NormalizeName canonicalizes administrator-entered names before uniqueness
// checks: strips markup, applies NFC normalization, and trims whitespace.
func NormalizeName(s string) string {
	return strings.TrimSpace(norm.NFC.String(stripPolicy.Sanitize(s)))
}

// SanitizeText strips markup from free-form text such as descriptions.
func SanitizeText(s string) string {
	return strings.TrimSpace(stripPolicy.Sanitize(s))
}

// ValidateID validates that an ID string is not empty.
func ValidateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errors.NewValidationError("ID cannot be empty")
	}
	return nil
}
