package shared

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// lowercase letters, digits and hyphens only
var docSlugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

func init() {
	// doc page slugs are stricter than gosimple/slug output (no underscores)
	if err := V.RegisterValidation("docslug", func(fl validator.FieldLevel) bool {
		return docSlugPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	// report violations under the json field name clients actually sent
	V.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// FieldViolation is one entry of the 400 response detail list.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateStruct runs the shared validator against s and converts the result
// into a single 400 error listing every violated field - not just the first.
func ValidateStruct(s any) error {
	err := V.Struct(s)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	details := make([]FieldViolation, 0, len(violations))
	for _, violation := range violations {
		details = append(details, FieldViolation{
			Field:   violation.Field(),
			Message: violationMessage(violation),
		})
	}

	return echo.NewHTTPError(400, echo.Map{
		"error":   "validation error",
		"details": details,
	})
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "url":
		return "must be a valid url"
	case "email":
		return "must be a valid email address"
	case "docslug":
		return "must contain only lowercase letters, numbers, and hyphens"
	default:
		return fmt.Sprintf("failed on the %s constraint", fe.Tag())
	}
}
