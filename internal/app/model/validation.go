package model

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	apperrors "github.com/oclettings/oc-lettings-site/internal/errors"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Report json names so field errors line up with the wire format.
		validate.RegisterTagNameFunc(jsonFieldName)
	})
	return validate
}

// validateRecord runs struct validation and converts failures into a
// *ValidationError keyed by json field name.
func validateRecord(kind string, record interface{}) error {
	err := getValidator().Struct(record)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := &apperrors.ValidationError{Kind: kind, Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields[fe.Field()] = codeForTag(fe.Tag(), fe.Kind())
	}
	return out
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

func codeForTag(tag string, kind reflect.Kind) string {
	numeric := kind >= reflect.Int && kind <= reflect.Float64
	if numeric && (tag == "min" || tag == "max" || tag == "gte" || tag == "lte") {
		return apperrors.ValidationInvalidRange
	}
	switch tag {
	case "required":
		return apperrors.ValidationRequired
	case "min", "gte":
		return apperrors.ValidationTooShort
	case "max", "lte":
		return apperrors.ValidationTooLong
	case "numeric", "number":
		return apperrors.ValidationInvalidFormat
	default:
		return apperrors.ValidationInvalidInput
	}
}
