package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"histbench-api/internal/domain"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// GetValidator returns the shared validator. Field names in errors come from
// the `param` struct tag so they match the query parameter names.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("param"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// ValidateStruct validates s and converts failures into domain.ValidationErrors.
// It returns nil when s is valid.
func ValidateStruct(s interface{}) domain.ValidationErrors {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.ValidationErrors{{
			Code:    domain.CodeValidation,
			Message: err.Error(),
		}}
	}

	out := make(domain.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, translate(fe))
	}
	return out
}

func translate(fe validator.FieldError) domain.ValidationError {
	field := fe.Field()
	switch fe.Tag() {
	case "gte", "min":
		return domain.ValidationError{
			Field:   field,
			Code:    domain.CodeOutOfRange,
			Message: fmt.Sprintf("%s must be at least %s", field, fe.Param()),
			Value:   fe.Value(),
		}
	case "lte", "max":
		code := domain.CodeOutOfRange
		msg := fmt.Sprintf("%s must be at most %s", field, fe.Param())
		if fe.Kind() == reflect.String {
			code = domain.CodeInvalidFormat
			msg = fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return domain.ValidationError{Field: field, Code: code, Message: msg, Value: fe.Value()}
	case "oneof":
		return domain.ValidationError{
			Field:   field,
			Code:    domain.CodeInvalidFormat,
			Message: fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", ")),
			Value:   fe.Value(),
		}
	default:
		return domain.ValidationError{
			Field:   field,
			Code:    domain.CodeValidation,
			Message: fmt.Sprintf("%s failed on the '%s' rule", field, fe.Tag()),
			Value:   fe.Value(),
		}
	}
}

// ParseInt parses an optional integer query parameter. An empty raw value
// yields def.
func ParseInt(field, raw string, def int) (int, *domain.ValidationError) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		ve := domain.NewInvalidFormatError(field, raw)
		ve.Message = fmt.Sprintf("%s must be an integer", field)
		return 0, &ve
	}
	return n, nil
}

// ParseBool parses an optional boolean query parameter. It returns nil when
// the parameter is absent.
func ParseBool(field, raw string) (*bool, *domain.ValidationError) {
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		ve := domain.NewInvalidFormatError(field, raw)
		ve.Message = fmt.Sprintf("%s must be a boolean", field)
		return nil, &ve
	}
	return &b, nil
}
