package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// New builds a validator that reports json field names and knows the custom
// date tags used on request DTOs.
func New() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Both custom tags tolerate unparseable input; the datetime tag already
	// reports malformed dates.
	_ = v.RegisterValidation("pastdate", func(fl validator.FieldLevel) bool {
		t, err := time.Parse(DateLayout, fl.Field().String())
		if err != nil {
			return true
		}
		return t.Before(time.Now())
	})

	_ = v.RegisterValidation("age", func(fl validator.FieldLevel) bool {
		t, err := time.Parse(DateLayout, fl.Field().String())
		if err != nil {
			return true
		}
		return DefaultAgeRule.Valid(&t)
	})

	return v
}

// Fields flattens validator violations into a field -> message map.
func Fields(err error) map[string]string {
	out := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["request"] = err.Error()
		return out
	}

	for _, fe := range verrs {
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "email":
		return "must be a valid email address"
	case "datetime":
		return fmt.Sprintf("must be a date in format %s", fe.Param())
	case "pastdate":
		return "must be a past date"
	case "age":
		return fmt.Sprintf("age must be between %d and %d years", DefaultAgeRule.Min, DefaultAgeRule.Max)
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
