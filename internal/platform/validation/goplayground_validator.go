package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type goPlaygroundValidator struct {
	v *validator.Validate
}

var _ Validator = (*goPlaygroundValidator)(nil)

func NewGoPlaygroundValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report fields by their json names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &goPlaygroundValidator{
		v: v,
	}
}

func (va *goPlaygroundValidator) ValidateStruct(s any) map[string]string {
	err := va.v.Struct(s)
	if err == nil {
		return nil
	}

	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return map[string]string{"payload": err.Error()}
	}

	errMap := make(map[string]string, len(valErrs))
	for _, e := range valErrs {
		errMap[e.Field()] = validationMessage(e)
	}

	return errMap
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", e.Field(), e.Param())
	case "printascii":
		return fmt.Sprintf("%s must contain only printable characters", e.Field())
	case "excludesall":
		return fmt.Sprintf("%s must not contain any of %q", e.Field(), e.Param())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}
