// internal/app/system/inputval/messages.go
package inputval

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

func message(fe validator.FieldError, label string) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", label)
	case "email":
		return "A valid email address is required."
	case "min":
		return bound(fe, label, "at least")
	case "max":
		return bound(fe, label, "at most")
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s.", label, strings.Join(strings.Fields(fe.Param()), ", "))
	}
	return fmt.Sprintf("%s is invalid.", label)
}

func bound(fe validator.FieldError, label, rel string) string {
	switch fe.Kind() {
	case reflect.String:
		return fmt.Sprintf("%s must be %s %s characters.", label, rel, fe.Param())
	case reflect.Slice, reflect.Array, reflect.Map:
		return fmt.Sprintf("%s must have %s %s items.", label, rel, fe.Param())
	}
	return fmt.Sprintf("%s must be %s %s.", label, rel, fe.Param())
}
