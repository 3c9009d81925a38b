// internal/app/system/inputval/decode.go
package inputval

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// DecodeError turns a JSON decoding failure into a Result so malformed
// bodies are reported the same way as rule violations.
func DecodeError(err error) Result {
	var res Result
	if err == nil {
		return res
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	var timeErr *time.ParseError

	switch {
	case errors.Is(err, io.EOF):
		res.add("", "Request body is empty.")
	case errors.Is(err, io.ErrUnexpectedEOF), errors.As(err, &syntaxErr):
		res.add("", "Request body is not valid JSON.")
	case errors.As(err, &typeErr):
		if typeErr.Field == "" {
			res.add("", "Request body must be a JSON object.")
		} else {
			res.add(typeErr.Field, fmt.Sprintf("%s must be %s.", typeErr.Field, describe(typeErr.Type.Kind().String())))
		}
	case errors.As(err, &timeErr):
		res.add("", "Dates must be RFC 3339 timestamps, e.g. 2024-08-17T15:00:00Z.")
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		field := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
		res.add(field, field+" is not a recognised field.")
	default:
		res.add("", "Request body could not be decoded.")
	}
	return res
}

func describe(kind string) string {
	switch {
	case strings.HasPrefix(kind, "int"), strings.HasPrefix(kind, "uint"):
		return "a whole number"
	case strings.HasPrefix(kind, "float"):
		return "a number"
	case kind == "string":
		return "a string"
	case kind == "bool":
		return "true or false"
	case kind == "slice", kind == "array":
		return "a list"
	case kind == "struct":
		return "an object"
	}
	return "a " + kind
}
