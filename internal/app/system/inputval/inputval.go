// internal/app/system/inputval/inputval.go
package inputval

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single validation failure. Field is the JSON name of the
// offending field, or empty when the failure concerns the whole body.
type FieldError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Result collects the failures from one validation pass.
type Result struct {
	Errors []FieldError
}

// HasErrors reports whether any rule failed.
func (r Result) HasErrors() bool { return len(r.Errors) > 0 }

// First returns the first error message, or "" if there are none.
func (r Result) First() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0].Message
}

// All joins every message with "; ".
func (r Result) All() string {
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "; ")
}

func (r Result) has(field string) bool {
	for _, e := range r.Errors {
		if e.Field == field {
			return true
		}
	}
	return false
}

func (r *Result) add(field, msg string) {
	r.Errors = append(r.Errors, FieldError{Field: field, Message: msg})
}

var (
	once sync.Once
	v    *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		v = validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonName)
	})
	return v
}

// jsonName reports a struct field by its JSON key so error messages match
// the payload the client sent.
func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

// Validate checks every rule on s. s must be a struct or pointer to struct.
func Validate(s any) Result {
	return collect(s, instance().Struct(s))
}

// ValidatePartial checks only the fields named by keys (JSON names), as used
// for partial updates. Keys that do not name a field of s are reported.
//
// A field tagged `update:"required"` may be left out of an update but not
// sent blank or null. This covers fields that are optional on create only
// because the store fills in a default.
func ValidatePartial(s any, keys []string) Result {
	var res Result
	fields := Fields(s)

	names := make([]string, 0, len(keys))
	for _, k := range keys {
		f, ok := fields[k]
		if !ok {
			res.add(k, k+" is not a recognised field.")
			continue
		}
		names = append(names, f.Name)
	}
	if res.HasErrors() {
		return res
	}
	if len(names) == 0 {
		return res
	}
	res = collect(s, instance().StructPartial(s, names...))
	requireOnUpdate(&res, s, keys, fields)
	return res
}

func requireOnUpdate(res *Result, s any, keys []string, fields map[string]reflect.StructField) {
	v := reflect.ValueOf(s)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return
	}
	labels := labelsOf(s)
	for _, k := range keys {
		f := fields[k]
		if f.Tag.Get("update") != "required" || !v.FieldByIndex(f.Index).IsZero() || res.has(k) {
			continue
		}
		label := labels[f.Name]
		if label == "" {
			label = k
		}
		res.add(k, label+" is required.")
	}
}

// Fields maps the JSON names of s's exported fields to their struct fields.
func Fields(s any) map[string]reflect.StructField {
	t := reflect.TypeOf(s)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	out := map[string]reflect.StructField{}
	if t == nil || t.Kind() != reflect.Struct {
		return out
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if name := jsonName(f); name != "" {
			out[name] = f
		}
	}
	return out
}

func collect(s any, err error) Result {
	var res Result
	if err == nil {
		return res
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		res.add("", "Input could not be validated.")
		return res
	}
	labels := labelsOf(s)
	for _, fe := range verrs {
		label := labels[fe.StructField()]
		if label == "" {
			label = fe.Field()
		}
		res.add(fe.Field(), message(fe, label))
	}
	return res
}

// labelsOf returns the optional `label` tags keyed by Go field name.
func labelsOf(s any) map[string]string {
	t := reflect.TypeOf(s)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	out := map[string]string{}
	if t == nil || t.Kind() != reflect.Struct {
		return out
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if l := f.Tag.Get("label"); l != "" {
			out[f.Name] = l
		}
	}
	return out
}
