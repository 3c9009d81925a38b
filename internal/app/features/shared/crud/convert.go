// internal/app/features/shared/crud/convert.go
package crud

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/dalemusser/clubhub/internal/app/store/repo"
)

// convert copies the fields of in into a new T through their shared JSON
// names. Records embed their input struct, so every input field has a home.
func convert[In, T any](in In) (T, error) {
	var out T
	b, err := json.Marshal(in)
	if err != nil {
		return out, fmt.Errorf("encode input: %w", err)
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return out, fmt.Errorf("decode record: %w", err)
	}
	return out, nil
}

// buildPatch re-encodes the normalized input and keeps the payload keys.
// A key whose value was dropped by omitempty becomes null, which clears it.
func buildPatch[In any](in In, keys []string) (repo.Patch, error) {
	b, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("encode input: %w", err)
	}
	var full map[string]json.RawMessage
	if err := json.Unmarshal(b, &full); err != nil {
		return nil, fmt.Errorf("decode input: %w", err)
	}

	patch := make(repo.Patch, len(keys))
	for _, k := range keys {
		if v, ok := full[k]; ok {
			patch[k] = v
		} else {
			patch[k] = json.RawMessage("null")
		}
	}
	return patch, nil
}

// recordID reads the ID field of a stored record.
func recordID(rec any) (int64, bool) {
	v := reflect.ValueOf(rec)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return 0, false
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return 0, false
	}
	f := v.FieldByName("ID")
	if !f.IsValid() || f.Kind() != reflect.Int64 {
		return 0, false
	}
	return f.Int(), true
}
