package repo

import (
	"encoding/json"
	"fmt"
)

// Merge overlays patch onto rec at the top level of its JSON form and decodes
// the result back into a T. The "id" key is never taken from the patch.
func Merge[T any](rec T, patch Patch) (T, error) {
	if len(patch) == 0 {
		return rec, nil
	}

	base, err := json.Marshal(rec)
	if err != nil {
		return rec, fmt.Errorf("merge: encode record: %w", err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(base, &doc); err != nil {
		return rec, fmt.Errorf("merge: record is not an object: %w", err)
	}

	for k, v := range patch {
		if k == "id" {
			continue
		}
		if len(v) == 0 {
			v = json.RawMessage("null")
		}
		doc[k] = v
	}

	merged, err := json.Marshal(doc)
	if err != nil {
		return rec, fmt.Errorf("merge: encode merged: %w", err)
	}
	var out T
	if err := json.Unmarshal(merged, &out); err != nil {
		return rec, fmt.Errorf("merge: decode merged: %w", err)
	}
	return out, nil
}
