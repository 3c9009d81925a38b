// Package repo defines the generic repository contract shared by every
// entity store, independent of the backend that holds the records.
//
// A Repository owns one entity type. Identifiers are int64 values assigned
// by the repository on Create; they are unique within the repository,
// strictly increasing, and never handed out again after a Delete.
package repo

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrNotFound is returned by Get and Update when no record has the requested id.
var ErrNotFound = errors.New("record not found")

// Patch is a partial update: JSON field name to replacement value. Fields not
// present keep their stored value. A JSON null clears an optional field.
type Patch map[string]json.RawMessage

// Repository is the CRUD surface of one entity store.
type Repository[T any] interface {
	// List returns every stored record, ordered by the entity's sort policy.
	List(ctx context.Context) ([]T, error)

	// Get returns the record with the given id or ErrNotFound.
	Get(ctx context.Context, id int64) (T, error)

	// Create assigns the next id, applies entity defaults, stores the record
	// and returns it as stored.
	Create(ctx context.Context, rec T) (T, error)

	// Update shallow-merges patch onto the stored record. ErrNotFound if absent.
	Update(ctx context.Context, id int64, patch Patch) (T, error)

	// Delete removes the record and reports whether it existed.
	Delete(ctx context.Context, id int64) (bool, error)
}
