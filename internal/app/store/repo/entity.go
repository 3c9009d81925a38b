package repo

import (
	"regexp"
	"sort"
)

// Entity describes how a backend should treat records of type T.
type Entity[T any] struct {
	// Name is the collection / table name, e.g. "players".
	Name string

	ID    func(T) int64
	SetID func(*T, int64)

	// Less orders List results. Nil means insertion (id) order.
	Less func(a, b T) bool

	// Defaults fills server-maintained fields before a record is first stored.
	Defaults func(*T)
}

var namePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// ValidName reports whether Name is safe to use as a table or collection name.
func (e Entity[T]) ValidName() bool {
	return namePattern.MatchString(e.Name)
}

// ApplyDefaults runs the Defaults hook, if any.
func (e Entity[T]) ApplyDefaults(rec *T) {
	if e.Defaults != nil {
		e.Defaults(rec)
	}
}

// Sort orders items by id, then stably by Less so that ties keep id order.
func (e Entity[T]) Sort(items []T) {
	sort.Slice(items, func(i, j int) bool { return e.ID(items[i]) < e.ID(items[j]) })
	if e.Less != nil {
		sort.SliceStable(items, func(i, j int) bool { return e.Less(items[i], items[j]) })
	}
}
