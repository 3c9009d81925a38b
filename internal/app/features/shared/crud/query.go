// internal/app/features/shared/crud/query.go
package crud

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// QueryError reports a malformed query or path parameter.
type QueryError struct {
	Param string
	Msg   string
}

func (e *QueryError) Error() string { return fmt.Sprintf("%s: %s", e.Param, e.Msg) }

// ParseID reads the {id} path parameter as a positive integer.
func ParseID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &QueryError{Param: "id", Msg: "id must be a positive integer."}
	}
	return id, nil
}

// PositiveInt reads an optional positive integer query parameter. Absent or
// empty values return 0.
func PositiveInt(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, &QueryError{Param: name, Msg: name + " must be a positive integer."}
	}
	return n, nil
}

// Take returns at most n items; n <= 0 means no limit.
func Take[T any](items []T, n int) []T {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}

// Where keeps the items for which keep returns true.
func Where[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// Limited is a Query that only applies ?limit=.
func Limited[T any](r *http.Request, items []T) ([]T, error) {
	n, err := PositiveInt(r, "limit")
	if err != nil {
		return nil, err
	}
	return Take(items, n), nil
}
