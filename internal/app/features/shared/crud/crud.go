// Package crud implements the list/get/create/update/delete routes shared by
// every club content entity. Feature packages embed a Handler, add their own
// list queries and mount the routes behind the admin gate.
package crud

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strings"

	uierrors "github.com/dalemusser/clubhub/internal/app/features/errors"
	"github.com/dalemusser/clubhub/internal/app/store/repo"
	"github.com/dalemusser/clubhub/internal/app/system/auditlog"
	"github.com/dalemusser/clubhub/internal/app/system/authz"
	"github.com/dalemusser/clubhub/internal/app/system/inputval"
	"github.com/dalemusser/clubhub/internal/app/system/respond"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// MaxBodyBytes caps request bodies.
const MaxBodyBytes = 1 << 20

// Query narrows or reorders a list before it is returned. Return a
// *QueryError for a bad query parameter.
type Query[T any] func(r *http.Request, items []T) ([]T, error)

// Handler serves one entity. T is the stored record, In its writable fields.
type Handler[T any, In any] struct {
	Entity string // store name, used in logs and audit events
	Noun   string // singular display name, e.g. "Player"
	Plural string // e.g. "players"

	Repo repo.Repository[T]

	// Normalize trims and sanitizes decoded input before validation.
	Normalize func(*In)
	// ListQuery applies the entity's list filters.
	ListQuery Query[T]
	// Ignore lists payload keys dropped without error. "id" is always dropped.
	Ignore []string

	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
	Audit  *auditlog.Logger
}

// ServeList handles GET /.
func (h *Handler[T, In]) ServeList(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.ListQuery)
}

// ServeQuery returns a list handler for a named view, such as upcoming matches.
func (h *Handler[T, In]) ServeQuery(q Query[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.serve(w, r, q)
	}
}

func (h *Handler[T, In]) serve(w http.ResponseWriter, r *http.Request, q Query[T]) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list "+h.Entity)
	defer cancel()

	items, err := h.Repo.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error listing "+h.Entity, err, "Failed to fetch "+h.Plural+".")
		return
	}
	if q != nil {
		if items, err = q(r, items); err != nil {
			h.queryFailed(w, r, err)
			return
		}
	}
	if items == nil {
		items = []T{}
	}
	respond.JSON(w, http.StatusOK, items)
}

func (h *Handler[T, In]) queryFailed(w http.ResponseWriter, r *http.Request, err error) {
	var qe *QueryError
	if errors.As(err, &qe) {
		h.ErrLog.LogBadRequest(w, r, "bad query parameter", err, qe.Msg)
		return
	}
	h.ErrLog.LogServerError(w, r, "list query failed for "+h.Entity, err, "Failed to fetch "+h.Plural+".")
}

// ServeGet handles GET /{id}.
func (h *Handler[T, In]) ServeGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	rec, err := h.Repo.Get(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		h.ErrLog.NotFound(w, r, h.Noun+" not found.")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading "+h.Entity, err, "Failed to fetch "+strings.ToLower(h.Noun)+".")
		return
	}
	respond.JSON(w, http.StatusOK, rec)
}

// HandleCreate handles POST / and records the change in the admin audit trail.
func (h *Handler[T, In]) HandleCreate(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, true)
}

// HandlePublicCreate handles POST / on routes open to visitors. No admin
// audit event is written.
func (h *Handler[T, In]) HandlePublicCreate(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, false)
}

func (h *Handler[T, In]) create(w http.ResponseWriter, r *http.Request, audited bool) {
	rec, ok := h.decode(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Repo.Create(ctx, rec)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error creating "+h.Entity, err, "Failed to create "+strings.ToLower(h.Noun)+".")
		return
	}
	if id, ok := recordID(created); ok && audited {
		h.Audit.RecordCreated(ctx, r, authz.ActorID(r), h.Entity, id)
	}
	respond.JSON(w, http.StatusCreated, created)
}

// decode reads and validates a create payload, writing a 400 on failure.
func (h *Handler[T, In]) decode(w http.ResponseWriter, r *http.Request) (T, bool) {
	var zero T
	in, _, ok := h.readInput(w, r)
	if !ok {
		return zero, false
	}
	if res := inputval.Validate(in); res.HasErrors() {
		h.ErrLog.Invalid(w, r, res)
		return zero, false
	}
	rec, err := convert[In, T](in)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "convert "+h.Entity+" input", err, "")
		return zero, false
	}
	return rec, true
}

// HandleUpdate handles PUT /{id}. Only the fields present in the body change.
func (h *Handler[T, In]) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}
	in, keys, ok := h.readInput(w, r)
	if !ok {
		return
	}
	if res := inputval.ValidatePartial(in, keys); res.HasErrors() {
		h.ErrLog.Invalid(w, r, res)
		return
	}
	patch, err := buildPatch(in, keys)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "build "+h.Entity+" patch", err, "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	updated, err := h.Repo.Update(ctx, id, patch)
	if errors.Is(err, repo.ErrNotFound) {
		h.ErrLog.NotFound(w, r, h.Noun+" not found.")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error updating "+h.Entity, err, "Failed to update "+strings.ToLower(h.Noun)+".")
		return
	}
	if len(keys) > 0 {
		h.Audit.RecordUpdated(ctx, r, authz.ActorID(r), h.Entity, id, strings.Join(keys, ","))
	}
	respond.JSON(w, http.StatusOK, updated)
}

// HandleDelete handles DELETE /{id}.
func (h *Handler[T, In]) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	removed, err := h.Repo.Delete(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error deleting "+h.Entity, err, "Failed to delete "+strings.ToLower(h.Noun)+".")
		return
	}
	if !removed {
		h.ErrLog.NotFound(w, r, h.Noun+" not found.")
		return
	}
	h.Audit.RecordDeleted(ctx, r, authz.ActorID(r), h.Entity, id)
	respond.NoContent(w)
}

func (h *Handler[T, In]) id(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := ParseID(r)
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad id", err, "Invalid "+strings.ToLower(h.Noun)+" id.")
		return 0, false
	}
	return id, true
}

// readInput decodes the body into In, returning the payload keys that were
// kept. Writes a 400 and returns ok=false on any decoding failure.
func (h *Handler[T, In]) readInput(w http.ResponseWriter, r *http.Request) (In, []string, bool) {
	var in In

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes)).Decode(&raw); err != nil {
		h.ErrLog.Invalid(w, r, inputval.DecodeError(err))
		return in, nil, false
	}
	if raw == nil {
		h.ErrLog.Invalid(w, r, inputval.Result{Errors: []inputval.FieldError{{Message: "Request body must be a JSON object."}}})
		return in, nil, false
	}
	delete(raw, "id")
	for _, k := range h.Ignore {
		delete(raw, k)
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	body, err := json.Marshal(raw)
	if err != nil {
		h.ErrLog.Invalid(w, r, inputval.DecodeError(err))
		return in, nil, false
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		h.ErrLog.Invalid(w, r, inputval.DecodeError(err))
		return in, nil, false
	}
	if h.Normalize != nil {
		h.Normalize(&in)
	}
	return in, keys, true
}
