// internal/app/features/auditlog/list.go
package auditlog

import (
	"errors"
	"net/http"

	"github.com/dalemusser/clubhub/internal/app/features/shared/crud"
	"github.com/dalemusser/clubhub/internal/app/store/audit"
	"github.com/dalemusser/clubhub/internal/app/system/normalize"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
)

const (
	pageSize = 50
	maxLimit = 500
)

// ServeList handles GET / - recent audit events, newest first.
//
// Query parameters: category, eventType, actorId, limit (default 50, max 500).
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := audit.Filter{
		Category:  normalize.QueryParam(q.Get("category")),
		EventType: normalize.QueryParam(q.Get("eventType")),
		Limit:     pageSize,
	}

	limit, err := crud.PositiveInt(r, "limit")
	if err == nil && limit > 0 {
		filter.Limit = min(limit, maxLimit)
	}
	if err == nil {
		var actor int
		actor, err = crud.PositiveInt(r, "actorId")
		filter.ActorID = int64(actor)
	}
	var qe *crud.QueryError
	if errors.As(err, &qe) {
		h.ErrLog.LogBadRequest(w, r, "bad audit log query", err, qe.Msg)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "audit log list")
	defer cancel()

	events, err := h.Store.List(ctx, filter)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error listing audit events", err, "Failed to load audit log.")
		return
	}
	respondList(w, events)
}
