// internal/app/features/auditlog/routes.go
package auditlog

import (
	"net/http"

	"github.com/dalemusser/clubhub/internal/app/store/audit"
	"github.com/dalemusser/clubhub/internal/app/system/auth"
	"github.com/dalemusser/clubhub/internal/app/system/respond"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the audit log under the path where this router is mounted
// (typically "/api/audit-log" from bootstrap). Admins only.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireAdmin)
		pr.Get("/", h.ServeList)
	})

	return r
}

func respondList(w http.ResponseWriter, events []audit.Event) {
	if events == nil {
		events = []audit.Event{}
	}
	respond.JSON(w, http.StatusOK, events)
}
