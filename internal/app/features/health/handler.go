package health

import (
	"context"
	"net/http"

	"github.com/dalemusser/clubhub/internal/app/store/clubstore"
	"github.com/dalemusser/clubhub/internal/app/system/respond"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Stores *clubstore.Stores
	Log    *zap.Logger
}

// NewHandler constructs a health Handler with the stores and logger.
func NewHandler(stores *clubstore.Stores, logger *zap.Logger) *Handler {
	return &Handler{
		Stores: stores,
		Log:    logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "storage":"memory" }
//
// On backend failure: 503 and
//
//	{ "status":"error", "storage":"mongo", "message":"Storage unavailable", "error":"…" }
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	resp := healthResponse{
		Status:  "ok",
		Storage: h.Stores.Backend(),
	}

	if err := h.Stores.Ping(ctx); err != nil {
		h.Log.Error("health-check: storage ping failed", zap.String("backend", resp.Storage), zap.Error(err))
		resp.Status = "error"
		resp.Message = "Storage unavailable"
		resp.Error = err.Error()
		respond.JSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	respond.JSON(w, http.StatusOK, resp)
}
