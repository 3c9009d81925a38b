// internal/app/features/contact/handler.go
package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	uierrors "github.com/dalemusser/clubhub/internal/app/features/errors"
	"github.com/dalemusser/clubhub/internal/app/features/shared/crud"
	"github.com/dalemusser/clubhub/internal/app/store/repo"
	"github.com/dalemusser/clubhub/internal/app/system/auditlog"
	"github.com/dalemusser/clubhub/internal/app/system/authz"
	"github.com/dalemusser/clubhub/internal/app/system/normalize"
	"github.com/dalemusser/clubhub/internal/app/system/ratelimit"
	"github.com/dalemusser/clubhub/internal/app/system/respond"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves the contact form inbox. Submitting is public; reading and
// managing messages is for admins.
type Handler struct {
	*crud.Handler[models.ContactMessage, models.ContactMessageInput]

	// Limiter caps submissions per client IP. Nil disables the limit.
	Limiter *ratelimit.Limiter
}

func NewHandler(r repo.Repository[models.ContactMessage], limiter *ratelimit.Limiter, errLog *uierrors.ErrorLogger, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		Handler: &crud.Handler[models.ContactMessage, models.ContactMessageInput]{
			Entity: "contact_messages",
			Noun:   "Message",
			Plural: "messages",
			Repo:   r,
			Normalize: func(in *models.ContactMessageInput) {
				in.Name = normalize.Name(in.Name)
				in.Email = normalize.Email(in.Email)
				in.Subject = normalize.Name(in.Subject)
				in.Message = normalize.Name(in.Message)
			},
			ListQuery: filter,
			// Read state and submission time belong to the server.
			Ignore: []string{"read", "createdAt"},
			Log:    logger,
			ErrLog: errLog,
			Audit:  audit,
		},
		Limiter: limiter,
	}
}

// HandleSubmit handles the public POST /.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	if h.Limiter != nil && !h.Limiter.Allow(ratelimit.ClientIP(r)) {
		h.ErrLog.TooManyRequests(w, r, "contact form rate limited", "Too many messages. Please try again later.")
		return
	}
	h.HandlePublicCreate(w, r)
}

// HandleMarkRead handles PUT /{id}/read.
func (h *Handler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := crud.ParseID(r)
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad id", err, "Invalid message id.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	msg, err := h.Repo.Update(ctx, id, repo.Patch{"read": json.RawMessage(`true`)})
	if errors.Is(err, repo.ErrNotFound) {
		h.ErrLog.NotFound(w, r, "Message not found.")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error marking message read", err, "Failed to update message.")
		return
	}
	h.Audit.MessageRead(ctx, r, authz.ActorID(r), id)
	respond.JSON(w, http.StatusOK, msg)
}

// filter applies ?unread=true|false and ?limit=.
func filter(r *http.Request, items []models.ContactMessage) ([]models.ContactMessage, error) {
	n, err := crud.PositiveInt(r, "limit")
	if err != nil {
		return nil, err
	}
	if raw := normalize.QueryParam(r.URL.Query().Get("unread")); raw != "" {
		unread, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, &crud.QueryError{Param: "unread", Msg: "unread must be true or false."}
		}
		items = crud.Where(items, func(m models.ContactMessage) bool { return m.Read != unread })
	}
	return crud.Take(items, n), nil
}
