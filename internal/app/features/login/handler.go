// internal/app/features/login/handler.go
package login

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	uierrors "github.com/dalemusser/clubhub/internal/app/features/errors"
	"github.com/dalemusser/clubhub/internal/app/store/audit"
	"github.com/dalemusser/clubhub/internal/app/store/repo"
	userstore "github.com/dalemusser/clubhub/internal/app/store/users"
	"github.com/dalemusser/clubhub/internal/app/system/auditlog"
	"github.com/dalemusser/clubhub/internal/app/system/auth"
	"github.com/dalemusser/clubhub/internal/app/system/inputval"
	"github.com/dalemusser/clubhub/internal/app/system/normalize"
	"github.com/dalemusser/clubhub/internal/app/system/ratelimit"
	"github.com/dalemusser/clubhub/internal/app/system/respond"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

const maxBodyBytes = 16 << 10

type Handler struct {
	Users      *userstore.Store
	SessionMgr *auth.SessionManager
	Limiter    *ratelimit.LoginLimiter
	AuditLog   *auditlog.Logger
	ErrLog     *uierrors.ErrorLogger
	Log        *zap.Logger
}

func NewHandler(
	users *userstore.Store,
	sessionMgr *auth.SessionManager,
	limiter *ratelimit.LoginLimiter,
	errLog *uierrors.ErrorLogger,
	audit *auditlog.Logger,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		Users:      users,
		SessionMgr: sessionMgr,
		Limiter:    limiter,
		AuditLog:   audit,
		ErrLog:     errLog,
		Log:        logger,
	}
}

type credentials struct {
	Username string `json:"username" validate:"required,max=120" label:"Username"`
	Password string `json:"password" validate:"required,max=256" label:"Password"`
}

// HandleLogin handles POST /api/auth/login.
//
// On success: 200 and the session user, with the session cookie set.
// Wrong credentials get 401 with the same message whether or not the
// username exists.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&creds); err != nil {
		h.ErrLog.Invalid(w, r, inputval.DecodeError(err))
		return
	}
	creds.Username = normalize.Name(creds.Username)
	if res := inputval.Validate(creds); res.HasErrors() {
		h.ErrLog.Invalid(w, r, res)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if h.Limiter != nil {
		if ok, reason := h.Limiter.Check(r, creds.Username); !ok {
			h.AuditLog.LoginFailed(ctx, r, audit.EventLoginFailedRateLimit, creds.Username, "rate limited")
			h.ErrLog.TooManyRequests(w, r, "login rate limited", reason)
			return
		}
	}

	u, err := h.Users.Authenticate(ctx, creds.Username, creds.Password)
	if errors.Is(err, userstore.ErrInvalidCredentials) {
		h.AuditLog.LoginFailed(ctx, r, h.failureType(ctx, creds.Username), creds.Username, "invalid credentials")
		h.ErrLog.Unauthorized(w, r, "Invalid username or password.")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error during login", err, "Sign-in failed. Please try again.")
		return
	}

	su := auth.SessionUser{ID: u.ID, Name: u.Username, IsAdmin: u.IsAdmin}
	if err := h.SessionMgr.SignIn(w, r, su); err != nil {
		h.ErrLog.LogServerError(w, r, "save session", err, "Sign-in failed. Please try again.")
		return
	}
	if h.Limiter != nil {
		h.Limiter.ResetUser(creds.Username)
	}
	h.AuditLog.LoginSuccess(ctx, r, u.ID, u.Username)
	h.Log.Info("user signed in", zap.Int64("user_id", u.ID), zap.Bool("is_admin", u.IsAdmin))

	respond.JSON(w, http.StatusOK, su)
}

// failureType tells the audit log whether the username existed.
func (h *Handler) failureType(ctx context.Context, username string) string {
	if _, err := h.Users.GetByUsername(ctx, username); errors.Is(err, repo.ErrNotFound) {
		return audit.EventLoginFailedUserNotFound
	}
	return audit.EventLoginFailedWrongPassword
}
