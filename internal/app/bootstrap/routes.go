// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	auditlogfeature "github.com/dalemusser/clubhub/internal/app/features/auditlog"
	blogfeature "github.com/dalemusser/clubhub/internal/app/features/blog"
	coachesfeature "github.com/dalemusser/clubhub/internal/app/features/coaches"
	contactfeature "github.com/dalemusser/clubhub/internal/app/features/contact"
	errorsfeature "github.com/dalemusser/clubhub/internal/app/features/errors"
	healthfeature "github.com/dalemusser/clubhub/internal/app/features/health"
	historyfeature "github.com/dalemusser/clubhub/internal/app/features/history"
	loginfeature "github.com/dalemusser/clubhub/internal/app/features/login"
	logoutfeature "github.com/dalemusser/clubhub/internal/app/features/logout"
	matchesfeature "github.com/dalemusser/clubhub/internal/app/features/matches"
	mediafeature "github.com/dalemusser/clubhub/internal/app/features/media"
	newsfeature "github.com/dalemusser/clubhub/internal/app/features/news"
	playersfeature "github.com/dalemusser/clubhub/internal/app/features/players"
	standingsfeature "github.com/dalemusser/clubhub/internal/app/features/standings"
	userinfofeature "github.com/dalemusser/clubhub/internal/app/features/userinfo"
	"github.com/dalemusser/clubhub/internal/app/store/audit"
	userstore "github.com/dalemusser/clubhub/internal/app/store/users"
	"github.com/dalemusser/clubhub/internal/app/system/auditlog"
	"github.com/dalemusser/clubhub/internal/app/system/auth"
	"github.com/dalemusser/clubhub/internal/app/system/ratelimit"
	"github.com/dalemusser/clubhub/internal/app/system/respond"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. Secure cookies are enabled in prod.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, appCfg.SessionMaxAge, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}
	return newRouter(appCfg, deps, sessionMgr, logger), nil
}

// newRouter mounts every feature router.
func newRouter(appCfg AppConfig, deps DBDeps, sessionMgr *auth.SessionManager, logger *zap.Logger) chi.Router {
	stores := deps.Stores
	users := userstore.New(stores.Users)

	// Refresh the session user on each request so demoted or deleted
	// accounts lose access immediately.
	sessionMgr.SetUserFetcher(userstore.NewFetcher(users))

	errLog := errorsfeature.NewErrorLogger(logger)
	auditLog := auditlog.New(audit.New(stores.AuditEvents), logger, auditlog.Config{
		Auth:  appCfg.AuditLogAuth,
		Admin: appCfg.AuditLogAdmin,
	})

	loginLimiter := ratelimit.NewLoginLimiter()
	deps.background.add(loginLimiter.Stop)
	contactLimiter := ratelimit.New(appCfg.ContactRateLimit, appCfg.ContactRateWindow)
	deps.background.add(contactLimiter.Stop)

	r := chi.NewRouter()
	r.Use(errLog.Recoverer)
	r.Use(sessionMgr.LoadSessionUser)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respond.Error(w, http.StatusNotFound, "Not found.")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respond.Error(w, http.StatusMethodNotAllowed, "Method not allowed.")
	})

	// Health check endpoint for load balancers and orchestrators
	r.Mount("/health", healthfeature.Routes(healthfeature.NewHandler(stores, logger)))

	r.Route("/api", func(api chi.Router) {
		// Authentication
		api.Mount("/auth/login", loginfeature.Routes(
			loginfeature.NewHandler(users, sessionMgr, loginLimiter, errLog, auditLog, logger)))
		api.Mount("/auth/logout", logoutfeature.Routes(logoutfeature.NewHandler(sessionMgr, auditLog, logger)))
		api.Mount("/auth/me", userinfofeature.Routes(userinfofeature.NewHandler()))

		// Club content: public reads, admin writes
		api.Mount("/players", playersfeature.Routes(
			playersfeature.NewHandler(stores.Players, errLog, auditLog, logger), sessionMgr))
		api.Mount("/coaches", coachesfeature.Routes(
			coachesfeature.NewHandler(stores.Coaches, errLog, auditLog, logger), sessionMgr))
		api.Mount("/matches", matchesfeature.Routes(
			matchesfeature.NewHandler(stores.Matches, errLog, auditLog, logger), sessionMgr))
		api.Mount("/news", newsfeature.Routes(
			newsfeature.NewHandler(stores.News, errLog, auditLog, logger), sessionMgr))
		api.Mount("/blog-posts", blogfeature.Routes(
			blogfeature.NewHandler(stores.BlogPosts, errLog, auditLog, logger), sessionMgr))
		api.Mount("/media", mediafeature.Routes(
			mediafeature.NewHandler(stores.Media, errLog, auditLog, logger), sessionMgr))
		api.Mount("/standings", standingsfeature.Routes(
			standingsfeature.NewHandler(stores.Standings, errLog, auditLog, logger), sessionMgr))
		api.Mount("/club-history", historyfeature.Routes(
			historyfeature.NewHandler(stores.ClubHistory, errLog, auditLog, logger), sessionMgr))

		// Contact form: public submit, admin inbox
		api.Mount("/contact", contactfeature.Routes(
			contactfeature.NewHandler(stores.ContactMessages, contactLimiter, errLog, auditLog, logger), sessionMgr))

		// Audit trail (admins)
		api.Mount("/audit-log", auditlogfeature.Routes(
			auditlogfeature.NewHandler(audit.New(stores.AuditEvents), errLog, logger), sessionMgr))
	})

	return r
}
