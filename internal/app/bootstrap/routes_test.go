package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/clubhub/internal/app/store/audit"
	"github.com/dalemusser/clubhub/internal/app/system/auth"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"github.com/dalemusser/clubhub/internal/testutil"
	"github.com/dalemusser/waffle/config"
)

// client replays the session cookie like a browser would.
type client struct {
	t       *testing.T
	h       http.Handler
	cookies []*http.Cookie
}

func (c *client) do(method, target string, body any) *httptest.ResponseRecorder {
	c.t.Helper()
	req := testutil.JSONRequest(c.t, method, target, body)
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}
	rec := testutil.Serve(c.h, req)
	if set := rec.Result().Cookies(); len(set) > 0 {
		c.cookies = set
	}
	return rec
}

func startApp(t *testing.T) (http.Handler, DBDeps) {
	t.Helper()
	t.Cleanup(timeouts.Reset)
	ctx := context.Background()
	core := &config.CoreConfig{Env: "dev"}
	cfg := testConfig()

	deps, err := ConnectDB(ctx, core, cfg, testLogger())
	if err != nil {
		t.Fatalf("ConnectDB: %v", err)
	}
	if err := Startup(ctx, core, cfg, deps, testLogger()); err != nil {
		t.Fatalf("Startup: %v", err)
	}
	h, err := BuildHandler(core, cfg, deps, testLogger())
	if err != nil {
		t.Fatalf("BuildHandler: %v", err)
	}
	t.Cleanup(func() { _ = Shutdown(ctx, core, cfg, deps, testLogger()) })
	return h, deps
}

func TestRouter_AdminFlow(t *testing.T) {
	h, deps := startApp(t)
	c := &client{t: t, h: h}

	// Anonymous writes are refused before anything is stored.
	player := map[string]any{"name": "Ivan Petrov", "position": "Forward", "number": 9, "age": 24}
	testutil.AssertStatus(t, c.do("POST", "/api/players", player), http.StatusForbidden)

	rec := c.do("POST", "/api/auth/login", map[string]string{"username": "admin", "password": "matchday-2026"})
	testutil.AssertStatus(t, rec, http.StatusOK)
	if u := testutil.DecodeJSON[auth.SessionUser](t, rec); !u.IsAdmin {
		t.Fatalf("bootstrap admin is not admin: %+v", u)
	}

	rec = c.do("GET", "/api/auth/me", nil)
	testutil.AssertStatus(t, rec, http.StatusOK)

	rec = c.do("POST", "/api/players", player)
	testutil.AssertStatus(t, rec, http.StatusCreated)
	if p := testutil.DecodeJSON[models.Player](t, rec); p.ID != 1 {
		t.Errorf("player id = %d, want 1", p.ID)
	}
	testutil.AssertStatus(t, c.do("GET", "/api/players/1", nil), http.StatusOK)

	events, err := audit.New(deps.Stores.AuditEvents).List(context.Background(), audit.Filter{})
	if err != nil {
		t.Fatalf("List audit: %v", err)
	}
	var sawLogin, sawCreate bool
	for _, e := range events {
		sawLogin = sawLogin || e.EventType == audit.EventLoginSuccess
		sawCreate = sawCreate || (e.EventType == audit.EventRecordCreated && e.Entity == "players")
	}
	if !sawLogin || !sawCreate {
		t.Errorf("audit trail incomplete: %+v", events)
	}

	testutil.AssertStatus(t, c.do("GET", "/api/audit-log?limit=5", nil), http.StatusOK)

	testutil.AssertStatus(t, c.do("POST", "/api/auth/logout", nil), http.StatusNoContent)
	c.cookies = nil
	testutil.AssertStatus(t, c.do("GET", "/api/auth/me", nil), http.StatusUnauthorized)
	testutil.AssertStatus(t, c.do("DELETE", "/api/players/1", nil), http.StatusForbidden)
}

func TestRouter_PublicRoutes(t *testing.T) {
	h, _ := startApp(t)
	c := &client{t: t, h: h}

	rec := c.do("GET", "/health", nil)
	testutil.AssertStatus(t, rec, http.StatusOK)
	if body := testutil.DecodeJSON[map[string]string](t, rec); body["storage"] != "memory" {
		t.Errorf("health body %v", body)
	}

	for _, path := range []string{
		"/api/players", "/api/coaches", "/api/matches", "/api/matches/upcoming", "/api/matches/completed",
		"/api/news", "/api/blog-posts", "/api/media", "/api/standings", "/api/club-history",
	} {
		rec := c.do("GET", path, nil)
		testutil.AssertStatus(t, rec, http.StatusOK)
		if got := rec.Body.String(); got != "[]\n" && got != "[]" {
			t.Errorf("%s: expected empty array, got %q", path, got)
		}
	}

	msg := map[string]string{"name": "Maria", "email": "maria@example.com", "subject": "Hi", "message": "Hello"}
	testutil.AssertStatus(t, c.do("POST", "/api/contact", msg), http.StatusCreated)
	testutil.AssertStatus(t, c.do("GET", "/api/contact", nil), http.StatusForbidden)
	testutil.AssertStatus(t, c.do("GET", "/api/audit-log", nil), http.StatusForbidden)

	rec = c.do("GET", "/api/nope", nil)
	testutil.AssertStatus(t, rec, http.StatusNotFound)
}
