package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/clubhub/internal/app/system/auth"
	"go.uber.org/zap"
)

func newTestSessionManager(t *testing.T) *auth.SessionManager {
	t.Helper()
	sm, err := auth.NewSessionManager(
		"test-session-key-must-be-32-chars-long",
		"test-session",
		"",
		24*time.Hour,
		false,
		zap.NewNop(),
	)
	if err != nil {
		t.Fatalf("failed to create session manager: %v", err)
	}
	return sm
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestNewSessionManager_RejectsEmptyKey(t *testing.T) {
	if _, err := auth.NewSessionManager("", "s", "", time.Hour, false, zap.NewNop()); err == nil {
		t.Error("expected error for empty key")
	}
}

func TestRequireAdmin_NoUser_Returns403(t *testing.T) {
	sm := newTestSessionManager(t)
	called := false

	req := httptest.NewRequest("POST", "/api/players", nil)
	rec := httptest.NewRecorder()
	sm.RequireAdmin(okHandler(&called)).ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected status %d, got %d", http.StatusForbidden, rec.Code)
	}
	if called {
		t.Error("handler must not run for anonymous caller")
	}
	if !strings.Contains(rec.Body.String(), "Authentication required") {
		t.Errorf("unexpected body %q", rec.Body.String())
	}
}

func TestRequireAdmin_NonAdmin_Returns403(t *testing.T) {
	sm := newTestSessionManager(t)
	called := false

	req := httptest.NewRequest("DELETE", "/api/players/1", nil)
	req = auth.WithTestUser(req, &auth.SessionUser{ID: 2, Name: "editor"})
	rec := httptest.NewRecorder()
	sm.RequireAdmin(okHandler(&called)).ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected status %d, got %d", http.StatusForbidden, rec.Code)
	}
	if called {
		t.Error("handler must not run for non-admin caller")
	}
	if !strings.Contains(rec.Body.String(), "Admin privileges required") {
		t.Errorf("unexpected body %q", rec.Body.String())
	}
}

func TestRequireAdmin_Admin_Proceeds(t *testing.T) {
	sm := newTestSessionManager(t)
	called := false

	req := httptest.NewRequest("POST", "/api/players", nil)
	req = auth.WithTestUser(req, &auth.SessionUser{ID: 1, Name: "admin", IsAdmin: true})
	rec := httptest.NewRecorder()
	sm.RequireAdmin(okHandler(&called)).ServeHTTP(rec, req)

	if !called {
		t.Error("expected handler to be called")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestRequireSignedIn_NoUser_Returns401(t *testing.T) {
	sm := newTestSessionManager(t)
	called := false

	rec := httptest.NewRecorder()
	sm.RequireSignedIn(okHandler(&called)).ServeHTTP(rec, httptest.NewRequest("GET", "/api/auth/me", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestCurrentUser_NoUser(t *testing.T) {
	user, ok := auth.CurrentUser(httptest.NewRequest("GET", "/", nil))
	if ok || user != nil {
		t.Error("expected no user in a bare request")
	}
}

// signInCookies signs u in and returns the cookies the browser would keep.
func signInCookies(t *testing.T, sm *auth.SessionManager, u auth.SessionUser) []*http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	if err := sm.SignIn(rec, httptest.NewRequest("POST", "/api/auth/login", nil), u); err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie")
	}
	return cookies
}

func loadUser(sm *auth.SessionManager, cookies []*http.Cookie) (*auth.SessionUser, bool) {
	var got *auth.SessionUser
	var found bool
	h := sm.LoadSessionUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, found = auth.CurrentUser(r)
	}))
	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	h.ServeHTTP(httptest.NewRecorder(), req)
	return got, found
}

func TestSignIn_LoadSessionUser_RoundTrip(t *testing.T) {
	sm := newTestSessionManager(t)
	cookies := signInCookies(t, sm, auth.SessionUser{ID: 7, Name: "admin", IsAdmin: true})

	u, ok := loadUser(sm, cookies)
	if !ok {
		t.Fatal("expected user to be loaded from cookie")
	}
	if u.ID != 7 || u.Name != "admin" || !u.IsAdmin {
		t.Errorf("unexpected user %+v", u)
	}
}

func TestLoadSessionUser_UndecodableCookieIsAnonymous(t *testing.T) {
	sm := newTestSessionManager(t)
	cookies := []*http.Cookie{{Name: "test-session", Value: "not-a-valid-cookie"}}

	if _, ok := loadUser(sm, cookies); ok {
		t.Error("expected tampered cookie to be treated as anonymous")
	}
}

func TestLoadSessionUser_CookieFromOtherKeyIsAnonymous(t *testing.T) {
	other, err := auth.NewSessionManager("another-session-key-that-is-32-chars!", "test-session", "", time.Hour, false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	cookies := signInCookies(t, other, auth.SessionUser{ID: 1, Name: "admin", IsAdmin: true})

	if _, ok := loadUser(newTestSessionManager(t), cookies); ok {
		t.Error("expected cookie signed with a different key to be rejected")
	}
}

type stubFetcher struct {
	user *auth.SessionUser
	err  error
}

func (f stubFetcher) FetchUser(ctx context.Context, id int64) (*auth.SessionUser, error) {
	return f.user, f.err
}

func TestLoadSessionUser_FetcherRefreshesUser(t *testing.T) {
	sm := newTestSessionManager(t)
	cookies := signInCookies(t, sm, auth.SessionUser{ID: 3, Name: "admin", IsAdmin: true})

	sm.SetUserFetcher(stubFetcher{user: &auth.SessionUser{ID: 3, Name: "admin", IsAdmin: false}})
	u, ok := loadUser(sm, cookies)
	if !ok {
		t.Fatal("expected user")
	}
	if u.IsAdmin {
		t.Error("expected demotion in storage to take effect")
	}
}

func TestLoadSessionUser_FetcherUserGone(t *testing.T) {
	sm := newTestSessionManager(t)
	cookies := signInCookies(t, sm, auth.SessionUser{ID: 3, Name: "admin", IsAdmin: true})

	sm.SetUserFetcher(stubFetcher{err: auth.ErrUserNotFound})
	if _, ok := loadUser(sm, cookies); ok {
		t.Error("expected deleted user to be anonymous")
	}
}

func TestSignOut_ExpiresCookie(t *testing.T) {
	sm := newTestSessionManager(t)
	rec := httptest.NewRecorder()

	if err := sm.SignOut(rec, httptest.NewRequest("POST", "/api/auth/logout", nil)); err != nil {
		t.Fatalf("SignOut failed: %v", err)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a deletion cookie")
	}
	if cookies[0].MaxAge >= 0 {
		t.Errorf("expected negative MaxAge, got %d", cookies[0].MaxAge)
	}
}
