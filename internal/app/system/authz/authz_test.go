package authz_test

import (
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/clubhub/internal/app/system/auth"
	"github.com/dalemusser/clubhub/internal/app/system/authz"
)

func TestIsAdmin(t *testing.T) {
	tests := []struct {
		name string
		user *auth.SessionUser
		want bool
	}{
		{"anonymous", nil, false},
		{"editor", &auth.SessionUser{ID: 2, Name: "editor"}, false},
		{"admin", &auth.SessionUser{ID: 1, Name: "admin", IsAdmin: true}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.user != nil {
				req = auth.WithTestUser(req, tt.user)
			}
			if got := authz.IsAdmin(req); got != tt.want {
				t.Errorf("IsAdmin = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUserCtx(t *testing.T) {
	req := auth.WithTestUser(httptest.NewRequest("GET", "/", nil), &auth.SessionUser{ID: 9, Name: "admin", IsAdmin: true})

	id, name, admin, ok := authz.UserCtx(req)
	if !ok || id != 9 || name != "admin" || !admin {
		t.Errorf("UserCtx = (%d, %q, %v, %v)", id, name, admin, ok)
	}
	if authz.ActorID(req) != 9 {
		t.Errorf("ActorID = %d, want 9", authz.ActorID(req))
	}
}

func TestUserCtx_Anonymous(t *testing.T) {
	id, name, admin, ok := authz.UserCtx(httptest.NewRequest("GET", "/", nil))
	if ok || id != 0 || name != "" || admin {
		t.Errorf("expected zero values, got (%d, %q, %v, %v)", id, name, admin, ok)
	}
}
