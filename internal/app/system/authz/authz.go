// internal/app/system/authz/authz.go
package authz

import (
	"net/http"

	"github.com/dalemusser/clubhub/internal/app/system/auth"
)

// UserCtx returns the signed-in user's id, name, admin flag and a found flag.
// Anonymous callers get 0, "", false, false.
func UserCtx(r *http.Request) (id int64, name string, isAdmin bool, ok bool) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		return 0, "", false, false
	}
	return u.ID, u.Name, u.IsAdmin, true
}

// IsAdmin reports whether the current request's user is an admin.
func IsAdmin(r *http.Request) bool {
	_, _, admin, ok := UserCtx(r)
	return ok && admin
}

// ActorID returns the caller's user id, or 0 for anonymous requests.
func ActorID(r *http.Request) int64 {
	id, _, _, _ := UserCtx(r)
	return id
}
