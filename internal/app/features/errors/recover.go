// internal/app/features/errors/recover.go
package errors

import (
	"fmt"
	"net/http"
	"runtime/debug"
)

// Recoverer turns a handler panic into a logged 500 with an error_id.
func (e *ErrorLogger) Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rv := recover()
			if rv == nil {
				return
			}
			if rv == http.ErrAbortHandler {
				panic(rv)
			}
			e.LogServerError(w, r, "panic in handler",
				fmt.Errorf("%v\n%s", rv, debug.Stack()), "")
		}()
		next.ServeHTTP(w, r)
	})
}
