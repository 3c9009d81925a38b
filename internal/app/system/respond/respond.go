// internal/app/system/respond/respond.go
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/dalemusser/clubhub/internal/app/system/inputval"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error   string                `json:"error"`
	Fields  []inputval.FieldError `json:"fields,omitempty"`
	ErrorID string                `json:"error_id,omitempty"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes {"error": msg}.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, ErrorBody{Error: msg})
}

// Invalid writes a 400 carrying each field failure.
func Invalid(w http.ResponseWriter, res inputval.Result) {
	msg := res.First()
	if msg == "" {
		msg = "Invalid request."
	}
	JSON(w, http.StatusBadRequest, ErrorBody{Error: msg, Fields: res.Errors})
}

// NoContent writes a bare 204.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
