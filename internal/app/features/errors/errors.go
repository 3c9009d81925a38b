// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/clubhub/internal/app/system/inputval"
	"github.com/dalemusser/clubhub/internal/app/system/respond"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrorLogger logs handler failures and writes the matching JSON response.
// Server errors get a reference id that appears in both the log line and
// the response body so a report from the UI can be traced.
type ErrorLogger struct {
	Log *zap.Logger
}

func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger}
}

func requestFields(r *http.Request) []zap.Field {
	return []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	}
}

// LogServerError logs err at error level and writes 500 with an error_id.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg string) {
	id := uuid.NewString()
	fields := append(requestFields(r), zap.String("error_id", id), zap.Error(err))
	e.Log.Error(logMsg, fields...)

	if userMsg == "" {
		userMsg = "Something went wrong. Please try again."
	}
	respond.JSON(w, http.StatusInternalServerError, respond.ErrorBody{Error: userMsg, ErrorID: id})
}

// LogBadRequest logs at info level and writes 400.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg string) {
	fields := requestFields(r)
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	e.Log.Info(logMsg, fields...)
	respond.Error(w, http.StatusBadRequest, userMsg)
}

// Invalid writes 400 with every field failure in res.
func (e *ErrorLogger) Invalid(w http.ResponseWriter, r *http.Request, res inputval.Result) {
	e.Log.Debug("validation failed", append(requestFields(r), zap.String("errors", res.All()))...)
	respond.Invalid(w, res)
}

// NotFound writes 404.
func (e *ErrorLogger) NotFound(w http.ResponseWriter, r *http.Request, userMsg string) {
	respond.Error(w, http.StatusNotFound, userMsg)
}

// Unauthorized writes 401.
func (e *ErrorLogger) Unauthorized(w http.ResponseWriter, r *http.Request, userMsg string) {
	respond.Error(w, http.StatusUnauthorized, userMsg)
}

// TooManyRequests logs at warn level and writes 429.
func (e *ErrorLogger) TooManyRequests(w http.ResponseWriter, r *http.Request, logMsg, userMsg string) {
	e.Log.Warn(logMsg, requestFields(r)...)
	respond.Error(w, http.StatusTooManyRequests, userMsg)
}
