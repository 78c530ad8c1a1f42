// internal/app/features/errors/logger.go
package errors

import (
	"net/http"

	"github.com/myvedaai/Admin-Dashboard/internal/app/system/apiresp"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/auth"
	"go.uber.org/zap"
)

// ErrorLogger logs a handler failure with request context and answers the
// caller with a JSON error envelope carrying a user-facing message.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger wraps logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

func (e *ErrorLogger) fields(r *http.Request, err error) []zap.Field {
	fs := []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	}
	if u, ok := auth.CurrentUser(r); ok {
		fs = append(fs, zap.String("user_id", u.ID))
	}
	if err != nil {
		fs = append(fs, zap.Error(err))
	}
	return fs
}

// LogServerError logs at Error and responds 500 with userMsg.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg string) {
	e.log.Error(msg, e.fields(r, err)...)
	apiresp.Fail(w, r, http.StatusInternalServerError, userMsg)
}

// LogBadRequest logs at Warn and responds 400 with userMsg.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg string) {
	e.log.Warn(msg, e.fields(r, err)...)
	apiresp.Fail(w, r, http.StatusBadRequest, userMsg)
}

// LogNotFound logs at Info and responds 404 with userMsg.
func (e *ErrorLogger) LogNotFound(w http.ResponseWriter, r *http.Request, msg string, userMsg string) {
	e.log.Info(msg, e.fields(r, nil)...)
	apiresp.Fail(w, r, http.StatusNotFound, userMsg)
}
