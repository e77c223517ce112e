package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
)

// Envelope is the standard JSON response body. Every endpoint responds with
// at least success and message; data carries the payload on success and
// error carries diagnostic detail on failure when verbose errors are on.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
}

// verboseErrors toggles whether error envelopes include diagnostic detail.
// Off in production so internals never leak to clients.
var verboseErrors atomic.Bool

// SetVerboseErrors configures error detail exposure. Called once at startup
// from the server environment setting.
func SetVerboseErrors(on bool) {
	verboseErrors.Store(on)
}

// RespondWithJSON writes a success envelope with the given status, message,
// and payload.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, message string, data interface{}) {
	writeJSON(w, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	}, status)
}

// RespondWithError writes an error envelope with the given status and
// user-facing message. It also sets the TraceID from the request context if
// available.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	RespondWithErrorAndLog(w, r, status, message, nil)
}

// RespondWithErrorAndLog writes an error envelope and logs the underlying
// error. The raw error string reaches the client only when verbose errors
// are enabled; production clients get the sanitized message alone.
//
// Log level strategy: 5xx at ERROR, everything else at DEBUG.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
) {
	traceID := GetTraceID(r.Context())

	envelope := Envelope{
		Success: false,
		Message: userMessage,
		TraceID: traceID,
	}
	if err != nil && verboseErrors.Load() {
		envelope.Error = err.Error()
	}

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", err.Error()),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}

	slog.LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	writeJSON(w, envelope, status)
}

func writeJSON(w http.ResponseWriter, body Envelope, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}
