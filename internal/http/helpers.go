package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bonsa9/portfolio/internal/logging"
	"github.com/bonsa9/portfolio/pkg/interfaces"
)

const (
	maxBodyBytes    = 64 << 10
	requestIDHeader = "X-Request-ID"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func joinPath(base, suffix string) string {
	trimmedBase := strings.Trim(strings.TrimSpace(base), "/")
	trimmedSuffix := strings.Trim(strings.TrimSpace(suffix), "/")
	switch {
	case trimmedBase == "" && trimmedSuffix == "":
		return "/"
	case trimmedBase == "":
		return "/" + trimmedSuffix
	case trimmedSuffix == "":
		return "/" + trimmedBase
	default:
		return "/" + trimmedBase + "/" + trimmedSuffix
	}
}

func decodeJSON(r *http.Request, target any) error {
	if r == nil || r.Body == nil {
		return io.EOF
	}
	defer r.Body.Close()
	return json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(target)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	if w == nil {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withRequestLogging tags every request with an ID and logs its outcome.
func withRequestLogging(next http.Handler, logger interfaces.Logger) http.Handler {
	if logger == nil {
		logger = logging.NoOp()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := strings.TrimSpace(r.Header.Get(requestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)

		ctx := logging.ContextWithFields(r.Context(), map[string]any{"request_id": requestID})
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		started := time.Now()
		next.ServeHTTP(rec, r.WithContext(ctx))

		logging.WithFields(logger.WithContext(ctx), map[string]any{
			"request_id": requestID,
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     rec.status,
		}).Info("http.request.completed", "duration_ms", time.Since(started).Milliseconds())
	})
}
