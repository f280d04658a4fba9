package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"

	"github.com/preston-bernstein/football-api/internal/http/middleware"
	"github.com/preston-bernstein/football-api/internal/logging"
	"github.com/preston-bernstein/football-api/pkg/footballapi"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	writeErrorBody(w, r, status, map[string]string{"error": message}, logger)
}

const publicUpstreamMessage = "upstream request failed"

// writeAPIError maps a client error to a gateway status and logs its kind.
func writeAPIError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	kind, _ := footballapi.KindOf(err)
	status := statusForError(err)

	if l := loggerFromContext(r, logger); l != nil {
		l.Warn("upstream call failed",
			slog.String(logging.FieldErrorKind, kind.String()),
			slog.Int(logging.FieldStatusCode, status),
			slog.Any("error", err),
		)
	}

	body := map[string]string{"error": publicUpstreamMessage, "kind": kind.String()}
	if apiErr, ok := footballapi.AsError(err); ok {
		body["error"] = apiErr.Summary()
		if apiErr.Param != "" {
			body["param"] = apiErr.Param
		}
	}
	writeErrorBody(w, r, status, body, logger)
}

func statusForError(err error) int {
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}
	// http.Client.Timeout surfaces as a *url.Error, not DeadlineExceeded.
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return http.StatusGatewayTimeout
	}
	kind, ok := footballapi.KindOf(err)
	if !ok {
		return http.StatusBadGateway
	}
	switch kind {
	case footballapi.KindMissingParameter:
		return http.StatusBadRequest
	case footballapi.KindSubscription:
		return http.StatusForbidden
	case footballapi.KindInvalidCompetition, footballapi.KindMissingDate:
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

func writeErrorBody(w http.ResponseWriter, r *http.Request, status int, body map[string]string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get(middleware.HeaderRequestID)
	}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
