package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strings"

	"github.com/preston-bernstein/football-api/internal/logging"
	"github.com/preston-bernstein/football-api/pkg/footballapi"
)

// Source is the part of the Football-API client the gateway serves.
type Source interface {
	Competitions(ctx context.Context) (json.RawMessage, error)
	Standings(ctx context.Context, compID string) (json.RawMessage, error)
	Today(ctx context.Context, compID string) (json.RawMessage, error)
	FixturesByDay(ctx context.Context, compID, matchDate string) (json.RawMessage, error)
	FixturesByPeriod(ctx context.Context, compID, fromDate, toDate string) (json.RawMessage, error)
	Commentary(ctx context.Context, matchID string) (footballapi.Envelope, error)
}

// Handler passes each inbound request through to one upstream call.
type Handler struct {
	src    Source
	logger *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(src Source, logger *slog.Logger) *Handler {
	return &Handler{src: src, logger: logger}
}

// CompetitionsResponse wraps the competitions payload.
type CompetitionsResponse struct {
	Competitions json.RawMessage `json:"competitions"`
}

// StandingsResponse wraps the standings payload.
type StandingsResponse struct {
	CompID string          `json:"comp_id"`
	Teams  json.RawMessage `json:"teams"`
}

// MatchesResponse wraps today's matches or fixtures.
type MatchesResponse struct {
	CompID   string          `json:"comp_id"`
	Date     string          `json:"date,omitempty"`
	FromDate string          `json:"from_date,omitempty"`
	ToDate   string          `json:"to_date,omitempty"`
	Matches  json.RawMessage `json:"matches"`
}

// Health reports the gateway health. It does not call upstream.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Competitions serves GET /competitions.
func (h *Handler) Competitions(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	payload, err := h.src.Competitions(r.Context())
	if err != nil {
		writeAPIError(w, r, err, h.logger)
		return
	}
	h.logServed(r, footballapi.ActionCompetitions)
	writeJSON(w, nethttp.StatusOK, CompetitionsResponse{Competitions: payload}, h.logger)
}

// CompetitionResource serves /competitions/{comp_id}/{standings|today|fixtures}.
func (h *Handler) CompetitionResource(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	compID, resource, ok := splitResource(r.URL.Path, "/competitions/")
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
		return
	}

	switch resource {
	case "standings":
		h.standings(w, r, compID)
	case "today":
		h.today(w, r, compID)
	case "fixtures":
		h.fixtures(w, r, compID)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

// MatchResource serves /matches/{match_id}/commentary.
func (h *Handler) MatchResource(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	matchID, resource, ok := splitResource(r.URL.Path, "/matches/")
	if !ok || resource != "commentary" {
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
		return
	}

	env, err := h.src.Commentary(r.Context(), matchID)
	if err != nil {
		writeAPIError(w, r, err, h.logger)
		return
	}
	h.logServed(r, footballapi.ActionCommentaries, slog.String(logging.FieldMatchID, matchID))
	writeJSON(w, nethttp.StatusOK, env, h.logger)
}

func (h *Handler) standings(w nethttp.ResponseWriter, r *nethttp.Request, compID string) {
	teams, err := h.src.Standings(r.Context(), compID)
	if err != nil {
		writeAPIError(w, r, err, h.logger)
		return
	}
	h.logServed(r, footballapi.ActionStandings, slog.String(logging.FieldCompID, compID))
	writeJSON(w, nethttp.StatusOK, StandingsResponse{CompID: compID, Teams: teams}, h.logger)
}

func (h *Handler) today(w nethttp.ResponseWriter, r *nethttp.Request, compID string) {
	matches, err := h.src.Today(r.Context(), compID)
	if err != nil {
		writeAPIError(w, r, err, h.logger)
		return
	}
	h.logServed(r, footballapi.ActionToday, slog.String(logging.FieldCompID, compID))
	writeJSON(w, nethttp.StatusOK, MatchesResponse{CompID: compID, Matches: matches}, h.logger)
}

// fixtures uses ?date= when present, otherwise ?from=&to=.
func (h *Handler) fixtures(w nethttp.ResponseWriter, r *nethttp.Request, compID string) {
	q := r.URL.Query()
	resp := MatchesResponse{CompID: compID}

	var err error
	if date := q.Get("date"); date != "" {
		resp.Date = date
		resp.Matches, err = h.src.FixturesByDay(r.Context(), compID, date)
	} else {
		resp.FromDate, resp.ToDate = q.Get("from"), q.Get("to")
		resp.Matches, err = h.src.FixturesByPeriod(r.Context(), compID, resp.FromDate, resp.ToDate)
	}
	if err != nil {
		writeAPIError(w, r, err, h.logger)
		return
	}
	h.logServed(r, footballapi.ActionFixtures, slog.String(logging.FieldCompID, compID))
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

func (h *Handler) logServed(r *nethttp.Request, action string, attrs ...any) {
	logger := loggerFromContext(r, h.logger)
	if logger == nil {
		return
	}
	logger.Info("served upstream payload", append([]any{slog.String(logging.FieldAction, action)}, attrs...)...)
}

// splitResource parses "<prefix>{id}/{resource}".
func splitResource(path, prefix string) (id, resource string, ok bool) {
	rest := strings.TrimPrefix(path, prefix)
	if rest == path {
		return "", "", false
	}
	parts := strings.Split(strings.Trim(rest, "/"), "/")
	if len(parts) != 2 {
		return "", "", false
	}
	id, err := url.PathUnescape(parts[0])
	if err != nil || id == "" || strings.ContainsAny(id, " \t") {
		return "", "", false
	}
	return id, parts[1], true
}
