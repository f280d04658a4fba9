package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/football-api/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/competitions", handler.Competitions)
	mux.HandleFunc("/competitions/", handler.CompetitionResource)
	mux.HandleFunc("/matches/", handler.MatchResource)
	return mux
}
