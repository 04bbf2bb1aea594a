// Package handle is the REST surface: thin handlers over the relay service
// plus request logging middleware.
package handle

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"leetrelay/api/internal/leetcode"
	"leetrelay/api/internal/relay"
)

type Handle struct {
	svc *relay.Service
	log *zap.Logger
}

func New(svc *relay.Service, log *zap.Logger) *Handle {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handle{svc: svc, log: log}
}

// Register mounts all routes on mux.
func (h *Handle) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/daily-question", h.Daily)
	mux.HandleFunc("GET /api/daily-question/detail/{titleSlug}", h.Detail)
	mux.HandleFunc("GET /api/daily-question/daily-with-detail", h.DailyWithDetail)
	mux.HandleFunc("GET /api/daily-question/daily-with-detail/{language}", h.DailyWithDetailForLanguage)
	mux.HandleFunc("GET /api/daily-question/ai-solution", h.Solution)
	mux.HandleFunc("GET /api/daily-question/ai-solution/{titleSlug}", h.Solution)
	mux.HandleFunc("GET /api/daily-question/ai-solution-text", h.Solution)
	mux.HandleFunc("GET /api/daily-question/ai-solution-text/{titleSlug}", h.Solution)
	mux.HandleFunc("GET /api/daily-question/health", h.Health)
	mux.HandleFunc("GET /api/daily-question/test-leetcode", h.TestLeetCode)
	mux.HandleFunc("GET /api/daily-question/check-user-status/{username}", h.UserStatus)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeText(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(body))
}

// writeError maps flow errors onto the REST surface: shape-mismatch "not
// found" is an empty 404, validation failures are a 400 with an error
// payload, everything else is an empty 500.
func (h *Handle) writeError(w http.ResponseWriter, err error) {
	var verr *relay.ValidationError
	switch {
	case errors.Is(err, leetcode.ErrNotFound):
		w.WriteHeader(http.StatusNotFound)
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": verr.Msg})
	default:
		h.log.Error("request failed", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}
