package api

import (
	"net/http"

	"go.uber.org/zap"
)

func (s *Server) getSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.service.Summary(r.Context())
	if err != nil {
		s.internalError(w, r, "error computing summary", err)
		return
	}

	s.writeJSON(w, http.StatusOK, summary)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	if err := s.service.Ping(r.Context()); err != nil {
		s.logger.Warn("storage unreachable", zap.Error(err))
		s.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
