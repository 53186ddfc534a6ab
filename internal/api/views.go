package api

import (
	"net/http"

	"susanalopezstudio/internal/httpx"
)

// handleDashboard is the client dashboard's read surface: its config section
// plus the session bundle. For demo sessions the bundle carries the canned
// bono/reservas data; registered users start empty.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	snap := s.auth.Snapshot()
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"config":   s.flags.Config().Dashboard,
		"user":     snap.User,
		"demoData": snap.Demo,
	})
}

func (s *Server) handleAdminSummary(w http.ResponseWriter, r *http.Request) {
	snap := s.auth.Snapshot()
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"config":          s.flags.Config().Admin,
		"user":            snap.User,
		"registeredUsers": s.auth.DirectorySize(),
	})
}
