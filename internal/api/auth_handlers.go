package api

import (
	"net/http"
	"strings"

	"susanalopezstudio/internal/httpx"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := readJSONBody(r, &req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "Invalid JSON",
		})
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"success": false,
			"message": "Email y password son requeridos",
		})
		return
	}

	ok, err := s.auth.Login(r.Context(), email, req.Password)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "Error guardando sesion")
		return
	}
	if !ok {
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"success": false,
			"message": "Credenciales invalidas",
		})
		return
	}

	snap := s.auth.Snapshot()
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"user":     snap.User,
		"demoData": snap.Demo,
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	// Idempotent: logging out while anonymous still succeeds.
	if err := s.auth.Logout(r.Context()); err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "Error cerrando sesion")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
	})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := readJSONBody(r, &req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "Invalid JSON",
		})
		return
	}

	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" {
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"success": false,
			"message": "Nombre y email son requeridos",
		})
		return
	}

	ok, err := s.auth.Register(r.Context(), name, email, req.Password)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "Error guardando usuario")
		return
	}
	if !ok {
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"success": false,
			"message": "No se pudo registrar: email en uso o password demasiado corta",
		})
		return
	}

	snap := s.auth.Snapshot()
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    snap.User,
	})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	snap := s.auth.Snapshot()
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"isAuthenticated": snap.Authenticated,
		"user":            snap.User,
		"demoData":        snap.Demo,
	})
}
