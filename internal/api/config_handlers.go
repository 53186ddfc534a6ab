package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"susanalopezstudio/internal/devcontrol"
	"susanalopezstudio/internal/httpx"
)

// handleConfigBootstrap runs the startup resolution chain with the request's
// query parameters standing in for the page URL: preset beats demoConfig
// beats the persisted tree beats defaults. The client strips the parameters
// from its own address bar after a successful bootstrap.
func (s *Server) handleConfigBootstrap(w http.ResponseWriter, r *http.Request) {
	source := s.flags.Resolve(r.Context(), r.URL.Query())
	cfg := s.flags.Config()
	s.hub.broadcastConfig(cfg)
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"source":  string(source),
		"config":  cfg,
	})
}

func (s *Server) handleConfigGet(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"config":  s.flags.Config(),
	})
}

func (s *Server) handleConfigSection(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "section")
	section, ok := s.flags.Section(name)
	if !ok {
		httpx.WriteError(w, http.StatusNotFound, "Seccion desconocida")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"section": name,
		"config":  section,
	})
}

func (s *Server) handleConfigUpdate(w http.ResponseWriter, r *http.Request) {
	var patch devcontrol.Patch
	if err := readJSONBody(r, &patch); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "Invalid JSON",
		})
		return
	}

	cfg, err := s.flags.Update(r.Context(), patch)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "Error guardando configuracion")
		return
	}
	s.hub.broadcastConfig(cfg)
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"config":  cfg,
	})
}

func (s *Server) handleConfigReset(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.flags.ResetToDefaults(r.Context())
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "Error guardando configuracion")
		return
	}
	s.hub.broadcastConfig(cfg)
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"config":  cfg,
	})
}

func (s *Server) handleConfigClear(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.flags.ClearAndReset(r.Context())
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "Error limpiando configuracion")
		return
	}
	s.hub.broadcastConfig(cfg)
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"config":  cfg,
	})
}

type linkRequest struct {
	Origin string `json:"origin"`
	Preset string `json:"preset"`
}

// handleMagicLink builds the long URL carrying the current tree, for the
// dev panel's copy button.
func (s *Server) handleMagicLink(w http.ResponseWriter, r *http.Request) {
	var req linkRequest
	if err := readJSONBody(r, &req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "Invalid JSON",
		})
		return
	}
	origin := strings.TrimSpace(req.Origin)
	if origin == "" {
		origin = s.cfg.PublicOrigin
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"url":     devcontrol.MagicLink(origin, s.flags.Config()),
	})
}

func (s *Server) handlePresetLink(w http.ResponseWriter, r *http.Request) {
	var req linkRequest
	if err := readJSONBody(r, &req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "Invalid JSON",
		})
		return
	}
	name := strings.TrimSpace(req.Preset)
	if name == "" {
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"success": false,
			"message": "Preset requerido",
		})
		return
	}
	origin := strings.TrimSpace(req.Origin)
	if origin == "" {
		origin = s.cfg.PublicOrigin
	}
	// Link construction is pure: unknown names are simply ignored at
	// resolve time, so they are not rejected here.
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"url":     devcontrol.PresetLink(origin, name),
		"presets": devcontrol.PresetNames(),
	})
}
