package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"susanalopezstudio/internal/auth"
	"susanalopezstudio/internal/config"
	"susanalopezstudio/internal/devcontrol"
	"susanalopezstudio/internal/httpx"
)

type Server struct {
	cfg      config.Config
	log      zerolog.Logger
	flags    *devcontrol.Store
	auth     *auth.Service
	hub      *configHub
	payments *paymentLedger
}

func NewServer(cfg config.Config, log zerolog.Logger, flags *devcontrol.Store, authSvc *auth.Service) *Server {
	s := &Server{
		cfg:      cfg,
		log:      log.With().Str("component", "api").Logger(),
		flags:    flags,
		auth:     authSvc,
		hub:      newConfigHub(log),
		payments: newPaymentLedger(2 * time.Second),
	}
	go s.hub.run()
	return s
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	// CORS / preflight: the front-end may be served from a different origin.
	r.Options("/*", func(w http.ResponseWriter, r *http.Request) {
		origin := strings.TrimSpace(r.Header.Get("Origin"))
		allowed := "*"
		if s.cfg.CORSAllowOrigins != "" {
			allowed = s.cfg.CORSAllowOrigins
		}
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", allowed)
			w.Header().Set("Vary", "Origin")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.WriteHeader(http.StatusNoContent)
	})

	// Dev panel surface. Deliberately outside the maintenance gate so the
	// panel can always turn maintenance mode back off.
	r.Route("/config", func(r chi.Router) {
		r.Get("/bootstrap", s.handleConfigBootstrap)
		r.Get("/", s.handleConfigGet)
		r.Get("/sections/{section}", s.handleConfigSection)
		r.Patch("/", s.handleConfigUpdate)
		r.Post("/reset", s.handleConfigReset)
		r.Post("/clear", s.handleConfigClear)
		r.Post("/links/magic", s.handleMagicLink)
		r.Post("/links/preset", s.handlePresetLink)
		r.Get("/ws", s.handleConfigWS)
	})

	r.Group(func(r chi.Router) {
		r.Use(s.maintenanceGate)

		r.Post("/auth/login", s.handleLogin)
		r.Post("/auth/logout", s.handleLogout)
		r.Post("/auth/register", s.handleRegister)
		r.Get("/auth/me", s.handleMe)

		r.With(s.require(auth.RequireAuthenticated)).Get("/dashboard", s.handleDashboard)
		r.With(s.require(auth.RequireAdmin)).Get("/admin/summary", s.handleAdminSummary)

		r.With(s.require(auth.RequireAuthenticated)).Post("/payments/simulate", s.handlePaymentSimulate)
		r.With(s.require(auth.RequireAuthenticated)).Get("/payments/{id}", s.handlePaymentGet)
	})

	return r
}

// maintenanceGate answers 503 for the whole public surface while
// system.maintenanceMode is on. The /config routes stay reachable, the same
// exemption the front-end gives its dev panel.
func (s *Server) maintenanceGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.flags.System().MaintenanceMode {
			httpx.WriteJSON(w, http.StatusServiceUnavailable, map[string]any{
				"success":     false,
				"maintenance": true,
				"message":     "Sitio en mantenimiento",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// require gates a route on the access decision. The decision is advisory
// client-visible gating, not a trust boundary; system.enableAuthBypass
// short-circuits it entirely (dev shortcut).
func (s *Server) require(req auth.Requirement) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if s.flags.System().EnableAuthBypass {
				next.ServeHTTP(w, r)
				return
			}
			decision := auth.Decide(req, s.auth.Snapshot())
			if !decision.Allow {
				status := http.StatusUnauthorized
				message := "Debes iniciar sesión"
				if decision.Reason == auth.DenyWrongRole {
					status = http.StatusForbidden
					message = "No tienes permisos de administrador"
				}
				httpx.WriteJSON(w, status, map[string]any{
					"success": false,
					"reason":  string(decision.Reason),
					"message": message,
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func readJSONBody(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(dst)
}
