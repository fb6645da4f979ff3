// Package httpapi exposes the auth use-cases as JSON over HTTP. It owns
// request decoding, the cookie contract, and the mapping from domain errors
// to status codes; all auth logic lives behind the auth.Service.
package httpapi

import (
	"context"
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/0xfrait/auth-service/internal/auth"
	"github.com/0xfrait/auth-service/pkg/cookie"
)

// Healthcheck probes a backing dependency.
type Healthcheck func(context.Context) error

// Handler carries the dependencies shared by all endpoints.
type Handler struct {
	svc     *auth.Service
	cookies *cookie.Manager
	log     *slog.Logger
	probes  []Healthcheck
}

// NewHandler creates the endpoint set. A nil logger falls back to the
// default; probes are optional.
func NewHandler(svc *auth.Service, cookies *cookie.Manager, log *slog.Logger, probes ...Healthcheck) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{svc: svc, cookies: cookies, log: log, probes: probes}
}

// Router assembles the route table.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Post("/signup", h.handleSignup)
	r.Post("/login", h.handleLogin)
	r.Post("/verify-2fa", h.handleVerifyTwoFactor)
	r.Post("/logout", h.handleLogout)
	r.Post("/verify-token", h.handleVerifyToken)
	r.Get("/health", h.handleHealth)

	return r
}
