// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Route admission happens here: every mount sits behind the gate its
    audience requires, so no handler needs to re-check roles.
  - Only this package and cmd/gateway are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/voltcart/internal/account"
	"github.com/taibuivan/voltcart/internal/admin"
	"github.com/taibuivan/voltcart/internal/admission"
	"github.com/taibuivan/voltcart/internal/platform/config"
	"github.com/taibuivan/voltcart/internal/platform/constants"
	"github.com/taibuivan/voltcart/internal/platform/middleware"
	"github.com/taibuivan/voltcart/internal/session"
	"github.com/taibuivan/voltcart/internal/storefront/cart"
	"github.com/taibuivan/voltcart/internal/storefront/catalog"
	"github.com/taibuivan/voltcart/internal/storefront/checkout"
	"github.com/taibuivan/voltcart/internal/storefront/order"
	"github.com/taibuivan/voltcart/internal/storefront/wishlist"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth establishes and tears down browser sessions.
	Auth *session.Handler

	// Catalog is the public product browsing surface.
	Catalog *catalog.Handler

	// Cart manages the shopper's cart and its gateway cache.
	Cart *cart.Handler

	// Wishlist manages the shopper's wishlist and its gateway cache.
	Wishlist *wishlist.Handler

	// Order exposes the shopper's order history.
	Order *order.Handler

	// Checkout runs order placement and payment verification.
	Checkout *checkout.Handler

	// Account manages the shopper's own profile.
	Account *account.Handler

	// Admin is the whole back-office surface.
	Admin *admin.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups behind their admission gates.
func NewServer(ctx context.Context, cfg *config.Config, log *slog.Logger, hydrator middleware.SessionHydrator, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution. Session loading sits
	// after recovery so a corrupt session record cannot take the worker down,
	// and before the routes so every gate sees the hydrated session.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(ctx))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.LoadSession(hydrator))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", h.Auth.Routes(admission.RequireNoAuth()))

		// Public storefront. Signed-in administrators are bounced to the
		// back office instead of browsing the shop.
		api.Group(func(store chi.Router) {
			store.Use(admission.RequireStorefront())
			store.Mount("/products", h.Catalog.Routes())
		})

		// Any signed-in identity.
		api.Group(func(authed chi.Router) {
			authed.Use(admission.RequireAuth())
			authed.Mount("/cart", h.Cart.Routes())
			authed.Mount("/wishlist", h.Wishlist.Routes())
			authed.Mount("/account", h.Account.Routes())
		})

		// Shoppers only.
		api.Group(func(shopper chi.Router) {
			shopper.Use(admission.RequireRoles(session.RoleUser))
			shopper.Mount("/orders", h.Order.Routes())
			shopper.Mount("/checkout", h.Checkout.Routes())
			shopper.Mount("/payment", h.Checkout.PaymentRoutes())
		})

		// Back office.
		api.Group(func(back chi.Router) {
			back.Use(admission.RequireRoles(session.RoleAdmin, session.RoleSuperAdmin))
			back.Mount("/admin", h.Admin.Routes())
		})
		api.Group(func(root chi.Router) {
			root.Use(admission.RequireRoles(session.RoleSuperAdmin))
			root.Mount("/super-admin/admins", h.Admin.SuperAdminRoutes())
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
