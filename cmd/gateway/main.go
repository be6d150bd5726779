// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command gateway is the entry point for the Voltcart storefront gateway.
//
// The gateway sits between browsers and the commerce backend. It owns the
// browser session (cookie + Redis), attaches the backend bearer token to
// every upstream call, enforces route admission, and keeps the per-session
// cart and wishlist caches.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to Redis.
//  4. Build the upstream backend client.
//  5. Wire domain services and HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/taibuivan/voltcart/internal/account"
	"github.com/taibuivan/voltcart/internal/admin"
	"github.com/taibuivan/voltcart/internal/api"
	"github.com/taibuivan/voltcart/internal/platform/config"
	"github.com/taibuivan/voltcart/internal/platform/constants"
	"github.com/taibuivan/voltcart/internal/platform/ctxutil"
	redisstore "github.com/taibuivan/voltcart/internal/platform/redis"
	"github.com/taibuivan/voltcart/internal/session"
	"github.com/taibuivan/voltcart/internal/storefront/cart"
	"github.com/taibuivan/voltcart/internal/storefront/catalog"
	"github.com/taibuivan/voltcart/internal/storefront/checkout"
	"github.com/taibuivan/voltcart/internal/storefront/order"
	"github.com/taibuivan/voltcart/internal/storefront/wishlist"
	"github.com/taibuivan/voltcart/internal/upstream"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "voltcart"))
	slog.SetDefault(log)

	log.Info("[Voltcart] gateway_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	// A local .env is a development convenience; deployments configure
	// through the real environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "voltcart"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("upstream", cfg.UpstreamURL),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 4. Upstream Client ────────────────────────────────────────────────
	// The token source reads the hydrated session out of the request context,
	// so every upstream call automatically carries the caller's credential.
	upstreamAPI := upstream.NewClient(cfg.UpstreamURL, log)
	upstreamAPI.SetTokenSource(func(ctx context.Context) string {
		if current := session.FromContext(ctx); current != nil {
			return current.Token
		}
		return ""
	})

	// ── 5. Session Layer ──────────────────────────────────────────────────
	sessionStore := session.NewRedisStore(rdb)
	sessionManager := session.NewManager(sessionStore, upstreamAPI, log)

	// A 401 from the backend means the token died server-side. Evict the
	// local session so the next navigation starts clean at /login.
	upstreamAPI.OnAuthFailure(func(ctx context.Context) {
		sessionManager.ForceLogout(ctx, ctxutil.GetSessionID(ctx))
	})

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	cartService := cart.NewService(upstreamAPI, cart.NewRedisStore(rdb), log)
	wishlistService := wishlist.NewService(upstreamAPI, wishlist.NewRedisStore(rdb), log)
	sessionManager.RegisterCacheResetter(cartService)
	sessionManager.RegisterCacheResetter(wishlistService)

	catalogService := catalog.NewService(upstreamAPI, cfg.AssetBaseURL, log)
	orderService := order.NewService(upstreamAPI, log)
	checkoutService := checkout.NewService(upstreamAPI, log)
	accountService := account.NewService(upstreamAPI, log)
	adminService := admin.NewService(upstreamAPI, log)

	// ── 7. Health Handlers ────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
		CheckUpstream: func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return upstreamAPI.Get(ctx, "/products/categories", nil, nil)
		},
	}, log)

	// ── 8. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      session.NewHandler(sessionManager, cfg.IsProduction()),
		Catalog:   catalog.NewHandler(catalogService),
		Cart:      cart.NewHandler(cartService),
		Wishlist:  wishlist.NewHandler(wishlistService),
		Order:     order.NewHandler(orderService),
		Checkout:  checkout.NewHandler(checkoutService),
		Account:   account.NewHandler(accountService),
		Admin:     admin.NewHandler(adminService),
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, sessionManager, handlers)

	// ── 9. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
