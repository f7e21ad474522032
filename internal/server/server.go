// Package server boots the application: config, store, cache, middleware
// stack, routes, and the listener.
package server

import (
	"net/http"
	"time"

	"github.com/nikitaraj/foodbridge/app/models"
	"github.com/nikitaraj/foodbridge/app/routes"
	"github.com/nikitaraj/foodbridge/config"
	"github.com/nikitaraj/foodbridge/pkg/cache"
	"github.com/nikitaraj/foodbridge/pkg/database"
	"github.com/nikitaraj/foodbridge/pkg/logger"
	"github.com/nikitaraj/foodbridge/pkg/metrics"
	"github.com/nikitaraj/foodbridge/pkg/middleware"
	"github.com/nikitaraj/foodbridge/pkg/reqid"
	"github.com/nikitaraj/foodbridge/pkg/router"
)

// Start boots every dependency and serves until the process exits.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	if err := database.Connect(); err != nil {
		return err
	}

	if err := database.DB.AutoMigrate(
		&models.Provider{},
		&models.Receiver{},
		&models.FoodListing{},
		&models.Claim{},
	); err != nil {
		return err
	}

	// Redis is optional; without it report caching is simply off.
	if err := cache.Connect(); err != nil {
		logger.Warn("redis unavailable, report cache disabled", "error", err)
	}

	addr := ":" + config.AppPort()
	logger.Info("foodbridge serving", "addr", addr, "driver", config.DatabaseDriver())
	return http.ListenAndServe(addr, Handler())
}

// Handler builds the full middleware stack and routes. Split from Start
// so tests can mount it on httptest servers.
func Handler() http.Handler {
	r := router.New()

	// Global middleware stack, outermost first:
	//  1. Prometheus metrics, so totals include everything below
	//  2. Recovery, catching panics before they kill the goroutine
	//  3. Request ID, injected before anything logs
	//  4. Logger, which reads the request_id from context
	//  5. CORS headers
	//  6. Rate limiter
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(200, time.Minute))

	// Prometheus endpoint lives outside /api.
	r.HandleFunc("/metrics", metrics.Handler())

	routes.RegisterAPI(r)

	return r.Handler()
}
