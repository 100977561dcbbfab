// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/streamerdata/internal/middleware"
)

// chiMiddleware adapts http.HandlerFunc middleware to Chi's func(http.Handler) http.Handler.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// SetupChi configures all HTTP routes using Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()
	h := router.handler

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(chiMiddleware(middleware.RequestID)) // X-Request-ID, request-scoped logger context
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight
	r.Use(chimiddleware.Compress(5, "application/json"))
	r.Use(chiMiddleware(middleware.AccessLog(router.slowRequest)))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, http.StatusNotFound, ErrCodeNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed", nil)
	})

	// ========================
	// Operational Endpoints
	// ========================
	r.Get("/", h.Root)
	r.Route("/health", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Get("/live", h.HealthLive)
		r.Get("/ready", h.HealthReady)
	})
	r.Handle("/metrics", promhttp.Handler())

	// ========================
	// API Endpoints
	// ========================
	r.Route("/api", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		r.Get("/", h.Root)

		r.Route("/ranking", func(r chi.Router) {
			r.Get("/revenue", h.RankingRevenue)
			r.Get("/faturamento", h.RankingRevenue) // legacy alias
			r.Get("/viral-videos", h.RankingViralVideos)
			r.Get("/videos-virais", h.RankingViralVideos) // legacy alias
			r.Get("/streamers", h.RankingStreamers)
			r.Get("/top-viewers", h.RankingTopViewers)
		})

		r.Route("/platforms", func(r chi.Router) {
			r.Get("/", h.ListPlatforms)
			r.Post("/", h.CreatePlatform)
			r.Get("/{nro}", h.GetPlatform)
			r.Put("/{nro}", h.UpdatePlatform)
			r.Delete("/{nro}", h.DeletePlatform)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.ListUsers)
			r.Post("/", h.CreateUser)
			r.Get("/{id}", h.GetUser)
			r.Put("/{id}", h.UpdateUser)
			r.Delete("/{id}", h.DeleteUser)
		})

		r.Route("/channels", func(r chi.Router) {
			r.Get("/", h.ListChannels)
			r.Post("/", h.CreateChannel)
			r.Get("/{id}", h.GetChannel)
			r.Put("/{id}", h.UpdateChannel)
			r.Delete("/{id}", h.DeleteChannel)
		})

		r.Route("/videos", func(r chi.Router) {
			r.Get("/", h.ListVideos)
			r.Post("/", h.CreateVideo)
			r.Get("/{id_canal}/{id_video}", h.GetVideo)
			r.Put("/{id_canal}/{id_video}", h.UpdateVideo)
			r.Delete("/{id_canal}/{id_video}", h.DeleteVideo)
		})

		r.Route("/donations", func(r chi.Router) {
			r.Get("/", h.ListDonations)
			r.Post("/", h.CreateDonation)

			const key = "/{id_video}/{id_canal}/{id_usuario}/{seq_comentario}/{seq_pg}"
			r.Put(key, h.UpdateDonation)
			r.Delete(key, h.DeleteDonation)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/revenue-over-time", h.ReportRevenueOverTime)
			r.Get("/distribution-by-theme", h.ReportDistributionByTheme)
			r.Get("/drilldown-performance", h.ReportDrilldownPerformance)
			r.Post("/refresh", h.ReportRefresh)
		})

		r.Get("/companies", h.Companies)
		r.Get("/countries", h.Countries)
	})

	return r
}
