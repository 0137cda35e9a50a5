package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cvnapi/internal/db"
	"cvnapi/internal/handlers"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(database *db.DB) {
	lookupHandler := handlers.NewLookupHandler(database)
	probeHandler := handlers.NewProbeHandler(database)

	s.App.Get("/", handlers.Index)

	// Lookup endpoint. POST is accepted for long identifier lists; the
	// query string takes precedence over form values.
	s.App.Get("/api", lookupHandler.Lookup)
	s.App.Post("/api", lookupHandler.Lookup)

	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)

	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
