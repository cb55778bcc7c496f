// Package ui serves stored profiling reports over HTTP. It consumes the
// ReportStore and renderers only; nothing here touches the engine or raw
// datasets.
package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"dataprof/internal"
	"dataprof/ports"
	"dataprof/render"
)

// Server exposes the report browser and JSON API.
type Server struct {
	store  ports.ReportStore
	html   ports.ReportRenderer
	json   ports.ReportRenderer
	log    *internal.Logger
	router chi.Router
}

// NewServer wires the routes.
func NewServer(store ports.ReportStore, log *internal.Logger) *Server {
	s := &Server{
		store: store,
		html:  render.NewHTMLRenderer(),
		json:  render.NewJSONRenderer(),
		log:   log,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/reports/{id}", s.handleReport)
	r.Get("/api/reports", s.handleListJSON)
	r.Get("/api/reports/{id}", s.handleReportJSON)

	s.router = r
	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe runs the server on the given port.
func (s *Server) ListenAndServe(port string) error {
	s.log.Info("report server listening on :%s", port)
	return http.ListenAndServe(":"+port, s.router)
}
