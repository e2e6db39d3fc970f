// Package server implements the HTTP daemon that exposes LTL synthesis as an
// asynchronous job API.
package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dekarrin/ltlsynth/server/api"
	"github.com/dekarrin/ltlsynth/server/jobs"
	"github.com/dekarrin/ltlsynth/server/jobstore"
	"github.com/dekarrin/ltlsynth/server/middle"
)

// Server is an ltlsynthd daemon: an HTTP API in front of a job store and the
// worker pool that drains it.
type Server struct {
	router  chi.Router
	store   jobstore.Store
	backend *jobs.Service
	cfg     Config
}

// New builds a Server from cfg. It connects to the configured job store and
// starts the worker pool; callers must eventually call Close to release
// both.
func New(cfg Config) (Server, error) {
	cfg = cfg.FillDefaults()
	if err := cfg.Validate(); err != nil {
		return Server{}, fmt.Errorf("invalid config: %w", err)
	}

	store, err := cfg.DB.Connect()
	if err != nil {
		return Server{}, fmt.Errorf("connect to job store: %w", err)
	}

	backend := jobs.New(store, cfg.Workers)

	a := api.API{
		Backend:     backend,
		UnauthDelay: cfg.UnauthDelay(),
		Secret:      cfg.TokenSecret,
		APIKey:      cfg.APIKey,
	}

	r := chi.NewRouter()
	r.Use(middle.DontPanic())

	r.Route(api.PathPrefix, func(r chi.Router) {
		r.Post("/login", a.HTTPCreateLogin())
		r.Get("/info", a.HTTPGetInfo())

		r.Group(func(r chi.Router) {
			r.Use(middle.RequireAuth(cfg.TokenSecret, cfg.UnauthDelay()))
			r.Post("/jobs", a.HTTPCreateJob())
			r.Get("/jobs/{id}", a.HTTPGetJob())
		})
	})

	return Server{router: r, store: store, backend: backend, cfg: cfg}, nil
}

// ServeForever begins listening and blocks until the server exits or
// encounters a fatal error.
func (s Server) ServeForever() error {
	log.Printf("INFO  Listening on %s...", s.cfg.ListenAddress)
	return http.ListenAndServe(s.cfg.ListenAddress, s.router)
}

// Close stops the worker pool and releases the job store's resources. It
// does not shut down any in-flight HTTP connections; callers that need
// graceful HTTP shutdown should wrap ServeForever's http.Server separately.
func (s Server) Close() error {
	s.backend.Stop()
	return s.store.Close()
}
