// Package handler implements the HTTP handlers for the namebook server.
// All handlers are methods on Server. Methods are split into files by
// resource (health.go, record.go) but share the same Server struct so they
// can reach its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/namebook/internal/domain"
)

// RecordServicer defines the business operations the record handlers depend on.
// Defining the interface here, in the consumer package, lets handler tests
// inject a mock without touching the database or service layer.
type RecordServicer interface {
	Create(ctx context.Context, name string) (domain.Record, error)
	List(ctx context.Context) ([]domain.Record, error)
}

// Server holds the dependencies shared by every handler.
// Build it with NewServer and mount Routes in main.go.
type Server struct {
	records RecordServicer
	log     *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil logger falls back to slog.Default().
func NewServer(records RecordServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{records: records, log: log}
}

// Routes returns the router for every endpoint the server exposes.
// Methods other than the ones registered get 405 from chi.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/", s.ListRecords)
	r.Post("/", s.CreateRecord)
	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)
	return r
}
