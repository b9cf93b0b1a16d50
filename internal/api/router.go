package api

import (
	"context"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/mvail/userdir/internal/api/middleware"
	"github.com/mvail/userdir/internal/core"
)

// UserStore is the slice of the store the API needs. Tests substitute a
// fake; production wires *store.Store.
type UserStore interface {
	ListUsers(ctx context.Context) ([]core.User, error)
	Ping(ctx context.Context) error
}

type API struct {
	store UserStore
	log   *zap.Logger
}

func NewAPI(store UserStore, log *zap.Logger) *API {
	return &API{store: store, log: log}
}

func (a *API) Router(cfg Config) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recoverer(a.log))
	r.Use(middleware.Logger(a.log))
	r.Use(chiMiddleware.Timeout(cfg.RequestTimeout))

	r.Get("/health", a.HealthHandler)
	r.Get("/readyz", a.ReadyHandler)
	r.Get("/users", a.ListUsers)

	return r
}
