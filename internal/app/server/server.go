// Package server wires the reference record store: config, storage
// backend, router.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"payrolldesk/internal/db"
	"payrolldesk/internal/platform/config"
	"payrolldesk/internal/store/postgres"
	"payrolldesk/internal/store/sqlite"
	payrollhandler "payrolldesk/internal/transport/http/handlers/payroll"
	"payrolldesk/internal/transport/http/middleware"
)

type App struct {
	Config config.Config
	Router http.Handler

	ping  func(context.Context) error
	close func()
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	app := &App{Config: cfg}

	var handler *payrollhandler.Handler
	switch cfg.StoreDriver {
	case "postgres":
		pool, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("db connect failed: %w", err)
		}
		if cfg.RunMigrations {
			if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
				pool.Close()
				return nil, fmt.Errorf("migrations failed: %w", err)
			}
		}
		app.ping = pool.Ping
		app.close = pool.Close
		handler = payrollhandler.NewHandler(postgres.New(pool))
	case "sqlite":
		store, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		app.ping = store.Ping
		app.close = func() { _ = store.Close() }
		handler = payrollhandler.NewHandler(store)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(chimiddleware.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := app.ping(ctx); err != nil {
			http.Error(w, "store not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api", func(r chi.Router) {
		handler.RegisterRoutes(r)
	})

	app.Router = router
	return app, nil
}

func (a *App) Close() {
	if a.close != nil {
		a.close()
	}
}

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	app, err := New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}
	defer app.Close()

	log.Printf("payroll store listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, app.Router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
