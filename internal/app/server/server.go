package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/pprof"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lidofinance/betfair-aping/internal/connectors/metrics"
	"github.com/lidofinance/betfair-aping/internal/env"
	"github.com/lidofinance/betfair-aping/internal/http/handlers/account"
	"github.com/lidofinance/betfair-aping/internal/http/handlers/health"
	"github.com/lidofinance/betfair-aping/internal/http/handlers/markets"
)

const (
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultIdleTimeout  = 60 * time.Second
)

type App struct {
	env      *env.AppConfig
	Logger   *slog.Logger
	Metrics  *metrics.Store
	Services *Services
}

func New(config *env.AppConfig, logger *slog.Logger, promStore *metrics.Store, services *Services) *App {
	return &App{
		env:      config,
		Logger:   logger,
		Metrics:  promStore,
		Services: services,
	}
}

func (a *App) RunHTTPServer(ctx context.Context, g *errgroup.Group, appPort uint, router http.Handler) {
	server := &http.Server{
		Addr:           fmt.Sprintf(`:%d`, appPort),
		Handler:        router,
		ReadTimeout:    defaultReadTimeout,
		WriteTimeout:   defaultWriteTimeout,
		IdleTimeout:    defaultIdleTimeout,
		MaxHeaderBytes: http.DefaultMaxHeaderBytes,
	}

	g.Go(func() error {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultWriteTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})
}

// RegisterInfraRoutes mounts health, metrics and pprof. The feeder only needs these.
func (a *App) RegisterInfraRoutes(r chi.Router) {
	r.Get("/health", health.New().Handler)
	r.Get("/metrics", promhttp.HandlerFor(a.Metrics.Prometheus, promhttp.HandlerOpts{}).ServeHTTP)

	r.HandleFunc("/debug/pprof/", pprof.Index)
	r.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	r.HandleFunc("/debug/pprof/profile", pprof.Profile)
	r.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	r.HandleFunc("/debug/pprof/trace", pprof.Trace)
	r.HandleFunc("/debug/pprof/{action}", pprof.Index)
}

func (a *App) RegisterRoutes(r chi.Router) {
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	marketsH := markets.New(a.Logger, a.Services.Betfair)
	r.Get("/event-types", marketsH.EventTypes)
	r.Get("/events", marketsH.Events)
	r.Get("/markets/{marketID}/book", marketsH.Book)

	accountH := account.New(a.Logger, a.Services.Betfair)
	r.Get("/account/funds", accountH.Funds)

	a.RegisterInfraRoutes(r)
}
