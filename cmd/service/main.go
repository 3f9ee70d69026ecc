package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/lidofinance/betfair-aping/internal/app/server"
	"github.com/lidofinance/betfair-aping/internal/app/session"
	"github.com/lidofinance/betfair-aping/internal/connectors/logger"
	"github.com/lidofinance/betfair-aping/internal/connectors/metrics"
	"github.com/lidofinance/betfair-aping/internal/env"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	cfg, envErr := env.Read("")
	if envErr != nil {
		fmt.Println("Read env error:", envErr.Error())
		return
	}

	log := logger.New(&cfg.AppConfig)

	r := chi.NewRouter()
	metricsStore := metrics.New(prometheus.NewRegistry(), cfg.AppConfig.MetricsPrefix, cfg.AppConfig.Name, cfg.AppConfig.Env)

	services := server.NewServices(&cfg.AppConfig, metricsStore)
	app := server.New(&cfg.AppConfig, log, metricsStore, &services)

	app.Metrics.BuildInfo.Inc()

	g, gCtx := errgroup.WithContext(ctx)

	// Without a session every API route answers 401, health and metrics still work.
	if loginErr := services.Betfair.Login(ctx, cfg.AppConfig.Username, cfg.AppConfig.Password); loginErr != nil {
		log.Error(fmt.Sprintf(`Could not login to Betfair: %v`, loginErr))
	} else {
		log.Info("Logged in to Betfair")
		session.KeepAlive(gCtx, g, log, services.Betfair, cfg.AppConfig.KeepAliveInterval)
	}

	app.RegisterRoutes(r)
	app.RunHTTPServer(gCtx, g, cfg.AppConfig.Port, r)

	log.Info(fmt.Sprintf(`Started %s application`, cfg.AppConfig.Name))

	if err := g.Wait(); err != nil {
		log.Error(err.Error())
	}

	if services.Betfair.SessionToken() != "" {
		if logoutErr := services.Betfair.Logout(context.Background()); logoutErr != nil {
			log.Warn(fmt.Sprintf(`Logout error: %v`, logoutErr))
		}
	}

	fmt.Println(`Main done`)
}
