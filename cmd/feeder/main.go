package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/lidofinance/betfair-aping/internal/app/feeder"
	"github.com/lidofinance/betfair-aping/internal/app/server"
	"github.com/lidofinance/betfair-aping/internal/connectors/logger"
	"github.com/lidofinance/betfair-aping/internal/connectors/metrics"
	nc "github.com/lidofinance/betfair-aping/internal/connectors/nats"
	"github.com/lidofinance/betfair-aping/internal/env"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()
	g, gCtx := errgroup.WithContext(ctx)

	cfg, envErr := env.Read("")
	if envErr != nil {
		fmt.Println("Read env error:", envErr.Error())
		return
	}

	log := logger.New(&cfg.AppConfig)

	if len(cfg.AppConfig.MarketIDs) == 0 {
		log.Error("MARKET_IDS is empty, nothing to feed")
		return
	}

	natsClient, natsErr := nc.New(&cfg.AppConfig, log)
	if natsErr != nil {
		log.Error(fmt.Sprintf(`Could not connect to nats error: %v`, natsErr))
		return
	}
	defer natsClient.Close()
	log.Info("Nats connected")

	js, jetStreamErr := jetstream.New(natsClient)
	if jetStreamErr != nil {
		log.Error(fmt.Sprintf(`Could not connect to jetStream error: %v`, jetStreamErr))
		return
	}
	log.Info("Nats jetStream connected")

	r := chi.NewRouter()
	metricsStore := metrics.New(prometheus.NewRegistry(), cfg.AppConfig.MetricsPrefix, cfg.AppConfig.Name, cfg.AppConfig.Env)

	services := server.NewServices(&cfg.AppConfig, metricsStore)
	app := server.New(&cfg.AppConfig, log, metricsStore, &services)

	app.Metrics.BuildInfo.Inc()

	if loginErr := services.Betfair.Login(ctx, cfg.AppConfig.Username, cfg.AppConfig.Password); loginErr != nil {
		log.Error(fmt.Sprintf(`Could not login to Betfair: %v`, loginErr))
		return
	}
	log.Info("Logged in to Betfair")

	feederWrk := feeder.New(log, services.Betfair, js, metricsStore,
		cfg.AppConfig.MarketBookTopic, cfg.AppConfig.MarketIDs,
		cfg.AppConfig.PollInterval, cfg.AppConfig.KeepAliveInterval,
	)
	feederWrk.Run(gCtx, g)

	app.RegisterInfraRoutes(r)
	app.RunHTTPServer(gCtx, g, cfg.AppConfig.Port, r)

	log.Info(fmt.Sprintf(`Started %s feeder`, cfg.AppConfig.Name))

	if err := g.Wait(); err != nil {
		log.Error(err.Error())
	}

	if logoutErr := services.Betfair.Logout(context.Background()); logoutErr != nil {
		log.Warn(fmt.Sprintf(`Logout error: %v`, logoutErr))
	}

	fmt.Println(`Main done`)
}
