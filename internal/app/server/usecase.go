package server

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/lidofinance/betfair-aping/internal/connectors/metrics"
	"github.com/lidofinance/betfair-aping/internal/env"
	"github.com/lidofinance/betfair-aping/internal/pkg/betfair"
)

type Services struct {
	Betfair *betfair.Client
}

func NewServices(cfg *env.AppConfig, metricsStore *metrics.Store) Services {
	transport := &http.Transport{
		MaxIdleConns:          30,
		MaxIdleConnsPerHost:   5,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	httpClient := &http.Client{
		Transport: transport,
		Timeout:   10 * time.Second,
	}

	opts := []betfair.Option{
		betfair.WithEndpoints(betfair.Endpoints{
			Betting:  cfg.BettingURL,
			Account:  cfg.AccountURL,
			Identity: cfg.IdentityURL,
		}),
	}

	if cfg.RequestsPerSecond > 0 {
		opts = append(opts, betfair.WithRateLimit(rate.Limit(cfg.RequestsPerSecond), 1))
	}

	return Services{
		Betfair: betfair.NewClient(cfg.AppKey, httpClient, metricsStore, opts...),
	}
}
