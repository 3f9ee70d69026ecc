package metrics

import (
	"fmt"
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Store struct {
	Prometheus      *prometheus.Registry
	BuildInfo       prometheus.Counter
	Requests        *prometheus.CounterVec
	PublishedBooks  *prometheus.CounterVec
	SummaryHandlers *prometheus.HistogramVec
}

const Status = `status`
const Method = `method`

const StatusOk = `Ok`
const StatusFail = `Fail`

var Commit string

func New(promRegistry *prometheus.Registry, prefix, appName, env string) *Store {
	factory := promauto.With(promRegistry)

	return &Store{
		Prometheus: promRegistry,
		BuildInfo: factory.NewCounter(prometheus.CounterOpts{
			Name: fmt.Sprintf("%s_metric_build_info", prefix),
			Help: "Build information",
			ConstLabels: prometheus.Labels{
				"name":    appName,
				"env":     env,
				"commit":  Commit,
				"version": runtime.Version(),
			},
		}),
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: fmt.Sprintf("%s_aping_requests_total", prefix),
			Help: "The total number of API-NG requests",
		}, []string{Method, Status}),
		PublishedBooks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: fmt.Sprintf("%s_market_books_published_total", prefix),
			Help: "The total number of published market books",
		}, []string{Status}),
		SummaryHandlers: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    fmt.Sprintf("%s_request_processing_seconds", prefix),
			Help:    "Time spent processing request to API-NG",
			Buckets: prometheus.DefBuckets,
		}, []string{Method}),
	}
}
