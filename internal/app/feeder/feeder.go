package feeder

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/lidofinance/betfair-aping/internal/app/session"
	"github.com/lidofinance/betfair-aping/internal/connectors/metrics"
	"github.com/lidofinance/betfair-aping/internal/pkg/aping"
	"github.com/lidofinance/betfair-aping/internal/pkg/aping/entity"
	"github.com/lidofinance/betfair-aping/internal/pkg/betfair"
)

type BookSrv interface {
	ListMarketBook(ctx context.Context, p betfair.ListMarketBookParams) ([]*entity.MarketBook, error)
	KeepAlive(ctx context.Context) error
}

type Feeder struct {
	log               *slog.Logger
	bookSrv           BookSrv
	js                jetstream.JetStream
	metricsStore      *metrics.Store
	topic             string
	marketIDs         []string
	pollInterval      time.Duration
	keepAliveInterval time.Duration

	lastVersions map[string]int64
}

func New(log *slog.Logger, bookSrv BookSrv, js jetstream.JetStream, metricsStore *metrics.Store,
	topic string, marketIDs []string, pollInterval, keepAliveInterval time.Duration,
) *Feeder {
	return &Feeder{
		log:               log,
		bookSrv:           bookSrv,
		js:                js,
		metricsStore:      metricsStore,
		topic:             topic,
		marketIDs:         marketIDs,
		pollInterval:      pollInterval,
		keepAliveInterval: keepAliveInterval,
		lastVersions:      make(map[string]int64),
	}
}

var bookProjection = &entity.PriceProjection{
	PriceData: []entity.PriceData{entity.PriceDataExBestOffers, entity.PriceDataExTraded},
}

func (w *Feeder) Run(ctx context.Context, g *errgroup.Group) {
	g.Go(func() error {
		ticker := time.NewTicker(w.pollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
				w.tick(ctx)
			}
		}
	})

	session.KeepAlive(ctx, g, w.log, w.bookSrv, w.keepAliveInterval)
}

// tick publishes every market book whose version changed since the previous tick.
func (w *Feeder) tick(ctx context.Context) {
	books, err := w.bookSrv.ListMarketBook(ctx, betfair.ListMarketBookParams{
		MarketIDs:       w.marketIDs,
		PriceProjection: bookProjection,
	})
	if err != nil {
		w.metricsStore.PublishedBooks.With(prometheus.Labels{metrics.Status: metrics.StatusFail}).Inc()
		w.log.Error(fmt.Sprintf("ListMarketBook error: %v", err))
		return
	}

	for _, book := range books {
		if prev, ok := w.lastVersions[book.MarketID]; ok && prev == book.Version {
			continue
		}

		if err := w.publish(book); err != nil {
			w.metricsStore.PublishedBooks.With(prometheus.Labels{metrics.Status: metrics.StatusFail}).Inc()
			w.log.Error(fmt.Sprintf("could not publish market book %s: %v", book.MarketID, err))
			continue
		}

		w.lastVersions[book.MarketID] = book.Version
		w.metricsStore.PublishedBooks.With(prometheus.Labels{metrics.Status: metrics.StatusOk}).Inc()
		w.log.Info(fmt.Sprintf(`%s, version %d`, book.MarketID, book.Version), slog.String("status", book.Status.Name()))
	}
}

func (w *Feeder) publish(book *entity.MarketBook) error {
	flat, err := aping.ModelToDict(book)
	if err != nil {
		return fmt.Errorf("could not flatten: %w", err)
	}

	payload, err := aping.Marshal(flat)
	if err != nil {
		return fmt.Errorf("could not marshal: %w", err)
	}

	cPayload, err := compress(payload)
	if err != nil {
		return fmt.Errorf("could not compress by zstd: %w", err)
	}

	if _, err := w.js.PublishAsync(w.topic, cPayload.Bytes(),
		jetstream.WithMsgID(fmt.Sprintf("%s:%d", book.MarketID, book.Version)),
		//nolint
		jetstream.WithRetryAttempts(5),
		//nolint
		jetstream.WithRetryWait(250*time.Millisecond),
	); err != nil {
		return fmt.Errorf("could not publish to JetStream: %w", err)
	}

	return nil
}

func compress(payload []byte) (*bytes.Buffer, error) {
	cPayload := &bytes.Buffer{}
	zstdWriter, err := zstd.NewWriter(cPayload)
	if err != nil {
		return nil, err
	}

	if _, zstdErr := zstdWriter.Write(payload); zstdErr != nil {
		zstdWriter.Close()
		return nil, zstdErr
	}

	if err := zstdWriter.Close(); err != nil {
		return nil, err
	}

	return cPayload, nil
}
