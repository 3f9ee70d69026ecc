package nats

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/lidofinance/betfair-aping/internal/env"
)

var (
	natsClient        *nats.Conn
	onceDefaultClient sync.Once
)

func New(cfg *env.AppConfig, log *slog.Logger) (*nats.Conn, error) {
	var err error

	onceDefaultClient.Do(func() {
		natsClient, err = nats.Connect(cfg.NatsDefaultURL,
			nats.Name(cfg.Name),
			nats.ReconnectWait(2*time.Second),
			nats.DisconnectErrHandler(func(_ *nats.Conn, disconnectErr error) {
				log.Warn(fmt.Sprintf("Nats client got disconnected: %v", disconnectErr))
			}),
			nats.ReconnectHandler(func(nc *nats.Conn) {
				log.Info(fmt.Sprintf("Nats client got reconnected to %v", nc.ConnectedUrl()))
			}),
			nats.ClosedHandler(func(_ *nats.Conn) {
				log.Info("Nats connection closed")
			}))
	})

	return natsClient, err
}
