package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

type KeepAliver interface {
	KeepAlive(ctx context.Context) error
}

// KeepAlive extends the session every interval until ctx is done. Failures are logged, the loop goes on.
func KeepAlive(ctx context.Context, g *errgroup.Group, log *slog.Logger, srv KeepAliver, interval time.Duration) {
	g.Go(func() error {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
				if err := srv.KeepAlive(ctx); err != nil {
					log.Error(fmt.Sprintf("KeepAlive error: %v", err))
					continue
				}
				log.Debug("Session kept alive")
			}
		}
	})
}
