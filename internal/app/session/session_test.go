package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sync/errgroup"
)

type fakeKeepAliver struct {
	calls atomic.Int32
	err   error
}

func (f *fakeKeepAliver) KeepAlive(context.Context) error {
	f.calls.Add(1)
	return f.err
}

func TestKeepAlive(t *testing.T) {
	tests := []struct {
		name string
		srv  *fakeKeepAliver
	}{
		{name: "extends session", srv: &fakeKeepAliver{}},
		{name: "keeps going after failures", srv: &fakeKeepAliver{err: errors.New("INVALID_SESSION_INFORMATION")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			g, gCtx := errgroup.WithContext(ctx)

			KeepAlive(gCtx, g, slog.New(slog.NewTextHandler(io.Discard, nil)), tt.srv, time.Millisecond)

			assert.Eventually(t, func() bool { return tt.srv.calls.Load() >= 3 }, time.Second, time.Millisecond)

			cancel()
			assert.ErrorIs(t, g.Wait(), context.Canceled)
		})
	}
}
