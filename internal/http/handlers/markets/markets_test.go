package markets

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lidofinance/betfair-aping/internal/pkg/aping"
	"github.com/lidofinance/betfair-aping/internal/pkg/aping/entity"
	"github.com/lidofinance/betfair-aping/internal/pkg/betfair"
)

type fakeMarketSrv struct {
	eventTypes []*entity.EventTypeResult
	events     []*entity.EventResult
	books      []*entity.MarketBook
	err        error

	lastList betfair.ListParams
	lastBook betfair.ListMarketBookParams
}

func (f *fakeMarketSrv) ListEventTypes(_ context.Context, p betfair.ListParams) ([]*entity.EventTypeResult, error) {
	f.lastList = p
	return f.eventTypes, f.err
}

func (f *fakeMarketSrv) ListEvents(_ context.Context, p betfair.ListParams) ([]*entity.EventResult, error) {
	f.lastList = p
	return f.events, f.err
}

func (f *fakeMarketSrv) ListMarketBook(_ context.Context, p betfair.ListMarketBookParams) ([]*entity.MarketBook, error) {
	f.lastBook = p
	return f.books, f.err
}

func newRouter(srv MarketSrv) http.Handler {
	h := New(slog.New(slog.NewTextHandler(io.Discard, nil)), srv)

	r := chi.NewRouter()
	r.Get("/event-types", h.EventTypes)
	r.Get("/events", h.Events)
	r.Get("/markets/{marketID}/book", h.Book)

	return r
}

func serve(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	return rec
}

func Test_handler_EventTypes(t *testing.T) {
	srv := &fakeMarketSrv{
		eventTypes: []*entity.EventTypeResult{
			{EventType: &entity.EventType{ID: "1", Name: "Soccer"}, MarketCount: 3},
		},
	}

	rec := serve(t, newRouter(srv), "/event-types?locale=en")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `[{"eventType":{"id":"1","name":"Soccer"},"marketCount":3}]`, rec.Body.String())
	assert.Equal(t, "en", srv.lastList.Locale)
}

func Test_handler_Events(t *testing.T) {
	srv := &fakeMarketSrv{events: []*entity.EventResult{}}

	rec := serve(t, newRouter(srv), "/events?eventTypeId=1&eventTypeId=7")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	require.NotNil(t, srv.lastList.Filter)
	assert.Equal(t, []string{"1", "7"}, srv.lastList.Filter.EventTypeIDs)
}

func Test_handler_Book(t *testing.T) {
	srv := &fakeMarketSrv{
		books: []*entity.MarketBook{
			{
				MarketID: "1.23",
				Status:   entity.MarketStatusOpen,
				Version:  9,
				Runners: []*entity.Runner{
					{
						SelectionID: 47972,
						Status:      entity.RunnerStatusActive,
						Ex: &entity.ExchangePrices{
							AvailableToBack: []*entity.PriceSize{{Price: 2.5, Size: 10}},
						},
					},
				},
			},
		},
	}

	rec := serve(t, newRouter(srv), "/markets/1.23/book")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"1.23"}, srv.lastBook.MarketIDs)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "1.23", body["marketId"])
	assert.Equal(t, "OPEN", body["status"])
	assert.EqualValues(t, 9, body["version"])

	runners, ok := body["runners"].([]any)
	require.True(t, ok)
	require.Len(t, runners, 1)

	runner := runners[0].(map[string]any)
	assert.Equal(t, "ACTIVE", runner["status"])
	assert.Nil(t, runner["removalDate"])

	back := runner["ex"].(map[string]any)["availableToBack"].([]any)
	assert.Equal(t, map[string]any{"price": 2.5, "size": 10.0}, back[0])
}

func Test_handler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		srv    *fakeMarketSrv
		target string
		want   int
	}{
		{
			name:   "not logged in",
			srv:    &fakeMarketSrv{err: aping.ErrNotLoggedIn},
			target: "/event-types",
			want:   http.StatusUnauthorized,
		},
		{
			name:   "api error",
			srv:    &fakeMarketSrv{err: &aping.ApiError{Response: &entity.Response{StatusCode: http.StatusBadRequest}}},
			target: "/events",
			want:   http.StatusBadGateway,
		},
		{
			name:   "unknown market",
			srv:    &fakeMarketSrv{},
			target: "/markets/1.99/book",
			want:   http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, newRouter(tt.srv), tt.target)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
