package markets

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lidofinance/betfair-aping/internal/http/handlers/render"
	"github.com/lidofinance/betfair-aping/internal/pkg/aping/entity"
	"github.com/lidofinance/betfair-aping/internal/pkg/betfair"
)

type MarketSrv interface {
	ListEventTypes(ctx context.Context, p betfair.ListParams) ([]*entity.EventTypeResult, error)
	ListEvents(ctx context.Context, p betfair.ListParams) ([]*entity.EventResult, error)
	ListMarketBook(ctx context.Context, p betfair.ListMarketBookParams) ([]*entity.MarketBook, error)
}

type handler struct {
	log       *slog.Logger
	marketSrv MarketSrv
}

func New(log *slog.Logger, marketSrv MarketSrv) *handler {
	return &handler{
		log:       log,
		marketSrv: marketSrv,
	}
}

func (h *handler) EventTypes(w http.ResponseWriter, r *http.Request) {
	eventTypes, err := h.marketSrv.ListEventTypes(r.Context(), betfair.ListParams{
		Locale: r.URL.Query().Get("locale"),
	})
	if err != nil {
		render.Error(w, h.log, fmt.Errorf("could not list event types: %w", err))
		return
	}

	render.JSON(w, h.log, eventTypes)
}

func (h *handler) Events(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := &entity.MarketFilter{
		TextQuery:    query.Get("q"),
		EventTypeIDs: query["eventTypeId"],
	}

	events, err := h.marketSrv.ListEvents(r.Context(), betfair.ListParams{
		Filter: filter,
		Locale: query.Get("locale"),
	})
	if err != nil {
		render.Error(w, h.log, fmt.Errorf("could not list events: %w", err))
		return
	}

	render.JSON(w, h.log, events)
}

func (h *handler) Book(w http.ResponseWriter, r *http.Request) {
	marketID := chi.URLParam(r, "marketID")

	books, err := h.marketSrv.ListMarketBook(r.Context(), betfair.ListMarketBookParams{
		MarketIDs: []string{marketID},
		PriceProjection: &entity.PriceProjection{
			PriceData: []entity.PriceData{entity.PriceDataExBestOffers},
		},
	})
	if err != nil {
		render.Error(w, h.log, fmt.Errorf("could not get market book %s: %w", marketID, err))
		return
	}

	if len(books) == 0 {
		http.Error(w, fmt.Sprintf("market %s not found", marketID), http.StatusNotFound)
		return
	}

	render.JSON(w, h.log, books[0])
}
