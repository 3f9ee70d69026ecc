package betfair

import (
	"context"
	"fmt"

	"github.com/lidofinance/betfair-aping/internal/pkg/aping"
	"github.com/lidofinance/betfair-aping/internal/pkg/aping/entity"
)

// MarketBookChunkSize is the number of market ids sent in one listMarketBook request.
const MarketBookChunkSize = 40

const (
	DefaultMaxResults = 100
	MaxMaxResults     = 1000
)

type ListParams struct {
	Filter *entity.MarketFilter
	Locale string
}

func (p ListParams) params() map[string]any {
	filter := p.Filter
	if filter == nil {
		filter = &entity.MarketFilter{}
	}

	params := map[string]any{"filter": filter}
	if p.Locale != "" {
		params["locale"] = p.Locale
	}

	return params
}

type ListMarketCatalogueParams struct {
	ListParams
	MarketProjection []entity.MarketProjection
	Sort             entity.MarketSort
	MaxResults       int
}

type ListMarketBookParams struct {
	MarketIDs       []string
	PriceProjection *entity.PriceProjection
	OrderProjection entity.OrderProjection
	MatchProjection entity.MatchProjection
	CurrencyCode    string
	Locale          string
}

func (p ListMarketBookParams) params(marketIDs []string) map[string]any {
	params := map[string]any{"marketIds": marketIDs}
	if p.PriceProjection != nil {
		params["priceProjection"] = p.PriceProjection
	}
	if p.OrderProjection != 0 {
		params["orderProjection"] = p.OrderProjection
	}
	if p.MatchProjection != 0 {
		params["matchProjection"] = p.MatchProjection
	}
	if p.CurrencyCode != "" {
		params["currencyCode"] = p.CurrencyCode
	}
	if p.Locale != "" {
		params["locale"] = p.Locale
	}

	return params
}

var listEventTypes = aping.RequiresLogin(func(ctx context.Context, c *Client, p ListParams) ([]*entity.EventTypeResult, error) {
	result, err := c.call(ctx, aping.BaseSports, "listEventTypes", p.params())
	if err != nil {
		return nil, err
	}

	return aping.Many[entity.EventTypeResult](result)
})

var listCompetitions = aping.RequiresLogin(func(ctx context.Context, c *Client, p ListParams) ([]*entity.CompetitionResult, error) {
	result, err := c.call(ctx, aping.BaseSports, "listCompetitions", p.params())
	if err != nil {
		return nil, err
	}

	return aping.Many[entity.CompetitionResult](result)
})

var listEvents = aping.RequiresLogin(func(ctx context.Context, c *Client, p ListParams) ([]*entity.EventResult, error) {
	result, err := c.call(ctx, aping.BaseSports, "listEvents", p.params())
	if err != nil {
		return nil, err
	}

	return aping.Many[entity.EventResult](result)
})

var listMarketCatalogue = aping.RequiresLogin(func(ctx context.Context, c *Client, p ListMarketCatalogueParams) ([]*entity.MarketCatalogue, error) {
	maxResults := p.MaxResults
	if maxResults == 0 {
		maxResults = DefaultMaxResults
	}
	if maxResults < 0 || maxResults > MaxMaxResults {
		return nil, fmt.Errorf("%w: maxResults must be within 1..%d, got %d", aping.ErrInvalidArgument, MaxMaxResults, maxResults)
	}

	params := p.ListParams.params()
	params["maxResults"] = maxResults
	if len(p.MarketProjection) > 0 {
		params["marketProjection"] = p.MarketProjection
	}
	if p.Sort != 0 {
		params["sort"] = p.Sort
	}

	result, err := c.call(ctx, aping.BaseSports, "listMarketCatalogue", params)
	if err != nil {
		return nil, err
	}

	return aping.Many[entity.MarketCatalogue](result)
})

var listMarketBook = aping.RequiresLogin(func(ctx context.Context, c *Client, p ListMarketBookParams) ([]*entity.MarketBook, error) {
	chunks, err := aping.GetChunks(p.MarketIDs, MarketBookChunkSize)
	if err != nil {
		return nil, err
	}

	books := make([]*entity.MarketBook, 0, len(p.MarketIDs))
	for _, chunk := range chunks {
		result, err := c.call(ctx, aping.BaseSports, "listMarketBook", p.params(chunk))
		if err != nil {
			return nil, err
		}

		got, err := aping.Many[entity.MarketBook](result)
		if err != nil {
			return nil, err
		}
		books = append(books, got...)
	}

	return books, nil
})

func (c *Client) ListEventTypes(ctx context.Context, p ListParams) ([]*entity.EventTypeResult, error) {
	return listEventTypes(ctx, c, p)
}

func (c *Client) ListCompetitions(ctx context.Context, p ListParams) ([]*entity.CompetitionResult, error) {
	return listCompetitions(ctx, c, p)
}

func (c *Client) ListEvents(ctx context.Context, p ListParams) ([]*entity.EventResult, error) {
	return listEvents(ctx, c, p)
}

func (c *Client) ListMarketCatalogue(ctx context.Context, p ListMarketCatalogueParams) ([]*entity.MarketCatalogue, error) {
	return listMarketCatalogue(ctx, c, p)
}

// ListMarketBook fetches books for any number of markets, MarketBookChunkSize ids per request.
func (c *Client) ListMarketBook(ctx context.Context, p ListMarketBookParams) ([]*entity.MarketBook, error) {
	return listMarketBook(ctx, c, p)
}
