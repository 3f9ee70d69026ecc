package betfair

import (
	"context"

	"github.com/lidofinance/betfair-aping/internal/pkg/aping"
	"github.com/lidofinance/betfair-aping/internal/pkg/aping/entity"
)

var getAccountFunds = aping.RequiresLogin(func(ctx context.Context, c *Client, _ struct{}) (*entity.AccountFundsResponse, error) {
	result, err := c.call(ctx, aping.BaseAccount, "getAccountFunds", map[string]any{})
	if err != nil {
		return nil, err
	}

	return aping.One[entity.AccountFundsResponse](result)
})

var getAccountDetails = aping.RequiresLogin(func(ctx context.Context, c *Client, _ struct{}) (*entity.AccountDetailsResponse, error) {
	result, err := c.call(ctx, aping.BaseAccount, "getAccountDetails", map[string]any{})
	if err != nil {
		return nil, err
	}

	return aping.One[entity.AccountDetailsResponse](result)
})

func (c *Client) GetAccountFunds(ctx context.Context) (*entity.AccountFundsResponse, error) {
	return getAccountFunds(ctx, c, struct{}{})
}

func (c *Client) GetAccountDetails(ctx context.Context) (*entity.AccountDetailsResponse, error) {
	return getAccountDetails(ctx, c, struct{}{})
}
