package account

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/lidofinance/betfair-aping/internal/http/handlers/render"
	"github.com/lidofinance/betfair-aping/internal/pkg/aping/entity"
)

type FundsSrv interface {
	GetAccountFunds(ctx context.Context) (*entity.AccountFundsResponse, error)
}

type handler struct {
	log      *slog.Logger
	fundsSrv FundsSrv
}

func New(log *slog.Logger, fundsSrv FundsSrv) *handler {
	return &handler{
		log:      log,
		fundsSrv: fundsSrv,
	}
}

func (h *handler) Funds(w http.ResponseWriter, r *http.Request) {
	funds, err := h.fundsSrv.GetAccountFunds(r.Context())
	if err != nil {
		render.Error(w, h.log, fmt.Errorf("could not get account funds: %w", err))
		return
	}

	render.JSON(w, h.log, funds)
}
