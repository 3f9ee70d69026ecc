package aping

import (
	"net/http"
	"slices"

	"github.com/lidofinance/betfair-aping/internal/pkg/aping/entity"
)

type StatusPredicate func(resp *entity.Response) bool

// CheckStatusCode fails with *ApiError unless the status code is one of codes.
// With no codes only 200 is accepted.
func CheckStatusCode(resp *entity.Response, codes ...int) error {
	if len(codes) == 0 {
		codes = []int{http.StatusOK}
	}

	return CheckStatus(resp, func(r *entity.Response) bool {
		return slices.Contains(codes, r.StatusCode)
	})
}

// CheckStatus fails with *ApiError unless ok accepts resp. A nil ok accepts only 200.
func CheckStatus(resp *entity.Response, ok StatusPredicate) error {
	if ok == nil {
		return CheckStatusCode(resp)
	}

	if !ok(resp) {
		return newApiError(resp)
	}

	return nil
}
