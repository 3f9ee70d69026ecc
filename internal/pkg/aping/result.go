package aping

import (
	"fmt"

	"github.com/lidofinance/betfair-aping/internal/pkg/aping/entity"
)

// ResultOrError returns the `result` member of a JSON-RPC response body.
// A missing or null result is an *ApiError carrying the whole body.
func ResultOrError(resp *entity.Response) (any, error) {
	data, err := resp.JSON()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUndecodableReply, &ApiError{Response: resp})
	}

	if body, ok := data.(map[string]any); ok {
		if result := body["result"]; result != nil {
			return result, nil
		}
	}

	return nil, &ApiError{Response: resp, Body: data}
}
