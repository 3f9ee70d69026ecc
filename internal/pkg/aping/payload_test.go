package aping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakePayload(t *testing.T) {
	tests := []struct {
		name       string
		base       string
		method     string
		wantMethod string
	}{
		{name: "sports", base: BaseSports, method: "listEvents", wantMethod: "SportsAPING/v1.0/listEvents"},
		{name: "account", base: BaseAccount, method: "getAccountFunds", wantMethod: "AccountAPING/v1.0/getAccountFunds"},
		{name: "no separator added", base: "Heartbeat/", method: "heartbeat", wantMethod: "Heartbeat/APING/v1.0/heartbeat"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := map[string]any{"filter": map[string]any{}}
			got := MakePayload(tt.base, tt.method, params)

			assert.Equal(t, "2.0", got.JSONRPC)
			assert.Equal(t, tt.wantMethod, got.Method)
			assert.Equal(t, 1, got.ID)
			assert.Equal(t, params, got.Params)
		})
	}
}

func TestMakePayload_ParamsByReference(t *testing.T) {
	params := map[string]any{}
	payload := MakePayload(BaseSports, "listEventTypes", params)

	params["locale"] = "en"
	assert.Equal(t, "en", payload.Params["locale"])
}
