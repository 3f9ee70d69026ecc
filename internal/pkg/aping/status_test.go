package aping

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lidofinance/betfair-aping/internal/pkg/aping/entity"
)

func TestCheckStatusCode(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		codes   []int
		wantErr bool
	}{
		{name: "200 with default codes", status: http.StatusOK},
		{name: "404 with default codes", status: http.StatusNotFound, wantErr: true},
		{name: "202 accepted explicitly", status: http.StatusAccepted, codes: []int{http.StatusOK, http.StatusAccepted}},
		{name: "200 rejected when not listed", status: http.StatusOK, codes: []int{http.StatusAccepted}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := jsonResponse(tt.status, `{"error":"bad"}`)
			err := CheckStatusCode(resp, tt.codes...)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			var apiErr *ApiError
			require.ErrorAs(t, err, &apiErr)
			assert.Same(t, resp, apiErr.Response)
			assert.Equal(t, map[string]any{"error": "bad"}, apiErr.Body)
		})
	}
}

func TestCheckStatus_Predicate(t *testing.T) {
	serverErrorsOnly := func(r *entity.Response) bool { return r.StatusCode < http.StatusInternalServerError }

	assert.NoError(t, CheckStatus(jsonResponse(http.StatusBadRequest, `{}`), serverErrorsOnly))

	var apiErr *ApiError
	require.ErrorAs(t, CheckStatus(jsonResponse(http.StatusBadGateway, `{}`), serverErrorsOnly), &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Response.StatusCode)
}

func TestCheckStatus_NilPredicate(t *testing.T) {
	assert.NoError(t, CheckStatus(jsonResponse(http.StatusOK, `{}`), nil))

	var apiErr *ApiError
	require.ErrorAs(t, CheckStatus(jsonResponse(http.StatusNotFound, `{}`), nil), &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Response.StatusCode)
}

func TestCheckStatusCode_UndecodableBody(t *testing.T) {
	var apiErr *ApiError
	require.ErrorAs(t, CheckStatusCode(jsonResponse(http.StatusServiceUnavailable, `<html>`)), &apiErr)
	assert.Nil(t, apiErr.Body)
	assert.Equal(t, "api error: status 503", apiErr.Error())
}

func TestResultOrError(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		want     any
		wantBody any
	}{
		{
			name: "object result",
			body: `{"result": {"x": 1}}`,
			want: map[string]any{"x": float64(1)},
		},
		{
			name: "array result",
			body: `{"jsonrpc": "2.0", "result": [1, 2], "id": 1}`,
			want: []any{float64(1), float64(2)},
		},
		{
			name: "empty array is a result",
			body: `{"result": []}`,
			want: []any{},
		},
		{
			name:     "error body",
			body:     `{"error": "bad"}`,
			wantBody: map[string]any{"error": "bad"},
		},
		{
			name:     "null result",
			body:     `{"result": null, "error": "bad"}`,
			wantBody: map[string]any{"result": nil, "error": "bad"},
		},
		{
			name:     "body is not an object",
			body:     `[1]`,
			wantBody: []any{float64(1)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResultOrError(jsonResponse(http.StatusOK, tt.body))
			if tt.wantBody == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}

			var apiErr *ApiError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.wantBody, apiErr.Body)
			assert.Nil(t, got)
		})
	}
}

func TestResultOrError_UndecodableBody(t *testing.T) {
	_, err := ResultOrError(jsonResponse(http.StatusOK, `not json`))

	assert.ErrorIs(t, err, ErrUndecodableReply)
	var apiErr *ApiError
	assert.ErrorAs(t, err, &apiErr)
}

func TestApiError_RPCDetails(t *testing.T) {
	body := `{"jsonrpc":"2.0","error":{"code":-32099,"message":"ANGX-0003","data":{"APINGException":{"errorCode":"INVALID_SESSION_INFORMATION","errorDetails":"","requestUUID":"x"},"exceptionname":"APINGException"}},"id":1}`

	_, err := ResultOrError(jsonResponse(http.StatusOK, body))

	var apiErr *ApiError
	require.ErrorAs(t, err, &apiErr)
	rpcErr := apiErr.RPCError()
	require.NotNil(t, rpcErr)
	assert.Equal(t, -32099, rpcErr.Code)
	assert.Equal(t, "ANGX-0003", rpcErr.Message)
	assert.Equal(t, "INVALID_SESSION_INFORMATION", apiErr.ErrorCode())
	assert.Contains(t, apiErr.Error(), "INVALID_SESSION_INFORMATION")
}
