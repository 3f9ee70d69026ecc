package aping

import (
	"errors"
	"fmt"

	"github.com/lidofinance/betfair-aping/internal/pkg/aping/entity"
)

var (
	ErrNotLoggedIn      = errors.New("not logged in")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrUnexpectedShape  = errors.New("unexpected result shape")
	ErrNotModel         = errors.New("value is not a model")
	ErrUndecodableReply = errors.New("response body is not valid JSON")
)

// ApiError is returned when the API answers with an unacceptable status code
// or without a result. Body is the decoded JSON body, nil if it did not decode.
type ApiError struct {
	Response *entity.Response
	Body     any
}

func (e *ApiError) Error() string {
	if rpcErr := e.RPCError(); rpcErr != nil {
		if code := e.ErrorCode(); code != "" {
			return fmt.Sprintf("api error: status %d, rpc code(%d) %s: %s", e.statusCode(), rpcErr.Code, rpcErr.Message, code)
		}
		return fmt.Sprintf("api error: status %d, rpc code(%d) %s", e.statusCode(), rpcErr.Code, rpcErr.Message)
	}

	return fmt.Sprintf("api error: status %d", e.statusCode())
}

func (e *ApiError) statusCode() int {
	if e.Response == nil {
		return 0
	}

	return e.Response.StatusCode
}

// RPCError returns the JSON-RPC error object of the body, if there is one.
func (e *ApiError) RPCError() *entity.RPCError {
	body, ok := e.Body.(map[string]any)
	if !ok {
		return nil
	}

	raw, ok := body["error"].(map[string]any)
	if !ok {
		return nil
	}

	var rpcErr entity.RPCError
	if err := entity.FromFields(raw, &rpcErr); err != nil {
		return nil
	}

	return &rpcErr
}

// ErrorCode returns APINGException.errorCode, e.g. INVALID_SESSION_INFORMATION.
func (e *ApiError) ErrorCode() string {
	rpcErr := e.RPCError()
	if rpcErr == nil {
		return ""
	}

	data, ok := rpcErr.Data.(map[string]any)
	if !ok {
		return ""
	}

	for _, key := range []string{"APINGException", "AccountAPINGException"} {
		if exc, ok := data[key].(map[string]any); ok {
			if code, ok := exc["errorCode"].(string); ok {
				return code
			}
		}
	}

	return ""
}

func newApiError(resp *entity.Response) *ApiError {
	body, err := resp.JSON()
	if err != nil {
		body = nil
	}

	return &ApiError{Response: resp, Body: body}
}
