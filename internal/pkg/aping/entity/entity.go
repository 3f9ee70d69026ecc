package entity

import (
	"encoding/json"
	"net/http"
)

const JSONRPCVersion = "2.0"

type Payload struct {
	JSONRPC string         `json:"jsonrpc"`
	Method  string         `json:"method"`
	Params  map[string]any `json:"params"`
	ID      int            `json:"id"`
}

type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Response is an HTTP response whose body has already been read.
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

// JSON decodes the body. Numbers come back as float64.
func (r *Response) JSON() (any, error) {
	var out any
	if err := json.Unmarshal(r.Body, &out); err != nil {
		return nil, err
	}

	return out, nil
}
