package aping

import "github.com/lidofinance/betfair-aping/internal/pkg/aping/entity"

const (
	BaseSports  = "Sports"
	BaseAccount = "Account"
)

// PayloadID is the id of every request. Responses are not correlated by id.
const PayloadID = 1

// MakePayload builds the JSON-RPC body for <base>APING/v1.0/<method>.
// params is stored as is, not copied.
func MakePayload(base, method string, params map[string]any) entity.Payload {
	return entity.Payload{
		JSONRPC: entity.JSONRPCVersion,
		Method:  base + "APING/v1.0/" + method,
		Params:  params,
		ID:      PayloadID,
	}
}
