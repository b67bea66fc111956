package models

import "encoding/json"

const (
	MethodStatus     = "faucet_status"
	MethodGetAddress = "faucet_getAddress"
	MethodRequest    = "faucet_request"
)

// JSON-RPC 2.0 error codes used by the faucet.
const (
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInternalError  = -32603
	CodeFaucetError    = -32000
)

type RpcRequest struct {
	JsonRpc string          `json:"jsonrpc"`
	Id      any             `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
}

type RpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type RpcResponse struct {
	JsonRpc string    `json:"jsonrpc"`
	Id      any       `json:"id"`
	Result  any       `json:"result,omitempty"`
	Error   *RpcError `json:"error,omitempty"`
}
