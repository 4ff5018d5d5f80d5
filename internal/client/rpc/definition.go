package rpc

import "encoding/json"

// Request is the LuCI flavor of json-rpc: no version field, positional params.
// The daemon accepts requests without an id, so it stays optional.
type Request struct {
	ID     *int   `json:"id,omitempty"`
	Method string `json:"method"`
	Params []any  `json:"params"`
}

type Response struct {
	Result json.RawMessage `json:"result"`
	Error  json.RawMessage `json:"error"`
}

// IsNull reports whether a raw json field is absent or the literal null.
func IsNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
