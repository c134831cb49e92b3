package schema

import "github.com/viant/jsonrpc"

// Relay-specific JSON-RPC error codes, outside the reserved -32768..-32600 range.
const (
	AgentUnavailable   = -32001
	RequestTimeout     = -32002
	DuplicateRequestId = -32003
)

// NewAgentUnavailable creates an error reported when no local agent connection is live.
func NewAgentUnavailable() *jsonrpc.Error {
	return jsonrpc.NewError(AgentUnavailable, "Local Agent not connected", nil)
}

// NewRequestTimeout creates an error reported when a forwarded call outlives its deadline.
func NewRequestTimeout() *jsonrpc.Error {
	return jsonrpc.NewError(RequestTimeout, "timeout", nil)
}

// NewDuplicateRequestId creates an error reported when a caller reuses an in-flight id.
func NewDuplicateRequestId(id string) *jsonrpc.Error {
	return jsonrpc.NewError(DuplicateRequestId, "duplicate request id: "+id, nil)
}

// NewUnknownTool creates an unknown tool error.
func NewUnknownTool(toolName string) *jsonrpc.Error {
	return jsonrpc.NewError(jsonrpc.InvalidParams, "Unknown tool: "+toolName, nil)
}
