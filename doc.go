// Package relay bridges a cloud-facing MCP JSON-RPC endpoint to a single
// intermittently connected local agent.
//
// Remote callers POST JSON-RPC calls to the message endpoint; protocol
// handshake and tool listing are answered locally, tool invocations are
// forwarded over the one live websocket the local agent holds and correlated
// back by request id. Uncorrelated agent frames stream to callers over SSE
// with drop-oldest backpressure.
//
// The package exposes Run as the single entry-point used by cmd/relay:
//
//	err := relay.Run(os.Args[1:])
//
// See the bridge package for the correlation core and the server package for
// the HTTP surface.
package relay
