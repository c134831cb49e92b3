// Package bridge implements the correlation bridge between the caller facing
// JSON-RPC endpoint and the single intermittently connected local agent. It
// owns the live connection slot, the pending call table matching forwarded
// calls to their eventual replies, and the bounded event queue feeding stream
// subscribers.
package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/viant/jsonrpc"
	mcpschema "github.com/viant/mcp-protocol/schema"

	"github.com/agentbridge/relay/internal/conv"
	"github.com/agentbridge/relay/registry"
	"github.com/agentbridge/relay/schema"
)

const (
	// DefaultCallTimeout bounds how long a forwarded call may await its reply.
	DefaultCallTimeout = 30 * time.Second
	// syncTimeout bounds the catalogue sync issued after an agent connects.
	syncTimeout = 10 * time.Second
)

// Bridge is the dispatcher: it classifies inbound calls, answers protocol
// methods locally and forwards tool invocations to the current agent
// connection, correlating replies by request id.
type Bridge struct {
	slot     *Slot
	pending  *Pending
	queue    *Queue
	registry *registry.Registry

	callTimeout     time.Duration
	queueCapacity   int
	info            mcpschema.Implementation
	instructions    *string
	protocolVersion string
}

// New creates a bridge serving tools from the supplied registry.
func New(reg *registry.Registry, options ...Option) (*Bridge, error) {
	if reg == nil {
		return nil, errors.New("no registry specified")
	}
	b := &Bridge{
		slot:            NewSlot(),
		pending:         NewPending(),
		registry:        reg,
		callTimeout:     DefaultCallTimeout,
		queueCapacity:   DefaultQueueCapacity,
		info:            mcpschema.Implementation{Name: "relay", Version: "0.1"},
		protocolVersion: mcpschema.LatestProtocolVersion,
	}
	for _, option := range options {
		if err := option(b); err != nil {
			return nil, err
		}
	}
	b.queue = NewQueue(b.queueCapacity)
	return b, nil
}

// Dispatch handles one inbound JSON-RPC request, writing the outcome into
// response. All relay failures are resolved here as structured errors; none
// are fatal to the process.
func (b *Bridge) Dispatch(ctx context.Context, request *jsonrpc.Request, response *jsonrpc.Response) {
	response.Id = request.Id
	response.Jsonrpc = request.Jsonrpc
	if jsonrpc.Version != request.Jsonrpc {
		response.Error = jsonrpc.NewInvalidRequest("invalid JSON-RPC version", nil)
		return
	}
	switch request.Method {
	case mcpschema.MethodInitialize:
		result, err := b.initialize(ctx, request)
		b.setResponse(response, result, err)
	case mcpschema.MethodPing:
		b.setResponse(response, &mcpschema.PingResult{}, nil)
	case mcpschema.MethodToolsList:
		result, err := b.listTools(ctx, request)
		b.setResponse(response, result, err)
	case mcpschema.MethodToolsCall:
		b.callTool(ctx, request, response)
	default:
		response.Error = jsonrpc.NewMethodNotFound(fmt.Sprintf("method: %v not found", request.Method), request.Params)
	}
}

// OnNotification handles incoming JSON-RPC notifications.
func (b *Bridge) OnNotification(_ context.Context, notification *jsonrpc.Notification) {
	switch notification.Method {
	case mcpschema.MethodNotificationInitialized:
	default:
		log.Printf("[bridge] ignored notification: %v", notification.Method)
	}
}

func (b *Bridge) initialize(_ context.Context, request *jsonrpc.Request) (*mcpschema.InitializeResult, *jsonrpc.Error) {
	// Client info and capabilities are not used by the relay; accept any
	// params shape, including none at all.
	params := &mcpschema.InitializeRequestParams{}
	if len(request.Params) > 0 {
		_ = json.Unmarshal(request.Params, params)
	}
	result := &mcpschema.InitializeResult{
		ProtocolVersion: b.protocolVersion,
		ServerInfo:      b.info,
		Capabilities:    mcpschema.ServerCapabilities{Tools: &mcpschema.ServerCapabilitiesTools{}},
		Instructions:    b.instructions,
	}
	return result, nil
}

func (b *Bridge) listTools(_ context.Context, _ *jsonrpc.Request) (*mcpschema.ListToolsResult, *jsonrpc.Error) {
	return &mcpschema.ListToolsResult{Tools: b.registry.List()}, nil
}

// callTool forwards a tool invocation to the current agent connection and
// awaits the correlated reply up to the call timeout.
func (b *Bridge) callTool(ctx context.Context, request *jsonrpc.Request, response *jsonrpc.Response) {
	params := &mcpschema.CallToolRequestParams{}
	if err := json.Unmarshal(request.Params, params); err != nil {
		response.Error = jsonrpc.NewInvalidParamsError(fmt.Sprintf("failed to parse: %v", err), request.Params)
		return
	}
	if _, ok := b.registry.Lookup(params.Name); !ok {
		response.Error = schema.NewUnknownTool(params.Name)
		return
	}
	id := conv.AsString(request.Id)
	if id == "" {
		response.Error = jsonrpc.NewInvalidRequest("request id is required", request.Params)
		return
	}
	conn := b.slot.Current()
	if conn == nil {
		response.Error = schema.NewAgentUnavailable()
		return
	}
	call, err := b.pending.Register(id)
	if err != nil {
		response.Error = schema.NewDuplicateRequestId(id)
		return
	}
	data, mErr := json.Marshal(request)
	if mErr != nil {
		b.pending.Remove(id)
		response.Error = jsonrpc.NewInternalError(mErr.Error(), nil)
		return
	}
	// The slot may be superseded between Current and Write; a write against a
	// closing connection surfaces as unavailability, never a retry.
	if wErr := conn.Write(ctx, data); wErr != nil {
		b.pending.Remove(id)
		log.Printf("[bridge] write to agent failed id=%v: %v", id, wErr)
		response.Error = schema.NewAgentUnavailable()
		return
	}
	reply, aErr := b.pending.Await(ctx, call, b.callTimeout)
	if aErr != nil {
		if errors.Is(aErr, ErrTimeout) {
			response.Error = schema.NewRequestTimeout()
			return
		}
		response.Error = jsonrpc.NewInternalError(aErr.Error(), nil)
		return
	}
	response.Result = reply.Result
	response.Error = reply.Error
}

func (b *Bridge) setResponse(response *jsonrpc.Response, result interface{}, rpcError *jsonrpc.Error) {
	if rpcError != nil {
		response.Error = rpcError
		return
	}
	var err error
	response.Result, err = json.Marshal(result)
	if err != nil {
		response.Error = jsonrpc.NewInternalError(err.Error(), []byte{})
	}
}

// frame is the minimal envelope read off the agent connection; correlation
// needs only the id and whether the frame is a reply.
type frame struct {
	Jsonrpc string          `json:"jsonrpc,omitempty"`
	Id      interface{}     `json:"id,omitempty"`
	Method  string          `json:"method,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *jsonrpc.Error  `json:"error,omitempty"`
}

// HandleFrame consumes one inbound agent frame. Replies carrying a known
// request id resolve the matching pending call; everything else is queued for
// stream subscribers.
func (b *Bridge) HandleFrame(data []byte) {
	aFrame := &frame{}
	if err := json.Unmarshal(data, aFrame); err != nil {
		// Not an envelope at all; still stream it, the bridge is payload agnostic.
		b.queue.Push(data)
		return
	}
	if aFrame.Id != nil && aFrame.Method == "" {
		id := conv.AsString(aFrame.Id)
		response := &jsonrpc.Response{Jsonrpc: jsonrpc.Version, Id: aFrame.Id, Result: aFrame.Result, Error: aFrame.Error}
		if !b.pending.Resolve(id, response) {
			log.Printf("[bridge] dropped late or unknown reply id=%v", id)
		}
		return
	}
	b.queue.Push(data)
}

// Attach installs conn as the current agent connection, superseding and
// closing any previous one, then requests the agent's tool catalogue.
func (b *Bridge) Attach(conn Conn) {
	b.slot.Install(conn)
	go b.syncCatalogue(conn)
}

// Detach clears conn if it is still current; a superseded connection
// detaching late is a no-op.
func (b *Bridge) Detach(conn Conn) {
	b.slot.Clear(conn)
}

// syncCatalogue asks the agent for its tool listing and refreshes the
// registry snapshot from the reply.
func (b *Bridge) syncCatalogue(conn Conn) {
	id := "sync-" + uuid.New().String()
	call, err := b.pending.Register(id)
	if err != nil {
		log.Printf("[bridge] catalogue sync skipped: %v", err)
		return
	}
	request := &jsonrpc.Request{Jsonrpc: jsonrpc.Version, Method: mcpschema.MethodToolsList, Id: id}
	data, err := json.Marshal(request)
	if err != nil {
		b.pending.Remove(id)
		return
	}
	ctx := context.Background()
	if err = conn.Write(ctx, data); err != nil {
		b.pending.Remove(id)
		log.Printf("[bridge] catalogue sync write failed: %v", err)
		return
	}
	reply, err := b.pending.Await(ctx, call, syncTimeout)
	if err != nil {
		log.Printf("[bridge] catalogue sync failed: %v", err)
		return
	}
	if reply.Error != nil {
		log.Printf("[bridge] catalogue sync rejected: %v", reply.Error.Message)
		return
	}
	result := &mcpschema.ListToolsResult{}
	if err = json.Unmarshal(reply.Result, result); err != nil {
		log.Printf("[bridge] malformed catalogue reply: %v", err)
		return
	}
	b.registry.Replace(result.Tools)
	log.Printf("[bridge] agent catalogue synced, %v tool(s)", len(result.Tools))
}

// Connected reports whether a live agent connection is installed.
func (b *Bridge) Connected() bool {
	return b.slot.Current() != nil
}

// QueueSize returns the number of buffered, undelivered events.
func (b *Bridge) QueueSize() int {
	return b.queue.Size()
}

// PendingSize returns the number of in-flight forwarded calls.
func (b *Bridge) PendingSize() int {
	return b.pending.Size()
}

// Events exposes the queue to stream subscribers.
func (b *Bridge) Events() *Queue {
	return b.queue
}
